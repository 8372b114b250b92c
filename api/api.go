package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Luismorlan/ledger_in_go/ledger"
	"github.com/Luismorlan/ledger_in_go/model"
	"github.com/go-chi/chi/v5"
)

// LedgerAPIHandler serves a ledger as JSON over HTTP.
type LedgerAPIHandler struct {
	ledger *ledger.Ledger
}

func NewLedgerAPIHandler(l *ledger.Ledger) *LedgerAPIHandler {
	return &LedgerAPIHandler{ledger: l}
}

type newTransactionRequest struct {
	Sender    string `json:"sender"`
	Recipient string `json:"recipient"`
	// Accepts both 10 and "10".
	Amount json.Number `json:"amount"`
}

type mineRequest struct {
	Proof *int64 `json:"proof"`
	// Optional override of the link to the previous block.
	PreviousHash string `json:"previous_hash"`
}

type blockResponse struct {
	Message string      `json:"message,omitempty"`
	Block   model.Block `json:"block"`
	Hash    string      `json:"hash"`
}

type chainResponse struct {
	Chain  []model.Block `json:"chain"`
	Length int           `json:"length"`
}

func (h *LedgerAPIHandler) Name() string {
	return "ledger"
}

// RegisterRoutes mounts the ledger endpoints on the router.
func (h *LedgerAPIHandler) RegisterRoutes(router *chi.Mux) error {
	router.Post("/transactions/new", h.handleNewTransaction)
	router.Get("/transactions/pending", h.handlePendingTransactions)
	router.Post("/mine", h.handleMine)
	router.Get("/chain", h.handleChain)
	router.Get("/chain/verify", h.handleVerify)
	router.Get("/blocks/last", h.handleLastBlock)
	router.Get("/blocks/{index}", h.handleBlockByIndex)
	return nil
}

func (h *LedgerAPIHandler) handleNewTransaction(w http.ResponseWriter, r *http.Request) {
	var req newTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, fmt.Sprintf("%s: %s", model.ErrInvalidTransactionShape, err), http.StatusBadRequest)
		return
	}
	index, err := h.ledger.SubmitTransaction(req.Sender, req.Recipient, req.Amount.String())
	if err != nil {
		writeLedgerError(w, err)
		return
	}
	writeJSONResponse(w, http.StatusCreated, map[string]interface{}{
		"message":     fmt.Sprintf("Transaction will be added to Block %d", index),
		"block_index": index,
	})
}

func (h *LedgerAPIHandler) handlePendingTransactions(w http.ResponseWriter, r *http.Request) {
	writeJSONResponse(w, http.StatusOK, map[string]interface{}{
		"transactions": h.ledger.PendingTransactions(),
	})
}

func (h *LedgerAPIHandler) handleMine(w http.ResponseWriter, r *http.Request) {
	var req mineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Proof == nil {
		writeErrorResponse(w, "missing proof", http.StatusBadRequest)
		return
	}
	block, err := h.ledger.SealBlock(*req.Proof, req.PreviousHash)
	if err != nil {
		writeLedgerError(w, err)
		return
	}
	writeJSONResponse(w, http.StatusCreated, blockResponse{
		Message: "New Block Forged",
		Block:   block,
		Hash:    h.ledger.ContentHash(block),
	})
}

func (h *LedgerAPIHandler) handleChain(w http.ResponseWriter, r *http.Request) {
	chain := h.ledger.Chain()
	writeJSONResponse(w, http.StatusOK, chainResponse{Chain: chain, Length: len(chain)})
}

func (h *LedgerAPIHandler) handleVerify(w http.ResponseWriter, r *http.Request) {
	if err := h.ledger.Verify(); err != nil {
		writeJSONResponse(w, http.StatusOK, map[string]interface{}{"valid": false, "reason": err.Error()})
		return
	}
	writeJSONResponse(w, http.StatusOK, map[string]interface{}{"valid": true})
}

func (h *LedgerAPIHandler) handleLastBlock(w http.ResponseWriter, r *http.Request) {
	block, err := h.ledger.LastBlock()
	if err != nil {
		writeLedgerError(w, err)
		return
	}
	writeJSONResponse(w, http.StatusOK, blockResponse{Block: block, Hash: h.ledger.ContentHash(block)})
}

func (h *LedgerAPIHandler) handleBlockByIndex(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.ParseInt(chi.URLParam(r, "index"), 10, 64)
	if err != nil {
		writeErrorResponse(w, "invalid block index", http.StatusBadRequest)
		return
	}
	chain := h.ledger.Chain()
	if index < 1 || index > int64(len(chain)) {
		writeErrorResponse(w, "block not found", http.StatusNotFound)
		return
	}
	block := chain[index-1]
	writeJSONResponse(w, http.StatusOK, blockResponse{Block: block, Hash: h.ledger.ContentHash(block)})
}

func writeLedgerError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrInvalidTransactionShape):
		writeErrorResponse(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, model.ErrEmptyChain):
		writeErrorResponse(w, err.Error(), http.StatusConflict)
	default:
		writeErrorResponse(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeErrorResponse(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

func writeJSONResponse(w http.ResponseWriter, statusCode int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(data)
}

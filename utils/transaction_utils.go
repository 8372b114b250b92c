package utils

import (
	"fmt"
	"strings"

	"github.com/Luismorlan/ledger_in_go/model"
	"github.com/shopspring/decimal"
)

const (
	// Bounds on an amount's decimal representation, so the canonical encoding of a
	// transaction stays short.
	MAX_AMOUNT_EXPONENT = 64
	MAX_AMOUNT_DIGITS   = 78
)

// ParseAmount converts user input to an exact amount. Anything that isn't a plain
// decimal number (empty, "abc", "NaN", "Inf") is an ErrInvalidTransactionShape, as is
// an amount with more than MAX_AMOUNT_DIGITS digits or an exponent past
// MAX_AMOUNT_EXPONENT.
func ParseAmount(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Decimal{}, fmt.Errorf("%w: amount is missing", model.ErrInvalidTransactionShape)
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: amount %q is not a number", model.ErrInvalidTransactionShape, raw)
	}
	exp := amount.Exponent()
	if exp > MAX_AMOUNT_EXPONENT || exp < -MAX_AMOUNT_EXPONENT {
		return decimal.Decimal{}, fmt.Errorf("%w: amount exponent %d is out of range", model.ErrInvalidTransactionShape, exp)
	}
	coef := amount.Coefficient()
	if digits := len(coef.Abs(coef).String()); digits > MAX_AMOUNT_DIGITS {
		return decimal.Decimal{}, fmt.Errorf("%w: amount has %d digits", model.ErrInvalidTransactionShape, digits)
	}
	return amount, nil
}

// Create a transaction from raw fields as received by the CLI, gRPC or HTTP. Only the
// shape is checked, addresses and the amount's sign are accepted as they are.
func CreateTransaction(sender string, recipient string, rawAmount string) (model.Transaction, error) {
	amount, err := ParseAmount(rawAmount)
	if err != nil {
		return model.Transaction{}, err
	}
	return model.Transaction{
		Sender:    sender,
		Recipient: recipient,
		Amount:    amount,
	}, nil
}

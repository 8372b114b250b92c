package config

import "github.com/Luismorlan/ledger_in_go/model"

// This is the global app config for the ledger node.
type AppConfig struct {
	// Proof stored in the genesis block.
	GENESIS_PROOF int64 `yaml:"genesis_proof"`
	// Digest used for block content hashes: "sha256", "sha3-256" or "keccak256".
	HASH_ALGORITHM string `yaml:"hash_algorithm"`
	// Never let a block carry a timestamp smaller than its predecessor's, even if the
	// wall clock went backwards.
	MONOTONIC_TIMESTAMPS bool `yaml:"monotonic_timestamps"`
	// How many sealed-block notifications a listener may have queued before new ones
	// are dropped for it.
	SEAL_NOTIFICATION_BUFFER int `yaml:"seal_notification_buffer"`
	// Port the gRPC service listens on.
	GRPC_PORT string `yaml:"grpc_port"`
	// Port the HTTP API listens on.
	HTTP_PORT string `yaml:"http_port"`
}

// Config used when no file is given. A config file only needs to list the keys it
// wants to change.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		GENESIS_PROOF:            model.DEFAULT_GENESIS_PROOF,
		HASH_ALGORITHM:           "sha256",
		MONOTONIC_TIMESTAMPS:     true,
		SEAL_NOTIFICATION_BUFFER: 16,
		GRPC_PORT:                "10000",
		HTTP_PORT:                "5000",
	}
}

package types

// TransactionResult represents a confirmed blockchain transaction.
// RawData holds the chain specific receipt; users of this struct should cast it to the
// appropriate type.
type TransactionResult struct {
	Hash        string `json:"hash"`
	BlockNumber uint64 `json:"blockNumber"`
	ChainFamily string `json:"chainFamily"`
	RawData     any    `json:"rawData"`
}

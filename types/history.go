package types

// HistoryEntry is one transaction in the authenticated user's history.
// Entries arrive most recent first in server-defined pages (1-indexed).
// Amount follows the scaling convention of Type: raw currency units for
// AssetTypeCurrency, share counts for AssetTypeStock.
type HistoryEntry struct {
	Type          AssetType     `json:"type"`
	OperationType OperationType `json:"operation_type"`
	Timestamp     int64         `json:"timestamp"`
	Source        int64         `json:"source"`
	Dest          int64         `json:"dest"`
	Symbol        string        `json:"symbol"`
	Amount        int64         `json:"amount"`
}

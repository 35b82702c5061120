package types

// AssetType tags a history entry as a currency or a stock movement. The
// scaling convention for the entry's raw amount depends on this tag:
// currency amounts are scaled by the server's decimal_places, stock amounts
// are whole share counts.
type AssetType string

const (
	AssetTypeCurrency AssetType = "currency"
	AssetTypeStock    AssetType = "stock"
)

// OperationType describes what a history entry did.
type OperationType string

const (
	OperationBuy      OperationType = "buy"
	OperationSell     OperationType = "sell"
	OperationDeposit  OperationType = "deposit"
	OperationWithdraw OperationType = "withdraw"
	OperationTransfer OperationType = "transfer"
)

// SuccessResponse is the generic acknowledgement body returned by mutating
// endpoints and by /version.
type SuccessResponse struct {
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

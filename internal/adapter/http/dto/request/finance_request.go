package request

// ImportFinanceTextRequest carries rows pasted from the finance sheet,
// tab or semicolon separated.
type ImportFinanceTextRequest struct {
	Text string `json:"text" binding:"required"`
}

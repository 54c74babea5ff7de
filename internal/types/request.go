package types

// ExecuteRequest represents a service execution request
type ExecuteRequest struct {
	ToolID string                 `json:"tool_id" binding:"required"`
	Params map[string]interface{} `json:"params"`
}

// DiscoverRequest asks the registry for services matching an intent
type DiscoverRequest struct {
	Intent string `json:"intent" binding:"required"`
	Limit  int    `json:"limit"`
}

// ConvertResponse is returned by the REST conversion endpoint
type ConvertResponse struct {
	Result   float64 `json:"result"`
	From     string  `json:"from"`
	To       string  `json:"to"`
	Category string  `json:"category"`
}

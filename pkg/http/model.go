package http

// APIResponse represents the standard API envelope.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   interface{} `json:"error,omitempty"`
}

// ValidationError represents validation error detail.
type ValidationError struct {
	Code    string                 `json:"code,omitempty" example:"ERR_REQUIRED"`
	Field   string                 `json:"field,omitempty" example:"category"`
	Message string                 `json:"message,omitempty" example:"Category is required"`
	Params  map[string]interface{} `json:"params,omitempty"`
}

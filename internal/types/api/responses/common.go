package responses

// ErrorResponse represents a standard error response. Kind carries the
// machine-readable domain error category when the failure is a domain one.
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Message string `json:"message"`
}

// ListResponse represents a list payload with its length
type ListResponse struct {
	Data  interface{} `json:"data"`
	Count int         `json:"count"`
}

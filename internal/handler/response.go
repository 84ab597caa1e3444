package handler

// Envelope is the uniform response shape for all catalog operations.
// Count is a pointer so count:0 still serializes on an empty list.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
	Count   *int        `json:"count,omitempty"`
	Filter  interface{} `json:"filter,omitempty"`
}

func countOf(n int) *int { return &n }

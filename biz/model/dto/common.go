package dto

// ErrorResp is the body of every non-2xx response. It carries the
// failure kind and a human-readable message, never the stored salt or
// hash.
type ErrorResp struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

package model

// Envelope wraps every backend response body.
type Envelope[T any] struct {
	Message string `json:"message"`
	Records T      `json:"records"`
}

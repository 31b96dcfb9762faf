package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Body is the JSON envelope of the few JSON answers this app gives. It uses
// the backend's {message, records} shape, so tooling that reads one reads
// both, plus the request ID and, on failures, an error code.
type Body struct {
	Message   string  `json:"message"`
	Records   any     `json:"records"`
	Code      ErrCode `json:"code,omitempty"`
	RequestID string  `json:"request_id"`
}

// Records answers with records under message.
func Records(c *gin.Context, status int, message string, records any) {
	c.JSON(status, Body{
		Message:   message,
		Records:   records,
		RequestID: c.GetString(ContextKeyRequestID),
	})
}

// NotFound answers an unknown JSON route.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, Body{
		Message:   GetMessage(ErrNotFound),
		Code:      ErrNotFound,
		RequestID: c.GetString(ContextKeyRequestID),
	})
}

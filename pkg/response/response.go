package response

import (
	"time"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the envelope for every failure response. Success bodies keep
// their operation-specific shapes for client compatibility.
type ErrorBody struct {
	Status    int         `json:"status"`
	Timestamp time.Time   `json:"timestamp"`
	RequestID string      `json:"request_id,omitempty"`
	Message   string      `json:"message"`
	Details   interface{} `json:"details,omitempty"`
}

func build(c *gin.Context, status int, message string, details interface{}) ErrorBody {
	return ErrorBody{
		Status:    status,
		Timestamp: time.Now(),
		RequestID: c.GetString("request_id"),
		Message:   message,
		Details:   details,
	}
}

// Fail writes a failure envelope without aborting the handler chain.
func Fail(c *gin.Context, status int, message string, details interface{}) {
	c.JSON(status, build(c, status, message, details))
}

// Abort writes a failure envelope and stops the handler chain; used by
// middleware.
func Abort(c *gin.Context, status int, message string, details interface{}) {
	c.AbortWithStatusJSON(status, build(c, status, message, details))
}

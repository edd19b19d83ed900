package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// APIError carries the HTTP status a failure maps to. Err holds the
// server-side cause and is logged, never sent to the client.
type APIError struct {
	Status  int
	Message string
	Err     error
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Status)
}

func (e *APIError) Unwrap() error { return e.Err }

func BadRequest(msg string) *APIError {
	return &APIError{Status: http.StatusBadRequest, Message: msg}
}

func NotFound(msg string) *APIError {
	return &APIError{Status: http.StatusNotFound, Message: msg}
}

func Internal(msg string, err error) *APIError {
	return &APIError{Status: http.StatusInternalServerError, Message: msg, Err: err}
}

// Fail writes err as a failure envelope. 5xx causes are logged with their
// context message and the client only sees a generic message.
func Fail(c *gin.Context, l *zap.Logger, err error) {
	var ae *APIError
	if !errors.As(err, &ae) {
		ae = Internal("unhandled error", err)
	}
	if ae.Status >= http.StatusInternalServerError {
		if l != nil {
			l.Error(ae.Message,
				zap.Error(ae.Err),
				zap.String("path", c.FullPath()),
				zap.String("method", c.Request.Method),
			)
		}
		c.JSON(ae.Status, Err("Internal Server Error"))
		return
	}
	c.JSON(ae.Status, Err(ae.Message))
}

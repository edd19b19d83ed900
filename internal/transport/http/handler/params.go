package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	resp "user-address-service/internal/transport/http/response"
)

// bindBody decodes the JSON body into out, telling an oversized body
// (cut off by middleware.MaxBodyBytes) apart from malformed JSON.
func bindBody(c *gin.Context, out *map[string]any) error {
	if err := c.ShouldBindJSON(out); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return &resp.APIError{
				Status:  http.StatusRequestEntityTooLarge,
				Message: "Request body too large",
			}
		}
		return resp.BadRequest("Invalid JSON body")
	}
	return nil
}

// pathID parses a numeric path parameter. false means malformed.
func pathID(raw string) (uint, bool) {
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// stringField returns the trimmed string at key, or "" when absent or not a
// string.
func stringField(m map[string]any, key string) string {
	if s, ok := m[key].(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

// asString renders a JSON value that may arrive as string or number
// (clients send pincodes both ways).
func asString(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return ""
	}
}

// asUint parses a JSON value holding a non-negative integer id.
func asUint(v any) (uint, bool) {
	switch t := v.(type) {
	case float64:
		if t < 0 || t != float64(uint(t)) {
			return 0, false
		}
		return uint(t), true
	case string:
		return pathID(t)
	default:
		return 0, false
	}
}

// isDupKey matches unique-constraint errors without depending on
// driver-specific error types.
func isDupKey(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation") ||
		strings.Contains(msg, "duplicate key")
}

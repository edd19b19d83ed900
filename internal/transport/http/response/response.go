package response

// Body is the envelope every endpoint returns.
type Body struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// OK wraps data for a plain success response.
func OK(data any) Body { return Body{Success: true, Data: data} }

// Message is a success response with no payload.
func Message(msg string) Body { return Body{Success: true, Message: msg} }

// Created pairs a message with the created record.
func Created(msg string, data any) Body {
	return Body{Success: true, Message: msg, Data: data}
}

// Err is the failure envelope.
func Err(msg string) Body { return Body{Success: false, Message: msg} }

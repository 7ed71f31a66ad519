package dto

// Response is the envelope returned by every endpoint:
// {status: "success"|"error", message, data?, errors?}.
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Errors  any    `json:"errors,omitempty"`
}

// Success builds a success envelope.
func Success(message string, data any) Response {
	return Response{Status: "success", Message: message, Data: data}
}

// Error builds an error envelope with a single message.
func Error(message string) Response {
	return Response{Status: "error", Message: message}
}

// ErrorWithDetails builds an error envelope carrying field-level or
// constraint-level detail alongside the message.
func ErrorWithDetails(message string, details any) Response {
	return Response{Status: "error", Message: message, Errors: details}
}

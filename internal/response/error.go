package response

import "net/http"

// errorBody is the single-line error shape of the API. Field-level detail
// is deliberately never disclosed.
type errorBody struct {
	Error string `json:"error"`
}

// ErrorWithStatus creates a JSON error response {"error": message}.
func ErrorWithStatus(message string, status int) Response {
	return JSONWithStatus(errorBody{Error: message}, status)
}

// NotFound is the gate response for disabled features. Disabled routes
// are indistinguishable from routes that never existed.
func NotFound() Response {
	return ErrorWithStatus("Not found", http.StatusNotFound)
}

// BadRequest creates a 400 response with a generic validation message.
func BadRequest(message string) Response {
	return ErrorWithStatus(message, http.StatusBadRequest)
}

// Unauthorized is the response for requests without a valid session.
func Unauthorized() Response {
	return ErrorWithStatus("Unauthorized", http.StatusUnauthorized)
}

// Forbidden creates a 403 response.
func Forbidden(message string) Response {
	return ErrorWithStatus(message, http.StatusForbidden)
}

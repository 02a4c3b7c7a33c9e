// Package response renders HTTP responses for the JSON API surface.
// Handlers build Response values; rendering errors are reported to the
// caller so the logging layer can record them.
package response

import (
	"encoding/json"
	"net/http"
)

// Response is a function that renders an HTTP response: it sets headers,
// the status code, and writes the body.
type Response func(w http.ResponseWriter, r *http.Request) error

// JSON creates an application/json response with 200 OK status.
func JSON(v any) Response {
	return JSONWithStatus(v, http.StatusOK)
}

// JSONWithStatus creates an application/json response with a custom
// status code. Encoding streams directly to the response writer.
func JSONWithStatus(v any, status int) Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(status)
		return json.NewEncoder(w).Encode(v)
	}
}

// SeeOther creates a 303 See Other redirect, the HTML flow after a POST.
func SeeOther(url string) Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		http.Redirect(w, r, url, http.StatusSeeOther)
		return nil
	}
}

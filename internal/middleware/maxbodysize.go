package middleware

import "net/http"

// NewMaxBodySizeHandler rejects requests whose body exceeds limit bytes.
// A declared Content-Length over the limit is refused with 413 up front.
// Otherwise the body is wrapped in http.MaxBytesReader, so a handler that
// reads past the limit gets an *http.MaxBytesError.
func NewMaxBodySizeHandler(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > limit {
				writeError(w, http.StatusRequestEntityTooLarge, "payload_too_large", "request body too large")
				return
			}
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, limit)
			}
			next.ServeHTTP(w, r)
		})
	}
}

package httpx

import (
	"net/http"

	"github.com/google/uuid"
)

// maxRequestIDLen bounds a client-supplied request id before it reaches logs.
const maxRequestIDLen = 64

// RequestIDMiddleware tags every request with an id: the caller's
// X-Request-Id when it is usable, a fresh UUID otherwise. The id is echoed
// in the response header and stored in the request context.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := incomingRequestID(r)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		w.Header().Set(RequestIDHeader, requestID)
		next.ServeHTTP(w, r.WithContext(ContextWithRequestID(r.Context(), requestID)))
	})
}

// incomingRequestID returns the caller's id, or "" when it is too long or
// carries anything but printable ASCII.
func incomingRequestID(r *http.Request) string {
	id := r.Header.Get(RequestIDHeader)
	if len(id) > maxRequestIDLen {
		return ""
	}
	for i := 0; i < len(id); i++ {
		if id[i] < 0x21 || id[i] > 0x7e {
			return ""
		}
	}
	return id
}

package api

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

const RequestIDHeader = "X-Request-Id"

// NewRouter registers the root route for GET and HEAD. Unknown paths fall
// through to mux's 404 handler, and other methods on / get a 405.
func NewRouter(log logrus.FieldLogger) http.Handler {
	router := mux.NewRouter()
	router.HandleFunc("/", func(w http.ResponseWriter, req *http.Request) {
		WriteResponse(w, Greeting(req))
	}).Methods(http.MethodGet, http.MethodHead)
	return withRequestID(log, router)
}

func withRequestID(log logrus.FieldLogger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		id := uuid.NewString()
		w.Header().Set(RequestIDHeader, id)
		log.WithFields(logrus.Fields{
			"request_id": id,
			"method":     req.Method,
			"path":       req.URL.Path,
		}).Debug("handling request")
		next.ServeHTTP(w, req)
	})
}

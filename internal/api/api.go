package api

import (
	"fmt"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"
)

type APIResponse struct {
	Status int
	Body   string
}

func WriteResponse(w http.ResponseWriter, response APIResponse) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(response.Status)
	_, err := io.WriteString(w, response.Body)
	if err != nil {
		// The client hung up, there is nobody left to tell
		logrus.Debug(fmt.Sprintf("Unable to write the response body %v", err))
	}
}

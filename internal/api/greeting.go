package api

import (
	"net/http"
)

const GreetingBody = "Hello World! Server is running."

// Greeting answers the root route. Routing has already matched the method
// and path by the time this runs.
func Greeting(req *http.Request) APIResponse {
	return APIResponse{Status: http.StatusOK, Body: GreetingBody}
}

package responder

import (
	"io"
	"net/http"

	"github.com/gorilla/mux"
)

const WelcomeHTML = "<h1>Welcome to our Node.js App!</h1><p>This page was deployed automatically with GitHub Actions.</p>"

// HandleRoot writes the welcome page. It is stateless: every call produces the same response.
func HandleRoot(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, WelcomeHTML)
}

// NewRouter maps GET (and HEAD) / to HandleRoot.
// Unknown paths get the router's 404, other methods on / get its 405.
func NewRouter() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/", HandleRoot).Methods(http.MethodGet, http.MethodHead)
	return r
}

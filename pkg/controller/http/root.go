package http

import (
	"net/http"

	"github.com/quantum-travel/quantumchat/pkg/utils/safe"
)

const landingPage = `<html>
    <head><title>Quantum Travel AI</title></head>
    <body>
        <h1>Welcome to Quantum Travel AI</h1>
        <p>Advanced Real-Time AI Communication Platform</p>
        <p>Please set up the frontend to access the full interface.</p>
    </body>
</html>
`

// handleRoot serves a minimal landing page when no frontend bundle is
// deployed
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	safe.Write(r.Context(), w, []byte(landingPage))
}

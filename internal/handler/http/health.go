package http

import (
	"net/http"

	"github.com/MKhiriev/go-fit-tracker/internal/utils"
)

// helloResponse is the fixed body of the root endpoint.
var helloResponse = map[string]string{"Hello": "World"}

// RegisterHealthEndpoint adds GET "/" answering {"Hello": "World"}.
func (h *Handler) RegisterHealthEndpoint() error {
	if h.ready() {
		return ErrComposerReady
	}

	if h.health {
		return h.fail(ErrHealthAlreadyRegistered)
	}

	h.health = true
	return nil
}

func (h *Handler) hello(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, helloResponse, http.StatusOK)
}

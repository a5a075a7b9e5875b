package apperr

import (
	"net/http"

	"github.com/2beens/gymlog/pkg"

	log "github.com/sirupsen/logrus"
)

type errorResponse struct {
	Detail string `json:"detail"`
}

// Write logs err and writes it as {"detail": "..."} with the status of its kind.
func Write(w http.ResponseWriter, r *http.Request, err error) {
	status := HTTPStatus(err)
	entry := log.WithFields(log.Fields{
		"method": r.Method,
		"path":   r.URL.Path,
		"status": status,
	})

	if status == http.StatusInternalServerError {
		entry.Errorf("request failed: %s", err)
	} else {
		entry.Debugf("request rejected: %s", err)
	}

	pkg.WriteJSONResponse(w, errorResponse{Detail: err.Error()}, status)
}

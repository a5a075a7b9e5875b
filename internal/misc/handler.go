package misc

import (
	"context"
	"net/http"
	"time"

	"github.com/2beens/gymlog/internal/telemetry/tracing"
	"github.com/2beens/gymlog/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

const dbPingTimeout = 3 * time.Second

type pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	db          pinger
	versionInfo string
}

func NewHandler(db pinger, versionInfo string) *Handler {
	return &Handler{
		db:          db,
		versionInfo: versionInfo,
	}
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	mainRouter.HandleFunc("/", handler.handleRoot).Methods("GET", "OPTIONS").Name("root")
	mainRouter.HandleFunc("/version", handler.handleGetVersionInfo).Methods("GET").Name("version")
	mainRouter.HandleFunc("/db-check", handler.handleDBCheck).Methods("GET").Name("db-check")
}

func (handler *Handler) handleRoot(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteResponse(w, pkg.ContentType.Text, "I'm OK, thanks ;)", http.StatusOK)
}

func (handler *Handler) handleGetVersionInfo(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteResponse(w, pkg.ContentType.Text, handler.versionInfo, http.StatusOK)
}

func (handler *Handler) handleDBCheck(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "miscHandler.dbCheck")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, dbPingTimeout)
	defer cancel()

	if err := handler.db.Ping(ctx); err != nil {
		log.Errorf("db check: %s", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "ping-failed")
		pkg.WriteJSONResponse(w, map[string]string{
			"detail": "Failed to connect to the database",
		}, http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, map[string]string{
		"status": "Connected to the database successfully",
	})
}

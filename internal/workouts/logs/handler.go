package logs

import (
	"context"
	"net/http"

	"github.com/2beens/gymlog/internal/apperr"
	"github.com/2beens/gymlog/internal/auth"
	"github.com/2beens/gymlog/internal/telemetry/metrics"
	"github.com/2beens/gymlog/internal/telemetry/tracing"
	"github.com/2beens/gymlog/pkg"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

//go:generate mockgen -source=handler.go -destination=service_mock_test.go -package=logs_test

type service interface {
	List(ctx context.Context, sessionID int, userID string) ([]ExerciseLog, error)
	Get(ctx context.Context, id int, userID string) (*ExerciseLog, error)
	Create(ctx context.Context, sessionID int, userID string, params CreateParams) (*ExerciseLog, error)
	Update(ctx context.Context, id int, userID string, params UpdateParams) (*ExerciseLog, error)
	Delete(ctx context.Context, id int, userID string) error
}

type Handler struct {
	service        service
	validate       *validator.Validate
	metricsManager *metrics.Manager
}

func NewHandler(service service, validate *validator.Validate, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		service:        service,
		validate:       validate,
		metricsManager: metricsManager,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/exercise-logs/workout-session/{id}", h.HandleList).Methods("GET", "OPTIONS").Name("list-exercise-logs")
	r.HandleFunc("/exercise-logs/workout-session/{id}", h.HandleCreate).Methods("POST", "OPTIONS").Name("new-exercise-log")
	r.HandleFunc("/exercise-log/{id}/workout-session", h.HandleGet).Methods("GET", "OPTIONS").Name("get-exercise-log")
	r.HandleFunc("/exercise-log/{id}/workout-session", h.HandleUpdate).Methods("PATCH", "OPTIONS").Name("update-exercise-log")
	r.HandleFunc("/exercise-log/{id}/workout-session", h.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-exercise-log")
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.logs.list")
	defer span.End()

	user, err := auth.UserFromContext(ctx)
	if err != nil {
		apperr.Write(w, r, err)
		return
	}

	sessionID, err := apperr.PathInt(r, "id")
	if err != nil {
		apperr.Write(w, r, err)
		return
	}

	logs, err := h.service.List(ctx, sessionID, user.ObjectID)
	if err != nil {
		apperr.Write(w, r, err)
		return
	}

	pkg.WriteJSONResponseOK(w, logs)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.logs.get")
	defer span.End()

	user, err := auth.UserFromContext(ctx)
	if err != nil {
		apperr.Write(w, r, err)
		return
	}

	id, err := apperr.PathInt(r, "id")
	if err != nil {
		apperr.Write(w, r, err)
		return
	}

	exerciseLog, err := h.service.Get(ctx, id, user.ObjectID)
	if err != nil {
		apperr.Write(w, r, err)
		return
	}

	pkg.WriteJSONResponseOK(w, exerciseLog)
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.logs.create")
	defer span.End()

	user, err := auth.UserFromContext(ctx)
	if err != nil {
		apperr.Write(w, r, err)
		return
	}

	sessionID, err := apperr.PathInt(r, "id")
	if err != nil {
		apperr.Write(w, r, err)
		return
	}

	var params CreateParams
	if err := apperr.DecodeBody(r, h.validate, &params); err != nil {
		apperr.Write(w, r, err)
		return
	}

	exerciseLog, err := h.service.Create(ctx, sessionID, user.ObjectID, params)
	if err != nil {
		apperr.Write(w, r, err)
		return
	}
	h.metricsManager.RecordCreated("exercise_log")

	pkg.WriteJSONResponseOK(w, exerciseLog)
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.logs.update")
	defer span.End()

	user, err := auth.UserFromContext(ctx)
	if err != nil {
		apperr.Write(w, r, err)
		return
	}

	id, err := apperr.PathInt(r, "id")
	if err != nil {
		apperr.Write(w, r, err)
		return
	}

	var params UpdateParams
	if err := apperr.DecodeBody(r, h.validate, &params); err != nil {
		apperr.Write(w, r, err)
		return
	}

	exerciseLog, err := h.service.Update(ctx, id, user.ObjectID, params)
	if err != nil {
		apperr.Write(w, r, err)
		return
	}

	pkg.WriteJSONResponseOK(w, exerciseLog)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.logs.delete")
	defer span.End()

	user, err := auth.UserFromContext(ctx)
	if err != nil {
		apperr.Write(w, r, err)
		return
	}

	id, err := apperr.PathInt(r, "id")
	if err != nil {
		apperr.Write(w, r, err)
		return
	}

	if err := h.service.Delete(ctx, id, user.ObjectID); err != nil {
		apperr.Write(w, r, err)
		return
	}
	h.metricsManager.RecordDeleted("exercise_log")

	pkg.WriteNoContent(w)
}

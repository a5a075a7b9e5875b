package sessions

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

//go:generate mockgen -source=handler.go -destination=service_mock_test.go -package=sessions_test

type service interface {
	List(ctx context.Context, userID string) ([]WorkoutSession, error)
	Get(ctx context.Context, id int, userID string) (*WorkoutSession, error)
	Create(ctx context.Context, userID string, params CreateParams) (*WorkoutSession, error)
	Update(ctx context.Context, id int, userID string, params UpdateParams) (*WorkoutSession, error)
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
	r.HandleFunc("/workout-sessions", h.HandleList).Methods("GET", "OPTIONS").Name("list-workout-sessions")
	r.HandleFunc("/workout-sessions", h.HandleCreate).Methods("POST", "OPTIONS").Name("new-workout-session")
	r.HandleFunc("/workout-session/{id}", h.HandleGet).Methods("GET", "OPTIONS").Name("get-workout-session")
	r.HandleFunc("/workout-session/{id}", h.HandleUpdate).Methods("PATCH", "OPTIONS").Name("update-workout-session")
	r.HandleFunc("/workout-session/{id}", h.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-workout-session")
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.list")
	defer span.End()

	user, err := auth.UserFromContext(ctx)
	if err != nil {
		apperr.Write(w, r, err)
		return
	}

	sessions, err := h.service.List(ctx, user.ObjectID)
	if err != nil {
		apperr.Write(w, r, err)
		return
	}

	pkg.WriteJSONResponseOK(w, sessions)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.get")
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

	session, err := h.service.Get(ctx, id, user.ObjectID)
	if err != nil {
		apperr.Write(w, r, err)
		return
	}

	pkg.WriteJSONResponseOK(w, session)
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.create")
	defer span.End()

	user, err := auth.UserFromContext(ctx)
	if err != nil {
		apperr.Write(w, r, err)
		return
	}

	var params CreateParams
	if err := apperr.DecodeBody(r, h.validate, &params); err != nil {
		apperr.Write(w, r, err)
		return
	}

	session, err := h.service.Create(ctx, user.ObjectID, params)
	if err != nil {
		apperr.Write(w, r, err)
		return
	}
	h.metricsManager.RecordCreated("workout_session")

	pkg.WriteJSONResponseOK(w, session)
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.update")
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

	session, err := h.service.Update(ctx, id, user.ObjectID, params)
	if err != nil {
		apperr.Write(w, r, err)
		return
	}

	pkg.WriteJSONResponseOK(w, session)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.delete")
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
	h.metricsManager.RecordDeleted("workout_session")

	pkg.WriteNoContent(w)
}

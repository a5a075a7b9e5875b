package exercises

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

//go:generate mockgen -source=handler.go -destination=service_mock_test.go -package=exercises_test

type service interface {
	List(ctx context.Context, userID string) ([]Exercise, error)
	Get(ctx context.Context, id int, userID string) (*Exercise, error)
	Create(ctx context.Context, userID string, params CreateParams) (*Exercise, error)
	Update(ctx context.Context, id int, userID string, params UpdateParams) (*Exercise, error)
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
	r.HandleFunc("/exercises", h.HandleList).Methods("GET", "OPTIONS").Name("list-exercises")
	r.HandleFunc("/exercises", h.HandleCreate).Methods("POST", "OPTIONS").Name("new-exercise")
	r.HandleFunc("/exercise/{id}", h.HandleGet).Methods("GET", "OPTIONS").Name("get-exercise")
	r.HandleFunc("/exercise/{id}", h.HandleUpdate).Methods("PATCH", "OPTIONS").Name("update-exercise")
	r.HandleFunc("/exercise/{id}", h.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-exercise")
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.list")
	defer span.End()

	user, err := auth.UserFromContext(ctx)
	if err != nil {
		apperr.Write(w, r, err)
		return
	}

	exercises, err := h.service.List(ctx, user.ObjectID)
	if err != nil {
		apperr.Write(w, r, err)
		return
	}

	pkg.WriteJSONResponseOK(w, exercises)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.get")
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

	exercise, err := h.service.Get(ctx, id, user.ObjectID)
	if err != nil {
		apperr.Write(w, r, err)
		return
	}

	pkg.WriteJSONResponseOK(w, exercise)
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.create")
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

	exercise, err := h.service.Create(ctx, user.ObjectID, params)
	if err != nil {
		apperr.Write(w, r, err)
		return
	}
	h.metricsManager.RecordCreated("exercise")

	pkg.WriteJSONResponseOK(w, exercise)
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.update")
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

	exercise, err := h.service.Update(ctx, id, user.ObjectID, params)
	if err != nil {
		apperr.Write(w, r, err)
		return
	}

	pkg.WriteJSONResponseOK(w, exercise)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.delete")
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
	h.metricsManager.RecordDeleted("exercise")

	pkg.WriteNoContent(w)
}

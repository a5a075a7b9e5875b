package plans

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

//go:generate mockgen -source=handler.go -destination=service_mock_test.go -package=plans_test

type service interface {
	List(ctx context.Context, userID string) ([]WorkoutPlan, error)
	Get(ctx context.Context, id int, userID string) (*WorkoutPlan, error)
	Create(ctx context.Context, userID string, params CreateParams) (*WorkoutPlan, error)
	Update(ctx context.Context, id int, userID string, params UpdateParams) (*WorkoutPlan, error)
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
	r.HandleFunc("/workout-plans", h.HandleList).Methods("GET", "OPTIONS").Name("list-workout-plans")
	r.HandleFunc("/workout-plans", h.HandleCreate).Methods("POST", "OPTIONS").Name("new-workout-plan")
	r.HandleFunc("/workout-plan/{id}", h.HandleGet).Methods("GET", "OPTIONS").Name("get-workout-plan")
	r.HandleFunc("/workout-plan/{id}", h.HandleUpdate).Methods("PATCH", "OPTIONS").Name("update-workout-plan")
	r.HandleFunc("/workout-plan/{id}", h.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-workout-plan")
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.list")
	defer span.End()

	user, err := auth.UserFromContext(ctx)
	if err != nil {
		apperr.Write(w, r, err)
		return
	}

	plans, err := h.service.List(ctx, user.ObjectID)
	if err != nil {
		apperr.Write(w, r, err)
		return
	}

	pkg.WriteJSONResponseOK(w, plans)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.get")
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

	plan, err := h.service.Get(ctx, id, user.ObjectID)
	if err != nil {
		apperr.Write(w, r, err)
		return
	}

	pkg.WriteJSONResponseOK(w, plan)
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.create")
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

	plan, err := h.service.Create(ctx, user.ObjectID, params)
	if err != nil {
		apperr.Write(w, r, err)
		return
	}
	h.metricsManager.RecordCreated("workout_plan")

	pkg.WriteJSONResponseOK(w, plan)
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.update")
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

	plan, err := h.service.Update(ctx, id, user.ObjectID, params)
	if err != nil {
		apperr.Write(w, r, err)
		return
	}

	pkg.WriteJSONResponseOK(w, plan)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.delete")
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
	h.metricsManager.RecordDeleted("workout_plan")

	pkg.WriteNoContent(w)
}

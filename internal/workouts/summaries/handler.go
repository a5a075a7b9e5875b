package summaries

import (
	"context"
	"net/http"
	"time"

	"github.com/2beens/gymlog/internal/apperr"
	"github.com/2beens/gymlog/internal/auth"
	"github.com/2beens/gymlog/internal/telemetry/metrics"
	"github.com/2beens/gymlog/internal/telemetry/tracing"
	"github.com/2beens/gymlog/pkg"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

//go:generate mockgen -source=handler.go -destination=service_mock_test.go -package=summaries_test

type service interface {
	List(ctx context.Context, userID string) ([]ExerciseSummary, error)
	GetByLog(ctx context.Context, logID int, userID string) (*ExerciseSummary, error)
	CreateForLog(ctx context.Context, logID int, userID string, params CreateParams) (*ExerciseSummary, error)
	Update(ctx context.Context, id int, userID string, params UpdateParams) (*ExerciseSummary, error)
	Delete(ctx context.Context, id int, userID string) error
	Weekly(ctx context.Context, userID string, weekStart time.Time) (*Totals, error)
	Monthly(ctx context.Context, userID string, year, month int) ([]WeeklySummary, error)
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
	r.HandleFunc("/exercise-summaries", h.HandleList).Methods("GET", "OPTIONS").Name("list-exercise-summaries")
	r.HandleFunc("/exercise-summary/weekly", h.HandleWeekly).Methods("GET", "OPTIONS").Name("weekly-exercise-summary")
	r.HandleFunc("/exercise-summary/exercise-log/{id}", h.HandleGetByLog).Methods("GET", "OPTIONS").Name("get-exercise-summary")
	r.HandleFunc("/exercise-summary/exercise-log/{id}", h.HandleCreateForLog).Methods("POST", "OPTIONS").Name("new-exercise-summary")
	r.HandleFunc("/exercise-summary/{id}/exercise-log", h.HandleUpdate).Methods("PATCH", "OPTIONS").Name("update-exercise-summary")
	r.HandleFunc("/exercise-summary/{id}/exercise-log", h.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-exercise-summary")
	r.HandleFunc("/exercise-summary/{year:[0-9]+}/{month:[0-9]+}", h.HandleMonthly).Methods("GET", "OPTIONS").Name("monthly-exercise-summary")
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.summaries.list")
	defer span.End()

	user, err := auth.UserFromContext(ctx)
	if err != nil {
		apperr.Write(w, r, err)
		return
	}

	summaries, err := h.service.List(ctx, user.ObjectID)
	if err != nil {
		apperr.Write(w, r, err)
		return
	}

	pkg.WriteJSONResponseOK(w, summaries)
}

func (h *Handler) HandleGetByLog(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.summaries.get-by-log")
	defer span.End()

	user, err := auth.UserFromContext(ctx)
	if err != nil {
		apperr.Write(w, r, err)
		return
	}

	logID, err := apperr.PathInt(r, "id")
	if err != nil {
		apperr.Write(w, r, err)
		return
	}

	summary, err := h.service.GetByLog(ctx, logID, user.ObjectID)
	if err != nil {
		apperr.Write(w, r, err)
		return
	}

	pkg.WriteJSONResponseOK(w, summary)
}

func (h *Handler) HandleCreateForLog(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.summaries.create-for-log")
	defer span.End()

	user, err := auth.UserFromContext(ctx)
	if err != nil {
		apperr.Write(w, r, err)
		return
	}

	logID, err := apperr.PathInt(r, "id")
	if err != nil {
		apperr.Write(w, r, err)
		return
	}

	var params CreateParams
	if err := apperr.DecodeBody(r, h.validate, &params); err != nil {
		apperr.Write(w, r, err)
		return
	}

	summary, err := h.service.CreateForLog(ctx, logID, user.ObjectID, params)
	if err != nil {
		apperr.Write(w, r, err)
		return
	}
	h.metricsManager.RecordCreated("exercise_summary")

	pkg.WriteJSONResponseOK(w, summary)
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.summaries.update")
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

	summary, err := h.service.Update(ctx, id, user.ObjectID, params)
	if err != nil {
		apperr.Write(w, r, err)
		return
	}

	pkg.WriteJSONResponseOK(w, summary)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.summaries.delete")
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
	h.metricsManager.RecordDeleted("exercise_summary")

	pkg.WriteNoContent(w)
}

// HandleWeekly expects ?week_start=YYYY-MM-DD.
func (h *Handler) HandleWeekly(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.summaries.weekly")
	defer span.End()

	user, err := auth.UserFromContext(ctx)
	if err != nil {
		apperr.Write(w, r, err)
		return
	}

	rawWeekStart := r.URL.Query().Get("week_start")
	if rawWeekStart == "" {
		apperr.Write(w, r, apperr.Validation("week_start: query parameter missing"))
		return
	}
	weekStart, err := time.Parse(DateLayout, rawWeekStart)
	if err != nil {
		apperr.Write(w, r, apperr.Validation("week_start: expected a date formatted as YYYY-MM-DD"))
		return
	}

	totals, err := h.service.Weekly(ctx, user.ObjectID, weekStart)
	if err != nil {
		apperr.Write(w, r, err)
		return
	}

	pkg.WriteJSONResponseOK(w, totals)
}

func (h *Handler) HandleMonthly(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.summaries.monthly")
	defer span.End()

	user, err := auth.UserFromContext(ctx)
	if err != nil {
		apperr.Write(w, r, err)
		return
	}

	year, err := apperr.PathInt(r, "year")
	if err != nil {
		apperr.Write(w, r, err)
		return
	}
	month, err := apperr.PathInt(r, "month")
	if err != nil {
		apperr.Write(w, r, err)
		return
	}

	weekly, err := h.service.Monthly(ctx, user.ObjectID, year, month)
	if err != nil {
		apperr.Write(w, r, err)
		return
	}

	pkg.WriteJSONResponseOK(w, weekly)
}

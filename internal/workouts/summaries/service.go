package summaries

import (
	"context"
	"errors"
	"time"

	"github.com/2beens/gymlog/internal/apperr"
	"github.com/2beens/gymlog/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=service.go -destination=repo_mock_test.go -package=summaries

type summaryRepo interface {
	List(ctx context.Context, userID string) ([]ExerciseSummary, error)
	GetByLog(ctx context.Context, logID int, userID string) (*ExerciseSummary, error)
	AddForLog(ctx context.Context, logID int, userID string, params CreateParams) (*ExerciseSummary, error)
	Update(ctx context.Context, id int, userID string, params UpdateParams) (*ExerciseSummary, error)
	Delete(ctx context.Context, id int, userID string) error
	Totals(ctx context.Context, userID string, from, to time.Time) (*Totals, error)
}

type Service struct {
	repo summaryRepo
}

func NewService(repo summaryRepo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) List(ctx context.Context, userID string) (_ []ExerciseSummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.summaries.list")
	defer tracing.EndSpanWithErrCheck(span, &err)

	summaries, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, apperr.Wrap(err, "Failed to retrieve exercise summaries")
	}
	return summaries, nil
}

func (s *Service) GetByLog(ctx context.Context, logID int, userID string) (_ *ExerciseSummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.summaries.get-by-log")
	defer tracing.EndSpanWithErrCheck(span, &err)

	summary, err := s.repo.GetByLog(ctx, logID, userID)
	if err != nil {
		return nil, translate(err, "Failed to retrieve exercise summary")
	}
	return summary, nil
}

func (s *Service) CreateForLog(ctx context.Context, logID int, userID string, params CreateParams) (_ *ExerciseSummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.summaries.create-for-log")
	defer tracing.EndSpanWithErrCheck(span, &err)

	summary, err := s.repo.AddForLog(ctx, logID, userID, params)
	if err != nil {
		return nil, translate(err, "Failed to create exercise summary")
	}
	return summary, nil
}

func (s *Service) Update(ctx context.Context, id int, userID string, params UpdateParams) (_ *ExerciseSummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.summaries.update")
	defer tracing.EndSpanWithErrCheck(span, &err)

	summary, err := s.repo.Update(ctx, id, userID, params)
	if err != nil {
		return nil, translate(err, "Failed to update exercise summary")
	}
	return summary, nil
}

func (s *Service) Delete(ctx context.Context, id int, userID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.summaries.delete")
	defer tracing.EndSpanWithErrCheck(span, &err)

	if err := s.repo.Delete(ctx, id, userID); err != nil {
		return translate(err, "Failed to delete exercise summary")
	}
	return nil
}

// Weekly aggregates the seven days starting at weekStart.
func (s *Service) Weekly(ctx context.Context, userID string, weekStart time.Time) (_ *Totals, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.summaries.weekly")
	defer tracing.EndSpanWithErrCheck(span, &err)

	week := WeekFrom(weekStart)
	totals, err := s.repo.Totals(ctx, userID, week.Start, week.End)
	if err != nil {
		return nil, apperr.Wrap(err, "Failed to calculate weekly exercise summary")
	}
	return totals, nil
}

// Monthly reports one bucket per calendar week of the month. Bucket labels
// are clipped to the month, while each bucket sums the seven days starting
// at its label start.
func (s *Service) Monthly(ctx context.Context, userID string, year, month int) (_ []WeeklySummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.summaries.monthly")
	defer tracing.EndSpanWithErrCheck(span, &err)
	span.SetAttributes(attribute.Int("year", year), attribute.Int("month", month))

	weeks, err := WeeksInMonth(year, month)
	if err != nil {
		return nil, apperr.InvalidArgument(err.Error())
	}

	result := make([]WeeklySummary, 0, len(weeks))
	for _, week := range weeks {
		window := WeekFrom(week.Start)
		totals, err := s.repo.Totals(ctx, userID, window.Start, window.End)
		if err != nil {
			return nil, apperr.Wrap(err, "Failed to calculate monthly exercise summary")
		}
		result = append(result, newWeeklySummary(week, *totals))
	}

	return result, nil
}

func translate(err error, message string) error {
	switch {
	case errors.Is(err, ErrSummaryNotFound):
		return apperr.NotFound("Exercise summary not found")
	case errors.Is(err, ErrLogNotFound):
		return apperr.NotFound("Exercise log not found")
	}
	return apperr.Wrap(err, message)
}

package logs

import (
	"context"
	"errors"

	"github.com/2beens/gymlog/internal/apperr"
	"github.com/2beens/gymlog/internal/telemetry/tracing"
)

//go:generate mockgen -source=service.go -destination=repo_mock_test.go -package=logs

type logRepo interface {
	List(ctx context.Context, sessionID int, userID string) ([]ExerciseLog, error)
	Get(ctx context.Context, id int, userID string) (*ExerciseLog, error)
	Add(ctx context.Context, sessionID int, userID string, params CreateParams) (*ExerciseLog, error)
	Update(ctx context.Context, id int, userID string, params UpdateParams) (*ExerciseLog, error)
	Delete(ctx context.Context, id int, userID string) error
}

type Service struct {
	repo logRepo
}

func NewService(repo logRepo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) List(ctx context.Context, sessionID int, userID string) (_ []ExerciseLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.logs.list")
	defer tracing.EndSpanWithErrCheck(span, &err)

	logs, err := s.repo.List(ctx, sessionID, userID)
	if err != nil {
		return nil, apperr.Wrap(err, "Failed to retrieve exercise logs")
	}
	return logs, nil
}

func (s *Service) Get(ctx context.Context, id int, userID string) (_ *ExerciseLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.logs.get")
	defer tracing.EndSpanWithErrCheck(span, &err)

	l, err := s.repo.Get(ctx, id, userID)
	if err != nil {
		return nil, translate(err, "Failed to retrieve exercise log")
	}
	return l, nil
}

func (s *Service) Create(ctx context.Context, sessionID int, userID string, params CreateParams) (_ *ExerciseLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.logs.create")
	defer tracing.EndSpanWithErrCheck(span, &err)

	l, err := s.repo.Add(ctx, sessionID, userID, params)
	if err != nil {
		return nil, translate(err, "Failed to create exercise log")
	}
	return l, nil
}

func (s *Service) Update(ctx context.Context, id int, userID string, params UpdateParams) (_ *ExerciseLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.logs.update")
	defer tracing.EndSpanWithErrCheck(span, &err)

	l, err := s.repo.Update(ctx, id, userID, params)
	if err != nil {
		return nil, translate(err, "Failed to update exercise log")
	}
	return l, nil
}

func (s *Service) Delete(ctx context.Context, id int, userID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.logs.delete")
	defer tracing.EndSpanWithErrCheck(span, &err)

	if err := s.repo.Delete(ctx, id, userID); err != nil {
		return translate(err, "Failed to delete exercise log")
	}
	return nil
}

func translate(err error, message string) error {
	switch {
	case errors.Is(err, ErrLogNotFound):
		return apperr.NotFound("Exercise log not found")
	case errors.Is(err, ErrSessionNotFound):
		return apperr.NotFound("Workout session not found")
	case errors.Is(err, ErrExerciseNotFound):
		return apperr.NotFound("Exercise not found")
	}
	return apperr.Wrap(err, message)
}

package sessions

import (
	"context"
	"errors"

	"github.com/2beens/gymlog/internal/apperr"
	"github.com/2beens/gymlog/internal/telemetry/tracing"
)

//go:generate mockgen -source=service.go -destination=repo_mock_test.go -package=sessions

type sessionRepo interface {
	List(ctx context.Context, userID string) ([]WorkoutSession, error)
	Get(ctx context.Context, id int, userID string) (*WorkoutSession, error)
	Add(ctx context.Context, userID string, params CreateParams) (*WorkoutSession, error)
	Update(ctx context.Context, id int, userID string, params UpdateParams) (*WorkoutSession, error)
	Delete(ctx context.Context, id int, userID string) error
}

type Service struct {
	repo sessionRepo
}

func NewService(repo sessionRepo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) List(ctx context.Context, userID string) (_ []WorkoutSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.sessions.list")
	defer tracing.EndSpanWithErrCheck(span, &err)

	sessions, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, apperr.Wrap(err, "Failed to retrieve workout sessions")
	}
	return sessions, nil
}

func (s *Service) Get(ctx context.Context, id int, userID string) (_ *WorkoutSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.sessions.get")
	defer tracing.EndSpanWithErrCheck(span, &err)

	session, err := s.repo.Get(ctx, id, userID)
	if err != nil {
		return nil, translate(err, "Failed to retrieve workout session")
	}
	return session, nil
}

func (s *Service) Create(ctx context.Context, userID string, params CreateParams) (_ *WorkoutSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.sessions.create")
	defer tracing.EndSpanWithErrCheck(span, &err)

	session, err := s.repo.Add(ctx, userID, params)
	if err != nil {
		return nil, translate(err, "Failed to create workout session")
	}
	return session, nil
}

func (s *Service) Update(ctx context.Context, id int, userID string, params UpdateParams) (_ *WorkoutSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.sessions.update")
	defer tracing.EndSpanWithErrCheck(span, &err)

	session, err := s.repo.Update(ctx, id, userID, params)
	if err != nil {
		return nil, translate(err, "Failed to update workout session")
	}
	return session, nil
}

func (s *Service) Delete(ctx context.Context, id int, userID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.sessions.delete")
	defer tracing.EndSpanWithErrCheck(span, &err)

	if err := s.repo.Delete(ctx, id, userID); err != nil {
		return translate(err, "Failed to delete workout session")
	}
	return nil
}

func translate(err error, message string) error {
	switch {
	case errors.Is(err, ErrSessionNotFound):
		return apperr.NotFound("Workout session not found")
	case errors.Is(err, ErrPlanNotFound):
		return apperr.NotFound("Workout plan not found")
	default:
		return apperr.Wrap(err, message)
	}
}

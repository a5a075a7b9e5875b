package exercises

import (
	"context"
	"errors"

	"github.com/2beens/gymlog/internal/apperr"
	"github.com/2beens/gymlog/internal/telemetry/tracing"
)

//go:generate mockgen -source=service.go -destination=repo_mock_test.go -package=exercises

type exerciseRepo interface {
	List(ctx context.Context, userID string) ([]Exercise, error)
	Get(ctx context.Context, id int, userID string) (*Exercise, error)
	Add(ctx context.Context, userID string, params CreateParams) (*Exercise, error)
	Update(ctx context.Context, id int, userID string, params UpdateParams) (*Exercise, error)
	Delete(ctx context.Context, id int, userID string) error
}

type Service struct {
	repo exerciseRepo
}

func NewService(repo exerciseRepo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) List(ctx context.Context, userID string) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.exercises.list")
	defer tracing.EndSpanWithErrCheck(span, &err)

	exercises, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, apperr.Wrap(err, "Failed to retrieve exercises")
	}
	return exercises, nil
}

func (s *Service) Get(ctx context.Context, id int, userID string) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.exercises.get")
	defer tracing.EndSpanWithErrCheck(span, &err)

	exercise, err := s.repo.Get(ctx, id, userID)
	if err != nil {
		return nil, translate(err, "Failed to retrieve exercise")
	}
	return exercise, nil
}

func (s *Service) Create(ctx context.Context, userID string, params CreateParams) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.exercises.create")
	defer tracing.EndSpanWithErrCheck(span, &err)

	exercise, err := s.repo.Add(ctx, userID, params)
	if err != nil {
		return nil, apperr.Wrap(err, "Failed to create exercise")
	}
	return exercise, nil
}

func (s *Service) Update(ctx context.Context, id int, userID string, params UpdateParams) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.exercises.update")
	defer tracing.EndSpanWithErrCheck(span, &err)

	exercise, err := s.repo.Update(ctx, id, userID, params)
	if err != nil {
		return nil, translate(err, "Failed to update exercise")
	}
	return exercise, nil
}

func (s *Service) Delete(ctx context.Context, id int, userID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.exercises.delete")
	defer tracing.EndSpanWithErrCheck(span, &err)

	if err := s.repo.Delete(ctx, id, userID); err != nil {
		return translate(err, "Failed to delete exercise")
	}
	return nil
}

func translate(err error, message string) error {
	if errors.Is(err, ErrExerciseNotFound) {
		return apperr.NotFound("Exercise not found")
	}
	return apperr.Wrap(err, message)
}

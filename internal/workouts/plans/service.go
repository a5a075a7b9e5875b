package plans

import (
	"context"
	"errors"

	"github.com/2beens/gymlog/internal/apperr"
	"github.com/2beens/gymlog/internal/telemetry/tracing"
)

//go:generate mockgen -source=service.go -destination=repo_mock_test.go -package=plans

type planRepo interface {
	List(ctx context.Context, userID string) ([]WorkoutPlan, error)
	Get(ctx context.Context, id int, userID string) (*WorkoutPlan, error)
	Add(ctx context.Context, userID string, params CreateParams) (*WorkoutPlan, error)
	Update(ctx context.Context, id int, userID string, params UpdateParams) (*WorkoutPlan, error)
	Delete(ctx context.Context, id int, userID string) error
}

type Service struct {
	repo planRepo
}

func NewService(repo planRepo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) List(ctx context.Context, userID string) (_ []WorkoutPlan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.plans.list")
	defer tracing.EndSpanWithErrCheck(span, &err)

	plans, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, apperr.Wrap(err, "Failed to retrieve workout plans")
	}
	return plans, nil
}

func (s *Service) Get(ctx context.Context, id int, userID string) (_ *WorkoutPlan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.plans.get")
	defer tracing.EndSpanWithErrCheck(span, &err)

	plan, err := s.repo.Get(ctx, id, userID)
	if err != nil {
		return nil, translate(err, "Failed to retrieve workout plan")
	}
	return plan, nil
}

func (s *Service) Create(ctx context.Context, userID string, params CreateParams) (_ *WorkoutPlan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.plans.create")
	defer tracing.EndSpanWithErrCheck(span, &err)

	plan, err := s.repo.Add(ctx, userID, params)
	if err != nil {
		return nil, apperr.Wrap(err, "Failed to create workout plan")
	}
	return plan, nil
}

func (s *Service) Update(ctx context.Context, id int, userID string, params UpdateParams) (_ *WorkoutPlan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.plans.update")
	defer tracing.EndSpanWithErrCheck(span, &err)

	plan, err := s.repo.Update(ctx, id, userID, params)
	if err != nil {
		return nil, translate(err, "Failed to update workout plan")
	}
	return plan, nil
}

func (s *Service) Delete(ctx context.Context, id int, userID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.plans.delete")
	defer tracing.EndSpanWithErrCheck(span, &err)

	if err := s.repo.Delete(ctx, id, userID); err != nil {
		return translate(err, "Failed to delete workout plan")
	}
	return nil
}

func translate(err error, message string) error {
	if errors.Is(err, ErrPlanNotFound) {
		return apperr.NotFound("Workout plan not found")
	}
	return apperr.Wrap(err, message)
}

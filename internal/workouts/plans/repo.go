package plans

import (
	"context"
	"errors"

	"github.com/2beens/gymlog/internal/db"
	"github.com/2beens/gymlog/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrPlanNotFound = errors.New("workout plan not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) List(ctx context.Context, userID string) (_ []WorkoutPlan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.list")
	defer tracing.EndSpanWithErrCheck(span, &err)

	rows, err := r.db.Query(ctx, `
		SELECT id, name, description, user_id
		FROM workoutplan
		WHERE user_id = $1
		ORDER BY id
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	plans := make([]WorkoutPlan, 0)
	for rows.Next() {
		var p WorkoutPlan
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.UserID); err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}

	return plans, rows.Err()
}

func (r *Repo) Get(ctx context.Context, id int, userID string) (_ *WorkoutPlan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.get")
	defer tracing.EndSpanWithErrCheck(span, &err)
	span.SetAttributes(attribute.Int("id", id))

	p := &WorkoutPlan{}
	err = r.db.QueryRow(ctx, `
		SELECT id, name, description, user_id
		FROM workoutplan
		WHERE id = $1 AND user_id = $2
	`, id, userID).Scan(&p.ID, &p.Name, &p.Description, &p.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}

	return p, nil
}

func (r *Repo) Add(ctx context.Context, userID string, params CreateParams) (_ *WorkoutPlan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.add")
	defer tracing.EndSpanWithErrCheck(span, &err)

	p := &WorkoutPlan{}
	err = r.db.QueryRow(ctx, `
		INSERT INTO workoutplan (name, description, user_id)
		VALUES ($1, $2, $3)
		RETURNING id, name, description, user_id
	`, params.Name, *params.Description, userID).Scan(&p.ID, &p.Name, &p.Description, &p.UserID)
	if err != nil {
		return nil, err
	}

	return p, nil
}

func (r *Repo) Update(ctx context.Context, id int, userID string, params UpdateParams) (_ *WorkoutPlan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.update")
	defer tracing.EndSpanWithErrCheck(span, &err)
	span.SetAttributes(attribute.Int("id", id))

	p := &WorkoutPlan{}
	err = r.db.QueryRow(ctx, `
		UPDATE workoutplan
		SET name = COALESCE($3, name),
		    description = COALESCE($4, description)
		WHERE id = $1 AND user_id = $2
		RETURNING id, name, description, user_id
	`, id, userID, params.Name, params.Description).Scan(&p.ID, &p.Name, &p.Description, &p.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}

	return p, nil
}

// Delete removes the plan. Sessions that followed it are kept, detached.
func (r *Repo) Delete(ctx context.Context, id int, userID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.delete")
	defer tracing.EndSpanWithErrCheck(span, &err)
	span.SetAttributes(attribute.Int("id", id))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		err = db.FinishTx(ctx, tx, err)
	}()

	var found int
	err = tx.QueryRow(ctx, `
		SELECT id FROM workoutplan WHERE id = $1 AND user_id = $2 FOR UPDATE
	`, id, userID).Scan(&found)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrPlanNotFound
		}
		return err
	}

	if _, err = tx.Exec(ctx, `
		UPDATE workoutsession SET workout_plan_id = NULL WHERE workout_plan_id = $1
	`, id); err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, `DELETE FROM workoutplan WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrPlanNotFound
	}

	return nil
}

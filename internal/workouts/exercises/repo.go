package exercises

import (
	"context"
	"errors"

	"github.com/2beens/gymlog/internal/db"
	"github.com/2beens/gymlog/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrExerciseNotFound = errors.New("exercise not found")

const exerciseColumns = `id, name, description, category, muscle_group, user_id`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func scanExercise(row pgx.Row) (*Exercise, error) {
	e := &Exercise{}
	if err := row.Scan(&e.ID, &e.Name, &e.Description, &e.Category, &e.MuscleGroup, &e.UserID); err != nil {
		return nil, err
	}
	return e, nil
}

func (r *Repo) List(ctx context.Context, userID string) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.list")
	defer tracing.EndSpanWithErrCheck(span, &err)

	rows, err := r.db.Query(ctx, `
		SELECT `+exerciseColumns+`
		FROM exercise
		WHERE user_id = $1
		ORDER BY id
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	exercises := make([]Exercise, 0)
	for rows.Next() {
		e, err := scanExercise(rows)
		if err != nil {
			return nil, err
		}
		exercises = append(exercises, *e)
	}

	return exercises, rows.Err()
}

func (r *Repo) Get(ctx context.Context, id int, userID string) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.get")
	defer tracing.EndSpanWithErrCheck(span, &err)
	span.SetAttributes(attribute.Int("id", id))

	e, err := scanExercise(r.db.QueryRow(ctx, `
		SELECT `+exerciseColumns+`
		FROM exercise
		WHERE id = $1 AND user_id = $2
	`, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}

	return e, nil
}

func (r *Repo) Add(ctx context.Context, userID string, params CreateParams) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.add")
	defer tracing.EndSpanWithErrCheck(span, &err)

	return scanExercise(r.db.QueryRow(ctx, `
		INSERT INTO exercise (name, description, category, muscle_group, user_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+exerciseColumns,
		params.Name, *params.Description, params.Category, params.MuscleGroup, userID,
	))
}

func (r *Repo) Update(ctx context.Context, id int, userID string, params UpdateParams) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.update")
	defer tracing.EndSpanWithErrCheck(span, &err)
	span.SetAttributes(attribute.Int("id", id))

	e, err := scanExercise(r.db.QueryRow(ctx, `
		UPDATE exercise
		SET name = COALESCE($3, name),
		    description = COALESCE($4, description),
		    category = COALESCE($5, category),
		    muscle_group = COALESCE($6, muscle_group)
		WHERE id = $1 AND user_id = $2
		RETURNING `+exerciseColumns,
		id, userID, params.Name, params.Description, params.Category, params.MuscleGroup,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}

	return e, nil
}

// Delete removes the exercise together with every log recorded for it and
// the summaries of those logs.
func (r *Repo) Delete(ctx context.Context, id int, userID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.delete")
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
		SELECT id FROM exercise WHERE id = $1 AND user_id = $2 FOR UPDATE
	`, id, userID).Scan(&found)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrExerciseNotFound
		}
		return err
	}

	if _, err = tx.Exec(ctx, `
		DELETE FROM exercisesummary
		WHERE exercise_log_id IN (SELECT id FROM exerciselog WHERE exercise_id = $1)
	`, id); err != nil {
		return err
	}
	if _, err = tx.Exec(ctx, `DELETE FROM exerciselog WHERE exercise_id = $1`, id); err != nil {
		return err
	}
	if _, err = tx.Exec(ctx, `DELETE FROM exercise WHERE id = $1`, id); err != nil {
		return err
	}

	return nil
}

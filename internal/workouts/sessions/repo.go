package sessions

import (
	"context"
	"errors"

	"github.com/2beens/gymlog/internal/db"
	"github.com/2beens/gymlog/internal/telemetry/tracing"
	"github.com/2beens/gymlog/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrSessionNotFound = errors.New("workout session not found")
	ErrPlanNotFound    = errors.New("workout plan not found")
)

const sessionColumns = `id, date, comments, user_id, workout_plan_id`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func scanSession(row pgx.Row) (*WorkoutSession, error) {
	s := &WorkoutSession{}
	if err := row.Scan(&s.ID, &s.Date, &s.Comments, &s.UserID, &s.WorkoutPlanID); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *Repo) List(ctx context.Context, userID string) (_ []WorkoutSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.list")
	defer tracing.EndSpanWithErrCheck(span, &err)

	rows, err := r.db.Query(ctx, `
		SELECT `+sessionColumns+`
		FROM workoutsession
		WHERE user_id = $1
		ORDER BY date DESC, id DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := make([]WorkoutSession, 0)
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, *s)
	}

	return sessions, rows.Err()
}

func (r *Repo) Get(ctx context.Context, id int, userID string) (_ *WorkoutSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.get")
	defer tracing.EndSpanWithErrCheck(span, &err)
	span.SetAttributes(attribute.Int("id", id))

	s, err := scanSession(r.db.QueryRow(ctx, `
		SELECT `+sessionColumns+`
		FROM workoutsession
		WHERE id = $1 AND user_id = $2
	`, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	return s, nil
}

func checkPlanOwned(ctx context.Context, tx pgx.Tx, planID *int, userID string) error {
	if planID == nil {
		return nil
	}

	var owned bool
	if err := tx.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM workoutplan WHERE id = $1 AND user_id = $2)
	`, *planID, userID).Scan(&owned); err != nil {
		return err
	}
	if !owned {
		return ErrPlanNotFound
	}
	return nil
}

func (r *Repo) Add(ctx context.Context, userID string, params CreateParams) (_ *WorkoutSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.add")
	defer tracing.EndSpanWithErrCheck(span, &err)

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		err = db.FinishTx(ctx, tx, err)
	}()

	if err = checkPlanOwned(ctx, tx, params.WorkoutPlanID, userID); err != nil {
		return nil, err
	}

	s, err := scanSession(tx.QueryRow(ctx, `
		INSERT INTO workoutsession (date, comments, user_id, workout_plan_id)
		VALUES (COALESCE($1, CURRENT_TIMESTAMP), $2, $3, $4)
		RETURNING `+sessionColumns,
		params.Date, *params.Comments, userID, params.WorkoutPlanID,
	))
	if pkg.IsForeignKeyViolationError(err) {
		// plan removed between the ownership check and the insert
		return nil, ErrPlanNotFound
	}
	if err != nil {
		return nil, err
	}

	return s, nil
}

func (r *Repo) Update(ctx context.Context, id int, userID string, params UpdateParams) (_ *WorkoutSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.update")
	defer tracing.EndSpanWithErrCheck(span, &err)
	span.SetAttributes(attribute.Int("id", id))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		err = db.FinishTx(ctx, tx, err)
	}()

	if err = checkPlanOwned(ctx, tx, params.WorkoutPlanID, userID); err != nil {
		return nil, err
	}

	s, err := scanSession(tx.QueryRow(ctx, `
		UPDATE workoutsession
		SET date = COALESCE($3, date),
		    comments = COALESCE($4, comments),
		    workout_plan_id = COALESCE($5, workout_plan_id)
		WHERE id = $1 AND user_id = $2
		RETURNING `+sessionColumns,
		id, userID, params.Date, params.Comments, params.WorkoutPlanID,
	))
	if pkg.IsForeignKeyViolationError(err) {
		return nil, ErrPlanNotFound
	}
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	return s, nil
}

// Delete removes the session with its calendar entries, exercise logs and
// their summaries.
func (r *Repo) Delete(ctx context.Context, id int, userID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.delete")
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
		SELECT id FROM workoutsession WHERE id = $1 AND user_id = $2 FOR UPDATE
	`, id, userID).Scan(&found)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrSessionNotFound
		}
		return err
	}

	cascade := []string{
		`DELETE FROM calendarentry WHERE workout_session_id = $1`,
		`DELETE FROM exercisesummary WHERE exercise_log_id IN (
			SELECT id FROM exerciselog WHERE workout_session_id = $1
		)`,
		`DELETE FROM exerciselog WHERE workout_session_id = $1`,
		`DELETE FROM workoutsession WHERE id = $1`,
	}
	for _, stmt := range cascade {
		if _, err = tx.Exec(ctx, stmt, id); err != nil {
			return err
		}
	}

	return nil
}

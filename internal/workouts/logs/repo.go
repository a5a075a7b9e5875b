package logs

import (
	"context"
	"errors"

	"github.com/2beens/gymlog/internal/db"
	"github.com/2beens/gymlog/internal/telemetry/tracing"
	"github.com/2beens/gymlog/internal/workouts/summaries"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrLogNotFound      = errors.New("exercise log not found")
	ErrSessionNotFound  = errors.New("workout session not found")
	ErrExerciseNotFound = errors.New("exercise not found")
)

const logColumns = `l.id, l.sets, l.reps, l.intensity, l.exertion_scale, l.exercise_id, l.workout_session_id`

type Repo struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{
		pool: pool,
	}
}

func scanLog(row pgx.Row) (*ExerciseLog, error) {
	l := &ExerciseLog{}
	if err := row.Scan(&l.ID, &l.Sets, &l.Reps, &l.Intensity, &l.ExertionScale, &l.ExerciseID, &l.WorkoutSessionID); err != nil {
		return nil, err
	}
	return l, nil
}

// List returns the logs of one session. A session the user does not own
// yields no logs.
func (r *Repo) List(ctx context.Context, sessionID int, userID string) (_ []ExerciseLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.logs.list")
	defer tracing.EndSpanWithErrCheck(span, &err)
	span.SetAttributes(attribute.Int("session-id", sessionID))

	rows, err := r.pool.Query(ctx, `
		SELECT `+logColumns+`
		FROM exerciselog l
		JOIN workoutsession ws ON ws.id = l.workout_session_id
		WHERE l.workout_session_id = $1 AND ws.user_id = $2
		ORDER BY l.id
	`, sessionID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := make([]ExerciseLog, 0)
	for rows.Next() {
		l, err := scanLog(rows)
		if err != nil {
			return nil, err
		}
		logs = append(logs, *l)
	}

	return logs, rows.Err()
}

func (r *Repo) Get(ctx context.Context, id int, userID string) (_ *ExerciseLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.logs.get")
	defer tracing.EndSpanWithErrCheck(span, &err)
	span.SetAttributes(attribute.Int("id", id))

	l, err := scanLog(r.pool.QueryRow(ctx, `
		SELECT `+logColumns+`
		FROM exerciselog l
		JOIN workoutsession ws ON ws.id = l.workout_session_id
		WHERE l.id = $1 AND ws.user_id = $2
	`, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrLogNotFound
		}
		return nil, err
	}

	return l, nil
}

// Add records a log in the session and folds it into the log's summary,
// both in one transaction.
func (r *Repo) Add(ctx context.Context, sessionID int, userID string, params CreateParams) (_ *ExerciseLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.logs.add")
	defer tracing.EndSpanWithErrCheck(span, &err)
	span.SetAttributes(attribute.Int("session-id", sessionID))

	var added *ExerciseLog
	err = db.WithRetry(ctx, func(ctx context.Context) error {
		var txErr error
		added, txErr = r.add(ctx, sessionID, userID, params)
		return txErr
	})
	if err != nil {
		return nil, err
	}
	return added, nil
}

// add inserts the log and records it in its summary in one transaction.
func (r *Repo) add(ctx context.Context, sessionID int, userID string, params CreateParams) (_ *ExerciseLog, err error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		err = db.FinishTx(ctx, tx, err)
	}()

	var sessionOwned, exerciseOwned bool
	if err = tx.QueryRow(ctx, `
		SELECT
			EXISTS (SELECT 1 FROM workoutsession WHERE id = $1 AND user_id = $3),
			EXISTS (SELECT 1 FROM exercise WHERE id = $2 AND user_id = $3)
	`, sessionID, params.ExerciseID, userID).Scan(&sessionOwned, &exerciseOwned); err != nil {
		return nil, err
	}
	if !sessionOwned {
		return nil, ErrSessionNotFound
	}
	if !exerciseOwned {
		return nil, ErrExerciseNotFound
	}

	l, err := scanLog(tx.QueryRow(ctx, `
		INSERT INTO exerciselog AS l (sets, reps, intensity, exertion_scale, exercise_id, workout_session_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+logColumns,
		*params.Sets, *params.Reps, *params.Intensity, *params.ExertionScale, params.ExerciseID, sessionID,
	))
	if err != nil {
		return nil, err
	}

	summary, created, err := summaries.RecordLog(ctx, tx, l.ID, l.Sets, l.Reps)
	if err != nil {
		return nil, err
	}
	log.Tracef("exercise log %d recorded, summary %d created: %t", l.ID, summary.ID, created)

	return l, nil
}

func (r *Repo) Update(ctx context.Context, id int, userID string, params UpdateParams) (_ *ExerciseLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.logs.update")
	defer tracing.EndSpanWithErrCheck(span, &err)
	span.SetAttributes(attribute.Int("id", id))

	l, err := scanLog(r.pool.QueryRow(ctx, `
		UPDATE exerciselog AS l
		SET sets = COALESCE($3, l.sets),
		    reps = COALESCE($4, l.reps),
		    intensity = COALESCE($5, l.intensity),
		    exertion_scale = COALESCE($6, l.exertion_scale)
		FROM workoutsession ws
		WHERE l.id = $1 AND ws.id = l.workout_session_id AND ws.user_id = $2
		RETURNING `+logColumns,
		id, userID, params.Sets, params.Reps, params.Intensity, params.ExertionScale,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrLogNotFound
		}
		return nil, err
	}

	return l, nil
}

// Delete removes the log and its summaries.
func (r *Repo) Delete(ctx context.Context, id int, userID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.logs.delete")
	defer tracing.EndSpanWithErrCheck(span, &err)
	span.SetAttributes(attribute.Int("id", id))

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		err = db.FinishTx(ctx, tx, err)
	}()

	var found int
	err = tx.QueryRow(ctx, `
		SELECT l.id
		FROM exerciselog l
		JOIN workoutsession ws ON ws.id = l.workout_session_id
		WHERE l.id = $1 AND ws.user_id = $2
		FOR UPDATE OF l
	`, id, userID).Scan(&found)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrLogNotFound
		}
		return err
	}

	if _, err = tx.Exec(ctx, `DELETE FROM exercisesummary WHERE exercise_log_id = $1`, id); err != nil {
		return err
	}
	if _, err = tx.Exec(ctx, `DELETE FROM exerciselog WHERE id = $1`, id); err != nil {
		return err
	}

	return nil
}

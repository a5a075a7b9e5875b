package users

import (
	"context"

	"github.com/2beens/gymlog/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Ensure inserts the user if missing and reports whether it was created.
func (r *Repo) Ensure(ctx context.Context, objectID string) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.ensure")
	defer tracing.EndSpanWithErrCheck(span, &err)

	tag, err := r.db.Exec(ctx, `
		INSERT INTO "user" (object_id)
		VALUES ($1)
		ON CONFLICT (object_id) DO NOTHING
	`, objectID)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() == 1, nil
}

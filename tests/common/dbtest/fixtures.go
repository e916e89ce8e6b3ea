//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"

	"internship-checkout/internal/domain/application"
	"internship-checkout/internal/infra/db"
	"internship-checkout/internal/infra/repository"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// ResetDB empties every table the service writes to.
func ResetDB(pool *pgxpool.Pool) error {
	_, err := pool.Exec(context.Background(), "TRUNCATE TABLE checkout_attempts")
	return err
}

// InsertAttempt stores a exactly as built, whatever its status.
func InsertAttempt(t *testing.T, conn db.DBTX, a *application.Attempt) {
	t.Helper()
	repo := repository.NewAttemptRepository(nil)
	require.NoError(t, repo.Claim(context.Background(), conn, a))
}

func AttemptStatus(t *testing.T, conn DBLike, userID, internshipID string) string {
	t.Helper()
	var status string
	err := conn.QueryRow(context.Background(),
		"SELECT status FROM checkout_attempts WHERE user_id = $1 AND internship_id = $2",
		userID, internshipID).Scan(&status)
	require.NoError(t, err)
	return status
}

func CountAttempts(t *testing.T, conn DBLike, userID string) int {
	t.Helper()
	var n int
	err := conn.QueryRow(context.Background(),
		"SELECT count(*) FROM checkout_attempts WHERE user_id = $1", userID).Scan(&n)
	require.NoError(t, err)
	return n
}

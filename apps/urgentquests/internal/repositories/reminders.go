package repositories

import (
	"context"
	"time"

	"github.com/xdoubleu/essentia/v2/pkg/database/postgres"
)

// ReminderRepository remembers which event times were already announced.
type ReminderRepository struct {
	db postgres.DB
}

// Mark records a reminder for the event at timestamp. It reports false when
// that reminder was sent before.
func (repo *ReminderRepository) Mark(
	ctx context.Context,
	timestamp time.Time,
) (bool, error) {
	query := `
		INSERT INTO urgentquests.reminders (timestamp)
		VALUES ($1)
		ON CONFLICT (timestamp) DO NOTHING
	`

	result, err := repo.db.Exec(ctx, query, timestamp)
	if err != nil {
		return false, postgres.PgxErrorToHTTPError(err)
	}

	return result.RowsAffected() == 1, nil
}

// DeleteAll is used to reset the store between test runs.
func (repo *ReminderRepository) DeleteAll(ctx context.Context) error {
	_, err := repo.db.Exec(ctx, "DELETE FROM urgentquests.reminders")
	if err != nil {
		return postgres.PgxErrorToHTTPError(err)
	}

	return nil
}

package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/xdoubleu/essentia/v2/pkg/database/postgres"
	"pso2news.dark-nova.me/apps/urgentquests/internal/models"
)

type EventRepository struct {
	db postgres.DB
}

func (repo *EventRepository) GetAll(ctx context.Context) ([]models.Event, error) {
	query := `
		SELECT timestamp, name, source_title, source_url
		FROM urgentquests.events
		ORDER BY timestamp DESC
	`

	rows, err := repo.db.Query(ctx, query)
	if err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}

	return scanEvents(rows)
}

func (repo *EventRepository) GetLatest(
	ctx context.Context,
	limit int,
) ([]models.Event, error) {
	query := `
		SELECT timestamp, name, source_title, source_url
		FROM urgentquests.events
		ORDER BY timestamp DESC
		LIMIT $1
	`

	rows, err := repo.db.Query(ctx, query, limit)
	if err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}

	return scanEvents(rows)
}

// GetBetween returns the events from start up to and including end, earliest
// first.
func (repo *EventRepository) GetBetween(
	ctx context.Context,
	start time.Time,
	end time.Time,
) ([]models.Event, error) {
	query := `
		SELECT timestamp, name, source_title, source_url
		FROM urgentquests.events
		WHERE timestamp >= $1 AND timestamp <= $2
		ORDER BY timestamp ASC
	`

	rows, err := repo.db.Query(ctx, query, start, end)
	if err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}

	return scanEvents(rows)
}

func (repo *EventRepository) GetSources(ctx context.Context) ([]models.Source, error) {
	query := `
		SELECT DISTINCT source_title, source_url
		FROM urgentquests.events
		ORDER BY source_title, source_url
	`

	rows, err := repo.db.Query(ctx, query)
	if err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}
	defer rows.Close()

	sources := []models.Source{}
	for rows.Next() {
		var source models.Source

		err = rows.Scan(&source.Title, &source.URL)
		if err != nil {
			return nil, postgres.PgxErrorToHTTPError(err)
		}

		sources = append(sources, source)
	}

	if err = rows.Err(); err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}

	return sources, nil
}

// InsertEvents inserts all events in one batch and returns the ones that
// were not stored yet. An event whose timestamp is already taken is skipped.
func (repo *EventRepository) InsertEvents(
	ctx context.Context,
	events []models.Event,
) ([]models.Event, error) {
	inserted := []models.Event{}
	if len(events) == 0 {
		return inserted, nil
	}

	query := `
		INSERT INTO urgentquests.events
		(timestamp, name, source_title, source_url)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (timestamp) DO NOTHING
	`

	//nolint:exhaustruct //fields are optional
	b := &pgx.Batch{}
	for _, event := range events {
		b.Queue(
			query,
			event.Timestamp,
			event.Name,
			event.SourceTitle,
			event.SourceURL,
		)
	}

	results := repo.db.SendBatch(ctx, b)

	for _, event := range events {
		tag, err := results.Exec()
		if err != nil {
			_ = results.Close()
			return nil, postgres.PgxErrorToHTTPError(err)
		}

		if tag.RowsAffected() == 1 {
			inserted = append(inserted, event)
		}
	}

	if err := results.Close(); err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}

	return inserted, nil
}

func (repo *EventRepository) DeleteBySource(
	ctx context.Context,
	source models.Source,
) (int64, error) {
	query := `
		DELETE FROM urgentquests.events
		WHERE source_title = $1 AND source_url = $2
	`

	result, err := repo.db.Exec(ctx, query, source.Title, source.URL)
	if err != nil {
		return 0, postgres.PgxErrorToHTTPError(err)
	}

	return result.RowsAffected(), nil
}

// DeleteAll is used to reset the store between test runs.
func (repo *EventRepository) DeleteAll(ctx context.Context) error {
	_, err := repo.db.Exec(ctx, "DELETE FROM urgentquests.events")
	if err != nil {
		return postgres.PgxErrorToHTTPError(err)
	}

	return nil
}

func scanEvents(rows pgx.Rows) ([]models.Event, error) {
	defer rows.Close()

	events := []models.Event{}
	for rows.Next() {
		var event models.Event

		err := rows.Scan(
			&event.Timestamp,
			&event.Name,
			&event.SourceTitle,
			&event.SourceURL,
		)
		if err != nil {
			return nil, postgres.PgxErrorToHTTPError(err)
		}

		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}

	return events, nil
}

package repos

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/wheelibin/lifxd/internal/constants"
	"github.com/wheelibin/lifxd/internal/models"
)

const initSchema = `
  CREATE TABLE IF NOT EXISTS settings (
    driver     VARCHAR(36) PRIMARY KEY,
    token      TEXT NOT NULL,
    updated_at TIMESTAMP
  );
`

// SettingsRepo persists the driver settings, one row per driver
type SettingsRepo struct {
	logger *log.Logger
	db     *sql.DB
	driver string
}

func NewSettingsRepo(logger *log.Logger, db *sql.DB) (*SettingsRepo, error) {

	_, err := db.Exec(initSchema)
	if err != nil {
		return nil, fmt.Errorf("Error initialising settings schema: %w", err)
	}

	return &SettingsRepo{logger: logger, db: db, driver: constants.DriverName}, nil
}

// Get returns empty settings if none have been saved yet
func (r *SettingsRepo) Get(ctx context.Context) (models.Settings, error) {
	row := r.db.QueryRowContext(ctx, "SELECT token FROM settings WHERE driver = $1", r.driver)
	var token string
	err := row.Scan(&token)

	if err != nil {
		if err == sql.ErrNoRows {
			return models.Settings{}, nil
		} else {
			return models.Settings{}, fmt.Errorf("Error reading settings for driver (%s): %w", r.driver, err)
		}
	}
	return models.Settings{Token: token}, nil
}

// Set replaces the stored settings
func (r *SettingsRepo) Set(ctx context.Context, settings models.Settings) error {
	_, err := r.db.ExecContext(ctx, `
    INSERT INTO settings (driver, token, updated_at)
    VALUES ($1, $2, $3)
    ON CONFLICT(driver) DO UPDATE
    SET token = excluded.token,
        updated_at = excluded.updated_at
  `, r.driver, settings.Token, time.Now())
	if err != nil {
		return fmt.Errorf("Error saving settings for driver (%s): %w", r.driver, err)
	}
	r.logger.Debug("Saved driver settings", "driver", r.driver)
	return nil
}

func (r *SettingsRepo) LastUpdated(ctx context.Context) (*time.Time, error) {
	row := r.db.QueryRowContext(ctx, "SELECT updated_at FROM settings WHERE driver = $1", r.driver)
	var lastUpdated time.Time
	err := row.Scan(&lastUpdated)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		} else {
			return nil, fmt.Errorf("Error reading last update time for driver (%s): %w", r.driver, err)
		}
	}
	return &lastUpdated, nil
}

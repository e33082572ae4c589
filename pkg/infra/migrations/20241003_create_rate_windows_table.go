package migrations

import (
	"github.com/NeuralTrust/RiskGate/pkg/infra/database"
	"gorm.io/gorm"
)

func init() {
	database.RegisterMigration(database.Migration{
		ID:   "20241003_create_rate_windows_table",
		Name: "Create rate_windows table",

		Up: func(db *gorm.DB) error {
			if err := db.Exec(`
				CREATE TABLE IF NOT EXISTS rate_windows (
					id            UUID PRIMARY KEY,
					ip_address    TEXT NOT NULL,
					endpoint      TEXT NOT NULL,
					window_start  TIMESTAMPTZ NOT NULL,
					window_end    TIMESTAMPTZ NOT NULL,
					request_count BIGINT NOT NULL DEFAULT 0,
					is_blocked    BOOLEAN NOT NULL DEFAULT FALSE,
					UNIQUE (ip_address, endpoint, window_start)
				);
			`).Error; err != nil {
				return err
			}
			return db.Exec(`
				CREATE INDEX IF NOT EXISTS idx_rate_windows_blocked
				ON rate_windows (ip_address, window_end) WHERE is_blocked;
			`).Error
		},

		Down: func(db *gorm.DB) error {
			return db.Exec(`DROP TABLE IF EXISTS rate_windows;`).Error
		},
	})
}

package migrations

import (
	"github.com/NeuralTrust/RiskGate/pkg/infra/database"
	"gorm.io/gorm"
)

func init() {
	database.RegisterMigration(database.Migration{
		ID:   "20241001_create_request_events_table",
		Name: "Create request_events table",

		Up: func(db *gorm.DB) error {
			if err := db.Exec(`
				CREATE TABLE IF NOT EXISTS request_events (
					id            UUID PRIMARY KEY,
					user_id       TEXT,
					ip_address    TEXT NOT NULL,
					endpoint      TEXT NOT NULL DEFAULT '',
					symbol        TEXT,
					user_agent    TEXT NOT NULL DEFAULT '',
					referer       TEXT NOT NULL DEFAULT '',
					timestamp     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					is_suspicious BOOLEAN NOT NULL DEFAULT FALSE,
					bot_score     SMALLINT NOT NULL DEFAULT 0 CHECK (bot_score BETWEEN 0 AND 100)
				);
			`).Error; err != nil {
				return err
			}

			// Frequency and quota counts scan by (ip|user, timestamp).
			if err := db.Exec(`
				CREATE INDEX IF NOT EXISTS idx_request_events_ip_ts
				ON request_events (ip_address, timestamp);
			`).Error; err != nil {
				return err
			}
			if err := db.Exec(`
				CREATE INDEX IF NOT EXISTS idx_request_events_user_ts
				ON request_events (user_id, timestamp) WHERE user_id IS NOT NULL;
			`).Error; err != nil {
				return err
			}
			return db.Exec(`
				CREATE INDEX IF NOT EXISTS idx_request_events_ts
				ON request_events (timestamp);
			`).Error
		},

		Down: func(db *gorm.DB) error {
			return db.Exec(`DROP TABLE IF EXISTS request_events;`).Error
		},
	})
}

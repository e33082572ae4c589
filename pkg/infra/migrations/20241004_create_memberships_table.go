package migrations

import (
	"github.com/NeuralTrust/RiskGate/pkg/infra/database"
	"gorm.io/gorm"
)

func init() {
	database.RegisterMigration(database.Migration{
		ID:   "20241004_create_memberships_table",
		Name: "Create memberships table",

		Up: func(db *gorm.DB) error {
			return db.Exec(`
				CREATE TABLE IF NOT EXISTS memberships (
					user_id             TEXT PRIMARY KEY,
					plan                TEXT NOT NULL DEFAULT 'free' CHECK (plan IN ('free', 'bronze', 'silver', 'gold')),
					is_banned           BOOLEAN NOT NULL DEFAULT FALSE,
					rate_limit_override BIGINT,
					updated_at          TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
			`).Error
		},

		Down: func(db *gorm.DB) error {
			return db.Exec(`DROP TABLE IF EXISTS memberships;`).Error
		},
	})
}

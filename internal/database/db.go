package database

import (
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"product-service/internal/config"
	"product-service/internal/models"
)

// Connect opens the Postgres connection and brings the schema up to date.
// The returned handle is injected into the handlers; there is no package
// global.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{}
	if cfg.Debug {
		gormCfg.Logger = gormlogger.Default.LogMode(gormlogger.Info)
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormCfg)
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Info().Msg("database connected, migration complete")
	return db, nil
}

// Migrate auto-creates unit_measures and products, then ensures the
// products -> unit_measures foreign key. AutoMigrate cannot add the
// constraint itself because Product deliberately carries no association
// field, so it is created with a guarded ALTER TABLE.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.UnitMeasure{},
		&models.Product{},
	); err != nil {
		return err
	}

	var constraintExists bool
	if err := db.Raw(`
		SELECT EXISTS (
			SELECT 1
			FROM information_schema.table_constraints
			WHERE table_name = 'products'
			AND constraint_name = 'fk_products_unit_measure'
		)
	`).Scan(&constraintExists).Error; err != nil {
		return err
	}

	if !constraintExists {
		log.Info().Msg("adding foreign key constraint products.unit_measure_id -> unit_measures.id")
		if err := db.Exec(`
			ALTER TABLE products
			ADD CONSTRAINT fk_products_unit_measure
			FOREIGN KEY (unit_measure_id) REFERENCES unit_measures(id) ON DELETE NO ACTION
		`).Error; err != nil {
			return err
		}
	}

	return nil
}

package infra

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"catalogo/internal/model"
)

// NewDatabase establishes a GORM connection backed by pgx, runs AutoMigrate to
// create / update all tables, then applies any idempotent SQL patches that GORM
// cannot express (partial indexes and the like).
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, err
	}

	return db, nil
}

// RunMigrations creates or updates all tables and applies schema patches.
// Also used by integration tests against a throwaway database.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Usuario{},
		&model.Marca{},
		&model.Categoria{},
		&model.Subcategoria{},
		&model.Atributo{},
		&model.AtributoValor{},
		&model.CategoriaAtributo{},
		&model.Producto{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	return applySchemaPatches(db)
}

// applySchemaPatches runs idempotent DDL that GORM AutoMigrate cannot express.
// The catalog enforces name / SKU uniqueness only among rows that are not
// soft-deleted, which requires PostgreSQL partial unique indexes.  Each
// statement is guarded so re-running on an already-patched DB is a no-op.
func applySchemaPatches(db *gorm.DB) error {
	patches := []string{
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'uni_atributos_name_activo') THEN
		    CREATE UNIQUE INDEX uni_atributos_name_activo
		        ON atributos (LOWER(name))
		        WHERE deleted_at IS NULL;
		  END IF;
		END $$`,
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'uni_marcas_name_activo') THEN
		    CREATE UNIQUE INDEX uni_marcas_name_activo
		        ON marcas (LOWER(name))
		        WHERE deleted_at IS NULL;
		  END IF;
		END $$`,
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'uni_categorias_name_activo') THEN
		    CREATE UNIQUE INDEX uni_categorias_name_activo
		        ON categorias (LOWER(name))
		        WHERE deleted_at IS NULL;
		  END IF;
		END $$`,
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'uni_subcategorias_name_activo') THEN
		    CREATE UNIQUE INDEX uni_subcategorias_name_activo
		        ON subcategorias (LOWER(name))
		        WHERE deleted_at IS NULL;
		  END IF;
		END $$`,
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'uni_atributo_valores_orden_activo') THEN
		    CREATE UNIQUE INDEX uni_atributo_valores_orden_activo
		        ON atributo_valores (atributo_id, orden)
		        WHERE deleted_at IS NULL;
		  END IF;
		END $$`,
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'uni_productos_sku_activo') THEN
		    CREATE UNIQUE INDEX uni_productos_sku_activo
		        ON productos (LOWER(sku_base))
		        WHERE deleted_at IS NULL AND sku_base IS NOT NULL;
		  END IF;
		END $$`,
		// Covering index for the public storefront lookup.
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_productos_publicado') THEN
		    CREATE INDEX idx_productos_publicado
		        ON productos (slug)
		        WHERE activo AND publicado AND deleted_at IS NULL;
		  END IF;
		END $$`,
	}

	for _, sql := range patches {
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("patch %q: %w", sql[:min(len(sql), 60)], err)
		}
	}
	return nil
}

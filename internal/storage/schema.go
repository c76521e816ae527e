package storage

import (
	"context"
	"database/sql"
	"fmt"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS vendedores (
		id_vendedor BIGSERIAL PRIMARY KEY,
		documento TEXT NOT NULL UNIQUE,
		nombre TEXT NOT NULL,
		telefono TEXT,
		email TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS productos (
		id_producto BIGSERIAL PRIMARY KEY,
		nombre TEXT NOT NULL,
		descripcion TEXT,
		precio BIGINT NOT NULL CHECK (precio >= 0),
		stock BIGINT NOT NULL CHECK (stock >= 0),
		vendedor_id BIGINT NOT NULL REFERENCES vendedores (id_vendedor)
	)`,
	`CREATE TABLE IF NOT EXISTS clientes (
		id_cliente BIGSERIAL PRIMARY KEY,
		nombre TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS ventas (
		id_venta BIGSERIAL PRIMARY KEY,
		fecha TIMESTAMPTZ NOT NULL DEFAULT now(),
		total BIGINT NOT NULL,
		cliente_id BIGINT NOT NULL REFERENCES clientes (id_cliente)
	)`,
	`CREATE TABLE IF NOT EXISTS carritos (
		id_carrito BIGSERIAL PRIMARY KEY,
		venta_id BIGINT NOT NULL REFERENCES ventas (id_venta),
		producto_id BIGINT NOT NULL REFERENCES productos (id_producto)
	)`,
}

// EnsureSchema creates the marketplace tables if they do not exist yet.
// Statements are idempotent so this is safe to run on every start.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to ensure marketplace schema: %w", err)
		}
	}

	return nil
}

// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vfg2006/order-analytics-api/infrastructure/database/postgres"
)

// resetStatements recriam as coleções canônicas do zero. A carga tem
// semântica de drop-and-recreate: nunca é um merge incremental.
var resetStatements = []string{
	`DROP TABLE IF EXISTS orders`,
	`DROP TABLE IF EXISTS customers`,
	`CREATE TABLE customers (
		customer_id TEXT PRIMARY KEY,
		name        TEXT NOT NULL DEFAULT '',
		mobile      TEXT,
		region      TEXT NOT NULL DEFAULT 'unknown'
	)`,
	`CREATE TABLE orders (
		order_id    TEXT PRIMARY KEY,
		customer_id TEXT NOT NULL REFERENCES customers (customer_id),
		order_date  DATE NOT NULL,
		sku_id      TEXT NOT NULL DEFAULT 'UNKNOWN',
		amount      NUMERIC(12, 2) NOT NULL CHECK (amount >= 0)
	)`,
	`CREATE INDEX idx_orders_customer_id ON orders (customer_id)`,
	`CREATE INDEX idx_orders_order_date ON orders (order_date)`,
}

type SchemaRepository interface {
	Reset(ctx context.Context) error
}

type schemaRepository struct {
	conn *postgres.Connection
}

func NewSchemaRepository(conn *postgres.Connection) SchemaRepository {
	return &schemaRepository{
		conn: conn,
	}
}

// Reset derruba e recria as tabelas canônicas dentro de uma transação:
// ou a base inteira é recriada, ou nada muda
func (r *schemaRepository) Reset(ctx context.Context) error {
	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, statement := range resetStatements {
			if _, err := tx.ExecContext(ctx, statement); err != nil {
				return fmt.Errorf("erro ao executar DDL: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("erro ao recriar o schema: %w", err)
	}

	return nil
}

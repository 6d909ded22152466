package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/order-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/order-analytics-api/internal/domain"
)

const customersTable = "customers c"

type CustomerRepository interface {
	InsertBatch(ctx context.Context, customers []domain.Customer) error
	Count(ctx context.Context) (int, error)
}

type customerRepository struct {
	conn *postgres.Connection
}

func NewCustomerRepository(conn *postgres.Connection) CustomerRepository {
	return &customerRepository{
		conn: conn,
	}
}

// InsertBatch insere os clientes já deduplicados pela carga. A unicidade do
// identificador é garantida pelo chamador; uma violação aqui é erro fatal.
func (r *customerRepository) InsertBatch(ctx context.Context, customers []domain.Customer) error {
	if len(customers) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert("customers").
		Columns("customer_id", "name", "mobile", "region").
		PlaceholderFormat(squirrel.Dollar)

	for _, customer := range customers {
		var mobile interface{}
		if customer.Mobile != "" {
			mobile = customer.Mobile
		}

		query = query.Values(customer.ID, customer.Name, mobile, customer.Region)
	}

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	_, err = r.conn.Exec(ctx, sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar query de inserção: %w", err)
	}

	return nil
}

func (r *customerRepository) Count(ctx context.Context) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(customersTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		if err == sql.ErrNoRows {
			return 0, nil
		}
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	return count, nil
}

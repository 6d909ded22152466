package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/order-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/order-analytics-api/internal/domain"
)

const ordersTable = "orders o"

type OrderRepository interface {
	InsertBatch(ctx context.Context, orders []domain.Order) error
	Count(ctx context.Context) (int, error)
	MaxOrderDate(ctx context.Context) (*time.Time, error)
}

type orderRepository struct {
	conn *postgres.Connection
}

func NewOrderRepository(conn *postgres.Connection) OrderRepository {
	return &orderRepository{
		conn: conn,
	}
}

// InsertBatch insere os pedidos já validados pela carga: deduplicados e com
// referência resolvida para um cliente existente
func (r *orderRepository) InsertBatch(ctx context.Context, orders []domain.Order) error {
	if len(orders) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert("orders").
		Columns("order_id", "customer_id", "order_date", "sku_id", "amount").
		PlaceholderFormat(squirrel.Dollar)

	for _, order := range orders {
		query = query.Values(
			order.ID,
			order.CustomerID,
			order.OrderDate.Format(time.DateOnly),
			order.SKUID,
			order.Amount,
		)
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

func (r *orderRepository) Count(ctx context.Context) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(ordersTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	return count, nil
}

// MaxOrderDate retorna a maior data de pedido presente na base, âncora da
// janela de top spenders. Retorna nil quando não há pedidos.
func (r *orderRepository) MaxOrderDate(ctx context.Context) (*time.Time, error) {
	query, args, err := squirrel.
		Select("MAX(o.order_date)").
		From(ordersTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var max sql.NullTime
	if err := r.conn.QueryRow(ctx, query, args...).Scan(&max); err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}

	if !max.Valid {
		return nil, nil
	}

	date := max.Time
	return &date, nil
}

package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/order-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/order-analytics-api/internal/domain"
)

// KPIRepository expressa cada KPI como uma única sentença de agregação
// contra o armazenamento canônico. Arredondamento e critérios de desempate
// são idênticos aos do motor em memória.
type KPIRepository interface {
	RepeatCustomers(ctx context.Context) ([]domain.RepeatCustomer, error)
	MonthlyOrderTrends(ctx context.Context) ([]domain.MonthlyTrend, error)
	RegionalRevenue(ctx context.Context) ([]domain.RegionRevenue, error)
	TopSpenders(ctx context.Context, days, limit int) ([]domain.TopSpender, error)
}

type kpiRepository struct {
	conn *postgres.Connection
}

func NewKPIRepository(conn *postgres.Connection) KPIRepository {
	return &kpiRepository{
		conn: conn,
	}
}

// RepeatCustomers retorna os clientes com dois ou mais pedidos, ordenados
// por quantidade decrescente com desempate por customer_id crescente
func (r *kpiRepository) RepeatCustomers(ctx context.Context) ([]domain.RepeatCustomer, error) {
	query, args, err := squirrel.
		Select(
			"c.customer_id",
			"c.name",
			"COUNT(o.order_id) AS order_count",
		).
		From(customersTable).
		Join("orders o ON o.customer_id = c.customer_id").
		GroupBy("c.customer_id", "c.name").
		Having("COUNT(o.order_id) >= ?", 2).
		OrderBy("order_count DESC", "c.customer_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	results := make([]domain.RepeatCustomer, 0)
	for rows.Next() {
		var row domain.RepeatCustomer
		if err := rows.Scan(&row.CustomerID, &row.Name, &row.OrderCount); err != nil {
			return nil, fmt.Errorf("erro ao escanear linha de repeat customers: %w", err)
		}
		results = append(results, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return results, nil
}

// MonthlyOrderTrends agrega pedidos por (ano, mês) em ordem cronológica.
// Apenas os meses presentes nos dados aparecem: nenhuma lacuna é inventada.
func (r *kpiRepository) MonthlyOrderTrends(ctx context.Context) ([]domain.MonthlyTrend, error) {
	query, args, err := squirrel.
		Select(
			"EXTRACT(YEAR FROM o.order_date)::int AS year",
			"EXTRACT(MONTH FROM o.order_date)::int AS month",
			"COUNT(o.order_id) AS order_count",
			"ROUND(SUM(o.amount)::numeric, 2) AS total_revenue",
		).
		From(ordersTable).
		GroupBy(
			"EXTRACT(YEAR FROM o.order_date)",
			"EXTRACT(MONTH FROM o.order_date)",
		).
		OrderBy("year ASC", "month ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	results := make([]domain.MonthlyTrend, 0)
	for rows.Next() {
		var row domain.MonthlyTrend
		if err := rows.Scan(&row.Year, &row.Month, &row.OrderCount, &row.TotalRevenue); err != nil {
			return nil, fmt.Errorf("erro ao escanear linha de tendência mensal: %w", err)
		}
		results = append(results, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return results, nil
}

// RegionalRevenue agrega receita por região, incluindo a região sentinela
// "unknown", ordenada por receita decrescente com desempate por região
func (r *kpiRepository) RegionalRevenue(ctx context.Context) ([]domain.RegionRevenue, error) {
	query, args, err := squirrel.
		Select(
			"c.region",
			"COUNT(o.order_id) AS order_count",
			"ROUND(SUM(o.amount)::numeric, 2) AS total_revenue",
			"ROUND(AVG(o.amount)::numeric, 2) AS avg_order_value",
		).
		From(ordersTable).
		Join("customers c ON c.customer_id = o.customer_id").
		GroupBy("c.region").
		OrderBy("total_revenue DESC", "c.region ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	results := make([]domain.RegionRevenue, 0)
	for rows.Next() {
		var row domain.RegionRevenue
		if err := rows.Scan(&row.Region, &row.OrderCount, &row.TotalRevenue, &row.AvgOrderValue); err != nil {
			return nil, fmt.Errorf("erro ao escanear linha de receita regional: %w", err)
		}
		results = append(results, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return results, nil
}

// TopSpenders retorna os maiores compradores na janela dos últimos N dias,
// ancorada na maior data de pedido presente nos dados e não no relógio,
// para que o resultado seja reprodutível a partir de dados estáticos
func (r *kpiRepository) TopSpenders(ctx context.Context, days, limit int) ([]domain.TopSpender, error) {
	query, args, err := squirrel.
		Select(
			"c.customer_id",
			"c.name",
			"ROUND(SUM(o.amount)::numeric, 2) AS total_spend",
			"COUNT(o.order_id) AS order_count",
		).
		From(ordersTable).
		Join("customers c ON c.customer_id = o.customer_id").
		Where(squirrel.Expr(
			"o.order_date >= (SELECT MAX(order_date) FROM orders) - (? * INTERVAL '1 day')",
			days,
		)).
		GroupBy("c.customer_id", "c.name").
		OrderBy("total_spend DESC", "c.customer_id ASC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	results := make([]domain.TopSpender, 0)
	for rows.Next() {
		var row domain.TopSpender
		if err := rows.Scan(&row.CustomerID, &row.Name, &row.TotalSpend, &row.OrderCount); err != nil {
			return nil, fmt.Errorf("erro ao escanear linha de top spenders: %w", err)
		}
		results = append(results, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return results, nil
}

package domain

// RepeatCustomer é uma linha do KPI de clientes recorrentes (2+ pedidos)
type RepeatCustomer struct {
	CustomerID string `json:"customer_id"`
	Name       string `json:"name"`
	OrderCount int    `json:"order_count"`
}

// MonthlyTrend é uma linha do KPI de tendência mensal de pedidos
type MonthlyTrend struct {
	Year         int     `json:"year"`
	Month        int     `json:"month"`
	OrderCount   int     `json:"order_count"`
	TotalRevenue float64 `json:"total_revenue"`
}

// RegionRevenue é uma linha do KPI de receita por região
type RegionRevenue struct {
	Region        string  `json:"region"`
	OrderCount    int     `json:"order_count"`
	TotalRevenue  float64 `json:"total_revenue"`
	AvgOrderValue float64 `json:"avg_order_value"`
}

// TopSpender é uma linha do KPI de maiores compradores na janela de N dias
type TopSpender struct {
	CustomerID string  `json:"customer_id"`
	Name       string  `json:"name"`
	TotalSpend float64 `json:"total_spend"`
	OrderCount int     `json:"order_count"`
}

// KPIReport agrupa os quatro KPIs calculados em uma execução
type KPIReport struct {
	RepeatCustomers []RepeatCustomer `json:"repeat_customers"`
	MonthlyTrends   []MonthlyTrend   `json:"monthly_trends"`
	RegionalRevenue []RegionRevenue  `json:"regional_revenue"`
	TopSpenders     []TopSpender     `json:"top_spenders"`
	WindowDays      int              `json:"window_days"`
	SpenderLimit    int              `json:"spender_limit"`
}

// Package sink serializa os resultados dos KPIs para o diretório de saída,
// em formato estruturado (JSON, números como números) e tabular (CSV).
package sink

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/order-analytics-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Sink struct {
	outputDir string
}

func New(outputDir string) *Sink {
	return &Sink{outputDir: outputDir}
}

// WriteJSON grava qualquer resultado como JSON indentado. Diretório de
// saída não gravável é erro fatal de infraestrutura.
func (s *Sink) WriteJSON(filename string, data interface{}) error {
	if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
		return fmt.Errorf("erro ao criar diretório de saída %s: %w", s.outputDir, err)
	}

	path := filepath.Join(s.outputDir, filename)

	encoded, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("erro ao serializar %s: %w", filename, err)
	}

	if err := os.WriteFile(path, encoded, 0o644); err != nil {
		return fmt.Errorf("erro ao gravar %s: %w", path, err)
	}

	logrus.WithField("path", path).Info("Resultado gravado")
	return nil
}

// WriteReportJSON grava cada KPI do relatório em um arquivo próprio,
// com o prefixo da abordagem que o produziu
func (s *Sink) WriteReportJSON(prefix string, report *domain.KPIReport) error {
	files := []struct {
		name string
		data interface{}
	}{
		{prefix + "_repeat_customers.json", report.RepeatCustomers},
		{prefix + "_monthly_trends.json", report.MonthlyTrends},
		{prefix + "_regional_revenue.json", report.RegionalRevenue},
		{prefix + "_top_spenders.json", report.TopSpenders},
	}

	for _, file := range files {
		if err := s.WriteJSON(file.name, file.data); err != nil {
			return err
		}
	}

	return nil
}

// WriteReportCSV grava cada KPI do relatório em formato tabular, com
// colunas e ordenação fixas, idênticas às do formato estruturado
func (s *Sink) WriteReportCSV(prefix string, report *domain.KPIReport) error {
	if err := s.writeCSV(prefix+"_repeat_customers.csv",
		[]string{"customer_id", "name", "order_count"},
		repeatCustomerRows(report.RepeatCustomers),
	); err != nil {
		return err
	}

	if err := s.writeCSV(prefix+"_monthly_trends.csv",
		[]string{"year", "month", "order_count", "total_revenue"},
		monthlyTrendRows(report.MonthlyTrends),
	); err != nil {
		return err
	}

	if err := s.writeCSV(prefix+"_regional_revenue.csv",
		[]string{"region", "order_count", "total_revenue", "avg_order_value"},
		regionRevenueRows(report.RegionalRevenue),
	); err != nil {
		return err
	}

	return s.writeCSV(prefix+"_top_spenders.csv",
		[]string{"customer_id", "name", "total_spend", "order_count"},
		topSpenderRows(report.TopSpenders),
	)
}

func (s *Sink) writeCSV(filename string, header []string, rows [][]string) error {
	if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
		return fmt.Errorf("erro ao criar diretório de saída %s: %w", s.outputDir, err)
	}

	path := filepath.Join(s.outputDir, filename)

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("erro ao criar %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("erro ao gravar cabeçalho de %s: %w", path, err)
	}

	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("erro ao gravar linha de %s: %w", path, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("erro ao finalizar %s: %w", path, err)
	}

	logrus.WithField("path", path).Info("Resultado gravado")
	return nil
}

func formatMoney(value float64) string {
	return strconv.FormatFloat(value, 'f', 2, 64)
}

func repeatCustomerRows(rows []domain.RepeatCustomer) [][]string {
	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		out = append(out, []string{row.CustomerID, row.Name, strconv.Itoa(row.OrderCount)})
	}
	return out
}

func monthlyTrendRows(rows []domain.MonthlyTrend) [][]string {
	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		out = append(out, []string{
			strconv.Itoa(row.Year),
			strconv.Itoa(row.Month),
			strconv.Itoa(row.OrderCount),
			formatMoney(row.TotalRevenue),
		})
	}
	return out
}

func regionRevenueRows(rows []domain.RegionRevenue) [][]string {
	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		out = append(out, []string{
			row.Region,
			strconv.Itoa(row.OrderCount),
			formatMoney(row.TotalRevenue),
			formatMoney(row.AvgOrderValue),
		})
	}
	return out
}

func topSpenderRows(rows []domain.TopSpender) [][]string {
	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		out = append(out, []string{
			row.CustomerID,
			row.Name,
			formatMoney(row.TotalSpend),
			strconv.Itoa(row.OrderCount),
		})
	}
	return out
}

// Package loading implementa a carga do armazenamento canônico: reset com
// semântica drop-and-recreate e inserção de clientes e pedidos validados.
package loading

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/order-analytics-api/infrastructure/repository"
	"github.com/vfg2006/order-analytics-api/internal/dataset"
	"github.com/vfg2006/order-analytics-api/internal/domain"
)

type Loader interface {
	Run(ctx context.Context) (*domain.LoadSummary, []domain.Rejection, error)
}

type Service struct {
	schemaRepo   repository.SchemaRepository
	customerRepo repository.CustomerRepository
	orderRepo    repository.OrderRepository
	sources      SourceProvider
}

func NewService(
	schemaRepo repository.SchemaRepository,
	customerRepo repository.CustomerRepository,
	orderRepo repository.OrderRepository,
	sources SourceProvider,
) *Service {
	return &Service{
		schemaRepo:   schemaRepo,
		customerRepo: customerRepo,
		orderRepo:    orderRepo,
		sources:      sources,
	}
}

// Run executa a carga completa: ingestão, limpeza, reset do schema e
// inserção em ordem (clientes antes de pedidos). As regras de deduplicação
// e integridade referencial são as mesmas do espelho em memória, aplicadas
// pelo mesmo código. Qualquer erro de repositório é fatal: não existe carga
// parcial silenciosa.
func (s *Service) Run(ctx context.Context) (*domain.LoadSummary, []domain.Rejection, error) {
	input, err := ReadAndClean(s.sources)
	if err != nil {
		return nil, nil, err
	}

	ds, summary, rejections := BuildDataset(input)

	if err := s.schemaRepo.Reset(ctx); err != nil {
		return nil, nil, fmt.Errorf("falha ao resetar o armazenamento canônico: %w", err)
	}

	if err := s.customerRepo.InsertBatch(ctx, ds.Customers()); err != nil {
		return nil, nil, fmt.Errorf("falha ao carregar clientes: %w", err)
	}

	if err := s.orderRepo.InsertBatch(ctx, ds.Orders()); err != nil {
		return nil, nil, fmt.Errorf("falha ao carregar pedidos: %w", err)
	}

	if err := s.verifyStoredCounts(ctx, summary); err != nil {
		return nil, nil, err
	}

	anchor, err := s.orderRepo.MaxOrderDate(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("falha ao consultar a âncora da janela de análise: %w", err)
	}

	fields := logrus.Fields{
		"customers_loaded": summary.CustomersLoaded,
		"orders_loaded":    summary.OrdersLoaded,
		"total_rejects":    summary.TotalRejects(),
	}
	if anchor != nil {
		fields["max_order_date"] = anchor.Format("2006-01-02")
	}
	logrus.WithFields(fields).Info("Carga do armazenamento canônico concluída")

	return summary, rejections, nil
}

// verifyStoredCounts confere o armazenamento contra o resumo: cada registro
// de entrada ou foi carregado ou foi rejeitado, e o que o banco reporta tem
// que bater com o que a carga contou
func (s *Service) verifyStoredCounts(ctx context.Context, summary *domain.LoadSummary) error {
	customersStored, err := s.customerRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("falha ao contar clientes carregados: %w", err)
	}

	ordersStored, err := s.orderRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("falha ao contar pedidos carregados: %w", err)
	}

	if customersStored != summary.CustomersLoaded || ordersStored != summary.OrdersLoaded {
		return fmt.Errorf(
			"carga inconsistente: banco reporta %d clientes e %d pedidos, resumo esperava %d e %d",
			customersStored, ordersStored, summary.CustomersLoaded, summary.OrdersLoaded,
		)
	}

	return nil
}

// BuildDataset monta o espelho em memória a partir da entrada limpa. As
// rejeições de deduplicação e de integridade referencial são logadas uma a
// uma e somadas às de parsing e limpeza no resumo: nenhuma rejeição é
// descartada em silêncio, em nenhum dos dois caminhos de análise.
func BuildDataset(input *CleanedInput) (*dataset.Dataset, *domain.LoadSummary, []domain.Rejection) {
	ds, summary, loadRejections := dataset.Build(input.Customers, input.Orders)

	for _, rejection := range loadRejections {
		logRejection(rejection)
	}

	for _, rejection := range input.Rejections {
		summary.AddReject(rejection.Reason)
	}

	rejections := append(append([]domain.Rejection{}, input.Rejections...), loadRejections...)

	return ds, summary, rejections
}

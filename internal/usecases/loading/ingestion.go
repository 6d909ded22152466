package loading

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/order-analytics-api/internal/cleaning"
	"github.com/vfg2006/order-analytics-api/internal/domain"
	"github.com/vfg2006/order-analytics-api/internal/ingest"
)

// CleanedInput é o resultado da fase de ingestão e limpeza: entidades
// canônicas prontas para carga, mais as rejeições e contadores produzidos.
// Os dois caminhos de análise (relacional e em memória) partem daqui.
type CleanedInput struct {
	Customers  []domain.Customer
	Orders     []domain.Order
	Rejections []domain.Rejection
	Stats      *cleaning.Stats
}

// ReadAndClean executa parser e cleaner sobre as duas fontes. Problemas de
// qualidade de dados viram rejeições e o fluxo continua; uma fonte ilegível
// é fatal e interrompe a abordagem corrente.
func ReadAndClean(sources SourceProvider) (*CleanedInput, error) {
	cleaner := cleaning.NewCleaner()

	customersFile, err := sources.Customers()
	if err != nil {
		return nil, err
	}
	defer customersFile.Close()

	rawCustomers, parseRejections, err := ingest.ParseCustomers(customersFile)
	if err != nil {
		return nil, errors.Wrap(err, "falha na ingestão de clientes")
	}

	rejections := append([]domain.Rejection{}, parseRejections...)

	customers := make([]domain.Customer, 0, len(rawCustomers))
	for _, record := range rawCustomers {
		customer, rejection := cleaner.CleanCustomer(record)
		if rejection != nil {
			logRejection(*rejection)
			rejections = append(rejections, *rejection)
			continue
		}
		customers = append(customers, *customer)
	}

	ordersFile, err := sources.Orders()
	if err != nil {
		return nil, err
	}
	defer ordersFile.Close()

	rawOrders, orderParseRejections, err := ingest.ParseOrders(ordersFile)
	if err != nil {
		return nil, errors.Wrap(err, "falha na ingestão de pedidos")
	}

	rejections = append(rejections, orderParseRejections...)

	orders := make([]domain.Order, 0, len(rawOrders))
	for _, record := range rawOrders {
		order, rejection := cleaner.CleanOrder(record)
		if rejection != nil {
			logRejection(*rejection)
			rejections = append(rejections, *rejection)
			continue
		}
		orders = append(orders, *order)
	}

	for _, rejection := range parseRejections {
		logRejection(rejection)
	}
	for _, rejection := range orderParseRejections {
		logRejection(rejection)
	}

	logrus.WithFields(logrus.Fields{
		"customers_accepted": cleaner.Stats().Accepted(domain.EntityCustomer),
		"customers_rejected": cleaner.Stats().Rejected(domain.EntityCustomer),
		"orders_accepted":    cleaner.Stats().Accepted(domain.EntityOrder),
		"orders_rejected":    cleaner.Stats().Rejected(domain.EntityOrder),
		"parse_rejections":   len(parseRejections) + len(orderParseRejections),
	}).Info("Ingestão e limpeza concluídas")

	return &CleanedInput{
		Customers:  customers,
		Orders:     orders,
		Rejections: rejections,
		Stats:      cleaner.Stats(),
	}, nil
}

func logRejection(rejection domain.Rejection) {
	logrus.WithFields(logrus.Fields{
		"reject_id": rejection.ID,
		"entity":    rejection.EntityType,
		"reason":    rejection.Reason,
		"detail":    rejection.Detail,
	}).Warn("Registro rejeitado")
}

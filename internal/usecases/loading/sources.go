package loading

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/vfg2006/order-analytics-api/internal/config"
)

// SourceProvider abre as fontes brutas. Cada chamada devolve um leitor novo,
// o que torna a ingestão reiniciável por reinvocação.
type SourceProvider interface {
	Customers() (io.ReadCloser, error)
	Orders() (io.ReadCloser, error)
}

type fileSourceProvider struct {
	sources config.Sources
}

// NewFileSourceProvider lê as fontes dos caminhos configurados. Um arquivo
// ilegível é um erro fatal de infraestrutura, não uma rejeição de dados.
func NewFileSourceProvider(sources config.Sources) SourceProvider {
	return &fileSourceProvider{sources: sources}
}

func (p *fileSourceProvider) Customers() (io.ReadCloser, error) {
	file, err := os.Open(p.sources.CustomersCSVPath)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao abrir fonte de clientes %s", p.sources.CustomersCSVPath)
	}
	return file, nil
}

func (p *fileSourceProvider) Orders() (io.ReadCloser, error) {
	file, err := os.Open(p.sources.OrdersXMLPath)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao abrir fonte de pedidos %s", p.sources.OrdersXMLPath)
	}
	return file, nil
}

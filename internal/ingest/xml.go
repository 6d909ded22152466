package ingest

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/order-analytics-api/internal/domain"
)

// orderElement captura um elemento <order> com seus filhos de forma genérica,
// sem assumir a ordem ou o conjunto exato de campos
type orderElement struct {
	Fields []orderField `xml:",any"`
}

type orderField struct {
	XMLName xml.Name
	Value   string `xml:",chardata"`
}

// ParseOrders lê a fonte hierárquica de pedidos. Cada elemento <order> é
// achatado em um registro plano; um elemento que falha ao decodificar vira
// uma rejeição com motivo malformed_format e o parsing segue para o próximo.
// Um documento vazio produz zero registros.
func ParseOrders(r io.Reader) ([]RawRecord, []domain.Rejection, error) {
	decoder := xml.NewDecoder(r)

	records := make([]RawRecord, 0)
	rejections := make([]domain.Rejection, 0)
	unit := 0

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Erro de sintaxe fora de um elemento <order>: o restante do
			// documento não é recuperável, mas o que já foi lido permanece
			if unit == 0 && len(records) == 0 && len(rejections) == 0 {
				return nil, nil, errors.Wrap(err, "erro ao ler documento XML de pedidos")
			}

			rejections = append(rejections, newRejection(
				domain.EntityOrder,
				domain.ReasonMalformedFormat,
				fmt.Sprintf("documento truncado após o elemento %d: %v", unit, err),
				nil,
			))
			break
		}

		start, ok := token.(xml.StartElement)
		if !ok || strings.ToLower(start.Name.Local) != "order" {
			continue
		}

		unit++

		var element orderElement
		if err := decoder.DecodeElement(&element, &start); err != nil {
			rejections = append(rejections, newRejection(
				domain.EntityOrder,
				domain.ReasonMalformedFormat,
				fmt.Sprintf("elemento %d: %v", unit, err),
				nil,
			))
			continue
		}

		fields := make(map[string]string, len(element.Fields))
		for _, f := range element.Fields {
			fields[strings.ToLower(f.XMLName.Local)] = strings.TrimSpace(f.Value)
		}

		records = append(records, RawRecord{
			Entity: domain.EntityOrder,
			Fields: fields,
			Unit:   unit,
		})
	}

	return records, rejections, nil
}

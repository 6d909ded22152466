package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/order-analytics-api/internal/domain"
)

// ParseCustomers lê a fonte tabular de clientes. A primeira linha é o
// cabeçalho e define o mapeamento de colunas. Linhas malformadas viram
// rejeições com motivo malformed_format e o parsing continua; uma fonte
// vazia produz zero registros, não um erro.
func ParseCustomers(r io.Reader) ([]RawRecord, []domain.Rejection, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return []RawRecord{}, nil, nil
	}
	if err != nil {
		return nil, nil, errors.Wrap(err, "erro ao ler cabeçalho do CSV de clientes")
	}

	columns := make([]string, len(header))
	for i, name := range header {
		columns[i] = strings.ToLower(strings.TrimSpace(name))
	}

	records := make([]RawRecord, 0)
	rejections := make([]domain.Rejection, 0)
	line := 1

	for {
		line++

		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Linha com aspas quebradas ou similar: rejeita a unidade e segue
			rejections = append(rejections, newRejection(
				domain.EntityCustomer,
				domain.ReasonMalformedFormat,
				fmt.Sprintf("linha %d: %v", line, err),
				nil,
			))
			continue
		}

		if len(row) < len(columns) {
			rejections = append(rejections, newRejection(
				domain.EntityCustomer,
				domain.ReasonMalformedFormat,
				fmt.Sprintf("linha %d: esperava %d colunas, recebeu %d", line, len(columns), len(row)),
				rowToMap(columns, row),
			))
			continue
		}

		records = append(records, RawRecord{
			Entity: domain.EntityCustomer,
			Fields: rowToMap(columns, row),
			Unit:   line,
		})
	}

	return records, rejections, nil
}

func rowToMap(columns, row []string) map[string]string {
	fields := make(map[string]string, len(columns))
	for i, col := range columns {
		if i < len(row) {
			fields[col] = strings.TrimSpace(row[i])
		}
	}
	return fields
}

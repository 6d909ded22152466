// Package cleaning aplica as regras de validação e normalização que
// transformam registros brutos em entidades canônicas. É o único ponto do
// sistema autorizado a interpretar campos não tipados.
package cleaning

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/vfg2006/order-analytics-api/internal/domain"
	"github.com/vfg2006/order-analytics-api/internal/ingest"
	"github.com/vfg2006/order-analytics-api/pkg/utils"
)

// dateLayouts são os formatos de data aceitos, testados em ordem.
// O primeiro que casar vence.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
	"02/01/2006",
	"02-01-2006",
	"2006/01/02",
}

// Cleaner classifica cada registro bruto como aceito ou rejeitado,
// acumulando contadores por entidade e por motivo
type Cleaner struct {
	stats *Stats
}

func NewCleaner() *Cleaner {
	return &Cleaner{stats: NewStats()}
}

// Stats expõe os contadores acumulados da limpeza. Efeito colateral
// observável obrigatório: o chamador reporta estes números a cada execução.
func (c *Cleaner) Stats() *Stats {
	return c.stats
}

// CleanCustomer valida um registro bruto de cliente. Exatamente um dos dois
// retornos é não-nulo.
//
// Política de telefone: o campo mobile é opcional. Quando ausente, o cliente
// é aceito sem telefone; quando presente, precisa normalizar para um celular
// válido (10 dígitos, prefixo +91 opcional) ou o registro inteiro é
// rejeitado com malformed_format.
func (c *Cleaner) CleanCustomer(record ingest.RawRecord) (*domain.Customer, *domain.Rejection) {
	id := strings.TrimSpace(record.Fields["customer_id"])
	if id == "" {
		return nil, c.reject(record, domain.ReasonMissingRequiredField, "customer_id ausente ou vazio")
	}

	mobile := strings.TrimSpace(record.Fields["mobile"])
	if mobile != "" {
		normalized, err := NormalizeMobile(mobile)
		if err != nil {
			return nil, c.reject(record, domain.ReasonMalformedFormat,
				fmt.Sprintf("telefone inválido %q: %v", mobile, err))
		}
		mobile = normalized
	}

	region := strings.ToLower(strings.TrimSpace(record.Fields["region"]))
	if region == "" {
		region = domain.UnknownRegion
	}

	c.stats.accept(domain.EntityCustomer)

	return &domain.Customer{
		ID:     id,
		Name:   strings.TrimSpace(record.Fields["name"]),
		Mobile: mobile,
		Region: region,
	}, nil
}

// CleanOrder valida um registro bruto de pedido. A referência ao cliente é
// mantida como veio (id ou celular); a resolução para um cliente carregado
// acontece no momento da carga, com a mesma regra nos dois caminhos.
func (c *Cleaner) CleanOrder(record ingest.RawRecord) (*domain.Order, *domain.Rejection) {
	id := strings.TrimSpace(record.Fields["order_id"])
	if id == "" {
		return nil, c.reject(record, domain.ReasonMissingRequiredField, "order_id ausente ou vazio")
	}

	reference := customerReference(record.Fields)
	if reference == "" {
		return nil, c.reject(record, domain.ReasonMissingRequiredField, "referência ao cliente ausente ou vazia")
	}

	rawAmount := strings.TrimSpace(record.Fields["amount"])
	if rawAmount == "" {
		return nil, c.reject(record, domain.ReasonMissingRequiredField, "amount ausente ou vazio")
	}

	amount, err := parseAmount(rawAmount)
	if err != nil {
		return nil, c.reject(record, domain.ReasonMalformedFormat,
			fmt.Sprintf("valor inválido %q: %v", rawAmount, err))
	}

	rawDate := orderDate(record.Fields)
	date, err := parseDate(rawDate)
	if err != nil {
		return nil, c.reject(record, domain.ReasonMalformedFormat,
			fmt.Sprintf("data inválida %q: %v", rawDate, err))
	}

	sku := strings.ToUpper(strings.TrimSpace(skuID(record.Fields)))
	if sku == "" {
		sku = domain.UnknownSKU
	}

	c.stats.accept(domain.EntityOrder)

	return &domain.Order{
		ID:         id,
		CustomerID: reference,
		OrderDate:  date,
		SKUID:      sku,
		Amount:     amount,
	}, nil
}

func (c *Cleaner) reject(record ingest.RawRecord, reason domain.Reason, detail string) *domain.Rejection {
	c.stats.rejectRecord(record.Entity, reason)

	id, err := utils.GenerateID()
	if err != nil {
		id = "unknown"
	}

	return &domain.Rejection{
		ID:         id,
		EntityType: record.Entity,
		Reason:     reason,
		Detail:     detail,
		Raw:        record.Fields,
		RejectedAt: time.Now().UTC(),
	}
}

// NormalizeMobile remove separadores e valida o número contra o formato
// nacional: exatamente 10 dígitos significativos começando em 6-9, com
// prefixo opcional de país (+91, 91) ou tronco (0). A forma canônica é
// "+91" seguido dos 10 dígitos.
func NormalizeMobile(raw string) (string, error) {
	var digits strings.Builder
	for i, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			digits.WriteRune(r)
		case r == '+':
			// Sinal de país só é válido no início do número
			if i != 0 {
				return "", fmt.Errorf("caractere inesperado %q", r)
			}
		case r == ' ' || r == '-' || r == '(' || r == ')' || r == '.':
		default:
			return "", fmt.Errorf("caractere inesperado %q", r)
		}
	}

	number := digits.String()
	switch {
	case len(number) == 12 && strings.HasPrefix(number, "91"):
		number = number[2:]
	case len(number) == 11 && strings.HasPrefix(number, "0"):
		number = number[1:]
	}

	if len(number) != 10 {
		return "", fmt.Errorf("esperava 10 dígitos, recebeu %d", len(number))
	}
	if number[0] < '6' {
		return "", fmt.Errorf("prefixo de celular inválido %q", number[0:1])
	}

	return "+91" + number, nil
}

func parseAmount(raw string) (float64, error) {
	cleaned := strings.NewReplacer("₹", "", "$", "", ",", "", " ", "").Replace(raw)

	amount, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("não numérico")
	}
	if amount < 0 {
		return 0, fmt.Errorf("valor negativo")
	}

	return utils.RoundWithTwoDecimalPlace(amount), nil
}

func parseDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, fmt.Errorf("data vazia")
	}

	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return utils.TruncateToDay(parsed), nil
		}
	}

	return time.Time{}, fmt.Errorf("nenhum formato aceito casou")
}

// customerReference aceita as variações de nome de campo usadas pelas
// fontes: id direto ou celular do cliente
func customerReference(fields map[string]string) string {
	for _, key := range []string{"customer_id", "customer_ref", "customer_reference", "mobile"} {
		if value := strings.TrimSpace(fields[key]); value != "" {
			return value
		}
	}
	return ""
}

func orderDate(fields map[string]string) string {
	for _, key := range []string{"order_date", "date"} {
		if value := strings.TrimSpace(fields[key]); value != "" {
			return value
		}
	}
	return ""
}

func skuID(fields map[string]string) string {
	for _, key := range []string{"sku_id", "sku", "product_id"} {
		if value := fields[key]; value != "" {
			return value
		}
	}
	return ""
}

package cleaning

import "github.com/vfg2006/order-analytics-api/internal/domain"

// Stats acumula os desfechos da limpeza: cada registro de entrada produz
// exatamente um aceite ou uma rejeição classificada
type Stats struct {
	accepted map[domain.EntityType]int
	rejected map[domain.EntityType]map[domain.Reason]int
}

func NewStats() *Stats {
	return &Stats{
		accepted: make(map[domain.EntityType]int),
		rejected: make(map[domain.EntityType]map[domain.Reason]int),
	}
}

func (s *Stats) accept(entity domain.EntityType) {
	s.accepted[entity]++
}

func (s *Stats) rejectRecord(entity domain.EntityType, reason domain.Reason) {
	if s.rejected[entity] == nil {
		s.rejected[entity] = make(map[domain.Reason]int)
	}
	s.rejected[entity][reason]++
}

// Accepted retorna o total de registros aceitos para a entidade
func (s *Stats) Accepted(entity domain.EntityType) int {
	return s.accepted[entity]
}

// Rejected retorna o total de registros rejeitados para a entidade,
// somando todos os motivos
func (s *Stats) Rejected(entity domain.EntityType) int {
	total := 0
	for _, count := range s.rejected[entity] {
		total += count
	}
	return total
}

// RejectedByReason retorna o contador de um motivo específico
func (s *Stats) RejectedByReason(entity domain.EntityType, reason domain.Reason) int {
	return s.rejected[entity][reason]
}

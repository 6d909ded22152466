package domain

// LoadSummary resume uma carga completa do armazenamento canônico
type LoadSummary struct {
	CustomersLoaded int            `json:"customers_loaded"`
	OrdersLoaded    int            `json:"orders_loaded"`
	Rejects         map[Reason]int `json:"rejects"`
}

// TotalRejects soma as rejeições de todos os motivos
func (s *LoadSummary) TotalRejects() int {
	total := 0
	for _, count := range s.Rejects {
		total += count
	}
	return total
}

// AddReject incrementa o contador do motivo informado
func (s *LoadSummary) AddReject(reason Reason) {
	if s.Rejects == nil {
		s.Rejects = make(map[Reason]int)
	}
	s.Rejects[reason]++
}

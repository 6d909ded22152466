package domain

// CustomerIndex resolve referências de pedidos para clientes carregados.
// As fontes de pedidos referenciam clientes ora pelo identificador, ora pelo
// celular; os dois caminhos de carga (relacional e em memória) usam este
// mesmo índice para garantir paridade na regra de integridade referencial.
type CustomerIndex struct {
	byID     map[string]*Customer
	byMobile map[string]*Customer
}

func NewCustomerIndex(customers []Customer) *CustomerIndex {
	index := &CustomerIndex{
		byID:     make(map[string]*Customer, len(customers)),
		byMobile: make(map[string]*Customer),
	}

	for i := range customers {
		customer := &customers[i]
		if _, exists := index.byID[customer.ID]; exists {
			continue
		}
		index.byID[customer.ID] = customer
		if customer.Mobile != "" {
			if _, exists := index.byMobile[customer.Mobile]; !exists {
				index.byMobile[customer.Mobile] = customer
			}
		}
	}

	return index
}

// Resolve tenta casar a referência com um cliente: primeiro por
// identificador, depois pela forma canônica do celular
func (i *CustomerIndex) Resolve(reference string, normalizeMobile func(string) (string, error)) (*Customer, bool) {
	if customer, ok := i.byID[reference]; ok {
		return customer, true
	}

	if normalizeMobile != nil {
		if mobile, err := normalizeMobile(reference); err == nil {
			if customer, ok := i.byMobile[mobile]; ok {
				return customer, true
			}
		}
	}

	return nil, false
}

package mappers

import (
	"fmt"
	"sort"

	"github.com/veridian-labs/dirsearch/internal/core/domain"
)

// Registry maps entry types to their field mappers.
type Registry struct {
	mappers map[string]FieldMapper
}

// NewRegistry creates an empty mapper registry.
func NewRegistry() *Registry {
	return &Registry{
		mappers: make(map[string]FieldMapper),
	}
}

// NewDefaultRegistry creates a registry with all built-in mappers
// registered.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&MedicalProfessionalMapper{})
	r.Register(&PharmaceuticalMapper{})
	r.Register(&ProductMapper{})
	r.Register(&ContactMapper{})
	r.Register(&DepartmentMapper{})
	r.Register(&ServiceMapper{})
	r.Register(&LocationMapper{})
	r.Register(&FAQMapper{})
	r.Register(NewSalesMapper(EntryTypeCrossSell, "related_product"))
	r.Register(NewSalesMapper(EntryTypeUpSell, "base_product"))
	r.Register(NewSalesMapper(EntryTypeCompetitiveSell, "competitor_product"))
	r.Register(&ClassSeminarMapper{})
	r.Register(&ExpertConsultantMapper{})
	return r
}

// Register adds a mapper to the registry, keyed by its entry type.
func (r *Registry) Register(m FieldMapper) {
	r.mappers[m.EntryType()] = m
}

// Get returns the mapper for an entry type.
func (r *Registry) Get(entryType string) (FieldMapper, error) {
	m, ok := r.mappers[entryType]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownEntryType, entryType)
	}
	return m, nil
}

// Has returns true if a mapper is registered for the entry type.
func (r *Registry) Has(entryType string) bool {
	_, ok := r.mappers[entryType]
	return ok
}

// Names returns all registered entry types, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.mappers))
	for name := range r.mappers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

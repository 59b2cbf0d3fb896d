package registry

import (
	"github.com/omnihash/omnihash/digest"
)

// Factories is the ordered registry of active algorithm names to
// digester factories. It is built once per invocation and not mutated
// afterwards.
type Factories struct {
	criteria  Criteria
	names     []string
	factories map[string]digest.Factory
}

func NewFactories(criteria Criteria) *Factories {
	return &Factories{
		criteria:  criteria,
		factories: map[string]digest.Factory{},
	}
}

// Accepts reports whether a registration for name would be stored.
// Callers registering algorithms whose factory setup is not free
// should consult this first. Names claimed by an earlier pass stay
// claimed.
func (f *Factories) Accepts(name string) bool {
	return !f.Contains(name) && f.criteria.Accepts(name)
}

// RegisterIfAccepted stores the factory under name when the criteria
// accept it and no earlier pass registered the name. Names must be
// canonically upper-case.
func (f *Factories) RegisterIfAccepted(name string, factory digest.Factory) {
	mustBeUpper(name)

	if !f.Accepts(name) {
		return
	}

	f.names = append(f.names, name)
	f.factories[name] = factory
}

func (f *Factories) Contains(name string) bool {
	_, found := f.factories[name]
	return found
}

func (f *Factories) Get(name string) (digest.Factory, bool) {
	factory, found := f.factories[name]
	return factory, found
}

func (f *Factories) Len() int {
	return len(f.names)
}

// Names returns the algorithm names in registration order.
func (f *Factories) Names() []string {
	names := make([]string, len(f.names))
	copy(names, f.names)
	return names
}

package inventory

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// Collector counts one kind of compute resource within one scope. Collectors
// perform read-only API calls and share no state with each other.
type Collector interface {
	// Kind returns the stable identifier used in reports and filters.
	Kind() Kind

	// Label returns the human-readable name used in logs and listings.
	Label() string

	// Collect queries the provider for the given scope and returns the
	// measured count. Failures should be classified via AccessDenied,
	// NotFound or Transient.
	Collect(ctx context.Context, scope string) (ResourceCount, error)
}

// Registry holds the collectors available for one provider. Each provider
// package owns a registry and populates it from collector init functions.
type Registry struct {
	provider   string
	collectors map[Kind]Collector
}

// NewRegistry creates an empty registry for the named provider.
func NewRegistry(provider string) *Registry {
	return &Registry{
		provider:   provider,
		collectors: make(map[Kind]Collector),
	}
}

// Provider returns the provider name the registry belongs to.
func (r *Registry) Provider() string {
	return r.provider
}

// Register adds a collector. Registering the same kind twice panics: it is
// a programming error wired at package init time.
func (r *Registry) Register(c Collector) {
	if _, exists := r.collectors[c.Kind()]; exists {
		panic(fmt.Sprintf("collector %q already registered for provider %s", c.Kind(), r.provider))
	}
	r.collectors[c.Kind()] = c
}

// Get retrieves a collector by kind or label, case-insensitively.
func (r *Registry) Get(identifier string) (Collector, error) {
	if c, ok := r.collectors[Kind(identifier)]; ok {
		return c, nil
	}
	identifier = strings.ToLower(identifier)
	for _, c := range r.collectors {
		if strings.ToLower(string(c.Kind())) == identifier || strings.ToLower(c.Label()) == identifier {
			return c, nil
		}
	}
	return nil, fmt.Errorf("no %s collector found for %q", r.provider, identifier)
}

// Kinds returns the registered kinds in sorted order.
func (r *Registry) Kinds() []Kind {
	kinds := make([]Kind, 0, len(r.collectors))
	for kind := range r.collectors {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// Select resolves a comma-separated kind filter against the registry. An
// empty filter selects every registered collector. Unknown names surface as
// an error so a typo never silently narrows a scan.
func (r *Registry) Select(filter string) ([]Collector, error) {
	if strings.TrimSpace(filter) == "" {
		collectors := make([]Collector, 0, len(r.collectors))
		for _, kind := range r.Kinds() {
			collectors = append(collectors, r.collectors[kind])
		}
		return collectors, nil
	}

	var collectors []Collector
	for _, name := range strings.Split(filter, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		c, err := r.Get(name)
		if err != nil {
			return nil, err
		}
		collectors = append(collectors, c)
	}
	return collectors, nil
}

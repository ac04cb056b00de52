package ledger

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/Bikash4JP/tally-for-mobile/internal/shared"
)

// searchLimit caps type-ahead results.
const searchLimit = 20

// Registry owns the authoritative chart of accounts. It only ever grows:
// there is no delete or nature-mutation operation, which is what keeps
// historical reports trustworthy. Lookups and creates may come from
// concurrent request handlers, so access is serialized internally.
type Registry struct {
	mu      sync.RWMutex
	ledgers []Ledger
	byID    map[string]int
	newID   func() string
}

// NewRegistry builds a registry over the given ledgers, rejecting duplicate
// ids.
func NewRegistry(ledgers []Ledger) (*Registry, error) {
	r := &Registry{
		byID:  make(map[string]int, len(ledgers)),
		newID: func() string { return "L-" + uuid.NewString() },
	}
	for _, l := range ledgers {
		if _, ok := r.byID[l.ID]; ok {
			return nil, fmt.Errorf("ledger: duplicate id %s", l.ID)
		}
		r.byID[l.ID] = len(r.ledgers)
		r.ledgers = append(r.ledgers, l)
	}
	return r, nil
}

// WithIDFunc overrides id assignment for newly created ledgers. Used by
// tests that need stable ids.
func (r *Registry) WithIDFunc(fn func() string) {
	if fn != nil {
		r.mu.Lock()
		r.newID = fn
		r.mu.Unlock()
	}
}

// GetByID returns the ledger with the given id. Absence is an expected
// outcome and reported as false, not an error.
func (r *Registry) GetByID(id string) (Ledger, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	idx, ok := r.byID[id]
	if !ok {
		return Ledger{}, false
	}
	return r.ledgers[idx], true
}

// FindByExactName returns the ledger whose name matches exactly, ignoring
// case and surrounding whitespace. This is the lookup that decides whether
// create-or-reuse should reuse.
func (r *Registry) FindByExactName(name string) (Ledger, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.findByExactName(name)
}

// findByExactName is the lock-free lookup shared by FindByExactName and
// Create; callers hold r.mu.
func (r *Registry) findByExactName(name string) (Ledger, bool) {
	clean := strings.TrimSpace(name)
	if clean == "" {
		return Ledger{}, false
	}
	for _, l := range r.ledgers {
		if strings.EqualFold(l.Name, clean) {
			return l, true
		}
	}
	return Ledger{}, false
}

// FindByNameContains returns up to searchLimit ledgers whose name contains
// the query, ignoring case. Results keep registry order; this feeds
// type-ahead, not relevance ranking.
func (r *Registry) FindByNameContains(query string) []Ledger {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Ledger
	for _, l := range r.ledgers {
		if strings.Contains(strings.ToLower(l.Name), q) {
			out = append(out, l)
			if len(out) == searchLimit {
				break
			}
		}
	}
	return out
}

// Create adds a ledger with a fresh id, unless one with the same
// case-insensitive name already exists, in which case the existing ledger is
// returned unchanged. Creation by name is idempotent; the existence check
// and the append happen under one lock, so two concurrent creates of the
// same name yield one ledger.
func (r *Registry) Create(name, groupName string, nature Nature, isParty bool) (Ledger, error) {
	clean := strings.TrimSpace(name)
	if clean == "" {
		return Ledger{}, shared.Validationf("ledger name required")
	}
	if !nature.Valid() {
		return Ledger{}, shared.Validationf("invalid ledger nature %q", nature)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.findByExactName(clean); ok {
		return existing, nil
	}
	l := Ledger{
		ID:        r.newID(),
		Name:      clean,
		GroupName: groupName,
		Nature:    nature,
		IsParty:   isParty,
	}
	r.byID[l.ID] = len(r.ledgers)
	r.ledgers = append(r.ledgers, l)
	return l, nil
}

// All returns a copy of the registry in insertion order.
func (r *Registry) All() []Ledger {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Ledger, len(r.ledgers))
	copy(out, r.ledgers)
	return out
}

// Len returns the number of ledgers.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.ledgers)
}

package dna

import (
	"strings"
	"sync"

	"github.com/katalvlaran/evocore/chromosome"
)

// DNA is an order-preserving, case-insensitive name->chromosome map owned by
// a single Entity. mu guards names and chromosomes, mirroring the teacher's
// per-container-mutex discipline (graph/core/types.go).
type DNA struct {
	mu          sync.RWMutex
	names       []string // insertion order, original case
	chromosomes map[string]chromosome.Chromosome
}

// New returns an empty DNA collection.
func New() *DNA {
	return &DNA{chromosomes: make(map[string]chromosome.Chromosome)}
}

func key(name string) string { return strings.ToLower(name) }

// Add inserts a chromosome under name. Returns ErrDuplicateName if name
// (case-insensitively) is already present.
func (d *DNA) Add(name string, c chromosome.Chromosome) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	k := key(name)
	if _, exists := d.chromosomes[k]; exists {
		return ErrDuplicateName
	}
	d.chromosomes[k] = c
	d.names = append(d.names, name)
	return nil
}

// Get returns the chromosome stored under name. Returns ErrNotFound if absent.
func (d *DNA) Get(name string) (chromosome.Chromosome, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	c, ok := d.chromosomes[key(name)]
	if !ok {
		return nil, ErrNotFound
	}
	return c, nil
}

// Names returns the chromosome names in insertion order.
func (d *DNA) Names() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]string, len(d.names))
	copy(out, d.names)
	return out
}

// Len returns the number of chromosomes.
func (d *DNA) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.names)
}

// Seed broadcasts Seed(p) to every chromosome, in insertion order.
func (d *DNA) Seed(p float64) error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, name := range d.names {
		if err := d.chromosomes[key(name)].Seed(p); err != nil {
			return err
		}
	}
	return nil
}

// Clone deep-copies every chromosome into a fresh DNA.
func (d *DNA) Clone() *DNA {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := New()
	out.names = make([]string, len(d.names))
	copy(out.names, d.names)
	for k, c := range d.chromosomes {
		out.chromosomes[k] = c.Clone()
	}
	return out
}

// Dispose clears every chromosome reference. The DNA is empty afterwards and
// may be reused as if freshly constructed (mirrors Entity.MarkAsFree
// discarding its DNA, spec.md §4.4).
func (d *DNA) Dispose() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.names = nil
	d.chromosomes = make(map[string]chromosome.Chromosome)
}

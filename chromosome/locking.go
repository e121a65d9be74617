package chromosome

// Locking decorates any Chromosome with a per-gene lock bit. Locked indices
// are frozen: SetValue, MutateDrift and MutateRandom silently no-op instead
// of erroring, matching spec.md §4.2's "a set through the indexer is a no-op
// when the bit is set".
type Locking struct {
	inner  Chromosome
	locked []bool
}

// NewLocking wraps inner with an all-unlocked lock bitset.
func NewLocking(inner Chromosome) *Locking {
	return &Locking{inner: inner, locked: make([]bool, inner.Len())}
}

// Lock freezes the gene at index.
func (l *Locking) Lock(index int) error {
	if index < 0 || index >= len(l.locked) {
		return ErrIndexOutOfRange
	}
	l.locked[index] = true
	return nil
}

// Unlock unfreezes the gene at index.
func (l *Locking) Unlock(index int) error {
	if index < 0 || index >= len(l.locked) {
		return ErrIndexOutOfRange
	}
	l.locked[index] = false
	return nil
}

// IsLocked reports whether the gene at index is frozen.
func (l *Locking) IsLocked(index int) (bool, error) {
	if index < 0 || index >= len(l.locked) {
		return false, ErrIndexOutOfRange
	}
	return l.locked[index], nil
}

// Inner returns the wrapped Chromosome.
func (l *Locking) Inner() Chromosome { return l.inner }

// Len implements Chromosome.
func (l *Locking) Len() int { return l.inner.Len() }

// Clone implements Chromosome, deep-copying both the inner chromosome and the
// lock bitset.
func (l *Locking) Clone() Chromosome {
	out := &Locking{inner: l.inner.Clone(), locked: make([]bool, len(l.locked))}
	copy(out.locked, l.locked)
	return out
}

// Equals implements Chromosome. Lock state does not participate in equality;
// only gene values do, matching the unwrapped variants' semantics.
func (l *Locking) Equals(other Chromosome) bool {
	o, ok := other.(*Locking)
	if !ok {
		return false
	}
	return l.inner.Equals(o.inner)
}

// Seed forwards to the inner chromosome; locking does not gate Seed, which
// only runs at population genesis before any lock would matter.
func (l *Locking) Seed(p float64) error { return l.inner.Seed(p) }

// MutateDrift no-ops on a locked index instead of mutating.
func (l *Locking) MutateDrift(index int, dir Direction) error {
	if index < 0 || index >= len(l.locked) {
		return ErrIndexOutOfRange
	}
	if l.locked[index] {
		return nil
	}
	return l.inner.MutateDrift(index, dir)
}

// MutateRandom no-ops on a locked index instead of mutating.
func (l *Locking) MutateRandom(index int) error {
	if index < 0 || index >= len(l.locked) {
		return ErrIndexOutOfRange
	}
	if l.locked[index] {
		return nil
	}
	return l.inner.MutateRandom(index)
}

// GetValue forwards to the inner chromosome.
func (l *Locking) GetValue(index int) (any, error) { return l.inner.GetValue(index) }

// SetValue no-ops on a locked index instead of assigning.
func (l *Locking) SetValue(index int, value any) error {
	if index < 0 || index >= len(l.locked) {
		return ErrIndexOutOfRange
	}
	if l.locked[index] {
		return nil
	}
	return l.inner.SetValue(index, value)
}

// Resize grows or shrinks both the inner chromosome and the lock bitset,
// copying min(old,new) entries and leaving new lock bits unlocked.
func (l *Locking) Resize(newLength int) {
	l.inner.Resize(newLength)
	out := make([]bool, newLength)
	copy(out, l.locked)
	l.locked = out
}

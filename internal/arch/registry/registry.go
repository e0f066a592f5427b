// Package registry provides the kernel registry for the box filter.
//
// Architecture-specific kernel packages register themselves via init()
// functions, and the boxblur package selects the best kernel at runtime
// based on detected CPU features.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"
)

// Box1DFn applies one moving-average pass to a strided sequence.
//
// It reads length samples from src at the given stride and writes length
// results to dst at the same stride. The window shrinks at both sequence
// ends; the divisor is always the count of in-range samples. dst and src
// must be distinct buffers. Preconditions (slice capacity, stride >= 1,
// windowSize in [1, length]) are validated by the caller.
type Box1DFn func(dst, src []float64, length, stride, fullWindowSize int)

// OpEntry is one registered box-filter kernel implementation.
type OpEntry struct {
	Name      string
	SIMDLevel cpu.SIMDLevel
	Priority  int
	Box1D     Box1DFn
}

// OpRegistry stores available kernel implementations.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool
}

// Global is the default box-filter kernel registry.
var Global = &OpRegistry{}

// Register adds an implementation entry.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority implementation supported by features.
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.SIMDLevel) {
			return entry
		}
	}

	return nil
}

func (r *OpRegistry) sortByPriority() {
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of entries for tests/debugging.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all entries. Intended for tests.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}

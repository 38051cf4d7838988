package breed

import (
	"sort"
	"strings"
)

// defaultGroupAffinity is the neutral affinity used when a group pair
// is absent from the matrix.
const defaultGroupAffinity = 70

// Store is the read-only breed taxonomy: a name-indexed breed table
// plus the pairwise group-affinity matrix. All lookups are O(1) map
// reads; the Store never mutates after construction, so it is safe for
// concurrent use without locking.
type Store struct {
	breeds map[string]Info
	matrix map[Group]map[Group]int
}

// NewStore builds a Store over the built-in taxonomy.
func NewStore() *Store {
	return NewStoreWith(defaultBreeds, defaultGroupMatrix)
}

// NewStoreWith builds a Store over caller-supplied data. Used by tests
// that need a controlled taxonomy.
func NewStoreWith(breeds []Info, matrix map[Group]map[Group]int) *Store {
	idx := make(map[string]Info, len(breeds))
	for _, b := range breeds {
		idx[b.Name] = b
	}
	return &Store{breeds: idx, matrix: matrix}
}

// Lookup returns the breed record for the exact name. The second
// return value reports whether the breed is known; callers degrade to
// a neutral score on a miss rather than treating it as an error.
func (s *Store) Lookup(name string) (Info, bool) {
	info, ok := s.breeds[name]
	return info, ok
}

// GroupScore returns the affinity between two groups on [0,100],
// falling back to a neutral 70 when the pair is not in the matrix.
func (s *Store) GroupScore(a, b Group) int {
	row, ok := s.matrix[a]
	if !ok {
		return defaultGroupAffinity
	}
	score, ok := row[b]
	if !ok {
		return defaultGroupAffinity
	}
	return score
}

// Search returns every breed whose name or group contains the query,
// case-insensitively. Results are sorted by name.
func (s *Store) Search(query string) []Info {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var out []Info
	for _, b := range s.breeds {
		if strings.Contains(strings.ToLower(b.Name), q) ||
			strings.Contains(strings.ToLower(string(b.Group)), q) {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// All returns every known breed sorted by name.
func (s *Store) All() []Info {
	out := make([]Info, 0, len(s.breeds))
	for _, b := range s.breeds {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Len reports the number of known breeds.
func (s *Store) Len() int {
	return len(s.breeds)
}

//Personal.AI order the ending

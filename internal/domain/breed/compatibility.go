package breed

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"sync/atomic"

	"github.com/turtacn/PetMatch-Engine/internal/infrastructure/cache"
	"github.com/turtacn/PetMatch-Engine/pkg/types/common"
)

// CompatibilityResult is the outcome of a breed pairing.
type CompatibilityResult struct {
	Score      int      `json:"score"`
	Reasons    []string `json:"reasons"`
	Confidence float64  `json:"confidence"`
}

// Ranked pairs a breed name with its compatibility score against a
// fixed reference breed.
type Ranked struct {
	Breed string `json:"breed"`
	Score int    `json:"score"`
}

// Factor weights. The four signals shift the 50-point baseline in
// proportion to their weight.
const (
	weightGroup       = 0.4
	weightSize        = 0.3
	weightEnergy      = 0.2
	weightTemperament = 0.1

	sizePenaltyPerStep   = 30
	energyPenaltyPerStep = 40
	traitBonusPerMatch   = 10

	computedConfidence = 0.95
)

// CacheStats is a point-in-time snapshot of the pair cache.
type CacheStats struct {
	Hits   uint64
	Misses uint64
	Clears uint64
	Size   int
}

// Calculator scores breed pairs against the taxonomy. Results for
// known pairs are memoized in a bounded cache keyed by the unordered
// pair, which also guarantees calculate(a,b) == calculate(b,a).
type Calculator struct {
	store *Store
	cache *cache.Bounded[CompatibilityResult]

	hits   atomic.Uint64
	misses atomic.Uint64
}

// NewCalculator builds a Calculator over the store with a pair cache
// bounded at limit entries.
func NewCalculator(store *Store, limit int) *Calculator {
	return &Calculator{
		store: store,
		cache: cache.NewBounded[CompatibilityResult](limit),
	}
}

// Calculate scores the pairing of two breeds.
//
// Unknown breeds degrade to a neutral 50 with halved confidence and
// are never cached, so a later taxonomy update is picked up
// immediately. A species mismatch is a hard 10 with full confidence.
// Everything else starts from a 50 baseline and applies the four
// weighted adjustments.
func (c *Calculator) Calculate(breedA, breedB string) CompatibilityResult {
	key := cache.PairKey(breedA, breedB)
	if res, ok := c.cache.Get(key); ok {
		c.hits.Add(1)
		return res
	}
	c.misses.Add(1)

	dataA, okA := c.store.Lookup(breedA)
	dataB, okB := c.store.Lookup(breedB)
	if !okA || !okB {
		return CompatibilityResult{
			Score:      50,
			Reasons:    []string{"Unknown breed data, using neutral baseline"},
			Confidence: 0.5,
		}
	}

	if dataA.Species != dataB.Species {
		return CompatibilityResult{
			Score: 10,
			Reasons: []string{fmt.Sprintf("Different species: %s and %s require supervised introduction",
				dataA.Species, dataB.Species)},
			Confidence: 1.0,
		}
	}

	var reasons []string
	score := 50.0

	groupScore := float64(c.store.GroupScore(dataA.Group, dataB.Group))
	score += (groupScore - 50) * weightGroup
	if groupScore > 80 {
		reasons = append(reasons, "Breeds come from compatible phylogenetic groups")
	}

	sizeDiff := math.Abs(float64(dataA.Size.Ordinal() - dataB.Size.Ordinal()))
	sizeScore := math.Max(0, 100-sizeDiff*sizePenaltyPerStep)
	score += (sizeScore - 50) * weightSize
	if sizeDiff == 0 {
		reasons = append(reasons, "Perfect match in physical size")
	} else if sizeDiff == 1 {
		reasons = append(reasons, "Compatible physical sizes")
	}

	energyDiff := math.Abs(float64(dataA.Energy.Ordinal() - dataB.Energy.Ordinal()))
	energyScore := math.Max(0, 100-energyDiff*energyPenaltyPerStep)
	score += (energyScore - 50) * weightEnergy
	if energyDiff == 0 {
		reasons = append(reasons, "Activity levels are perfectly aligned")
	}

	shared := dataA.SharedTraits(dataB)
	traitScore := math.Min(100, float64(50+len(shared)*traitBonusPerMatch))
	score += (traitScore - 50) * weightTemperament
	if len(shared) > 0 {
		reasons = append(reasons, "Shared temperament traits: "+strings.Join(shared, ", "))
	}

	if len(reasons) == 0 {
		reasons = []string{"Neutral baseline"}
	}
	result := CompatibilityResult{
		Score:      common.RoundScore(score),
		Reasons:    reasons,
		Confidence: computedConfidence,
	}
	c.cache.Put(key, result)
	return result
}

// CompatibleBreeds ranks every other known breed against the given
// one, keeping breeds scoring at least minScore, sorted descending by
// score with name as tiebreaker. Unknown reference breeds return an
// empty list.
func (c *Calculator) CompatibleBreeds(breed string, minScore int) []Ranked {
	if _, ok := c.store.Lookup(breed); !ok {
		return []Ranked{}
	}
	ranked := make([]Ranked, 0, c.store.Len())
	for _, other := range c.store.All() {
		if other.Name == breed {
			continue
		}
		res := c.Calculate(breed, other.Name)
		if res.Score >= minScore {
			ranked = append(ranked, Ranked{Breed: other.Name, Score: res.Score})
		}
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Breed < ranked[j].Breed
	})
	return ranked
}

// Stats snapshots the pair cache counters.
func (c *Calculator) Stats() CacheStats {
	return CacheStats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Clears: c.cache.Clears(),
		Size:   c.cache.Len(),
	}
}

//Personal.AI order the ending

package meal

import (
	"cmp"
	"github.com/myrjola/mealmotion/internal/profile"
	"math"
	"math/rand/v2"
	"slices"
)

const (
	// RecencyWindow is how many of the latest picks are penalized when scoring.
	RecencyWindow = 8
	// PickPool is how many of the best-scoring candidates the final pick is drawn from.
	PickPool = 5

	repeatPenalty        = 250.0
	bulkProteinWeight    = 2.0
	defaultProteinWeight = 1.2
)

// Selector picks meals for consecutive slots of one plan. It keeps a recency window shared by every slot, so a new
// Selector must be created per plan. A Selector is not safe for concurrent use.
type Selector struct {
	goal       profile.BodyGoal
	candidates []Meal
	degraded   bool
	rng        *rand.Rand
	recent     []string
}

// NewSelector filters catalog for p once. When no meal survives the filter, the full catalog is used instead and
// every selection reports itself as degraded.
func NewSelector(catalog *Catalog, p *profile.UserProfile, rng *rand.Rand) *Selector {
	candidates := Eligible(catalog.Meals(), p)
	degraded := false
	if len(candidates) == 0 {
		candidates = catalog.Meals()
		degraded = true
	}
	return &Selector{
		goal:       p.BodyGoal,
		candidates: candidates,
		degraded:   degraded,
		rng:        rng,
		recent:     make([]string, 0, RecencyWindow),
	}
}

// Eligible returns the meals matching the diet preference that do not mention any allergy or disliked food.
func Eligible(meals []Meal, p *profile.UserProfile) []Meal {
	excluded := p.ExcludedTokens()
	out := make([]Meal, 0, len(meals))
	for _, m := range meals {
		if !m.MatchesDiet(p.DietPreference) {
			continue
		}
		if slices.ContainsFunc(excluded, m.Mentions) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// Select picks a meal for a slot with the given calorie target. The second return value reports whether the
// constraint filter had to be dropped.
func (s *Selector) Select(slotTarget int) (Meal, bool) {
	type scored struct {
		meal  Meal
		score float64
	}
	ranked := make([]scored, len(s.candidates))
	for i, m := range s.candidates {
		ranked[i] = scored{meal: m, score: s.score(m, slotTarget)}
	}
	slices.SortStableFunc(ranked, func(a, b scored) int {
		return cmp.Compare(a.score, b.score)
	})

	pool := min(PickPool, len(ranked))
	chosen := ranked[s.rng.IntN(pool)].meal
	s.remember(chosen.Name)
	return chosen, s.degraded
}

// Degraded reports whether the selector fell back to the unfiltered catalog.
func (s *Selector) Degraded() bool {
	return s.degraded
}

// Recent returns the recency window, oldest first.
func (s *Selector) Recent() []string {
	return slices.Clone(s.recent)
}

func (s *Selector) score(m Meal, slotTarget int) float64 {
	weight := defaultProteinWeight
	if s.goal == profile.GoalBulk {
		weight = bulkProteinWeight
	}
	score := math.Abs(float64(m.Calories-slotTarget)) - float64(m.ProteinGrams)*weight
	if slices.Contains(s.recent, m.Name) {
		score += repeatPenalty
	}
	return score
}

func (s *Selector) remember(name string) {
	if len(s.recent) == RecencyWindow {
		s.recent = slices.Delete(s.recent, 0, 1)
	}
	s.recent = append(s.recent, name)
}

// Package planner assembles a weekly plan of meals and workouts from a user profile.
package planner

import (
	"context"
	"github.com/google/uuid"
	"github.com/myrjola/mealmotion/internal/errors"
	"github.com/myrjola/mealmotion/internal/logging"
	"github.com/myrjola/mealmotion/internal/meal"
	"github.com/myrjola/mealmotion/internal/nutrition"
	"github.com/myrjola/mealmotion/internal/profile"
	"github.com/myrjola/mealmotion/internal/workout"
	"log/slog"
	"math/rand/v2"
	"time"
)

var ErrMissingProfile = errors.NewSentinel("profile is required")

// PCG stream selectors so meal and workout randomness are independent of each other.
const (
	mealStream    = 0x6d65616c
	workoutStream = 0x776f726b
)

// Builder generates weekly plans. It is safe for concurrent use; every Build call owns its random streams and
// recency window, and only the read-only catalog is shared.
type Builder struct {
	logger  *slog.Logger
	catalog *meal.Catalog
	seed    *uint64
}

// Option configures a Builder.
type Option func(*Builder)

// WithCatalog replaces the built-in meal catalog.
func WithCatalog(c *meal.Catalog) Option {
	return func(b *Builder) {
		b.catalog = c
	}
}

// WithSeed makes every Build call draw from the same random streams, so equal profiles produce equal plans. Plan IDs
// stay unique.
func WithSeed(seed uint64) Option {
	return func(b *Builder) {
		b.seed = &seed
	}
}

// New creates a Builder using the built-in catalog unless [WithCatalog] is given.
func New(logger *slog.Logger, opts ...Option) *Builder {
	b := &Builder{
		logger:  logger,
		catalog: nil,
		seed:    nil,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.catalog == nil {
		b.catalog = meal.BuiltinCatalog()
	}
	return b
}

// Build generates the weekly plan for p. A nil profile returns [ErrMissingProfile]. The profile is expected to have
// passed [profile.UserProfile.Validate]. When the meal filter leaves nothing to choose from, meals are picked from the
// full catalog, a warning is logged and the slots are listed in [WeeklyPlan.DegradedSlots].
func (b *Builder) Build(ctx context.Context, p *profile.UserProfile) (*WeeklyPlan, error) {
	if p == nil {
		return nil, ErrMissingProfile
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "build plan")
	}

	start := time.Now()
	plan := NewWeeklyPlan(uuid.New(), p)
	ctx = logging.WithAttrs(ctx, slog.String("plan_id", plan.ID.String()))
	mealRNG, workoutRNG := b.randomStreams()

	selector := meal.NewSelector(b.catalog, p, mealRNG)
	if selector.Degraded() {
		b.logger.LogAttrs(ctx, slog.LevelWarn, "no meal satisfies the profile constraints, using the full catalog",
			slog.String("diet", string(p.DietPreference)),
			slog.Any("allergies", p.Allergies),
			slog.Any("disliked_foods", p.DislikedFoods))
	}
	for _, day := range Week {
		var dm meal.DayMeals
		for _, slot := range meal.Slots {
			m, degraded := selector.Select(slotTarget(plan.SlotTargets, slot))
			dm.Set(slot, m)
			if degraded {
				plan.DegradedSlots = append(plan.DegradedSlots, DegradedSlot{Day: day, Slot: slot})
			}
		}
		plan.PutMeals(day, dm)
		b.logger.LogAttrs(ctx, slog.LevelDebug, "planned meals",
			slog.String("day", day.String()),
			slog.Int("calories", dm.TotalCalories()),
			slog.Int("protein_g", dm.TotalProtein()))
	}

	sessions := workout.NewScheduler(workoutRNG).Week(p)
	for i, s := range sessions {
		plan.PutWorkout(Week[i], s)
	}

	b.logger.LogAttrs(ctx, slog.LevelInfo, "built weekly plan",
		slog.Int("target_calories", plan.TargetCalories),
		slog.Int("target_protein_g", plan.TargetProtein),
		slog.Int("workout_days", len(sessions)),
		slog.Int("degraded_slots", len(plan.DegradedSlots)),
		slog.Duration("duration", time.Since(start)))
	return plan, nil
}

// Catalog returns the catalog plans are built from.
func (b *Builder) Catalog() *meal.Catalog {
	return b.catalog
}

func (b *Builder) randomStreams() (*rand.Rand, *rand.Rand) {
	var seed uint64
	if b.seed != nil {
		seed = *b.seed
	} else {
		seed = rand.Uint64() //nolint:gosec // plan variety, not security.
	}
	return rand.New(rand.NewPCG(seed, mealStream)), //nolint:gosec // plan variety, not security.
		rand.New(rand.NewPCG(seed, workoutStream)) //nolint:gosec // plan variety, not security.
}

func slotTarget(s nutrition.Slots, slot meal.Slot) int {
	switch slot {
	case meal.SlotBreakfast:
		return s.Breakfast
	case meal.SlotLunch:
		return s.Lunch
	case meal.SlotDinner:
		return s.Dinner
	case meal.SlotSnack:
		return s.Snack
	}
	return 0
}

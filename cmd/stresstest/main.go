package main

import (
	"context"
	"fmt"
	"github.com/myrjola/mealmotion/internal/errors"
	"github.com/myrjola/mealmotion/internal/logging"
	"github.com/myrjola/mealmotion/internal/planner"
	"github.com/myrjola/mealmotion/internal/profile"
	"golang.org/x/sync/errgroup"
	"log/slog"
	"math/rand/v2"
	"os"
	"strconv"
	"sync/atomic"
	"time"
)

const (
	defaultPlans         = 200
	maxConcurrentBuilds  = 16
	successRateThreshold = 100.0
	percentageMultiplier = 100
	maxArgsCount         = 2
	stressTimeout        = 2 * time.Minute
)

//nolint:gochecknoglobals // token pool for randomized exclusions.
var exclusionTokens = []string{"peanut", "tuna", "beef", "eggs", "tofu", "salmon", "rice", "oats", "milk", "shrimp"}

// randomProfile returns a profile that passes validation, drawn uniformly from the accepted ranges.
func randomProfile(rng *rand.Rand, i int) *profile.UserProfile {
	weight := 45 + rng.IntN(100) //nolint:mnd // 45..144 kg.
	return profile.New(profile.UserProfile{
		Name:                     fmt.Sprintf("stress-%d", i),
		Age:                      16 + rng.IntN(70), //nolint:mnd // 16..85 years.
		HeightCm:                 150 + rng.IntN(50), //nolint:mnd // 150..199 cm.
		WeightKg:                 weight,
		TargetWeightKg:           max(30, weight-20+rng.IntN(41)), //nolint:mnd // within 20 kg of the weight.
		Gender:                   pick(rng, profile.Genders),
		ActivityLevel:            pick(rng, profile.ActivityLevels),
		BodyGoal:                 pick(rng, profile.BodyGoals),
		DietPreference:           pick(rng, profile.DietPreferences),
		IncludeWorkouts:          rng.IntN(4) != 0, //nolint:mnd // three in four plans include workouts.
		Equipment:                pick(rng, profile.Equipments),
		WorkoutDaysPerWeek:       1 + rng.IntN(7),  //nolint:mnd // 1..7 days.
		WorkoutMinutesPerSession: 20 + rng.IntN(101), //nolint:mnd // 20..120 minutes.
		Allergies:                pickTokens(rng),
		DislikedFoods:            pickTokens(rng),
	})
}

func pick[T any](rng *rand.Rand, values []T) T {
	return values[rng.IntN(len(values))]
}

func pickTokens(rng *rand.Rand) []string {
	n := rng.IntN(3) //nolint:mnd // up to two tokens.
	tokens := make([]string, n)
	for i := range tokens {
		tokens[i] = pick(rng, exclusionTokens)
	}
	return tokens
}

// stress builds n plans concurrently and returns how many passed validation and the checks of a finished plan.
func stress(ctx context.Context, logger *slog.Logger, n int, seed uint64) (int64, error) {
	var (
		succeeded atomic.Int64
		degraded  atomic.Int64
		builder   = planner.New(logger)
		rng       = rand.New(rand.NewPCG(seed, seed^0x5eed)) //nolint:gosec,mnd // load generation, not security.
		profiles  = make([]*profile.UserProfile, n)
	)
	for i := range profiles {
		profiles[i] = randomProfile(rng, i)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentBuilds)
	for i, p := range profiles {
		g.Go(func() error {
			if err := p.Validate(); err != nil {
				logger.LogAttrs(ctx, slog.LevelWarn, "generated invalid profile",
					slog.Int("index", i), errors.SlogError(err))
				return nil
			}
			plan, err := builder.Build(ctx, p)
			if err != nil {
				if ctx.Err() != nil {
					return errors.Wrap(err, "build plan", slog.Int("index", i))
				}
				logger.LogAttrs(ctx, slog.LevelWarn, "build failed", slog.Int("index", i), errors.SlogError(err))
				return nil
			}
			if err = plan.Check(); err != nil {
				logger.LogAttrs(ctx, slog.LevelWarn, "plan check failed",
					slog.Int("index", i), slog.String("plan_id", plan.ID.String()), errors.SlogError(err))
				return nil
			}
			if len(plan.DegradedSlots) > 0 {
				degraded.Add(1)
			}
			succeeded.Add(1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return succeeded.Load(), err //nolint:wrapcheck // wrapped in the goroutine.
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "degraded plans", slog.Int64("count", degraded.Load()))
	return succeeded.Load(), nil
}

func main() {
	ctx := context.Background()
	logger := logging.NewLogger(os.Stdout, slog.LevelInfo)

	if len(os.Args) > maxArgsCount {
		logger.LogAttrs(ctx, slog.LevelError, "usage: stresstest [plans]")
		os.Exit(1)
	}
	numPlans := defaultPlans
	if len(os.Args) == maxArgsCount {
		n, err := strconv.Atoi(os.Args[1])
		if err != nil || n <= 0 {
			logger.LogAttrs(ctx, slog.LevelError, "plans must be a positive integer",
				slog.String("plans", os.Args[1]))
			os.Exit(1)
		}
		numPlans = n
	}

	ctx, cancel := context.WithTimeout(ctx, stressTimeout)
	defer cancel()

	var (
		start = time.Now()
		seed  = rand.Uint64() //nolint:gosec // load generation, not security.
	)
	ctx = logging.WithAttrs(ctx, slog.Int("plans", numPlans), slog.Uint64("seed", seed))
	logger.LogAttrs(ctx, slog.LevelInfo, "starting stress test")

	succeeded, err := stress(ctx, logger, numPlans, seed)
	duration := time.Since(start)
	if err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "stress test aborted", errors.SlogError(err))
		os.Exit(1)
	}

	successRate := float64(succeeded) / float64(numPlans) * percentageMultiplier
	logger.LogAttrs(ctx, slog.LevelInfo, "stress test finished",
		slog.Int64("succeeded", succeeded),
		slog.Float64("success_rate", successRate),
		slog.Duration("duration", duration),
		slog.Duration("per_plan", duration/time.Duration(numPlans)))

	if successRate < successRateThreshold {
		logger.LogAttrs(ctx, slog.LevelError, "success rate below threshold",
			slog.Float64("threshold", successRateThreshold))
		os.Exit(1)
	}
}

package planner_test

import (
	"bytes"
	"context"
	"errors"
	"github.com/google/go-cmp/cmp"
	"github.com/myrjola/mealmotion/internal/logging"
	"github.com/myrjola/mealmotion/internal/meal"
	"github.com/myrjola/mealmotion/internal/planner"
	"github.com/myrjola/mealmotion/internal/profile"
	"github.com/myrjola/mealmotion/internal/testhelpers"
	"golang.org/x/sync/errgroup"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func sam() *profile.UserProfile {
	return profile.New(profile.UserProfile{
		Name:                     "Sam",
		Age:                      30,
		HeightCm:                 175,
		WeightKg:                 70,
		TargetWeightKg:           65,
		Gender:                   profile.GenderMale,
		ActivityLevel:            profile.ActivityModerate,
		BodyGoal:                 profile.GoalLean,
		DietPreference:           profile.DietVegetarian,
		IncludeWorkouts:          true,
		Equipment:                profile.EquipmentDumbbells,
		WorkoutDaysPerWeek:       4,
		WorkoutMinutesPerSession: 45,
		Allergies:                []string{"peanut"},
		DislikedFoods:            []string{"tofu"},
	})
}

func render(plan *planner.WeeklyPlan) []string {
	var out []string
	for _, d := range plan.Days() {
		line := d.Weekday.String()
		for _, slot := range meal.Slots {
			line += "|" + d.Meals.Meal(slot).Name
		}
		if d.Workout != nil {
			line += "|" + d.Workout.String()
		}
		out = append(out, line)
	}
	return out
}

func TestBuild(t *testing.T) {
	logger := testhelpers.NewLogger(testhelpers.NewWriter(t))
	p := sam()

	plan, err := planner.New(logger).Build(t.Context(), p)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if err = plan.Check(); err != nil {
		t.Errorf("Check() error = %v", err)
	}
	if plan.TargetCalories != 2556-400 {
		t.Errorf("TargetCalories = %d, want %d", plan.TargetCalories, 2556-400)
	}
	if plan.TargetProtein != 119 {
		t.Errorf("TargetProtein = %d, want 119", plan.TargetProtein)
	}
	if len(plan.DegradedSlots) != 0 {
		t.Errorf("DegradedSlots = %v, want none", plan.DegradedSlots)
	}

	days := plan.Days()
	gotDays := make([]time.Weekday, len(days))
	for i, d := range days {
		gotDays[i] = d.Weekday
		if d.Workout == nil {
			t.Errorf("%s has no workout", d.Weekday)
		}
	}
	if diff := cmp.Diff(planner.Week, gotDays); diff != "" {
		t.Errorf("day order mismatch (-want +got):\n%s", diff)
	}
	for _, rest := range []time.Weekday{time.Tuesday, time.Friday, time.Sunday} {
		if s, _ := plan.Workout(rest); !s.IsRest() {
			t.Errorf("%s should be a rest day, got %q", rest, s.Title)
		}
	}
}

func TestBuildMissingProfile(t *testing.T) {
	logger := testhelpers.NewLogger(testhelpers.NewWriter(t))
	if _, err := planner.New(logger).Build(t.Context(), nil); !errors.Is(err, planner.ErrMissingProfile) {
		t.Errorf("Build(nil) error = %v, want ErrMissingProfile", err)
	}
}

func TestBuildCancelled(t *testing.T) {
	logger := testhelpers.NewLogger(testhelpers.NewWriter(t))
	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	if _, err := planner.New(logger).Build(ctx, sam()); !errors.Is(err, context.Canceled) {
		t.Errorf("Build() error = %v, want context.Canceled", err)
	}
}

func TestBuildWithoutWorkouts(t *testing.T) {
	logger := testhelpers.NewLogger(testhelpers.NewWriter(t))
	p := sam()
	p.IncludeWorkouts = false
	plan, err := planner.New(logger).Build(t.Context(), p)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if plan.HasWorkouts() {
		t.Error("HasWorkouts() = true, want false")
	}
	if len(plan.Days()) != 7 {
		t.Errorf("len(Days()) = %d, want 7", len(plan.Days()))
	}
	for _, d := range plan.Days() {
		if d.Workout != nil {
			t.Errorf("%s has a workout", d.Weekday)
		}
	}
}

func TestBuildSeeded(t *testing.T) {
	logger := testhelpers.NewLogger(testhelpers.NewWriter(t))
	b := planner.New(logger, planner.WithSeed(2024))

	first, err := b.Build(t.Context(), sam())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	second, err := b.Build(t.Context(), sam())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if diff := cmp.Diff(render(first), render(second)); diff != "" {
		t.Errorf("seeded builds differ (-first +second):\n%s", diff)
	}
	if first.ID == second.ID {
		t.Error("plan IDs should be unique")
	}

	// Meals do not depend on whether workouts are scheduled.
	p := sam()
	p.IncludeWorkouts = false
	third, err := b.Build(t.Context(), p)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	for i, d := range third.Days() {
		if diff := cmp.Diff(first.Days()[i].Meals, d.Meals); diff != "" {
			t.Errorf("%s meals changed when workouts were dropped (-with +without):\n%s", d.Weekday, diff)
		}
	}
}

func TestBuildDegraded(t *testing.T) {
	catalog, err := meal.NewCatalog([]meal.Meal{
		{Name: "Peanut Noodles", Calories: 600, ProteinGrams: 15, Ingredients: []string{"noodles", "peanut"}},
		{Name: "Satay", Calories: 450, ProteinGrams: 30, Ingredients: []string{"chicken", "peanut sauce"}},
	})
	if err != nil {
		t.Fatalf("NewCatalog() error = %v", err)
	}
	var buf bytes.Buffer
	logger := logging.NewLogger(&buf, slog.LevelInfo)

	plan, err := planner.New(logger, planner.WithCatalog(catalog)).Build(t.Context(), sam())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if got := len(plan.DegradedSlots); got != 28 {
		t.Errorf("len(DegradedSlots) = %d, want 28", got)
	}
	if !plan.IsDegraded(time.Sunday, meal.SlotSnack) {
		t.Error("IsDegraded(Sunday, Snack) = false")
	}
	if err = plan.Check(); err != nil {
		t.Errorf("Check() error = %v, degraded slots are exempt", err)
	}

	logs := buf.String()
	for _, want := range []string{"level=WARN", "using the full catalog", "plan_id=" + plan.ID.String(), "degraded_slots=28"} {
		if !strings.Contains(logs, want) {
			t.Errorf("logs do not contain %q:\n%s", want, logs)
		}
	}
}

func TestBuildConcurrent(t *testing.T) {
	logger := testhelpers.NewLogger(testhelpers.NewWriter(t))
	b := planner.New(logger, planner.WithSeed(7))
	want, err := b.Build(t.Context(), sam())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	const builds = 32
	plans := make([]*planner.WeeklyPlan, builds)
	g, ctx := errgroup.WithContext(t.Context())
	for i := range builds {
		g.Go(func() error {
			plan, buildErr := b.Build(ctx, sam())
			plans[i] = plan
			return buildErr
		})
	}
	if err = g.Wait(); err != nil {
		t.Fatalf("concurrent Build() error = %v", err)
	}
	for i, plan := range plans {
		if diff := cmp.Diff(render(want), render(plan)); diff != "" {
			t.Errorf("build %d differs (-want +got):\n%s", i, diff)
		}
	}
}

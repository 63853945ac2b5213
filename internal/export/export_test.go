package export_test

import (
	"github.com/google/uuid"
	"github.com/myrjola/mealmotion/internal/meal"
	"github.com/myrjola/mealmotion/internal/planner"
	"github.com/myrjola/mealmotion/internal/profile"
	"github.com/myrjola/mealmotion/internal/workout"
	"testing"
	"time"
)

var planID = uuid.MustParse("6f1c2a9e-3b7d-4e21-9a55-0c8d2f4b1e77")

func catalogMeal(t *testing.T, name string) meal.Meal {
	t.Helper()
	for _, m := range meal.BuiltinCatalog().Meals() {
		if m.Name == name {
			return m
		}
	}
	t.Fatalf("meal %q not in catalog", name)
	return meal.Meal{} //nolint:exhaustruct // unreachable.
}

// fixturePlan is a hand-assembled week: every day serves the same four meals, Monday is a push day and the rest
// are rest days.
func fixturePlan(t *testing.T, withWorkouts bool) *planner.WeeklyPlan {
	t.Helper()
	p := profile.New(profile.UserProfile{
		Name:                     "Sam <Tester>",
		Age:                      30,
		HeightCm:                 175,
		WeightKg:                 70,
		TargetWeightKg:           70,
		Gender:                   profile.GenderMale,
		ActivityLevel:            profile.ActivityModerate,
		BodyGoal:                 profile.GoalBulk,
		DietPreference:           profile.DietNone,
		IncludeWorkouts:          withWorkouts,
		Equipment:                profile.EquipmentNone,
		WorkoutDaysPerWeek:       1,
		WorkoutMinutesPerSession: 60,
		Allergies:                nil,
		DislikedFoods:            nil,
	})
	plan := planner.NewWeeklyPlan(planID, p)
	day := meal.DayMeals{
		Breakfast: catalogMeal(t, "Oatmeal + Berries"),
		Lunch:     catalogMeal(t, "Tuna + Rice Bowl"),
		Dinner:    catalogMeal(t, "Beef Stir Fry"),
		Snack:     catalogMeal(t, "Cottage Cheese + Fruit"),
	}
	for _, wd := range planner.Week {
		plan.PutMeals(wd, day)
		if !withWorkouts {
			continue
		}
		session := workout.RestSession()
		if wd == time.Monday {
			session = workout.Session{
				Title: "Push (Chest/Shoulders/Triceps)",
				Moves: []workout.Move{
					workout.Mobility{Name: "Warm-up", Minutes: 6},
					workout.Strength{Name: "Push-ups", Sets: 4, Reps: 8},
					workout.Cardio{Name: "Incline walk", Minutes: 10},
				},
			}
		}
		plan.PutWorkout(wd, session)
	}
	return plan
}

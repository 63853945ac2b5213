package planner

import (
	"fmt"
	"github.com/google/uuid"
	"github.com/myrjola/mealmotion/internal/errors"
	"github.com/myrjola/mealmotion/internal/meal"
	"github.com/myrjola/mealmotion/internal/nutrition"
	"github.com/myrjola/mealmotion/internal/profile"
	"github.com/myrjola/mealmotion/internal/workout"
	"log/slog"
	"time"
)

// Week lists the plan days, Monday first.
var Week = []time.Weekday{ //nolint:gochecknoglobals // fixed day order.
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday, time.Sunday,
}

// DegradedSlot identifies a meal that was picked from the unfiltered catalog.
type DegradedSlot struct {
	Day  time.Weekday
	Slot meal.Slot
}

func (d DegradedSlot) String() string {
	return fmt.Sprintf("%s %s", d.Day, d.Slot)
}

// Day is one plan day. Workout is nil when the plan has no workouts.
type Day struct {
	Weekday time.Weekday
	Meals   meal.DayMeals
	Workout *workout.Session
}

// WeeklyPlan is the generated week of meals and workouts.
type WeeklyPlan struct {
	ID             uuid.UUID
	Profile        *profile.UserProfile
	TargetCalories int
	TargetProtein  int
	SlotTargets    nutrition.Slots
	// DegradedSlots lists the meals chosen without the diet, allergy and dislike filter.
	DegradedSlots []DegradedSlot

	meals    map[time.Weekday]meal.DayMeals
	workouts map[time.Weekday]workout.Session
}

// NewWeeklyPlan creates an empty plan with targets captured from p.
func NewWeeklyPlan(id uuid.UUID, p *profile.UserProfile) *WeeklyPlan {
	target := nutrition.TargetCalories(p)
	return &WeeklyPlan{
		ID:             id,
		Profile:        p,
		TargetCalories: target,
		TargetProtein:  nutrition.TargetProtein(p),
		SlotTargets:    nutrition.SlotTargets(target),
		DegradedSlots:  nil,
		meals:          make(map[time.Weekday]meal.DayMeals, len(Week)),
		workouts:       make(map[time.Weekday]workout.Session, len(Week)),
	}
}

// PutMeals sets the meals of day.
func (p *WeeklyPlan) PutMeals(day time.Weekday, meals meal.DayMeals) {
	p.meals[day] = meals
}

// PutWorkout sets the workout of day.
func (p *WeeklyPlan) PutWorkout(day time.Weekday, session workout.Session) {
	p.workouts[day] = session
}

// Meals returns the meals of day.
func (p *WeeklyPlan) Meals(day time.Weekday) (meal.DayMeals, bool) {
	m, ok := p.meals[day]
	return m, ok
}

// Workout returns the workout of day.
func (p *WeeklyPlan) Workout(day time.Weekday) (workout.Session, bool) {
	s, ok := p.workouts[day]
	return s, ok
}

// HasWorkouts reports whether any workout was scheduled.
func (p *WeeklyPlan) HasWorkouts() bool {
	return len(p.workouts) > 0
}

// Days returns the days that have meals, Monday first.
func (p *WeeklyPlan) Days() []Day {
	days := make([]Day, 0, len(Week))
	for _, wd := range Week {
		m, ok := p.meals[wd]
		if !ok {
			continue
		}
		d := Day{Weekday: wd, Meals: m, Workout: nil}
		if s, hasWorkout := p.workouts[wd]; hasWorkout {
			d.Workout = &s
		}
		days = append(days, d)
	}
	return days
}

// IsDegraded reports whether the meal in slot on day was chosen without the constraint filter.
func (p *WeeklyPlan) IsDegraded(day time.Weekday, slot meal.Slot) bool {
	for _, d := range p.DegradedSlots {
		if d.Day == day && d.Slot == slot {
			return true
		}
	}
	return false
}

// Check verifies the shape of a finished plan: seven meal days, either seven or no workouts, slot targets summing to
// the daily target, and meals honoring the profile constraints wherever the filter was not dropped.
func (p *WeeklyPlan) Check() error {
	var errs []error
	if len(p.meals) != len(Week) {
		errs = append(errs, errors.New("plan does not cover the week", slog.Int("meal_days", len(p.meals))))
	}
	if n := len(p.workouts); n != 0 && n != len(Week) {
		errs = append(errs, errors.New("partial workout week", slog.Int("workout_days", n)))
	}
	if p.SlotTargets.Total() != p.TargetCalories {
		errs = append(errs, errors.New("slot targets do not sum to the daily target",
			slog.Int("slot_total", p.SlotTargets.Total()), slog.Int("target_calories", p.TargetCalories)))
	}
	excluded := p.Profile.ExcludedTokens()
	for _, d := range p.Days() {
		for _, slot := range meal.Slots {
			if p.IsDegraded(d.Weekday, slot) {
				continue
			}
			m := d.Meals.Meal(slot)
			if !m.MatchesDiet(p.Profile.DietPreference) {
				errs = append(errs, errors.New("meal violates diet", slog.String("day", d.Weekday.String()),
					slog.String("meal", m.Name), slog.String("diet", string(p.Profile.DietPreference))))
			}
			for _, token := range excluded {
				if m.Mentions(token) {
					errs = append(errs, errors.New("meal contains excluded food", slog.String("day", d.Weekday.String()),
						slog.String("meal", m.Name), slog.String("token", token)))
				}
			}
		}
	}
	return errors.Join(errs...)
}

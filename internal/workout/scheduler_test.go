package workout_test

import (
	"github.com/google/go-cmp/cmp"
	"github.com/myrjola/mealmotion/internal/profile"
	"github.com/myrjola/mealmotion/internal/workout"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"
)

func trainee(goal profile.BodyGoal, equipment profile.Equipment, days, minutes int) *profile.UserProfile {
	return profile.New(profile.UserProfile{ //nolint:exhaustruct // scheduler only reads workout fields.
		Name:                     "Sam",
		BodyGoal:                 goal,
		IncludeWorkouts:          true,
		Equipment:                equipment,
		WorkoutDaysPerWeek:       days,
		WorkoutMinutesPerSession: minutes,
	})
}

func newScheduler(seed uint64) *workout.Scheduler {
	return workout.NewScheduler(rand.New(rand.NewPCG(seed, seed)))
}

func TestTrainingDays(t *testing.T) {
	tests := []struct {
		n    int
		want []int
	}{
		{n: -3, want: []int{2}},
		{n: 0, want: []int{2}},
		{n: 1, want: []int{2}},
		{n: 2, want: []int{1, 4}},
		{n: 3, want: []int{0, 2, 4}},
		{n: 4, want: []int{0, 2, 3, 5}},
		{n: 5, want: []int{0, 1, 3, 4, 5}},
		{n: 6, want: []int{0, 1, 2, 3, 4, 5}},
		{n: 7, want: []int{0, 1, 2, 3, 4, 5, 6}},
		{n: 12, want: []int{0, 1, 2, 3, 4, 5, 6}},
	}
	for _, tt := range tests {
		got := workout.TrainingDays(tt.n)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("TrainingDays(%d) mismatch (-want +got):\n%s", tt.n, diff)
		}
	}

	// The returned slice is a copy.
	workout.TrainingDays(4)[0] = 6
	if workout.TrainingDays(4)[0] != 0 {
		t.Error("TrainingDays exposed its lookup table")
	}
}

func TestClampMinutes(t *testing.T) {
	for in, want := range map[int]int{0: 20, 20: 20, 45: 45, 120: 120, 300: 120} {
		if got := workout.ClampMinutes(in); got != want {
			t.Errorf("ClampMinutes(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestWeekRestDays(t *testing.T) {
	week := newScheduler(1).Week(trainee(profile.GoalLean, profile.EquipmentNone, 4, 45))
	if len(week) != workout.DaysPerWeek {
		t.Fatalf("len(Week()) = %d, want 7", len(week))
	}
	training := workout.TrainingDays(4)
	for day, session := range week {
		if slices.Contains(training, day) {
			if session.IsRest() {
				t.Errorf("day %d is a training day but got a rest session", day)
			}
			continue
		}
		want := workout.Session{
			Title: "Rest / Recovery",
			Moves: []workout.Move{workout.Mobility{Name: "Easy walk + stretching", Minutes: 20}},
		}
		if diff := cmp.Diff(want, session); diff != "" {
			t.Errorf("day %d rest session mismatch (-want +got):\n%s", day, diff)
		}
	}
}

func TestWeekOptOut(t *testing.T) {
	p := trainee(profile.GoalBulk, profile.EquipmentFullGym, 5, 60)
	p.IncludeWorkouts = false
	if week := newScheduler(1).Week(p); len(week) != 0 {
		t.Errorf("Week() = %d sessions, want none", len(week))
	}
}

func TestSplitTitles(t *testing.T) {
	tests := []struct {
		goal profile.BodyGoal
		want []string
	}{
		{
			goal: profile.GoalBulk,
			want: []string{
				"Push (Chest/Shoulders/Triceps)", "Pull (Back/Biceps)", "Legs (Strength)", "Upper (Hypertrophy)",
				"Lower (Hypertrophy)", "Push (Chest/Shoulders/Triceps)", "Pull (Back/Biceps)",
			},
		},
		{
			goal: profile.GoalLean,
			want: []string{
				"Upper Body Strength", "Cardio + Core", "Upper Body Strength", "Cardio + Core",
				"Full Body (Metabolic)", "Lower Body Strength", "Cardio + Core",
			},
		},
		{
			goal: profile.GoalTone,
			want: []string{
				"Full Body (Tone)", "Cardio + Core", "Upper (Tone)", "Lower (Tone)", "Full Body (Tone)",
				"Cardio + Core", "Upper (Tone)",
			},
		},
	}
	for _, tt := range tests {
		t.Run(string(tt.goal), func(t *testing.T) {
			week := newScheduler(3).Week(trainee(tt.goal, profile.EquipmentDumbbells, 7, 45))
			got := make([]string, len(week))
			for i, s := range week {
				got[i] = s.Title
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("titles mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestStrengthSession(t *testing.T) {
	tests := []struct {
		name      string
		goal      profile.BodyGoal
		day       int
		equipment profile.Equipment
		minutes   int
		category  workout.Category
		warmUp    int
		maxMoves  int
		sets      int
		reps      int
		bonus     workout.Move
	}{
		{
			name: "bulk push with finisher", goal: profile.GoalBulk, day: 0, equipment: profile.EquipmentFullGym,
			minutes: 60, category: workout.CategoryPush, warmUp: 6, maxMoves: 8, sets: 4, reps: 8,
			bonus: workout.Cardio{Name: "Incline walk", Minutes: 10},
		},
		{
			name: "bulk pull without finisher", goal: profile.GoalBulk, day: 1, equipment: profile.EquipmentNone,
			minutes: 59, category: workout.CategoryPull, warmUp: 6, maxMoves: 8, sets: 4, reps: 8,
		},
		{
			name: "bulk legs with stretching", goal: profile.GoalBulk, day: 2, equipment: profile.EquipmentDumbbells,
			minutes: 55, category: workout.CategoryLegs, warmUp: 6, maxMoves: 8, sets: 4, reps: 8,
			bonus: workout.Mobility{Name: "Stretching", Minutes: 8},
		},
		{
			name: "full gym upper fills the cap", goal: profile.GoalBulk, day: 3, equipment: profile.EquipmentFullGym,
			minutes: 50, category: workout.CategoryUpper, warmUp: 5, maxMoves: 8, sets: 4, reps: 10,
			bonus: workout.Core{Name: "Side plank", Seconds: 40},
		},
		{
			name: "lean lower with hollow hold", goal: profile.GoalLean, day: 5, equipment: profile.EquipmentNone,
			minutes: 45, category: workout.CategoryLower, warmUp: 5, maxMoves: 8, sets: 3, reps: 12,
			bonus: workout.Core{Name: "Hollow hold", Seconds: 30},
		},
		{
			name: "tone full body capped at seven", goal: profile.GoalTone, day: 0, equipment: profile.EquipmentFullGym,
			minutes: 45, category: workout.CategoryFullBody, warmUp: 5, maxMoves: 7, sets: 3, reps: 12,
			bonus: workout.Cardio{Name: "Brisk walk", Minutes: 10},
		},
		{
			name: "short full body", goal: profile.GoalLean, day: 4, equipment: profile.EquipmentNone,
			minutes: 30, category: workout.CategoryFullBody, warmUp: 5, maxMoves: 7, sets: 3, reps: 12,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := newScheduler(9).Session(tt.day, trainee(tt.goal, tt.equipment, 7, tt.minutes))

			if diff := cmp.Diff(workout.Move(workout.Mobility{Name: "Warm-up", Minutes: tt.warmUp}), session.Moves[0]); diff != "" {
				t.Errorf("warm-up mismatch (-want +got):\n%s", diff)
			}

			moves := session.Moves
			if tt.bonus != nil {
				last := moves[len(moves)-1]
				if diff := cmp.Diff(tt.bonus, last); diff != "" {
					t.Errorf("finisher mismatch (-want +got):\n%s", diff)
				}
				moves = moves[:len(moves)-1]
			}

			pool := workout.Pool(tt.category, tt.equipment)
			wantStrength := min(len(pool), tt.maxMoves-1)
			if got := len(moves) - 1; got != wantStrength {
				t.Errorf("strength moves = %d, want %d", got, wantStrength)
			}
			seen := map[string]bool{}
			for _, m := range moves[1:] {
				s, ok := m.(workout.Strength)
				if !ok {
					t.Fatalf("expected strength move, got %T", m)
				}
				if !slices.Contains(pool, s.Name) {
					t.Errorf("%q is not in the %s/%s pool", s.Name, tt.category, tt.equipment)
				}
				if seen[s.Name] {
					t.Errorf("%q picked twice", s.Name)
				}
				seen[s.Name] = true
				if s.Sets != tt.sets || s.Reps != tt.reps {
					t.Errorf("%q prescription = %dx%d, want %dx%d", s.Name, s.Sets, s.Reps, tt.sets, tt.reps)
				}
			}
		})
	}
}

func TestCardioSession(t *testing.T) {
	tests := []struct {
		name       string
		equipment  profile.Equipment
		minutes    int
		wantCardio workout.Cardio
	}{
		{name: "short", equipment: profile.EquipmentNone, minutes: 20, wantCardio: workout.Cardio{Name: "Brisk walk / Jog", Minutes: 15}},
		{name: "mid", equipment: profile.EquipmentDumbbells, minutes: 45, wantCardio: workout.Cardio{Name: "Brisk walk / Jog", Minutes: 35}},
		{name: "long gym", equipment: profile.EquipmentFullGym, minutes: 90, wantCardio: workout.Cardio{Name: "Treadmill / Bike", Minutes: 40}},
		{name: "clamped request", equipment: profile.EquipmentNone, minutes: 5, wantCardio: workout.Cardio{Name: "Brisk walk / Jog", Minutes: 15}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := newScheduler(1).Session(1, trainee(profile.GoalLean, tt.equipment, 7, tt.minutes))
			want := workout.Session{
				Title: "Cardio + Core",
				Moves: []workout.Move{
					tt.wantCardio,
					workout.Core{Name: "Plank", Seconds: 45},
					workout.Core{Name: "Dead bug", Seconds: 40},
					workout.Mobility{Name: "Stretching", Minutes: 8},
				},
			}
			if diff := cmp.Diff(want, session); diff != "" {
				t.Errorf("session mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSessionString(t *testing.T) {
	s := workout.Session{
		Title: "Push",
		Moves: []workout.Move{
			workout.Mobility{Name: "Warm-up", Minutes: 6},
			workout.Strength{Name: "Push-ups", Sets: 4, Reps: 8},
			workout.Core{Name: "Plank", Seconds: 45},
			workout.Cardio{Name: "Incline walk", Minutes: 10},
		},
	}
	want := "Push: Warm-up: 6 min | Push-ups: 4x8 | Plank: 45 sec | Incline walk: 10 min"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if s.IsRest() {
		t.Error("IsRest() = true for a training session")
	}
	if !workout.RestSession().IsRest() {
		t.Error("IsRest() = false for the rest session")
	}
}

func TestSameSeedSameWeek(t *testing.T) {
	p := trainee(profile.GoalBulk, profile.EquipmentFullGym, 6, 75)
	render := func(week []workout.Session) string {
		parts := make([]string, len(week))
		for i, s := range week {
			parts[i] = s.String()
		}
		return strings.Join(parts, "\n")
	}
	first := render(newScheduler(11).Week(p))
	second := render(newScheduler(11).Week(p))
	if first != second {
		t.Errorf("same seed produced different weeks:\n%s\n---\n%s", first, second)
	}
}

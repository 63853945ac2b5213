package workout

import (
	"github.com/myrjola/mealmotion/internal/profile"
	"math/rand/v2"
)

// DaysPerWeek is the number of days in a scheduled week, Monday first.
const DaysPerWeek = 7

// Session length bounds in minutes.
const (
	MinSessionMinutes = 20
	MaxSessionMinutes = 120
)

// RestTitle is the title of the session placed on non-training days.
const RestTitle = "Rest / Recovery"

const (
	cardioSessionTitle = "Cardio + Core"
	minCardioMinutes   = 15
	maxCardioMinutes   = 40
	cardioCooldown     = 10
	restWalkMinutes    = 20
	stretchMinutes     = 8
)

// trainingDayPatterns spreads n sessions over the week, indexed by n-1. Monday is day 0.
//
//nolint:gochecknoglobals // read-only lookup table.
var trainingDayPatterns = [DaysPerWeek][]int{
	{2},
	{1, 4},
	{0, 2, 4},
	{0, 2, 3, 5},
	{0, 1, 3, 4, 5},
	{0, 1, 2, 3, 4, 5},
	{0, 1, 2, 3, 4, 5, 6},
}

// strengthRule configures one strength session category.
type strengthRule struct {
	// warmUpMinutes is the length of the opening mobility move.
	warmUpMinutes int
	// maxMoves caps the session length, warm-up included.
	maxMoves int
	// bonusAtMinutes is the session length from which bonus is appended.
	bonusAtMinutes int
	bonus          Move
}

//nolint:gochecknoglobals,mnd // read-only lookup table.
var strengthRules = map[Category]strengthRule{
	CategoryFullBody: {warmUpMinutes: 5, maxMoves: 7, bonusAtMinutes: 45, bonus: Cardio{Name: "Brisk walk", Minutes: 10}},
	CategoryUpper:    {warmUpMinutes: 5, maxMoves: 8, bonusAtMinutes: 50, bonus: Core{Name: "Side plank", Seconds: 40}},
	CategoryLower:    {warmUpMinutes: 5, maxMoves: 8, bonusAtMinutes: 45, bonus: Core{Name: "Hollow hold", Seconds: 30}},
	CategoryPush:     {warmUpMinutes: 6, maxMoves: 8, bonusAtMinutes: 60, bonus: Cardio{Name: "Incline walk", Minutes: 10}},
	CategoryPull:     {warmUpMinutes: 6, maxMoves: 8, bonusAtMinutes: 60, bonus: Core{Name: "Plank", Seconds: 45}},
	CategoryLegs:     {warmUpMinutes: 6, maxMoves: 8, bonusAtMinutes: 55, bonus: Mobility{Name: "Stretching", Minutes: 8}},
}

// dayPlan is what a goal split prescribes for one training day.
type dayPlan struct {
	title    string
	cardio   bool
	category Category
	sets     int
	reps     int
}

// Scheduler builds weekly workout schedules. It is not safe for concurrent use because it owns a random source.
type Scheduler struct {
	rng *rand.Rand
}

// NewScheduler creates a Scheduler drawing exercise order from rng.
func NewScheduler(rng *rand.Rand) *Scheduler {
	return &Scheduler{rng: rng}
}

// TrainingDays returns the training day indexes for n sessions per week, Monday being 0. n is clamped to [1, 7].
func TrainingDays(n int) []int {
	n = max(1, min(DaysPerWeek, n))
	out := make([]int, len(trainingDayPatterns[n-1]))
	copy(out, trainingDayPatterns[n-1])
	return out
}

// ClampMinutes limits a requested session length to [MinSessionMinutes, MaxSessionMinutes].
func ClampMinutes(minutes int) int {
	return max(MinSessionMinutes, min(MaxSessionMinutes, minutes))
}

// RestSession is the session placed on non-training days.
func RestSession() Session {
	return Session{
		Title: RestTitle,
		Moves: []Move{Mobility{Name: "Easy walk + stretching", Minutes: restWalkMinutes}},
	}
}

// Week returns one session per day, Monday first. It returns nil when the profile opts out of workouts.
func (s *Scheduler) Week(p *profile.UserProfile) []Session {
	if !p.IncludeWorkouts {
		return nil
	}
	training := make(map[int]bool, DaysPerWeek)
	for _, d := range TrainingDays(p.WorkoutDaysPerWeek) {
		training[d] = true
	}

	week := make([]Session, DaysPerWeek)
	for day := range DaysPerWeek {
		if !training[day] {
			week[day] = RestSession()
			continue
		}
		week[day] = s.Session(day, p)
	}
	return week
}

// Session builds the training session for the given day index from the profile's goal, equipment and session
// length.
func (s *Scheduler) Session(day int, p *profile.UserProfile) Session {
	minutes := ClampMinutes(p.WorkoutMinutesPerSession)
	plan := split(p.BodyGoal, day)
	if plan.cardio {
		return cardioSession(plan.title, p.Equipment, minutes)
	}
	return s.strengthSession(plan, p.Equipment, minutes)
}

// split maps a goal and day index onto the rotation for that goal.
//
//nolint:mnd // sets and reps of each split.
func split(goal profile.BodyGoal, day int) dayPlan {
	switch goal {
	case profile.GoalBulk:
		switch day % 5 {
		case 0:
			return dayPlan{title: "Push (Chest/Shoulders/Triceps)", cardio: false, category: CategoryPush, sets: 4, reps: 8}
		case 1:
			return dayPlan{title: "Pull (Back/Biceps)", cardio: false, category: CategoryPull, sets: 4, reps: 8}
		case 2:
			return dayPlan{title: "Legs (Strength)", cardio: false, category: CategoryLegs, sets: 4, reps: 8}
		case 3:
			return dayPlan{title: "Upper (Hypertrophy)", cardio: false, category: CategoryUpper, sets: 4, reps: 10}
		default:
			return dayPlan{title: "Lower (Hypertrophy)", cardio: false, category: CategoryLower, sets: 4, reps: 10}
		}
	case profile.GoalTone:
		switch day % 4 {
		case 0:
			return dayPlan{title: "Full Body (Tone)", cardio: false, category: CategoryFullBody, sets: 3, reps: 12}
		case 1:
			return dayPlan{title: cardioSessionTitle, cardio: true, category: "", sets: 0, reps: 0}
		case 2:
			return dayPlan{title: "Upper (Tone)", cardio: false, category: CategoryUpper, sets: 3, reps: 12}
		default:
			return dayPlan{title: "Lower (Tone)", cardio: false, category: CategoryLower, sets: 3, reps: 12}
		}
	case profile.GoalLean:
	}

	switch day % 5 {
	case 1, 3:
		return dayPlan{title: cardioSessionTitle, cardio: true, category: "", sets: 0, reps: 0}
	case 4:
		return dayPlan{title: "Full Body (Metabolic)", cardio: false, category: CategoryFullBody, sets: 3, reps: 12}
	}
	if day%2 == 0 {
		return dayPlan{title: "Upper Body Strength", cardio: false, category: CategoryUpper, sets: 3, reps: 10}
	}
	return dayPlan{title: "Lower Body Strength", cardio: false, category: CategoryLower, sets: 3, reps: 12}
}

// strengthSession opens with a warm-up, then takes shuffled exercises from the pool until the move cap is reached.
// Long enough sessions get a category specific finisher.
func (s *Scheduler) strengthSession(plan dayPlan, equipment profile.Equipment, minutes int) Session {
	rule := strengthRules[plan.category]
	moves := make([]Move, 0, rule.maxMoves+1)
	moves = append(moves, Mobility{Name: "Warm-up", Minutes: rule.warmUpMinutes})

	for _, name := range s.shuffled(Pool(plan.category, equipment)) {
		if len(moves) >= rule.maxMoves {
			break
		}
		moves = append(moves, Strength{Name: name, Sets: plan.sets, Reps: plan.reps})
	}

	if minutes >= rule.bonusAtMinutes {
		moves = append(moves, rule.bonus)
	}
	return Session{Title: plan.title, Moves: moves}
}

func cardioSession(title string, equipment profile.Equipment, minutes int) Session {
	cardioMinutes := max(minCardioMinutes, min(maxCardioMinutes, minutes-cardioCooldown))
	return Session{
		Title: title,
		Moves: []Move{
			Cardio{Name: cardioName(equipment), Minutes: cardioMinutes},
			Core{Name: "Plank", Seconds: 45},    //nolint:mnd // fixed hold.
			Core{Name: "Dead bug", Seconds: 40}, //nolint:mnd // fixed hold.
			Mobility{Name: "Stretching", Minutes: stretchMinutes},
		},
	}
}

// shuffled returns names in random order drawn from the scheduler's source.
func (s *Scheduler) shuffled(names []string) []string {
	s.rng.Shuffle(len(names), func(i, j int) {
		names[i], names[j] = names[j], names[i]
	})
	return names
}

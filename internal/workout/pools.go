package workout

import (
	"github.com/myrjola/mealmotion/internal/profile"
	"slices"
)

// exercisePools lists exercise names per category and equipment tier. Legs sessions draw from the lower pool.
//
//nolint:gochecknoglobals // read-only lookup table.
var exercisePools = map[Category]map[profile.Equipment][]string{
	CategoryUpper: {
		profile.EquipmentNone: {
			"Push-ups", "Pike push-ups", "Inverted rows (under table)", "Chair dips", "Superman holds",
		},
		profile.EquipmentDumbbells: {
			"Dumbbell bench press", "One-arm dumbbell row", "Dumbbell shoulder press", "Dumbbell curls",
			"Triceps extensions",
		},
		profile.EquipmentFullGym: {
			"Bench press", "Lat pulldown", "Seated row", "Incline dumbbell press", "Cable fly", "Triceps dips",
			"Biceps curls",
		},
	},
	CategoryLower: {
		profile.EquipmentNone:      {"Bodyweight squats", "Lunges", "Glute bridge", "Step-ups", "Calf raises"},
		profile.EquipmentDumbbells: {"Goblet squat", "Romanian deadlift (DB)", "Walking lunges", "Hip thrust", "Calf raises"},
		profile.EquipmentFullGym: {
			"Back squat", "Deadlift", "Leg press", "Hamstring curl", "Leg extension", "Hip thrust",
		},
	},
	CategoryFullBody: {
		profile.EquipmentNone: {
			"Push-ups", "Bodyweight squats", "Lunges", "Burpees", "Mountain climbers", "Glute bridge",
		},
		profile.EquipmentDumbbells: {
			"Goblet squat", "Dumbbell row", "Dumbbell press", "Romanian deadlift (DB)", "Dumbbell thrusters",
			"Farmer carry",
		},
		profile.EquipmentFullGym: {"Squat", "Bench press", "Row", "Deadlift", "Overhead press", "Lat pulldown"},
	},
	CategoryPush: {
		profile.EquipmentNone:      {"Push-ups", "Pike push-ups", "Chair dips", "Diamond push-ups"},
		profile.EquipmentDumbbells: {"Dumbbell bench press", "Dumbbell shoulder press", "Dumbbell fly", "Triceps extensions"},
		profile.EquipmentFullGym: {
			"Bench press", "Incline bench press", "Overhead press", "Cable fly", "Triceps pushdown",
		},
	},
	CategoryPull: {
		profile.EquipmentNone:      {"Inverted rows (under table)", "Towel rows", "Superman holds", "Biceps isometrics"},
		profile.EquipmentDumbbells: {"One-arm dumbbell row", "Dumbbell curls", "Rear delt raises", "Hammer curls"},
		profile.EquipmentFullGym:   {"Lat pulldown", "Seated row", "Barbell row", "Face pulls", "Biceps curls"},
	},
}

// Pool returns a copy of the exercise names for category and equipment. Unknown equipment falls back to bodyweight.
func Pool(category Category, equipment profile.Equipment) []string {
	if category == CategoryLegs {
		category = CategoryLower
	}
	tiers := exercisePools[category]
	names, ok := tiers[equipment]
	if !ok {
		names = tiers[profile.EquipmentNone]
	}
	return slices.Clone(names)
}

// cardioName is the steady-state cardio offered for the equipment tier.
func cardioName(equipment profile.Equipment) string {
	if equipment == profile.EquipmentFullGym {
		return "Treadmill / Bike"
	}
	return "Brisk walk / Jog"
}

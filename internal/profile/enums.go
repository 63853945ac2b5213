package profile

import (
	"fmt"
	"strings"
)

// Gender selects the sex-specific constant of the Mifflin-St Jeor equation.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Genders lists every Gender in display order.
var Genders = []Gender{GenderMale, GenderFemale, GenderOther} //nolint:gochecknoglobals // closed enum table.

// Label returns the human-readable name.
func (g Gender) Label() string {
	switch g {
	case GenderMale:
		return "Male"
	case GenderFemale:
		return "Female"
	case GenderOther:
		return "Other"
	}
	return string(g)
}

// BMRConstant is the additive constant of the Mifflin-St Jeor equation.
func (g Gender) BMRConstant() float64 {
	switch g {
	case GenderMale:
		return 5 //nolint:mnd // Mifflin-St Jeor.
	case GenderFemale:
		return -161 //nolint:mnd // Mifflin-St Jeor.
	case GenderOther:
	}
	return 0
}

// ActivityLevel describes how active the user is outside planned training.
type ActivityLevel string

const (
	ActivitySedentary ActivityLevel = "sedentary"
	ActivityLight     ActivityLevel = "light"
	ActivityModerate  ActivityLevel = "moderate"
	ActivityVery      ActivityLevel = "very"
	ActivityExtra     ActivityLevel = "extra"
)

// ActivityLevels lists every ActivityLevel in display order.
var ActivityLevels = []ActivityLevel{ //nolint:gochecknoglobals // closed enum table.
	ActivitySedentary, ActivityLight, ActivityModerate, ActivityVery, ActivityExtra,
}

// Label returns the human-readable name.
func (a ActivityLevel) Label() string {
	switch a {
	case ActivitySedentary:
		return "Sedentary (little/no exercise)"
	case ActivityLight:
		return "Light (1-3 days/week)"
	case ActivityModerate:
		return "Moderate (3-5 days/week)"
	case ActivityVery:
		return "Very Active (6-7 days/week)"
	case ActivityExtra:
		return "Extra Active (physical job + training)"
	}
	return string(a)
}

// Factor is the multiplier applied to BMR to estimate total daily energy expenditure.
func (a ActivityLevel) Factor() float64 {
	switch a {
	case ActivitySedentary:
		return 1.2 //nolint:mnd // activity factor table.
	case ActivityLight:
		return 1.375 //nolint:mnd // activity factor table.
	case ActivityModerate:
		return 1.55 //nolint:mnd // activity factor table.
	case ActivityVery:
		return 1.725 //nolint:mnd // activity factor table.
	case ActivityExtra:
		return 1.9 //nolint:mnd // activity factor table.
	}
	return 1.2 //nolint:mnd // unknown levels are treated as sedentary.
}

// BodyGoal steers protein intake, meal scoring and the training split.
type BodyGoal string

const (
	GoalLean BodyGoal = "lean"
	GoalBulk BodyGoal = "bulk"
	GoalTone BodyGoal = "tone"
)

// BodyGoals lists every BodyGoal in display order.
var BodyGoals = []BodyGoal{GoalLean, GoalBulk, GoalTone} //nolint:gochecknoglobals // closed enum table.

// Label returns the human-readable name.
func (b BodyGoal) Label() string {
	switch b {
	case GoalLean:
		return "Lean"
	case GoalBulk:
		return "Bulk"
	case GoalTone:
		return "Tone"
	}
	return string(b)
}

// ProteinGramsPerKg is the daily protein target per kilogram of body weight.
func (b BodyGoal) ProteinGramsPerKg() float64 {
	switch b {
	case GoalLean:
		return 1.7 //nolint:mnd // protein table.
	case GoalBulk:
		return 1.8 //nolint:mnd // protein table.
	case GoalTone:
		return 1.6 //nolint:mnd // protein table.
	}
	return 1.6 //nolint:mnd // conservative default.
}

// DietPreference restricts which catalog meals may be served.
type DietPreference string

const (
	DietNone       DietPreference = "none"
	DietHalal      DietPreference = "halal"
	DietVegetarian DietPreference = "vegetarian"
	DietVegan      DietPreference = "vegan"
	DietGlutenFree DietPreference = "gluten_free"
)

// DietPreferences lists every DietPreference in display order.
var DietPreferences = []DietPreference{ //nolint:gochecknoglobals // closed enum table.
	DietNone, DietHalal, DietVegetarian, DietVegan, DietGlutenFree,
}

// Label returns the human-readable name.
func (d DietPreference) Label() string {
	switch d {
	case DietNone:
		return "None"
	case DietHalal:
		return "Halal"
	case DietVegetarian:
		return "Vegetarian"
	case DietVegan:
		return "Vegan"
	case DietGlutenFree:
		return "Gluten-Free"
	}
	return string(d)
}

// Equipment is the equipment tier available for training.
type Equipment string

const (
	EquipmentNone      Equipment = "none"
	EquipmentDumbbells Equipment = "dumbbells"
	EquipmentFullGym   Equipment = "full_gym"
)

// Equipments lists every Equipment tier in display order.
var Equipments = []Equipment{EquipmentNone, EquipmentDumbbells, EquipmentFullGym} //nolint:gochecknoglobals // closed enum table.

// Label returns the human-readable name.
func (e Equipment) Label() string {
	switch e {
	case EquipmentNone:
		return "No equipment (bodyweight)"
	case EquipmentDumbbells:
		return "Dumbbells / bands"
	case EquipmentFullGym:
		return "Full gym access"
	}
	return string(e)
}

// ParseGender accepts a value such as "female" or a label such as "Female".
func ParseGender(s string) (Gender, error) {
	return parseEnum("gender", Genders, s)
}

// ParseActivityLevel accepts a value such as "moderate" or a label such as "Moderate (3-5 days/week)".
func ParseActivityLevel(s string) (ActivityLevel, error) {
	return parseEnum("activity level", ActivityLevels, s)
}

// ParseBodyGoal accepts a value such as "bulk" or a label such as "Bulk".
func ParseBodyGoal(s string) (BodyGoal, error) {
	return parseEnum("body goal", BodyGoals, s)
}

// ParseDietPreference accepts a value such as "gluten_free" or a label such as "Gluten-Free".
func ParseDietPreference(s string) (DietPreference, error) {
	return parseEnum("diet preference", DietPreferences, s)
}

// ParseEquipment accepts a value such as "full_gym" or a label such as "Full gym access".
func ParseEquipment(s string) (Equipment, error) {
	return parseEnum("equipment", Equipments, s)
}

type labeled interface {
	~string
	Label() string
}

func parseEnum[T labeled](kind string, values []T, s string) (T, error) {
	needle := strings.TrimSpace(s)
	for _, v := range values {
		if strings.EqualFold(needle, string(v)) || strings.EqualFold(needle, v.Label()) {
			return v, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("%w: unknown %s %q", ErrInvalidProfile, kind, s)
}

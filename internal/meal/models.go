// Package meal holds the meal catalog and the selector that fills each meal slot of a week.
package meal

import (
	"github.com/myrjola/mealmotion/internal/profile"
	"strings"
)

// Meal is an immutable catalog entry.
type Meal struct {
	Name         string
	Calories     int
	ProteinGrams int
	Halal        bool
	Vegetarian   bool
	Vegan        bool
	GlutenFree   bool
	// Ingredients are lower-cased tokens used for filtering and the shopping list.
	Ingredients []string
}

// MatchesDiet reports whether the meal can be served to someone with the given diet preference.
func (m Meal) MatchesDiet(pref profile.DietPreference) bool {
	switch pref {
	case profile.DietNone:
		return true
	case profile.DietHalal:
		return m.Halal
	case profile.DietVegetarian:
		return m.Vegetarian
	case profile.DietVegan:
		return m.Vegan
	case profile.DietGlutenFree:
		return m.GlutenFree
	}
	return true
}

// Mentions reports whether token occurs, case-insensitively, in the meal name or in any ingredient.
func (m Meal) Mentions(token string) bool {
	token = strings.ToLower(token)
	if token == "" {
		return false
	}
	if strings.Contains(strings.ToLower(m.Name), token) {
		return true
	}
	for _, ing := range m.Ingredients {
		if strings.Contains(ing, token) {
			return true
		}
	}
	return false
}

// Slot is one of the four daily meal occasions.
type Slot int

const (
	SlotBreakfast Slot = iota
	SlotLunch
	SlotDinner
	SlotSnack
)

// Slots lists the slots in serving order.
var Slots = []Slot{SlotBreakfast, SlotLunch, SlotDinner, SlotSnack} //nolint:gochecknoglobals // closed enum table.

func (s Slot) String() string {
	switch s {
	case SlotBreakfast:
		return "Breakfast"
	case SlotLunch:
		return "Lunch"
	case SlotDinner:
		return "Dinner"
	case SlotSnack:
		return "Snack"
	}
	return "Unknown"
}

// DayMeals holds exactly one meal per slot.
type DayMeals struct {
	Breakfast Meal
	Lunch     Meal
	Dinner    Meal
	Snack     Meal
}

// Meal returns the meal served in slot.
func (d DayMeals) Meal(slot Slot) Meal {
	switch slot {
	case SlotBreakfast:
		return d.Breakfast
	case SlotLunch:
		return d.Lunch
	case SlotDinner:
		return d.Dinner
	case SlotSnack:
		return d.Snack
	}
	return Meal{} //nolint:exhaustruct // unknown slot.
}

// Set replaces the meal served in slot.
func (d *DayMeals) Set(slot Slot, m Meal) {
	switch slot {
	case SlotBreakfast:
		d.Breakfast = m
	case SlotLunch:
		d.Lunch = m
	case SlotDinner:
		d.Dinner = m
	case SlotSnack:
		d.Snack = m
	}
}

// TotalCalories is the sum of the four meals' calories.
func (d DayMeals) TotalCalories() int {
	return d.Breakfast.Calories + d.Lunch.Calories + d.Dinner.Calories + d.Snack.Calories
}

// TotalProtein is the sum of the four meals' protein grams.
func (d DayMeals) TotalProtein() int {
	return d.Breakfast.ProteinGrams + d.Lunch.ProteinGrams + d.Dinner.ProteinGrams + d.Snack.ProteinGrams
}

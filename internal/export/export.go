// Package export renders a weekly plan as a CSV table, a shopping list, an XLSX workbook and an HTML report.
package export

import (
	"github.com/myrjola/mealmotion/internal/meal"
	"github.com/myrjola/mealmotion/internal/planner"
)

// File names used when writing exports to a directory.
const (
	CSVFileName          = "MealMotionPlan.csv"
	ShoppingListFileName = "MealMotionShoppingList.txt"
	WorkbookFileName     = "MealMotionPlan.xlsx"
	HTMLFileName         = "MealMotionPlan.html"
)

// planHeader is the column layout shared by the CSV export and the workbook's meal sheet.
//
//nolint:gochecknoglobals // fixed column layout.
var planHeader = []string{
	"Day",
	"Breakfast", "BreakfastCalories", "BreakfastProtein",
	"Lunch", "LunchCalories", "LunchProtein",
	"Dinner", "DinnerCalories", "DinnerProtein",
	"Snack", "SnackCalories", "SnackProtein",
	"DailyMealCalories", "DailyMealProtein",
	"TargetCalories", "TargetProtein",
	"Workout",
}

// planRow returns the cells of one day in planHeader order. Numbers stay ints so the workbook stores them as numbers.
func planRow(plan *planner.WeeklyPlan, d planner.Day) []any {
	row := make([]any, 0, len(planHeader))
	row = append(row, d.Weekday.String())
	for _, slot := range meal.Slots {
		m := d.Meals.Meal(slot)
		row = append(row, m.Name, m.Calories, m.ProteinGrams)
	}
	workout := ""
	if d.Workout != nil {
		workout = d.Workout.String()
	}
	return append(row,
		d.Meals.TotalCalories(), d.Meals.TotalProtein(),
		plan.TargetCalories, plan.TargetProtein,
		workout,
	)
}

package export

import (
	"github.com/myrjola/mealmotion/internal/errors"
	"github.com/myrjola/mealmotion/internal/planner"
	"github.com/xuri/excelize/v2"
	"io"
	"log/slog"
)

// Workbook sheet names.
const (
	SheetMeals    = "Meals"
	SheetWorkouts = "Workouts"
	SheetShopping = "Shopping List"
)

//nolint:gochecknoglobals // fixed column layout.
var (
	workoutHeader  = []string{"Day", "Session", "Type", "Exercise", "Prescription"}
	shoppingHeader = []string{"Ingredient", "Times used"}
)

// WriteWorkbook writes the plan as an XLSX workbook with a meals sheet laid out like the CSV export, a workouts sheet
// with one row per move, and the shopping list.
func WriteWorkbook(w io.Writer, plan *planner.WeeklyPlan) (err error) {
	f := excelize.NewFile()
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = errors.Wrap(closeErr, "close workbook")
		}
	}()

	if err = f.SetSheetName("Sheet1", SheetMeals); err != nil {
		return errors.Wrap(err, "rename default sheet")
	}
	for _, name := range []string{SheetWorkouts, SheetShopping} {
		if _, err = f.NewSheet(name); err != nil {
			return errors.Wrap(err, "create sheet", slog.String("sheet", name))
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{ //nolint:exhaustruct // only the header look is customized.
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},                            //nolint:exhaustruct // see above.
		Fill: excelize.Fill{Type: "pattern", Color: []string{"2E75B6"}, Pattern: 1}, //nolint:exhaustruct // see above.
	})
	if err != nil {
		return errors.Wrap(err, "create header style")
	}

	if err = writeMealSheet(f, plan, headerStyle); err != nil {
		return err
	}
	if err = writeWorkoutSheet(f, plan, headerStyle); err != nil {
		return err
	}
	if err = writeShoppingSheet(f, BuildShoppingList(plan), headerStyle); err != nil {
		return err
	}

	f.SetActiveSheet(0)
	if _, err = f.WriteTo(w); err != nil {
		return errors.Wrap(err, "write workbook")
	}
	return nil
}

func writeMealSheet(f *excelize.File, plan *planner.WeeklyPlan, headerStyle int) error {
	rows := make([][]any, 0, len(planner.Week))
	for _, d := range plan.Days() {
		rows = append(rows, planRow(plan, d))
	}
	if err := writeTable(f, SheetMeals, planHeader, rows, headerStyle); err != nil {
		return err
	}
	if err := f.SetColWidth(SheetMeals, "A", "R", 14); err != nil { //nolint:mnd // column width in characters.
		return errors.Wrap(err, "set column width", slog.String("sheet", SheetMeals))
	}
	return nil
}

func writeWorkoutSheet(f *excelize.File, plan *planner.WeeklyPlan, headerStyle int) error {
	var rows [][]any
	for _, d := range plan.Days() {
		if d.Workout == nil {
			continue
		}
		for _, m := range d.Workout.Moves {
			rows = append(rows, []any{d.Weekday.String(), d.Workout.Title, string(m.Kind()), m.Label(), m.Prescription()})
		}
	}
	if err := writeTable(f, SheetWorkouts, workoutHeader, rows, headerStyle); err != nil {
		return err
	}
	if err := f.SetColWidth(SheetWorkouts, "B", "D", 30); err != nil { //nolint:mnd // column width in characters.
		return errors.Wrap(err, "set column width", slog.String("sheet", SheetWorkouts))
	}
	return nil
}

func writeShoppingSheet(f *excelize.File, items []ShoppingItem, headerStyle int) error {
	rows := make([][]any, len(items))
	for i, item := range items {
		rows[i] = []any{item.Ingredient, item.Count}
	}
	return writeTable(f, SheetShopping, shoppingHeader, rows, headerStyle)
}

// writeTable writes a styled header row followed by rows starting at A1.
func writeTable(f *excelize.File, sheet string, header []string, rows [][]any, headerStyle int) error {
	headerCells := make([]any, len(header))
	for i, h := range header {
		headerCells[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &headerCells); err != nil {
		return errors.Wrap(err, "write header", slog.String("sheet", sheet))
	}
	last, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return errors.Wrap(err, "header range", slog.String("sheet", sheet))
	}
	if err = f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
		return errors.Wrap(err, "style header", slog.String("sheet", sheet))
	}

	for i, row := range rows {
		cell, cellErr := excelize.CoordinatesToCellName(1, i+2) //nolint:mnd // data starts below the header.
		if cellErr != nil {
			return errors.Wrap(cellErr, "row coordinates", slog.String("sheet", sheet), slog.Int("row", i))
		}
		if err = f.SetSheetRow(sheet, cell, &row); err != nil {
			return errors.Wrap(err, "write row", slog.String("sheet", sheet), slog.Int("row", i))
		}
	}
	return nil
}

package export

import (
	"encoding/csv"
	"fmt"
	"github.com/myrjola/mealmotion/internal/errors"
	"github.com/myrjola/mealmotion/internal/planner"
	"io"
)

// WriteCSV writes one row per plan day after a header row. The workout column holds the session rendering, or is empty
// when the plan has no workouts.
func WriteCSV(w io.Writer, plan *planner.WeeklyPlan) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(planHeader); err != nil {
		return errors.Wrap(err, "write csv header")
	}
	for _, d := range plan.Days() {
		cells := planRow(plan, d)
		record := make([]string, len(cells))
		for i, c := range cells {
			record[i] = fmt.Sprint(c)
		}
		if err := cw.Write(record); err != nil {
			return errors.Wrap(err, "write csv row")
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return errors.Wrap(err, "flush csv")
	}
	return nil
}

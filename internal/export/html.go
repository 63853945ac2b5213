package export

import (
	"bytes"
	"fmt"
	"github.com/myrjola/mealmotion/internal/errors"
	"github.com/myrjola/mealmotion/internal/meal"
	"github.com/myrjola/mealmotion/internal/planner"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"html/template"
	"io"
	"strings"
)

//nolint:gochecknoglobals // parsed once.
var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
body { font-family: system-ui, sans-serif; margin: 2rem auto; max-width: 60rem; padding: 0 1rem; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #ccc; padding: 0.3rem 0.5rem; text-align: left; }
blockquote { border-left: 4px solid #e0a800; margin: 1rem 0; padding: 0.5rem 1rem; background: #fff8e1; }
</style>
</head>
<body data-plan-id="{{.PlanID}}">
{{.Body}}
</body>
</html>
`))

//nolint:gochecknoglobals // stateless converter.
var markdown = goldmark.New(goldmark.WithExtensions(extension.Table))

// WriteHTML renders the plan as a Markdown report and writes it converted to a standalone HTML page.
func WriteHTML(w io.Writer, plan *planner.WeeklyPlan) error {
	var body bytes.Buffer
	if err := markdown.Convert([]byte(Markdown(plan)), &body); err != nil {
		return errors.Wrap(err, "convert markdown report")
	}
	data := struct {
		Title  string
		PlanID string
		Body   template.HTML
	}{
		Title:  "MealMotion Plan for " + plan.Profile.Name,
		PlanID: plan.ID.String(),
		Body:   template.HTML(body.String()), //nolint:gosec // goldmark escapes raw HTML by default.
	}
	if err := pageTemplate.Execute(w, data); err != nil {
		return errors.Wrap(err, "render html page")
	}
	return nil
}

// Markdown renders the plan as a Markdown document with targets, a meal table, the workouts and the shopping list.
func Markdown(plan *planner.WeeklyPlan) string {
	var b strings.Builder
	p := plan.Profile

	fmt.Fprintf(&b, "# MealMotion Plan for %s\n\n", mdEscape(p.Name))
	fmt.Fprintf(&b, "Plan `%s`\n\n", plan.ID)

	b.WriteString("## Targets\n\n")
	fmt.Fprintf(&b, "- Daily calories: %d kcal\n", plan.TargetCalories)
	fmt.Fprintf(&b, "- Daily protein: %d g\n", plan.TargetProtein)
	fmt.Fprintf(&b, "- Split: breakfast %d, lunch %d, dinner %d, snack %d kcal\n",
		plan.SlotTargets.Breakfast, plan.SlotTargets.Lunch, plan.SlotTargets.Dinner, plan.SlotTargets.Snack)
	fmt.Fprintf(&b, "- Goal: %s, activity: %s, diet: %s\n\n",
		p.BodyGoal.Label(), mdEscape(p.ActivityLevel.Label()), p.DietPreference.Label())

	if len(plan.DegradedSlots) > 0 {
		b.WriteString("> **Note:** no meal in the catalog satisfies every diet, allergy and dislike constraint, so " +
			"some meals were chosen without them. Check these meals before eating them.\n\n")
	}

	b.WriteString("## Meals\n\n")
	b.WriteString("| Day | Breakfast | Lunch | Dinner | Snack | Calories | Protein (g) |\n")
	b.WriteString("| --- | --- | --- | --- | --- | ---: | ---: |\n")
	for _, d := range plan.Days() {
		fmt.Fprintf(&b, "| %s |", d.Weekday)
		for _, slot := range meal.Slots {
			name := mdEscape(d.Meals.Meal(slot).Name)
			if plan.IsDegraded(d.Weekday, slot) {
				name += " \\*"
			}
			fmt.Fprintf(&b, " %s |", name)
		}
		fmt.Fprintf(&b, " %d | %d |\n", d.Meals.TotalCalories(), d.Meals.TotalProtein())
	}
	b.WriteString("\n")

	if plan.HasWorkouts() {
		b.WriteString("## Workouts\n\n")
		for _, d := range plan.Days() {
			if d.Workout == nil {
				continue
			}
			fmt.Fprintf(&b, "### %s: %s\n\n", d.Weekday, mdEscape(d.Workout.Title))
			for _, m := range d.Workout.Moves {
				fmt.Fprintf(&b, "- %s\n", mdEscape(m.String()))
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("## Shopping List\n\n")
	for _, item := range BuildShoppingList(plan) {
		fmt.Fprintf(&b, "- %s x%d\n", mdEscape(item.Ingredient), item.Count)
	}
	return b.String()
}

//nolint:gochecknoglobals // stateless replacer.
var mdReplacer = strings.NewReplacer(
	`\`, `\\`, "`", "\\`", "*", `\*`, "_", `\_`, "[", `\[`, "]", `\]`,
	"<", `\<`, ">", `\>`, "|", `\|`, "#", `\#`, "+", `\+`,
)

// mdEscape escapes Markdown punctuation so user and catalog text renders literally.
func mdEscape(s string) string {
	return mdReplacer.Replace(s)
}

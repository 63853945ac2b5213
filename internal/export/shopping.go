package export

import (
	"bufio"
	"fmt"
	"github.com/myrjola/mealmotion/internal/errors"
	"github.com/myrjola/mealmotion/internal/meal"
	"github.com/myrjola/mealmotion/internal/planner"
	"io"
	"strings"
)

const shoppingListTitle = "MealMotion Shopping List (ingredient -> times used)"

// ShoppingItem is an ingredient and how many meals of the week use it.
type ShoppingItem struct {
	Ingredient string
	Count      int
}

// BuildShoppingList counts ingredient uses across every meal of the plan, ordered by first use.
func BuildShoppingList(plan *planner.WeeklyPlan) []ShoppingItem {
	var (
		items []ShoppingItem
		index = make(map[string]int)
	)
	for _, d := range plan.Days() {
		for _, slot := range meal.Slots {
			for _, ing := range d.Meals.Meal(slot).Ingredients {
				key := strings.ToLower(strings.TrimSpace(ing))
				if key == "" {
					continue
				}
				if i, ok := index[key]; ok {
					items[i].Count++
					continue
				}
				index[key] = len(items)
				items = append(items, ShoppingItem{Ingredient: key, Count: 1})
			}
		}
	}
	return items
}

// WriteShoppingList renders the list as a title, a blank line and one "- ingredient xN" line per item.
func WriteShoppingList(w io.Writer, items []ShoppingItem) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, shoppingListTitle)
	fmt.Fprintln(bw)
	for _, item := range items {
		fmt.Fprintf(bw, "- %s x%d\n", item.Ingredient, item.Count)
	}
	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, "write shopping list")
	}
	return nil
}

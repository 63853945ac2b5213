package meal_test

import (
	"errors"
	"github.com/myrjola/mealmotion/internal/meal"
	"github.com/myrjola/mealmotion/internal/profile"
	"strings"
	"testing"
)

func TestBuiltinCatalog(t *testing.T) {
	c := meal.BuiltinCatalog()
	if c.Len() != 20 {
		t.Fatalf("Len() = %d, want 20", c.Len())
	}
	meals := c.Meals()
	first := meals[0]
	if first.Name != "Oatmeal + Berries" || first.Calories != 340 || first.ProteinGrams != 12 {
		t.Errorf("first meal = %+v", first)
	}
	if !first.Halal || !first.Vegetarian || !first.Vegan || !first.GlutenFree {
		t.Errorf("first meal diet flags = %+v, want all true", first)
	}
	for _, m := range meals {
		if m.Name == "Halal Chicken Wrap" && (m.Vegetarian || m.GlutenFree || !m.Halal) {
			t.Errorf("Halal Chicken Wrap flags = %+v", m)
		}
		for _, ing := range m.Ingredients {
			if ing != strings.ToLower(ing) {
				t.Errorf("%s ingredient %q is not lower-cased", m.Name, ing)
			}
		}
	}

	// Callers get a copy.
	meals[0].Name = "mutated"
	if c.Meals()[0].Name != "Oatmeal + Berries" {
		t.Error("Meals() exposed internal state")
	}
}

func TestLoadCatalog(t *testing.T) {
	doc := `
meals:
  - name: Rice Cakes
    calories: 150
    protein_g: 3
    diets: [vegan, Gluten-Free]
    ingredients: [Rice, Salt]
`
	c, err := meal.LoadCatalog(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("LoadCatalog() error = %v", err)
	}
	m := c.Meals()[0]
	if !m.Vegan || !m.GlutenFree || m.Halal || m.Vegetarian {
		t.Errorf("diet flags = %+v", m)
	}
	if strings.Join(m.Ingredients, ",") != "rice,salt" {
		t.Errorf("Ingredients = %v, want [rice salt]", m.Ingredients)
	}
}

func TestLoadCatalogErrors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr error
	}{
		{name: "empty document", doc: "", wantErr: meal.ErrEmptyCatalog},
		{name: "no meals", doc: "meals: []\n", wantErr: meal.ErrEmptyCatalog},
		{name: "unknown diet", doc: "meals:\n  - name: X\n    diets: [keto]\n", wantErr: profile.ErrInvalidProfile},
		{name: "unknown field", doc: "meals:\n  - name: X\n    fat_g: 3\n"},
		{name: "duplicate", doc: "meals:\n  - name: X\n  - name: X\n"},
		{name: "negative calories", doc: "meals:\n  - name: X\n    calories: -1\n"},
		{name: "missing name", doc: "meals:\n  - calories: 100\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := meal.LoadCatalog(strings.NewReader(tt.doc))
			if err == nil {
				t.Fatal("LoadCatalog() expected error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("LoadCatalog() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestMatchesDiet(t *testing.T) {
	m := meal.Meal{Name: "Protein Bar", Halal: true, Vegetarian: true} //nolint:exhaustruct // flags only.
	tests := []struct {
		pref profile.DietPreference
		want bool
	}{
		{pref: profile.DietNone, want: true},
		{pref: profile.DietHalal, want: true},
		{pref: profile.DietVegetarian, want: true},
		{pref: profile.DietVegan, want: false},
		{pref: profile.DietGlutenFree, want: false},
	}
	for _, tt := range tests {
		t.Run(string(tt.pref), func(t *testing.T) {
			if got := m.MatchesDiet(tt.pref); got != tt.want {
				t.Errorf("MatchesDiet(%s) = %v, want %v", tt.pref, got, tt.want)
			}
		})
	}
}

func TestMentions(t *testing.T) {
	m := meal.Meal{Name: "Apple + Peanut Butter", Ingredients: []string{"apple", "peanut butter"}} //nolint:exhaustruct // name and ingredients only.
	for _, token := range []string{"peanut", "PEANUT", "apple +", "butter"} {
		if !m.Mentions(token) {
			t.Errorf("Mentions(%q) = false, want true", token)
		}
	}
	for _, token := range []string{"", "tuna"} {
		if m.Mentions(token) {
			t.Errorf("Mentions(%q) = true, want false", token)
		}
	}
}

func TestDayMealsTotals(t *testing.T) {
	var d meal.DayMeals
	for i, slot := range meal.Slots {
		d.Set(slot, meal.Meal{Name: slot.String(), Calories: 100 * (i + 1), ProteinGrams: i + 1}) //nolint:exhaustruct // totals only.
	}
	if got := d.TotalCalories(); got != 1000 {
		t.Errorf("TotalCalories() = %d, want 1000", got)
	}
	if got := d.TotalProtein(); got != 10 {
		t.Errorf("TotalProtein() = %d, want 10", got)
	}
	if got := d.Meal(meal.SlotDinner).Name; got != "Dinner" {
		t.Errorf("Meal(SlotDinner) = %q, want Dinner", got)
	}
}

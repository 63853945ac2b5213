package meal

import (
	"bytes"
	_ "embed"
	"github.com/myrjola/mealmotion/internal/errors"
	"github.com/myrjola/mealmotion/internal/profile"
	"gopkg.in/yaml.v3"
	"io"
	"log/slog"
	"slices"
	"strings"
	"sync"
)

var ErrEmptyCatalog = errors.NewSentinel("meal catalog is empty")

//go:embed catalog.yaml
var builtinCatalogYAML []byte

// Catalog is a read-only set of meals. It is safe for concurrent use.
type Catalog struct {
	meals []Meal
}

type catalogDocument struct {
	Meals []catalogEntry `yaml:"meals"`
}

type catalogEntry struct {
	Name         string   `yaml:"name"`
	Calories     int      `yaml:"calories"`
	ProteinGrams int      `yaml:"protein_g"`
	Diets        []string `yaml:"diets"`
	Ingredients  []string `yaml:"ingredients"`
}

//nolint:gochecknoglobals // parsed once on first use.
var builtinCatalog = sync.OnceValue(func() *Catalog {
	c, err := LoadCatalog(bytes.NewReader(builtinCatalogYAML))
	if err != nil {
		panic(errors.Wrap(err, "load built-in catalog"))
	}
	return c
})

// BuiltinCatalog returns the catalog shipped with the binary.
func BuiltinCatalog() *Catalog {
	return builtinCatalog()
}

// LoadCatalog parses a YAML catalog document. Unknown fields, unknown diets, duplicate names and negative numbers are
// rejected. A document without meals returns [ErrEmptyCatalog].
func LoadCatalog(r io.Reader) (*Catalog, error) {
	var doc catalogDocument
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, "decode catalog")
	}

	meals := make([]Meal, 0, len(doc.Meals))
	for i, entry := range doc.Meals {
		m, err := entry.toMeal()
		if err != nil {
			return nil, errors.Wrap(err, "invalid catalog entry", slog.Int("index", i), slog.String("name", entry.Name))
		}
		meals = append(meals, m)
	}
	return NewCatalog(meals)
}

// NewCatalog builds a catalog from meals. Ingredient tokens are lower-cased and the slice is copied.
func NewCatalog(meals []Meal) (*Catalog, error) {
	if len(meals) == 0 {
		return nil, ErrEmptyCatalog
	}
	seen := make(map[string]struct{}, len(meals))
	out := make([]Meal, 0, len(meals))
	for _, m := range meals {
		m.Name = strings.TrimSpace(m.Name)
		switch {
		case m.Name == "":
			return nil, errors.New("meal without a name")
		case m.Calories < 0 || m.ProteinGrams < 0:
			return nil, errors.New("negative nutrition values", slog.String("name", m.Name),
				slog.Int("calories", m.Calories), slog.Int("protein_g", m.ProteinGrams))
		}
		if _, dup := seen[m.Name]; dup {
			return nil, errors.New("duplicate meal name", slog.String("name", m.Name))
		}
		seen[m.Name] = struct{}{}
		m.Ingredients = profile.NormalizeTokens(m.Ingredients)
		out = append(out, m)
	}
	return &Catalog{meals: out}, nil
}

// Meals returns a copy of the catalog entries in catalog order.
func (c *Catalog) Meals() []Meal {
	return slices.Clone(c.meals)
}

// Len returns the number of meals.
func (c *Catalog) Len() int {
	return len(c.meals)
}

func (e catalogEntry) toMeal() (Meal, error) {
	m := Meal{
		Name:         e.Name,
		Calories:     e.Calories,
		ProteinGrams: e.ProteinGrams,
		Halal:        false,
		Vegetarian:   false,
		Vegan:        false,
		GlutenFree:   false,
		Ingredients:  e.Ingredients,
	}
	for _, d := range e.Diets {
		pref, err := profile.ParseDietPreference(d)
		if err != nil {
			return Meal{}, errors.Wrap(err, "parse diet") //nolint:exhaustruct // error path.
		}
		switch pref {
		case profile.DietHalal:
			m.Halal = true
		case profile.DietVegetarian:
			m.Vegetarian = true
		case profile.DietVegan:
			m.Vegan = true
		case profile.DietGlutenFree:
			m.GlutenFree = true
		case profile.DietNone:
		}
	}
	return m, nil
}

package profile

import (
	"fmt"
	"github.com/myrjola/mealmotion/internal/errors"
	"gopkg.in/yaml.v3"
	"io"
	"log/slog"
)

// document is the YAML shape of a profile file.
type document struct {
	Name                     string    `yaml:"name"`
	Age                      int       `yaml:"age"`
	HeightCm                 int       `yaml:"height_cm"`
	WeightKg                 int       `yaml:"weight_kg"`
	TargetWeightKg           *int      `yaml:"target_weight_kg"` // Defaults to weight_kg when unset.
	Gender                   string    `yaml:"gender"`
	ActivityLevel            string    `yaml:"activity_level"`
	BodyGoal                 string    `yaml:"body_goal"`
	DietPreference           string    `yaml:"diet_preference"`
	IncludeWorkouts          *bool     `yaml:"include_workouts"` // Defaults to true when unset.
	Equipment                string    `yaml:"equipment"`
	WorkoutDaysPerWeek       int       `yaml:"workout_days_per_week"`
	WorkoutMinutesPerSession int       `yaml:"workout_minutes_per_session"`
	Allergies                tokenList `yaml:"allergies"`
	DislikedFoods            tokenList `yaml:"disliked_foods"`
}

// tokenList accepts either a YAML sequence or a comma-separated scalar such as "peanut, shellfish".
type tokenList []string

func (t *tokenList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		*t = SplitTokens(value.Value)
		return nil
	case yaml.SequenceNode:
		var items []string
		if err := value.Decode(&items); err != nil {
			return fmt.Errorf("decode token sequence: %w", err)
		}
		*t = items
		return nil
	case yaml.DocumentNode, yaml.MappingNode, yaml.AliasNode:
	}
	return fmt.Errorf("line %d: expected a list or a comma-separated string", value.Line)
}

// Decode reads a YAML profile document from r. Enum fields accept either the value or the label, e.g. "gluten_free"
// or "Gluten-Free". Diet preference and equipment default to none. The result is not validated; call
// [UserProfile.Validate].
func Decode(r io.Reader) (*UserProfile, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.Wrap(ErrInvalidProfile, "empty profile document")
		}
		return nil, errors.Wrap(err, "decode profile document")
	}

	var (
		p    UserProfile
		errs []error
		err  error
	)
	p.Name = doc.Name
	p.Age = doc.Age
	p.HeightCm = doc.HeightCm
	p.WeightKg = doc.WeightKg
	p.TargetWeightKg = doc.WeightKg
	if doc.TargetWeightKg != nil {
		p.TargetWeightKg = *doc.TargetWeightKg
	}
	p.IncludeWorkouts = doc.IncludeWorkouts == nil || *doc.IncludeWorkouts
	p.WorkoutDaysPerWeek = doc.WorkoutDaysPerWeek
	p.WorkoutMinutesPerSession = doc.WorkoutMinutesPerSession
	p.Allergies = doc.Allergies
	p.DislikedFoods = doc.DislikedFoods

	if p.Gender, err = ParseGender(doc.Gender); err != nil {
		errs = append(errs, err)
	}
	if p.ActivityLevel, err = ParseActivityLevel(doc.ActivityLevel); err != nil {
		errs = append(errs, err)
	}
	if p.BodyGoal, err = ParseBodyGoal(doc.BodyGoal); err != nil {
		errs = append(errs, err)
	}
	if p.DietPreference, err = ParseDietPreference(withDefault(doc.DietPreference, string(DietNone))); err != nil {
		errs = append(errs, err)
	}
	if p.Equipment, err = ParseEquipment(withDefault(doc.Equipment, string(EquipmentNone))); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return nil, errors.Wrap(errors.Join(errs...), "parse profile enums", slog.String("name", doc.Name))
	}

	return New(p), nil
}

// Encode writes p as a YAML profile document that [Decode] reads back.
func Encode(w io.Writer, p *UserProfile) error {
	target := p.TargetWeightKg
	include := p.IncludeWorkouts
	doc := document{
		Name:                     p.Name,
		Age:                      p.Age,
		HeightCm:                 p.HeightCm,
		WeightKg:                 p.WeightKg,
		TargetWeightKg:           &target,
		Gender:                   string(p.Gender),
		ActivityLevel:            string(p.ActivityLevel),
		BodyGoal:                 string(p.BodyGoal),
		DietPreference:           string(p.DietPreference),
		IncludeWorkouts:          &include,
		Equipment:                string(p.Equipment),
		WorkoutDaysPerWeek:       p.WorkoutDaysPerWeek,
		WorkoutMinutesPerSession: p.WorkoutMinutesPerSession,
		Allergies:                p.Allergies,
		DislikedFoods:            p.DislikedFoods,
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2) //nolint:mnd // two-space indentation.
	if err := enc.Encode(doc); err != nil {
		return errors.Wrap(err, "encode profile document")
	}
	if err := enc.Close(); err != nil {
		return errors.Wrap(err, "close profile encoder")
	}
	return nil
}

func withDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

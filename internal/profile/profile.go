// Package profile holds the user profile that drives plan generation, its closed enum types and the YAML document
// format used to load it.
package profile

import (
	"strings"
)

// UserProfile is the input to plan generation. Treat it as immutable once built with [New] or [Decode].
type UserProfile struct {
	Name                     string
	Age                      int
	HeightCm                 int
	WeightKg                 int
	TargetWeightKg           int
	Gender                   Gender
	ActivityLevel            ActivityLevel
	BodyGoal                 BodyGoal
	DietPreference           DietPreference
	IncludeWorkouts          bool
	Equipment                Equipment
	WorkoutDaysPerWeek       int
	WorkoutMinutesPerSession int
	// Allergies are trimmed, lower-cased, non-empty tokens.
	Allergies []string
	// DislikedFoods are trimmed, lower-cased, non-empty tokens.
	DislikedFoods []string
}

// New returns a copy of p with the name trimmed and the allergy and dislike tokens normalized.
func New(p UserProfile) *UserProfile {
	p.Name = strings.TrimSpace(p.Name)
	p.Allergies = NormalizeTokens(p.Allergies)
	p.DislikedFoods = NormalizeTokens(p.DislikedFoods)
	return &p
}

// ExcludedTokens returns the allergy tokens followed by the disliked-food tokens.
func (p *UserProfile) ExcludedTokens() []string {
	out := make([]string, 0, len(p.Allergies)+len(p.DislikedFoods))
	out = append(out, p.Allergies...)
	return append(out, p.DislikedFoods...)
}

// NormalizeTokens trims and lower-cases tokens, dropping empty ones. The result is never nil.
func NormalizeTokens(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

// SplitTokens splits a comma-separated list such as "peanut, shellfish" into normalized tokens.
func SplitTokens(s string) []string {
	return NormalizeTokens(strings.Split(s, ","))
}

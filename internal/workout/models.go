// Package workout schedules training days across a week and builds a session for each day.
package workout

import (
	"fmt"
	"strings"
)

// Category is the muscle group focus of a strength session.
type Category string

const (
	CategoryFullBody Category = "full_body"
	CategoryUpper    Category = "upper"
	CategoryLower    Category = "lower"
	CategoryPush     Category = "push"
	CategoryPull     Category = "pull"
	CategoryLegs     Category = "legs"
)

// Kind identifies the concrete type of a [Move].
type Kind string

const (
	KindStrength Kind = "strength"
	KindCardio   Kind = "cardio"
	KindCore     Kind = "core"
	KindMobility Kind = "mobility"
)

// Move is one entry of a session. It is implemented only by [Strength], [Cardio], [Core] and [Mobility].
type Move interface {
	// Kind returns the move type.
	Kind() Kind
	// Label returns the exercise name.
	Label() string
	// Prescription returns the dose, e.g. "4x8", "10 min" or "45 sec".
	Prescription() string
	// String renders the move as "Name: prescription".
	String() string

	sealed()
}

// Strength is a resistance exercise done for sets of reps.
type Strength struct {
	Name string
	Sets int
	Reps int
}

// Cardio is steady-state conditioning measured in minutes.
type Cardio struct {
	Name    string
	Minutes int
}

// Core is an isometric or core hold measured in seconds.
type Core struct {
	Name    string
	Seconds int
}

// Mobility is warm-up, stretching or easy movement measured in minutes.
type Mobility struct {
	Name    string
	Minutes int
}

func (m Strength) Kind() Kind           { return KindStrength }
func (m Strength) Label() string        { return m.Name }
func (m Strength) Prescription() string { return fmt.Sprintf("%dx%d", m.Sets, m.Reps) }
func (m Strength) String() string       { return render(m) }
func (Strength) sealed()                {}

func (m Cardio) Kind() Kind           { return KindCardio }
func (m Cardio) Label() string        { return m.Name }
func (m Cardio) Prescription() string { return fmt.Sprintf("%d min", m.Minutes) }
func (m Cardio) String() string       { return render(m) }
func (Cardio) sealed()                {}

func (m Core) Kind() Kind           { return KindCore }
func (m Core) Label() string        { return m.Name }
func (m Core) Prescription() string { return fmt.Sprintf("%d sec", m.Seconds) }
func (m Core) String() string       { return render(m) }
func (Core) sealed()                {}

func (m Mobility) Kind() Kind           { return KindMobility }
func (m Mobility) Label() string        { return m.Name }
func (m Mobility) Prescription() string { return fmt.Sprintf("%d min", m.Minutes) }
func (m Mobility) String() string       { return render(m) }
func (Mobility) sealed()                {}

func render(m Move) string {
	return m.Label() + ": " + m.Prescription()
}

// Session is the workout for one day.
type Session struct {
	Title string
	Moves []Move
}

// IsRest reports whether the session is a rest day.
func (s Session) IsRest() bool {
	return s.Title == RestTitle
}

// String renders the session as "Title: move | move | ...".
func (s Session) String() string {
	parts := make([]string, len(s.Moves))
	for i, m := range s.Moves {
		parts[i] = m.String()
	}
	return s.Title + ": " + strings.Join(parts, " | ")
}

// Package resistors decodes resistor color bands into a resistance value and
// serves the value-from-bands endpoints.
package resistors

import (
	"errors"
	"fmt"

	"resistor-api/internal/colors"
)

// Position identifies a band on the resistor body.
type Position string

const (
	PositionFirst      Position = "first"
	PositionSecond     Position = "second"
	PositionThird      Position = "third"
	PositionMultiplier Position = "multiplier"
	PositionTolerance  Position = "tolerance"
)

// UnknownColorError reports a band whose color is not registered.
type UnknownColorError struct {
	Position Position
	Name     string
}

func (e *UnknownColorError) Error() string {
	return fmt.Sprintf("unknown color %q in %s band", e.Name, e.Position)
}

// Unwrap lets callers match with errors.Is(err, colors.ErrUnknownColor).
func (e *UnknownColorError) Unwrap() error {
	return colors.ErrUnknownColor
}

// Bands is the set of band colors read off a resistor. A nil Third selects
// 4-band decoding; any non-nil Third selects 5-band decoding.
type Bands struct {
	First      string  `json:"firstBand"`
	Second     string  `json:"secondBand"`
	Third      *string `json:"thirdBand,omitempty"`
	Multiplier string  `json:"multiplier"`
	Tolerance  string  `json:"tolerance"`
}

// FiveBand reports whether the bands describe a 5-band resistor.
func (b Bands) FiveBand() bool {
	return b.Third != nil
}

// Value is a decoded resistance in ohms and its tolerance in percent.
type Value struct {
	Resistance float64 `json:"resistorValue"`
	Tolerance  float64 `json:"tolerance"`
}

// Calculator decodes Bands against a color registry. It keeps no state
// between calls and is safe for concurrent use.
type Calculator struct {
	registry *colors.Registry
}

func NewCalculator(registry *colors.Registry) *Calculator {
	return &Calculator{registry: registry}
}

// Calculate resolves every band and computes the resistor value. The first
// band that fails to resolve is returned as an *UnknownColorError and no
// value is produced.
func (c *Calculator) Calculate(b Bands) (Value, error) {
	first, err := c.resolve(PositionFirst, b.First)
	if err != nil {
		return Value{}, err
	}
	second, err := c.resolve(PositionSecond, b.Second)
	if err != nil {
		return Value{}, err
	}

	var significant float64
	if b.Third != nil {
		third, err := c.resolve(PositionThird, *b.Third)
		if err != nil {
			return Value{}, err
		}
		significant = float64(first.Digit*100 + second.Digit*10 + third.Digit)
	} else {
		significant = float64(first.Digit*10 + second.Digit)
	}

	multiplier, err := c.resolve(PositionMultiplier, b.Multiplier)
	if err != nil {
		return Value{}, err
	}
	tolerance, err := c.resolve(PositionTolerance, b.Tolerance)
	if err != nil {
		return Value{}, err
	}

	return Value{
		Resistance: significant * multiplier.Multiplier,
		Tolerance:  tolerance.Tolerance,
	}, nil
}

func (c *Calculator) resolve(pos Position, name string) (colors.Band, error) {
	band, err := c.registry.Get(name)
	if err != nil {
		if errors.Is(err, colors.ErrUnknownColor) {
			return colors.Band{}, &UnknownColorError{Position: pos, Name: name}
		}
		return colors.Band{}, fmt.Errorf("resolve %s band: %w", pos, err)
	}
	return band, nil
}

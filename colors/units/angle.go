// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package units

import (
	"fmt"
	"math"
)

// AngleUnit is a CSS angle unit used when printing hues.
type AngleUnit string

const (
	// AngleNone prints hues as bare numbers of degrees.
	AngleNone AngleUnit = "none"

	// AngleDeg prints hues in degrees with a deg suffix.
	AngleDeg AngleUnit = "deg"

	// AngleGrad prints hues in gradians.
	AngleGrad AngleUnit = "grad"

	// AngleRad prints hues in radians.
	AngleRad AngleUnit = "rad"

	// AngleTurn prints hues in turns.
	AngleTurn AngleUnit = "turn"
)

// AngleUnits are all of the valid angle units.
var AngleUnits = []AngleUnit{AngleNone, AngleDeg, AngleGrad, AngleRad, AngleTurn}

// String returns the name of the unit.
func (u AngleUnit) String() string { return string(u) }

// SetString sets the unit from its name, returning an error
// if it is not a valid unit.
func (u *AngleUnit) SetString(s string) error {
	for _, au := range AngleUnits {
		if string(au) == s {
			*u = au
			return nil
		}
	}
	return fmt.Errorf("units.AngleUnit.SetString: invalid angle unit %q", s)
}

// Set implements the pflag.Value interface.
func (u *AngleUnit) Set(s string) error { return u.SetString(s) }

// Type implements the pflag.Value interface.
func (u *AngleUnit) Type() string { return "angle-unit" }

// GradToDeg converts gradians to degrees.
func GradToDeg(v float64) float64 { return v * 360 / 400 }

// RadToDeg converts radians to degrees.
func RadToDeg(v float64) float64 { return v * 180 / math.Pi }

// TurnToDeg converts turns to degrees.
func TurnToDeg(v float64) float64 { return v * 360 }

// DegToGrad converts degrees to gradians.
func DegToGrad(v float64) float64 { return v * 400 / 360 }

// DegToRad converts degrees to radians.
func DegToRad(v float64) float64 { return v * math.Pi / 180 }

// DegToTurn converts degrees to turns.
func DegToTurn(v float64) float64 { return v / 360 }

// FromDeg converts the given degrees to the given unit.
// [AngleNone] and [AngleDeg] return the degrees unchanged.
func FromDeg(v float64, u AngleUnit) float64 {
	switch u {
	case AngleGrad:
		return DegToGrad(v)
	case AngleRad:
		return DegToRad(v)
	case AngleTurn:
		return DegToTurn(v)
	}
	return v
}

// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package units

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	clamps := []struct {
		name   string
		f      func(float64) float64
		in     float64
		expect float64
	}{
		{"unit high", ClampUnit, 1.5, 1},
		{"unit low", ClampUnit, -0.5, 0},
		{"percent", ClampPercent, 120, 100},
		{"rgb", ClampRGB, -3, 0},
		{"byte", ClampByte, 300, 255},
		{"hue", ClampHue, 400, 360},
		{"lab", ClampLabAB, -130, -125},
		{"lch", ClampLchChroma, 151, 150},
		{"oklab", ClampOklabAB, 0.5, 0.4},
		{"oklch", ClampOklchChroma, -0.1, 0},
		{"inside", ClampLabAB, 12.5, 12.5},
	}
	for _, c := range clamps {
		got := c.f(c.in)
		assert.Equal(t, c.expect, got, c.name)
		assert.Equal(t, got, c.f(got), c.name+" idempotent")
	}
}

func TestWrapHue(t *testing.T) {
	assert.Equal(t, 0.0, WrapHue(360))
	assert.Equal(t, 40.0, WrapHue(400))
	assert.Equal(t, 270.0, WrapHue(-90))
	assert.Equal(t, 12.5, WrapHue(12.5))
}

func TestAngles(t *testing.T) {
	assert.Equal(t, 360.0, GradToDeg(400))
	assert.InDelta(t, 180.0, RadToDeg(math.Pi), 1e-12)
	assert.Equal(t, 90.0, TurnToDeg(0.25))
	assert.Equal(t, 400.0, DegToGrad(360))
	assert.InDelta(t, math.Pi, DegToRad(180), 1e-12)
	assert.Equal(t, 0.5, DegToTurn(180))
	assert.Equal(t, 0.5, FromDeg(180, AngleTurn))
	assert.Equal(t, 180.0, FromDeg(180, AngleNone))
	assert.Equal(t, 180.0, FromDeg(180, AngleDeg))

	var u AngleUnit
	assert.NoError(t, u.SetString("grad"))
	assert.Equal(t, AngleGrad, u)
	assert.Error(t, u.Set("gon"))
	assert.Equal(t, AngleGrad, u)
}

func TestSubUnits(t *testing.T) {
	assert.True(t, IsPercentage("50%"))
	assert.False(t, IsPercentage("50"))
	assert.True(t, IsGrad("400grad"))
	assert.True(t, IsRad("400grad"))
	assert.True(t, IsRad("3rad"))
	assert.False(t, IsGrad("3rad"))
	assert.True(t, IsTurn("1turn"))
	assert.False(t, IsTurn("1deg"))
}

func TestParseFloat(t *testing.T) {
	assert.Equal(t, 12.5, ParseFloat("12.5"))
	assert.Equal(t, -3.0, ParseFloat("-3deg"))
	assert.Equal(t, 0.5, ParseFloat("+.5"))
	assert.Equal(t, 50.0, ParseFloat("50%"))
	assert.Equal(t, 0.0, ParseFloat("abc"))
	assert.Equal(t, 0.0, ParseFloat(""))
}

func TestValue(t *testing.T) {
	var v Value
	assert.False(t, v.IsSet())
	assert.Equal(t, "<unset>", v.String())
	assert.Equal(t, Num(3), v.Or(Num(3)))

	n := Num(0)
	assert.True(t, n.IsSet())
	assert.True(t, n.IsNum())
	assert.Equal(t, "0", n.Text())
	assert.Equal(t, n, n.Or(Num(3)))

	s := Text("25%")
	assert.True(t, s.IsText())
	assert.Equal(t, 25.0, s.Float())
	assert.Equal(t, "25%", s.String())
}

func TestDecimals(t *testing.T) {
	assert.Equal(t, 3, Decimals("6.283rad"))
	assert.Equal(t, 0, Decimals("6rad"))
	assert.Equal(t, 2, Decimals(" -0.25turn"))
	assert.Equal(t, 0, Decimals("360"))
}

func TestParse(t *testing.T) {
	assert.Equal(t, 100.0, RGB(Num(255)))
	assert.Equal(t, 100.0, RGB(Text("255")))
	assert.Equal(t, 50.0, RGB(Text("50%")))
	assert.Equal(t, 100.0, RGB(Num(300)))
	assert.Equal(t, 0.0, RGB(Text("-20%")))

	assert.Equal(t, 0.5, Percentage(Num(0.5)))
	assert.Equal(t, 0.5, Percentage(Text("0.5")))
	assert.Equal(t, 0.5, Percentage(Text("50%")))
	assert.Equal(t, 1.0, Percentage(Text("125%")))
	assert.Equal(t, 0.0, Percentage(Text("-125%")))
	assert.Equal(t, 1.0, Alpha(Text("1")))
	assert.Equal(t, 0.25, A98(Text("25%")))

	assert.Equal(t, 0.0, Hue(Text("400grad")))
	assert.InDelta(t, 90, Hue(Text("1.5707963267948966rad")), 1e-9)
	assert.Equal(t, 0.0, Hue(Text("1turn")))
	assert.Equal(t, 0.0, Hue(Text("360deg")))
	assert.Equal(t, 180.0, Hue(Text("0.5turn")))
	assert.Equal(t, 350.0, Hue(Num(-10)))
	assert.Equal(t, 20.0, Hue(Text("20")))
	assert.Equal(t, 0.0, Hue(Text("6.283rad")))
	assert.Equal(t, 0.0, Hue(Text("12.566rad")))
	assert.InDelta(t, 0, Hue(Text("-6.2832rad")), 1e-9)
	assert.InDelta(t, 343.77, Hue(Text("6rad")), 0.01)
	assert.InDelta(t, 359.82, Hue(Text("6.28rad")), 0.01)
	assert.InDelta(t, 359.99, Hue(Text("6.2830rad")), 0.01)

	assert.Equal(t, 54.29, LabL(Text("54.29%")))
	assert.Equal(t, 100.0, LabL(Num(120)))
	assert.InDelta(t, 80.82, LabAB(Text("64.656%")), 1e-9)
	assert.Equal(t, -125.0, LabAB(Num(-200)))
	assert.InDelta(t, 106.84, LchChroma(Text("71.22666666666667%")), 1e-9)
	assert.Equal(t, 150.0, LchChroma(Num(200)))

	assert.Equal(t, 0.63, OklabL(Text("63%")))
	assert.Equal(t, 0.22, OklabAB(Text("55%")))
	assert.Equal(t, 0.4, OklabAB(Num(0.5)))
	assert.Equal(t, 0.26, OklchChroma(Text("65%")))
	assert.Equal(t, 0.0, OklchChroma(Num(-1)))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, 1.01, Round(1.005, 2))
	assert.Equal(t, 54.29, Round(54.2905, 2))
	assert.Equal(t, 0.0, Round(-0.001, 2))
	assert.Equal(t, 3.0, Round(2.5, 0))
	assert.Equal(t, -2.0, Round(-2.5, 0))
	assert.Equal(t, 0.123, Round(0.12345, 3))
	assert.Equal(t, 255.0, Round(255, -2))
	assert.Equal(t, 1.0, Round(1, -1))

	assert.Equal(t, "0", FormatNumber(0))
	assert.Equal(t, "255", FormatNumber(255))
	assert.Equal(t, "-0.5", FormatNumber(-0.5))
	assert.Equal(t, "106.84", FormatRound(106.83918, 2))

	assert.Equal(t, "FF", ToHex(255))
	assert.Equal(t, "00", ToHex(-4))
	assert.Equal(t, "0A", ToHex(9.6))
	assert.Equal(t, "FF", ToHex(300))
	assert.Equal(t, 255.0, FromHex("FF"))
	assert.Equal(t, 255.0, FromHex("f"))
	assert.Equal(t, 170.0, FromHex("a"))
	assert.Equal(t, 0.0, FromHex("zz"))
	assert.Equal(t, "AB", ClampHex("ab"))
}

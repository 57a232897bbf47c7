package structcalc_test

import (
	"math"
	"testing"

	"github.com/aufield/sitesheet/internal/domain/structcalc"
)

func closeTo(got, want float64) bool {
	if want == 0 {
		return math.Abs(got) < 1e-12
	}
	return math.Abs(got-want) <= 1e-12*math.Abs(want)
}

func TestMaxDeflectionUDL(t *testing.T) {
	got, err := structcalc.MaxDeflectionUDL(2.0, 3.0, 200.0, 4.0)
	if err != nil {
		t.Fatal(err)
	}
	want := (5 * 2.0 * 81.0) / (384 * 200.0 * 4.0)
	if !closeTo(got, want) {
		t.Errorf("deflection = %g, want %g", got, want)
	}
}

func TestBendingMomentUDL(t *testing.T) {
	tests := []struct {
		name            string
		load, length, x float64
		want            float64
	}{
		{"midspan", 10.0, 6.0, 3.0, 10.0 * 3.0 * 3.0 / 2},
		{"left support", 10.0, 6.0, 0.0, 0},
		{"right support", 10.0, 6.0, 6.0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := structcalc.BendingMomentUDL(tt.load, tt.length, tt.x)
			if err != nil {
				t.Fatal(err)
			}
			if !closeTo(got, tt.want) {
				t.Errorf("moment = %g, want %g", got, tt.want)
			}
		})
	}
}

func TestShearForceUDL(t *testing.T) {
	tests := []struct {
		name            string
		load, length, x float64
		want            float64
	}{
		{"left support", 8.0, 4.0, 0.0, 8.0 * 2.0},
		{"midspan", 8.0, 4.0, 2.0, 0},
		{"right support", 8.0, 4.0, 4.0, -8.0 * 2.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := structcalc.ShearForceUDL(tt.load, tt.length, tt.x)
			if err != nil {
				t.Fatal(err)
			}
			if !closeTo(got, tt.want) {
				t.Errorf("shear = %g, want %g", got, tt.want)
			}
		})
	}
}

func TestBeamValidation(t *testing.T) {
	if _, err := structcalc.MaxDeflectionUDL(-1.0, 1.0, 1.0, 1.0); err == nil {
		t.Error("negative load accepted")
	}
	if _, err := structcalc.MaxDeflectionUDL(1.0, 1.0, 0.0, 1.0); err == nil {
		t.Error("zero elasticity accepted")
	}
	if _, err := structcalc.BendingMomentUDL(1.0, 0.0, 0.0); err == nil {
		t.Error("zero length accepted")
	}
	if _, err := structcalc.ShearForceUDL(1.0, 2.0, -0.1); err == nil {
		t.Error("position left of beam accepted")
	}
	if _, err := structcalc.ShearForceUDL(1.0, 2.0, 2.1); err == nil {
		t.Error("position past beam end accepted")
	}
}

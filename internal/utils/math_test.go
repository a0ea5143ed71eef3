package utils

import (
	"math"
	"testing"

	"dragon-siege/internal/component"
)

func TestStepToward(t *testing.T) {
	tests := []struct {
		name   string
		from   component.Position
		target component.Position
		speed  float64
		want   component.Position
	}{
		{"right", component.Position{X: 0, Y: 0}, component.Position{X: 10, Y: 0}, 2, component.Position{X: 2, Y: 0}},
		{"up", component.Position{X: 5, Y: 10}, component.Position{X: 5, Y: 0}, 1.5, component.Position{X: 5, Y: 8.5}},
		{"diagonal", component.Position{X: 0, Y: 0}, component.Position{X: 3, Y: 4}, 5, component.Position{X: 3, Y: 4}},
	}
	for _, tt := range tests {
		pos := tt.from
		StepToward(&pos, tt.target, tt.speed)
		if math.Abs(pos.X-tt.want.X) > 1e-9 || math.Abs(pos.Y-tt.want.Y) > 1e-9 {
			t.Errorf("%s: expected %+v, got %+v", tt.name, tt.want, pos)
		}
	}
}

func TestWithin(t *testing.T) {
	a := component.Position{X: 0, Y: 0}
	if !Within(a, component.Position{X: 30, Y: 40}, 50) {
		t.Error("Expected point at exactly r to be within")
	}
	if Within(a, component.Position{X: 30, Y: 40.1}, 50) {
		t.Error("Expected point beyond r to be outside")
	}
}

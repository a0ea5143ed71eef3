// internal/utils/math.go
package utils

import (
	"dragon-siege/internal/component"
	"math"
)

// Distance возвращает евклидово расстояние между точками.
func Distance(ax, ay, bx, by float64) float64 {
	return math.Hypot(ax-bx, ay-by)
}

// StepToward сдвигает позицию на speed пикселей по направлению к цели.
// При совпадении точек atan2 даёт 0, и шаг идёт вправо.
func StepToward(pos *component.Position, target component.Position, speed float64) {
	angle := math.Atan2(target.Y-pos.Y, target.X-pos.X)
	pos.X += math.Cos(angle) * speed
	pos.Y += math.Sin(angle) * speed
}

// Within сообщает, что точки находятся на расстоянии не больше r.
func Within(a, b component.Position, r float64) bool {
	return Distance(a.X, a.Y, b.X, b.Y) <= r
}

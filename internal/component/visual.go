// internal/component/visual.go
package component

// DamageFlash указывает, что сущность должна быть отрисована цветом урона.
type DamageFlash struct {
	Timer    float64 // Сколько времени эффекту осталось
	Duration float64 // Общая продолжительность эффекта
}

// ClickEffect — расходящийся круг в точке клика.
type ClickEffect struct {
	Position     Position
	CurrentTimer float64
	Duration     float64
	MaxRadius    float64
}

// Radius возвращает текущий радиус анимации.
func (c ClickEffect) Radius() float64 {
	if c.Duration <= 0 {
		return c.MaxRadius
	}
	return c.CurrentTimer / c.Duration * c.MaxRadius
}

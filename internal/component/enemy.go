package component

// Enemy представляет вражескую сущность.
type Enemy struct {
	DefID  string  // ID из enemies.json
	Tier   int     // Индекс уровня в таблице врагов, используется для отрисовки
	Damage int     // Урон игроку при столкновении
	Size   float64 // Радиус столкновения и попадания
	Points int     // Очки за убийство кликом
}

package component

// Boss — единственный босс, появляющийся каждую третью волну.
type Boss struct {
	Active      bool
	Position    Position
	Health      Health
	Speed       float64
	Damage      int     // Урон за кадр контакта
	Radius      float64 // Радиус попадания и контакта
	Appearances int     // Сколько раз босс уже появлялся
	Flash       DamageFlash
}

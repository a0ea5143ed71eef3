// internal/component/player.go
package component

// Player хранит состояние волшебника в центре поля.
// Life может уйти в минус до того, как будет зафиксирован конец игры.
type Player struct {
	Position
	Radius  float64
	Life    int
	MaxLife int
}

// IsDead сообщает, что жизнь игрока исчерпана.
func (p *Player) IsDead() bool {
	return p.Life <= 0
}

// component/movement.go
package component

// Position — компонент позиции
type Position struct {
	X, Y float64
}

// Velocity — скорость в пикселях за кадр
type Velocity struct {
	Speed float64
}

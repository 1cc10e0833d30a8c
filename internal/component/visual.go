// internal/component/visual.go
package component

// Star — декоративная звезда фона.
type Star struct {
	Position
	Speed      float64
	Brightness float64 // 0..1, используется как альфа
}

// Flash отмечает место уничтоженного врага.
type Flash struct {
	Position
	Size
	Timer int // оставшиеся кадры
}

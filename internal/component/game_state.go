package component

// Outcome records why a session ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeLivesExhausted
	OutcomeBreached
)

func (o Outcome) String() string {
	switch o {
	case OutcomeLivesExhausted:
		return "lives exhausted"
	case OutcomeBreached:
		return "enemies broke through"
	default:
		return "none"
	}
}

// Session — компонент для хранения состояния игровой сессии
type Session struct {
	Score    int
	Level    int
	Lives    int
	GameOver bool
	Paused   bool
	Outcome  Outcome
	Frame    uint64 // количество выполненных шагов Update
}

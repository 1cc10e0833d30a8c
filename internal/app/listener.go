package app

import (
	"log"

	"go-space-invaders/internal/event"
)

// EventLogger пишет события игры в лог и ведёт простые счётчики.
type EventLogger struct {
	Kills    int
	Hits     int
	Waves    int
	Games    int
	Restarts int
	logger   *log.Logger
}

// NewEventLogger subscribes a logger to every engine event. A nil logger
// uses the standard one.
func NewEventLogger(d *event.Dispatcher, logger *log.Logger) *EventLogger {
	if logger == nil {
		logger = log.Default()
	}
	l := &EventLogger{logger: logger}
	d.Subscribe(l, event.All...)
	return l
}

// OnEvent реализует интерфейс event.Listener.
func (l *EventLogger) OnEvent(e event.Event) {
	switch data := e.Data.(type) {
	case event.EnemyDestroyedData:
		l.Kills++
		if l.Kills%10 == 0 {
			l.logger.Printf("kills: %d, score: %d", l.Kills, data.Score)
		}
	case event.PlayerHitData:
		l.Hits++
		l.logger.Printf("player hit, lives left: %d", data.Lives)
	case event.WaveClearedData:
		l.Waves++
		l.logger.Printf("wave cleared, level %d", data.Level)
	case event.GameOverData:
		l.Games++
		l.logger.Printf("game over (%s): score %d, level %d", data.Reason, data.Score, data.Level)
	case event.PauseToggledData:
		l.logger.Printf("paused: %v", data.Paused)
	default:
		if e.Type == event.SessionRestarted {
			l.Restarts++
			l.logger.Println("session restarted")
		}
	}
}

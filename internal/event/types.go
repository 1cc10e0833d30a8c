// internal/event/types.go
package event

const (
	EnemyDestroyed   EventType = "EnemyDestroyed"   // пуля игрока сбила врага
	PlayerHit        EventType = "PlayerHit"        // вражеская пуля попала в игрока
	WaveCleared      EventType = "WaveCleared"      // волна уничтожена, новый уровень
	GameOver         EventType = "GameOver"         // сессия закончилась
	SessionRestarted EventType = "SessionRestarted" // перезапуск после GameOver
	PauseToggled     EventType = "PauseToggled"
)

// All lists every event type the engine publishes.
var All = []EventType{EnemyDestroyed, PlayerHit, WaveCleared, GameOver, SessionRestarted, PauseToggled}

// EnemyDestroyedData is the payload of EnemyDestroyed.
type EnemyDestroyedData struct {
	Enemy int // индекс в арене врагов
	Score int // счёт после попадания
}

// PlayerHitData is the payload of PlayerHit.
type PlayerHitData struct {
	Lives int
}

// WaveClearedData is the payload of WaveCleared.
type WaveClearedData struct {
	Level int // новый уровень
}

// GameOverData is the payload of GameOver.
type GameOverData struct {
	Score  int
	Level  int
	Reason string
}

// PauseToggledData is the payload of PauseToggled.
type PauseToggledData struct {
	Paused bool
}

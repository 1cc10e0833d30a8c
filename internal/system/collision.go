// internal/system/collision.go
package system

import (
	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/entity"
	"go-space-invaders/internal/event"
	"go-space-invaders/pkg/utils"

	"github.com/solarlune/resolv"
)

var (
	tagEnemy = resolv.NewTag("enemy")
	tagQuery = resolv.NewTag("query")
)

// CollisionSystem разрешает попадания пуль. Кандидатов для пуль игрока
// выбирает пространственная сетка resolv, решение о попадании принимает
// строгий AABB тест.
type CollisionSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher

	space      *resolv.Space
	query      resolv.IShape
	queryAt    component.Position
	shapes     [config.EnemyCount]resolv.IShape
	shapeAt    [config.EnemyCount]component.Position
	owner      map[resolv.IShape]int
	waveSerial uint64
}

func NewCollisionSystem(world *entity.World, eventDispatcher *event.Dispatcher) *CollisionSystem {
	s := &CollisionSystem{
		world:           world,
		eventDispatcher: eventDispatcher,
		space:           resolv.NewSpace(config.ScreenWidth, config.ScreenHeight, config.CollisionCellSize, config.CollisionCellSize),
		owner:           make(map[resolv.IShape]int, config.EnemyCount),
	}
	s.query = resolv.NewRectangleFromTopLeft(0, 0, config.BulletWidth, config.BulletHeight)
	s.query.Tags().Set(tagQuery)
	s.space.Add(s.query)
	return s
}

func (s *CollisionSystem) Update() {
	s.syncEnemies()

	session := &s.world.Session
	for i := range s.world.Bullets {
		b := &s.world.Bullets[i]
		if !b.Alive {
			continue
		}
		switch b.Owner {
		case component.OwnerPlayer:
			idx := s.findHit(b)
			if idx < 0 {
				continue
			}
			b.Alive = false
			s.killEnemy(idx)
			session.Score += config.ScorePerKill
			s.eventDispatcher.Emit(event.EnemyDestroyed, event.EnemyDestroyedData{Enemy: idx, Score: session.Score})
		case component.OwnerEnemy:
			p := &s.world.Player
			if !p.Alive || session.Lives <= 0 {
				continue
			}
			if !utils.Overlaps(b.Bounds(), p.Bounds()) {
				continue
			}
			b.Alive = false
			session.Lives--
			s.eventDispatcher.Emit(event.PlayerHit, event.PlayerHitData{Lives: session.Lives})
			if session.Lives == 0 {
				p.Alive = false
				endSession(s.world, s.eventDispatcher, component.OutcomeLivesExhausted)
			}
		}
	}
}

// findHit returns the lowest arena index of a live enemy overlapping b,
// or -1. One bullet scores at most one kill.
func (s *CollisionSystem) findHit(b *component.Bullet) int {
	s.moveShape(s.query, &s.queryAt, b.Position)
	box := b.Bounds()
	best := -1
	s.query.SelectTouchingCells(1).FilterShapes().ByTags(tagEnemy).ForEach(func(shape resolv.IShape) bool {
		idx, ok := s.owner[shape]
		if !ok || (best >= 0 && idx >= best) {
			return true
		}
		e := &s.world.Enemies[idx]
		if e.Alive && utils.Overlaps(box, e.Bounds()) {
			best = idx
		}
		return true
	})
	return best
}

func (s *CollisionSystem) killEnemy(idx int) {
	s.world.Enemies[idx].Alive = false
	s.dropShape(idx)
}

// syncEnemies mirrors the enemy arena into the resolv space: the whole set is
// rebuilt for a new wave, otherwise shapes follow their enemies and dead
// enemies leave the space.
func (s *CollisionSystem) syncEnemies() {
	if s.waveSerial != s.world.WaveSerial {
		s.rebuild()
		return
	}
	for i := range s.world.Enemies {
		e := &s.world.Enemies[i]
		if !e.Alive {
			s.dropShape(i)
			continue
		}
		if s.shapes[i] != nil {
			s.moveShape(s.shapes[i], &s.shapeAt[i], e.Position)
		}
	}
}

func (s *CollisionSystem) rebuild() {
	for i := range s.shapes {
		s.dropShape(i)
	}
	for i := range s.world.Enemies {
		e := &s.world.Enemies[i]
		if !e.Alive {
			continue
		}
		shape := resolv.NewRectangleFromTopLeft(e.X, e.Y, e.W, e.H)
		shape.Tags().Set(tagEnemy)
		s.space.Add(shape)
		s.shapes[i] = shape
		s.shapeAt[i] = e.Position
		s.owner[shape] = i
	}
	s.waveSerial = s.world.WaveSerial
}

func (s *CollisionSystem) dropShape(idx int) {
	shape := s.shapes[idx]
	if shape == nil {
		return
	}
	s.space.Remove(shape)
	delete(s.owner, shape)
	s.shapes[idx] = nil
}

// moveShape двигает фигуру относительным смещением, чтобы не зависеть от
// того, какую точку resolv считает позицией прямоугольника.
func (s *CollisionSystem) moveShape(shape resolv.IShape, at *component.Position, to component.Position) {
	dx, dy := to.X-at.X, to.Y-at.Y
	if dx == 0 && dy == 0 {
		return
	}
	shape.Move(dx, dy)
	*at = to
}

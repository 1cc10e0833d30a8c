// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// RNG is the random source consumed by the game systems. Tests substitute a
// scripted implementation.
type RNG interface {
	Intn(n int) int
	Float64() float64
}

// PRNGService — обёртка над math/rand, чтобы во всей игре использовался
// один предсказуемый (seeded) генератор.
type PRNGService struct {
	seed int64
	rng  *rand.Rand
}

// NewPRNGService создаёт сервис с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Seed returns the seed the service was created with.
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Range возвращает случайное число в диапазоне [lo, hi).
func Range(r RNG, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

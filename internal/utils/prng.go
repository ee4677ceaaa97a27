// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService — обертка над стандартным генератором случайных чисел Go,
// чтобы во всей симуляции использовать один предсказуемый (seeded) рандом.
type PRNGService struct {
	rng  *rand.Rand
	seed int64
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
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

// Float64 возвращает случайное число с плавающей точкой в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// RandomSource is the part of PRNGService the simulation needs.
type RandomSource interface {
	Float64() float64
}

// FloatRange is an inclusive [Min, Max] interval to roll values from.
type FloatRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Random returns a value in the range. Degenerate ranges return Min without
// consuming randomness.
func (r FloatRange) Random(src RandomSource) float64 {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + (r.Max-r.Min)*src.Float64()
}

// internal/utils/prng.go
package utils

import (
	"dragon-siege/internal/defs"
	"math/rand"
	"time"
)

// PRNGService — это обертка над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом во всей игре.
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
	source := rand.NewSource(seed)
	return &PRNGService{
		rng:  rand.New(source),
		seed: seed,
	}
}

// Seed возвращает сид, с которым был создан сервис.
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

// ChooseTier выполняет взвешенный выбор уровня врага по накопленной
// вероятности и возвращает его индекс.
func (s *PRNGService) ChooseTier(tiers []defs.EnemyDefinition) int {
	return ChooseCumulative(tiers, s.Float64())
}

// ChooseCumulative находит первый уровень, для которого r <= сумма шансов.
// Если из-за округления совпадения нет, возвращается первый уровень.
func ChooseCumulative(tiers []defs.EnemyDefinition, r float64) int {
	cumulative := 0.0
	for i, tier := range tiers {
		cumulative += tier.Chance
		if r <= cumulative {
			return i
		}
	}
	return 0
}

package recommend

import (
	"math/rand"
	"sync"
	"time"
)

// Shuffler permutes n elements through swap. *rand.Rand satisfies it,
// which lets tests plug in a seeded source.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// lockedRand 给 *rand.Rand 加锁，多个请求可以共用同一个随机源
type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewRandShuffler returns a concurrency-safe Fisher-Yates shuffler seeded
// from the clock. Order is not reproducible and not cryptographically random.
func NewRandShuffler() Shuffler {
	return NewSeededShuffler(time.Now().UnixNano())
}

// NewSeededShuffler returns a concurrency-safe shuffler with a fixed seed.
func NewSeededShuffler(seed int64) Shuffler {
	return &lockedRand{r: rand.New(rand.NewSource(seed))}
}

func (l *lockedRand) Shuffle(n int, swap func(i, j int)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.r.Shuffle(n, swap)
}

// noShuffle keeps declaration order.
type noShuffle struct{}

func (noShuffle) Shuffle(int, func(i, j int)) {}

// NoShuffle returns a Shuffler that leaves the order untouched.
func NoShuffle() Shuffler {
	return noShuffle{}
}

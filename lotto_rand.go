package main

import (
	"math/rand/v2"
	"sort"
	"sync"
	"time"
)

const (
	lottoMin     = 1
	lottoMax     = 45
	lottoPickCnt = 6

	// 사실상 도달하지 않는 상한
	maxDraws = 1000
)

// Generator 는 1~45 중 서로 다른 6개의 번호를 오름차순으로 뽑습니다.
type Generator struct {
	mu  sync.Mutex
	r   *rand.Rand
	now func() time.Time
}

func NewGenerator() *Generator {
	seed := uint64(time.Now().UnixNano())
	return NewGeneratorWithRand(rand.New(rand.NewPCG(seed, seed>>1|1)))
}

func NewGeneratorWithRand(r *rand.Rand) *Generator {
	return &Generator{r: r, now: time.Now}
}

// Generate draws one NumberSet by rejection sampling.
func (g *Generator) Generate() NumberSet {
	g.mu.Lock()
	defer g.mu.Unlock()

	return NumberSet{
		ID:        newSetID(),
		Numbers:   g.pick(),
		CreatedAt: g.now(),
	}
}

func (g *Generator) pick() [lottoPickCnt]int {
	seen := make(map[int]struct{}, lottoPickCnt)
	for draws := 0; len(seen) < lottoPickCnt; draws++ {
		if draws >= maxDraws {
			for _, n := range g.r.Perm(lottoMax) {
				if len(seen) == lottoPickCnt {
					break
				}
				seen[n+lottoMin] = struct{}{}
			}
			break
		}
		seen[g.r.IntN(lottoMax-lottoMin+1)+lottoMin] = struct{}{}
	}

	nums := make([]int, 0, lottoPickCnt)
	for n := range seen {
		nums = append(nums, n)
	}
	sort.Ints(nums)

	var out [lottoPickCnt]int
	copy(out[:], nums)
	return out
}

// IssueNumber returns the 9 character base-36 serial printed on a ticket.
func (g *Generator) IssueNumber() string {
	const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

	g.mu.Lock()
	defer g.mu.Unlock()
	b := make([]byte, 9)
	for i := range b {
		b[i] = alphabet[g.r.IntN(len(alphabet))]
	}
	return string(b)
}

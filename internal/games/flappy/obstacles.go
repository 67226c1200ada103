package flappy

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Pipe represents a vertical obstacle pair with a gap for the bird to pass through.
type Pipe struct {
	X         float64 // Left edge
	TopHeight float64 // Height of the top section; the gap starts here
	Scored    bool    // Whether the bird has cleared this pipe
}

// Right returns the x of the right edge.
func (p Pipe) Right(width float64) float64 {
	return p.X + width
}

// GapBottom returns the y where the bottom section starts.
func (p Pipe) GapBottom(gap float64) float64 {
	return p.TopHeight + gap
}

// Sections returns the top and bottom barriers. They extend without bound
// past the ceiling and below the ground line.
func (p Pipe) Sections(width, gap float64) (top, bottom core.Box) {
	top = core.Box{Left: p.X, Top: math.Inf(-1), Right: p.Right(width), Bottom: p.TopHeight}
	bottom = core.Box{Left: p.X, Top: p.GapBottom(gap), Right: p.Right(width), Bottom: math.Inf(1)}
	return top, bottom
}

// Hits reports whether box collides with either section of the pipe.
// Touching an edge is not a hit.
func (p Pipe) Hits(box core.Box, width, gap float64) bool {
	top, bottom := p.Sections(width, gap)
	return box.Intersects(top) || box.Intersects(bottom)
}

// PipeQueue is a FIFO of pipes backed by a growable ring buffer.
// Pipes are appended at the back and only ever removed from the front.
type PipeQueue struct {
	buf  []Pipe
	head int
	n    int
}

// NewPipeQueue creates a queue with room for capacity pipes before growing.
func NewPipeQueue(capacity int) *PipeQueue {
	if capacity < 1 {
		capacity = 1
	}
	return &PipeQueue{buf: make([]Pipe, capacity)}
}

// Len returns the number of queued pipes.
func (q *PipeQueue) Len() int {
	return q.n
}

// Push appends a pipe at the back.
func (q *PipeQueue) Push(p Pipe) {
	if q.n == len(q.buf) {
		q.grow()
	}
	q.buf[(q.head+q.n)%len(q.buf)] = p
	q.n++
}

// Front returns the oldest pipe.
func (q *PipeQueue) Front() (Pipe, bool) {
	if q.n == 0 {
		return Pipe{}, false
	}
	return q.buf[q.head], true
}

// PopFront removes and returns the oldest pipe.
func (q *PipeQueue) PopFront() (Pipe, bool) {
	if q.n == 0 {
		return Pipe{}, false
	}
	p := q.buf[q.head]
	q.buf[q.head] = Pipe{}
	q.head = (q.head + 1) % len(q.buf)
	q.n--
	return p, true
}

// At returns a pointer to the i-th pipe counting from the front.
// The pointer is invalidated by Push.
func (q *PipeQueue) At(i int) *Pipe {
	if i < 0 || i >= q.n {
		panic("flappy: pipe index out of range")
	}
	return &q.buf[(q.head+i)%len(q.buf)]
}

// Clear empties the queue, keeping its storage.
func (q *PipeQueue) Clear() {
	clear(q.buf)
	q.head = 0
	q.n = 0
}

// AppendTo appends the pipes front to back onto dst.
func (q *PipeQueue) AppendTo(dst []Pipe) []Pipe {
	for i := 0; i < q.n; i++ {
		dst = append(dst, q.buf[(q.head+i)%len(q.buf)])
	}
	return dst
}

func (q *PipeQueue) grow() {
	next := make([]Pipe, 2*len(q.buf))
	q.AppendTo(next[:0])
	q.buf = next
	q.head = 0
}

// spawner draws pipe heights from a seeded source.
type spawner struct {
	rng *rand.Rand
}

func newSpawner(seed int64) *spawner {
	return &spawner{rng: rand.New(rand.NewSource(seed))}
}

// HeightRange returns the inclusive range of valid top-section heights for
// a world of the given height. On small worlds max collapses onto min.
func HeightRange(obs config.FlappyObstacles, worldH, groundH float64) (lo, hi int) {
	lo = obs.MinPipeHeight
	hi = int(worldH - groundH - obs.PipeGap - float64(obs.MinPipeHeight))
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

// topHeight picks a uniform integer in [lo, hi].
func (s *spawner) topHeight(lo, hi int) float64 {
	return float64(lo + s.rng.Intn(hi-lo+1))
}

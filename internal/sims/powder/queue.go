package powder

import (
	"sync"

	"powder/internal/core"
)

// SpawnRequest is one pending external write.
type SpawnRequest struct {
	X, Y     int
	Material Cell
}

// SpawnQueue buffers spawn requests produced on input goroutines so they can
// be applied between steps. The zero value is ready to use.
type SpawnQueue struct {
	mu      sync.Mutex
	pending []SpawnRequest
}

// Spawn queues a request; it satisfies core.Spawner so a Brush can paint
// straight into the queue.
func (q *SpawnQueue) Spawn(x, y int, v uint8) {
	q.Push(SpawnRequest{X: x, Y: y, Material: Cell(v)})
}

// Push appends requests in order.
func (q *SpawnQueue) Push(reqs ...SpawnRequest) {
	q.mu.Lock()
	q.pending = append(q.pending, reqs...)
	q.mu.Unlock()
}

// Len returns the number of queued requests.
func (q *SpawnQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Drain applies every queued request to dst in FIFO order and returns how many
// were applied. Call it only between steps.
func (q *SpawnQueue) Drain(dst core.Spawner) int {
	q.mu.Lock()
	batch := q.pending
	q.pending = nil
	q.mu.Unlock()

	for _, r := range batch {
		dst.Spawn(r.X, r.Y, uint8(r.Material))
	}
	return len(batch)
}

package engine

// FrameID identifies a pending frame request. The zero value is never issued.
type FrameID uint64

// Scheduler requests callbacks on the next display refresh, the way a
// browser's requestAnimationFrame does.
type Scheduler interface {
	Request(fn func()) FrameID
	Cancel(id FrameID)
}

type frameRequest struct {
	id FrameID
	fn func()
}

// FrameQueue is a Scheduler driven by the host: the backend calls Fire once
// per refresh. It is not safe for concurrent use.
type FrameQueue struct {
	next    FrameID
	pending []frameRequest
	firing  []frameRequest
}

func (q *FrameQueue) Request(fn func()) FrameID {
	if fn == nil {
		return 0
	}
	q.next++
	q.pending = append(q.pending, frameRequest{id: q.next, fn: fn})
	return q.next
}

func (q *FrameQueue) Cancel(id FrameID) {
	if id == 0 {
		return
	}
	for i, r := range q.pending {
		if r.id == id {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
	// A callback may cancel a later request of the batch being fired.
	for i := range q.firing {
		if q.firing[i].id == id {
			q.firing[i].fn = nil
			return
		}
	}
}

// Fire runs the callbacks that were pending when it was called and returns
// how many ran. Requests made by those callbacks wait for the next Fire.
func (q *FrameQueue) Fire() int {
	if len(q.pending) == 0 {
		return 0
	}
	q.firing, q.pending = q.pending, q.firing[:0]
	n := 0
	for i := 0; i < len(q.firing); i++ {
		fn := q.firing[i].fn
		if fn == nil {
			continue
		}
		fn()
		n++
	}
	clear(q.firing)
	q.firing = q.firing[:0]
	return n
}

// Pending returns the number of queued requests.
func (q *FrameQueue) Pending() int { return len(q.pending) }

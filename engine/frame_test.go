package engine

import "testing"

func TestFrameQueueOrderAndIDs(t *testing.T) {
	var q FrameQueue
	var got []int
	a := q.Request(func() { got = append(got, 1) })
	b := q.Request(func() { got = append(got, 2) })
	if a == 0 || b <= a {
		t.Fatalf("ids = %d, %d", a, b)
	}
	if n := q.Fire(); n != 2 {
		t.Fatalf("fired %d", n)
	}
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Fatalf("order = %v", got)
	}
	if q.Fire() != 0 {
		t.Fatalf("requests fired twice")
	}
}

func TestFrameQueueDefersNestedRequests(t *testing.T) {
	var q FrameQueue
	runs := 0
	var loop func()
	loop = func() {
		runs++
		q.Request(loop)
	}
	q.Request(loop)
	for i := 0; i < 3; i++ {
		q.Fire()
	}
	if runs != 3 {
		t.Fatalf("runs = %d, want one per fire", runs)
	}
	if q.Pending() != 1 {
		t.Fatalf("pending = %d", q.Pending())
	}
}

func TestFrameQueueCancel(t *testing.T) {
	var q FrameQueue
	ran := false
	id := q.Request(func() { ran = true })
	q.Request(func() {})
	q.Cancel(id)
	q.Cancel(id)
	q.Cancel(0)
	if q.Pending() != 1 {
		t.Fatalf("pending = %d", q.Pending())
	}
	q.Fire()
	if ran {
		t.Fatalf("cancelled request ran")
	}
	if q.Request(nil) != 0 {
		t.Fatalf("nil request got an id")
	}
}

func TestFrameQueueCancelWithinFire(t *testing.T) {
	var q FrameQueue
	ran := false
	var later FrameID
	q.Request(func() { q.Cancel(later) })
	later = q.Request(func() { ran = true })
	if n := q.Fire(); n != 1 {
		t.Fatalf("fired %d, want 1", n)
	}
	if ran {
		t.Fatalf("request cancelled during Fire still ran")
	}
	if q.Pending() != 0 {
		t.Fatalf("pending = %d", q.Pending())
	}
}

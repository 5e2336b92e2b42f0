package eventloop

import (
	"reflect"
	"testing"
	"time"
)

func TestQueueDrainRunsNestedPosts(t *testing.T) {
	q := NewQueue()
	var got []int
	q.Post(func() {
		got = append(got, 1)
		q.Post(func() { got = append(got, 3) })
	})
	q.Post(func() { got = append(got, 2) })

	if n := q.Drain(); n != 3 {
		t.Errorf("Drain() = %d, want 3", n)
	}
	if !reflect.DeepEqual(got, []int{1, 2, 3}) {
		t.Errorf("order = %v", got)
	}
	if q.Len() != 0 {
		t.Errorf("Len() = %d after drain", q.Len())
	}
}

func TestQueueAfterPostsBack(t *testing.T) {
	q := NewQueue()
	done := make(chan struct{})
	q.After(time.Millisecond, func() { close(done) })

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		q.Drain()
		select {
		case <-done:
			return
		default:
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("timer callback never ran through Drain")
}

func TestManualAdvanceOrder(t *testing.T) {
	m := NewManual()
	var got []string
	m.After(20*time.Millisecond, func() { got = append(got, "b") })
	m.After(10*time.Millisecond, func() {
		got = append(got, "a")
		m.After(5*time.Millisecond, func() { got = append(got, "a2") })
	})
	m.After(20*time.Millisecond, func() { got = append(got, "c") })

	m.Advance(9 * time.Millisecond)
	if len(got) != 0 {
		t.Fatalf("timers fired early: %v", got)
	}
	m.Advance(11 * time.Millisecond)
	if !reflect.DeepEqual(got, []string{"a", "a2", "b", "c"}) {
		t.Errorf("order = %v", got)
	}
	if m.Now() != 20*time.Millisecond {
		t.Errorf("Now() = %v", m.Now())
	}
}

func TestManualSettle(t *testing.T) {
	m := NewManual()
	count := 0
	var tick func()
	tick = func() {
		count++
		if count < 5 {
			m.After(10*time.Millisecond, tick)
		}
	}
	m.Post(tick)
	m.Settle(10*time.Millisecond, time.Second)
	if count != 5 {
		t.Errorf("count = %d, want 5", count)
	}
}

package eventloop

import (
	"sort"
	"sync"
	"time"
)

// Loop runs callbacks one at a time on the goroutine that drains it.
// Post and After are safe to call from any goroutine.
type Loop interface {
	Post(f func())
	After(d time.Duration, f func())
}

// ---- Queue ----

// Queue is drained from the ebiten Update loop or the CLI input loop
type Queue struct {
	mu      sync.Mutex
	pending []func()
}

func NewQueue() *Queue {
	return &Queue{}
}

func (q *Queue) Post(f func()) {
	q.mu.Lock()
	q.pending = append(q.pending, f)
	q.mu.Unlock()
}

func (q *Queue) After(d time.Duration, f func()) {
	time.AfterFunc(d, func() { q.Post(f) })
}

// Drain runs everything queued so far, including callbacks posted while draining.
// It returns the number of callbacks run.
func (q *Queue) Drain() int {
	n := 0
	for {
		q.mu.Lock()
		batch := q.pending
		q.pending = nil
		q.mu.Unlock()
		if len(batch) == 0 {
			return n
		}
		for _, f := range batch {
			f()
			n++
		}
	}
}

func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// ---- Manual ----

type timer struct {
	at  time.Duration
	seq int
	f   func()
}

// Manual is a Loop on virtual time. Nothing runs until Drain or Advance.
type Manual struct {
	mu      sync.Mutex
	now     time.Duration
	seq     int
	timers  []timer
	pending []func()
}

func NewManual() *Manual {
	return &Manual{}
}

func (m *Manual) Post(f func()) {
	m.mu.Lock()
	m.pending = append(m.pending, f)
	m.mu.Unlock()
}

func (m *Manual) After(d time.Duration, f func()) {
	m.mu.Lock()
	m.seq++
	m.timers = append(m.timers, timer{at: m.now + d, seq: m.seq, f: f})
	m.mu.Unlock()
}

func (m *Manual) Now() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Drain runs posted callbacks without moving the clock
func (m *Manual) Drain() int {
	n := 0
	for {
		m.mu.Lock()
		batch := m.pending
		m.pending = nil
		m.mu.Unlock()
		if len(batch) == 0 {
			return n
		}
		for _, f := range batch {
			f()
			n++
		}
	}
}

// Advance moves the clock forward by d, firing due timers in deadline order
// and draining posted callbacks after each one.
func (m *Manual) Advance(d time.Duration) {
	m.Drain()
	m.mu.Lock()
	end := m.now + d
	m.mu.Unlock()
	for {
		m.mu.Lock()
		sort.SliceStable(m.timers, func(i, j int) bool {
			if m.timers[i].at == m.timers[j].at {
				return m.timers[i].seq < m.timers[j].seq
			}
			return m.timers[i].at < m.timers[j].at
		})
		if len(m.timers) == 0 || m.timers[0].at > end {
			m.now = end
			m.mu.Unlock()
			return
		}
		next := m.timers[0]
		m.timers = m.timers[1:]
		m.now = next.at
		m.mu.Unlock()

		next.f()
		m.Drain()
	}
}

// Settle advances until no timers or posted callbacks remain, up to limit
func (m *Manual) Settle(step, limit time.Duration) {
	for elapsed := time.Duration(0); elapsed < limit; elapsed += step {
		m.Advance(step)
		m.mu.Lock()
		idle := len(m.timers) == 0 && len(m.pending) == 0
		m.mu.Unlock()
		if idle {
			return
		}
	}
}

package gate

import (
	"sync"
)

// Job is one initialization run. It must call release exactly once, when the
// instance is fully wired; further calls are ignored.
type Job func(release func())

type Transition struct {
	Busy  bool
	Owner string
}

type pending struct {
	owner string
	job   Job
}

// Scheduler lets one initialization run at a time. Jobs submitted while the
// gate is busy wait in FIFO order and start when the running job releases.
type Scheduler struct {
	mu        sync.Mutex
	busy      bool
	owner     string
	queue     []pending
	observers []func(Transition)
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

var defaultScheduler = NewScheduler()

// Default is the scheduler shared by every knob in the process
func Default() *Scheduler {
	return defaultScheduler
}

func (s *Scheduler) OnTransition(f func(Transition)) {
	s.mu.Lock()
	s.observers = append(s.observers, f)
	s.mu.Unlock()
}

func (s *Scheduler) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

func (s *Scheduler) Owner() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.owner
}

func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queue)
}

// Acquire takes the gate if it is free
func (s *Scheduler) Acquire(owner string) bool {
	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return false
	}
	s.busy = true
	s.owner = owner
	obs := s.observers
	s.mu.Unlock()

	notify(obs, Transition{Busy: true, Owner: owner})
	return true
}

// Release frees the gate and starts the next queued job, if any
func (s *Scheduler) Release(owner string) {
	s.mu.Lock()
	if !s.busy || s.owner != owner {
		s.mu.Unlock()
		return
	}
	s.busy = false
	s.owner = ""
	obs := s.observers
	s.mu.Unlock()

	notify(obs, Transition{Busy: false, Owner: owner})
	s.next()
}

// Submit runs job now if the gate is free, otherwise queues it
func (s *Scheduler) Submit(owner string, job Job) {
	s.mu.Lock()
	s.queue = append(s.queue, pending{owner: owner, job: job})
	s.mu.Unlock()
	s.next()
}

func (s *Scheduler) next() {
	s.mu.Lock()
	if s.busy || len(s.queue) == 0 {
		s.mu.Unlock()
		return
	}
	p := s.queue[0]
	s.queue = s.queue[1:]
	s.busy = true
	s.owner = p.owner
	obs := s.observers
	s.mu.Unlock()

	notify(obs, Transition{Busy: true, Owner: p.owner})

	var once sync.Once
	p.job(func() {
		once.Do(func() { s.Release(p.owner) })
	})
}

func notify(obs []func(Transition), t Transition) {
	for _, f := range obs {
		f(t)
	}
}

// Package notify implements the process-wide queue of ephemeral
// user-facing messages. Each message owns one cancellable auto-dismiss
// timer; dismissal is idempotent whether it comes from the timer, the user
// or teardown.
package notify

import (
	"sync"
	"time"

	"garden_manager/internal/domain/entities"
	"garden_manager/internal/usecase/interfaces"

	"github.com/google/uuid"
)

type entry struct {
	notification entities.Notification
	timer        *time.Timer
	// gen invalidates callbacks of timers that were already firing when
	// the entry was re-armed; Timer.Stop cannot cancel those.
	gen uint64
}

// Scheduler keeps active notifications in insertion order. Duplicate
// messages are independent entries with independent timers; there is no
// coalescing and no priority.
type Scheduler struct {
	mu      sync.Mutex
	entries map[string]*entry
	order   []string
	gen     uint64
	closed  bool
}

var _ interfaces.INotificationScheduler = (*Scheduler)(nil)

func NewScheduler() *Scheduler {
	return &Scheduler{entries: make(map[string]*entry)}
}

// Notify pushes a message with the default duration and returns its id.
func (s *Scheduler) Notify(message string, kind entities.NotificationKind) string {
	return s.Push(entities.Notification{Message: message, Kind: kind})
}

// Push adds a notification and arms its auto-dismiss timer. A missing id
// gets a generated one; a non-positive duration gets the default. Pushing
// an id that is already active cancels the prior timer before arming a new
// one, so at most one live timer ever exists per id. Push after Close is a
// no-op returning "".
func (s *Scheduler) Push(n entities.Notification) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ""
	}
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.Duration <= 0 {
		n.Duration = entities.DefaultNotificationDuration
	}

	s.gen++
	if e, ok := s.entries[n.ID]; ok {
		e.timer.Stop()
		e.notification = n
		e.gen = s.gen
		e.timer = s.armLocked(n.ID, s.gen, n.Duration)
		return n.ID
	}

	e := &entry{notification: n, gen: s.gen}
	e.timer = s.armLocked(n.ID, s.gen, n.Duration)
	s.entries[n.ID] = e
	s.order = append(s.order, n.ID)
	return n.ID
}

// Dismiss removes a notification and cancels its timer. Dismissing an
// unknown or already-dismissed id is a no-op, which also makes a stale
// timer firing after a manual dismissal harmless.
func (s *Scheduler) Dismiss(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dismissLocked(id)
}

// Active returns the live notifications in insertion order.
func (s *Scheduler) Active() []entities.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entities.Notification, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.entries[id].notification)
	}
	return out
}

// Close cancels every outstanding timer and rejects further pushes. A
// timer that fires after teardown finds no entry and does nothing.
func (s *Scheduler) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.entries {
		e.timer.Stop()
	}
	s.entries = make(map[string]*entry)
	s.order = nil
	s.closed = true
}

func (s *Scheduler) armLocked(id string, gen uint64, d time.Duration) *time.Timer {
	return time.AfterFunc(d, func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		if e, ok := s.entries[id]; ok && e.gen == gen {
			s.dismissLocked(id)
		}
	})
}

func (s *Scheduler) dismissLocked(id string) {
	e, ok := s.entries[id]
	if !ok {
		return
	}
	e.timer.Stop()
	delete(s.entries, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

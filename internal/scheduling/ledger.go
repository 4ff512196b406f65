package scheduling

import (
	"sync"

	"github.com/group8-health/health/internal"
)

// Ledger is the append-only record of accepted bookings. It is an explicit
// state object owned by the app context, not process-global, so tests and
// sessions get isolated instances. Insertion order is preserved; entries are
// never edited or removed.
type Ledger struct {
	mu           sync.RWMutex
	appointments []internal.Appointment
}

func NewLedger(initial []internal.Appointment) *Ledger {
	l := &Ledger{}
	l.appointments = append(l.appointments, initial...)
	return l
}

func (l *Ledger) Append(a internal.Appointment) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.appointments = append(l.appointments, a)
}

// List returns a copy of the ledger in insertion order.
func (l *Ledger) List() []internal.Appointment {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]internal.Appointment, len(l.appointments))
	copy(out, l.appointments)
	return out
}

func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.appointments)
}

// Ledgers holds one Ledger per user so bookings never leak across users.
// A user's ledger is created on first access, seeded from whatever the seed
// callback returns (typically the user's persisted appointment list); the
// seed runs at most once per user.
type Ledgers struct {
	mu     sync.Mutex
	byUser map[string]*Ledger
}

func NewLedgers() *Ledgers {
	return &Ledgers{byUser: make(map[string]*Ledger)}
}

func (ls *Ledgers) ForUser(userID string, seed func() []internal.Appointment) *Ledger {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	l, ok := ls.byUser[userID]
	if !ok {
		var initial []internal.Appointment
		if seed != nil {
			initial = seed()
		}
		l = NewLedger(initial)
		ls.byUser[userID] = l
	}
	return l
}

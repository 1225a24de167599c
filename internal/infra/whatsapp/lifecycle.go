package whatsapp

import "sync"

type State int32

const (
	StateUninitialized State = iota
	StateAwaitingPairing
	StateReady
)

func (s State) String() string {
	switch s {
	case StateAwaitingPairing:
		return "AWAITING_PAIRING"
	case StateReady:
		return "READY"
	default:
		return "UNINITIALIZED"
	}
}

// Observer is notified of session lifecycle changes. Calls happen on the
// client's event goroutine, so implementations must not block for long.
type Observer interface {
	OnStateChange(state State)
	OnPairingCode(code string)
}

// StateFunc adapts a plain function to an Observer that ignores pairing codes.
type StateFunc func(State)

func (f StateFunc) OnStateChange(state State) { f(state) }
func (f StateFunc) OnPairingCode(string)      {}

type Lifecycle struct {
	mu        sync.RWMutex
	state     State
	observers []Observer
}

func NewLifecycle() *Lifecycle {
	return &Lifecycle{state: StateUninitialized}
}

func (l *Lifecycle) State() State {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state
}

func (l *Lifecycle) Subscribe(o Observer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.observers = append(l.observers, o)
}

// Set moves to state and notifies observers only when the state actually changed.
func (l *Lifecycle) Set(state State) {
	l.mu.Lock()
	if l.state == state {
		l.mu.Unlock()
		return
	}
	l.state = state
	observers := append([]Observer(nil), l.observers...)
	l.mu.Unlock()

	for _, o := range observers {
		o.OnStateChange(state)
	}
}

// PairingCode moves to AwaitingPairing and forwards the code to every observer.
func (l *Lifecycle) PairingCode(code string) {
	l.Set(StateAwaitingPairing)

	l.mu.RLock()
	observers := append([]Observer(nil), l.observers...)
	l.mu.RUnlock()

	for _, o := range observers {
		o.OnPairingCode(code)
	}
}

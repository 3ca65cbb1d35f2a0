package store

import (
	"log/slog"
	"sync"
)

// Store is the app-wide state container. All mutation goes through set, so
// every mutator sees the latest combined state and commits its full next
// state atomically. Readers get copies, never live slices.
type Store struct {
	mu    sync.Mutex
	state State

	lineSeq uint64

	name    string
	storage Storage
	log     *slog.Logger
}

type Options struct {
	// Name keys the persisted record. Defaults to DefaultStoreName.
	Name string
	// Storage is where the {cart,user} projection is written on every
	// change. Nil disables persistence.
	Storage Storage
	Logger  *slog.Logger
}

func New(opts Options) *Store {
	name := opts.Name
	if name == "" {
		name = DefaultStoreName
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{
		state:   defaultState(),
		name:    name,
		storage: opts.Storage,
		log:     logger,
	}
	s.hydrate()
	return s
}

func defaultState() State {
	return State{
		Cart:  CartState{Items: []CartItem{}},
		Order: OrderState{Status: StatusIdle},
		UI:    UIState{Toasts: []Toast{}},
	}
}

// set applies one mutation under the lock and writes the persisted
// projection afterwards, best effort.
func (s *Store) set(mutate func(*State)) {
	s.mu.Lock()
	mutate(&s.state)
	snapshot := s.state
	s.mu.Unlock()

	s.persist(snapshot)
}

// State returns a snapshot of the full state with copied slices.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state
	st.Cart.Items = append([]CartItem(nil), s.state.Cart.Items...)
	st.UI.Toasts = append([]Toast(nil), s.state.UI.Toasts...)
	return st
}

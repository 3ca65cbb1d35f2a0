package store

import (
	"time"

	"github.com/google/uuid"
)

// DefaultToastDuration applies when a toast does not carry its own.
const DefaultToastDuration = 3500 * time.Millisecond

// SetLoading toggles the global busy flag. Last write wins; this is not a
// ref-counted stack.
func (s *Store) SetLoading(loading bool) {
	s.set(func(st *State) {
		st.UI.Loading = loading
	})
}

func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.UI.Loading
}

// AddToast appends a toast and schedules its removal after its duration.
// A zero duration takes the default; a negative one keeps the toast until
// removed explicitly. Returns the toast id.
func (s *Store) AddToast(t Toast) string {
	if t.ID == "" {
		t.ID = "toast-" + uuid.NewString()
	}
	if t.Duration == 0 {
		t.Duration = DefaultToastDuration
	}
	s.set(func(st *State) {
		st.UI.Toasts = append(append([]Toast(nil), st.UI.Toasts...), t)
	})
	if t.Duration > 0 {
		id := t.ID
		time.AfterFunc(t.Duration, func() { s.RemoveToast(id) })
	}
	return t.ID
}

// RemoveToast deletes by id. Unknown ids are a no-op, so the expiry timer
// racing an explicit removal is harmless.
func (s *Store) RemoveToast(id string) {
	s.set(func(st *State) {
		toasts := make([]Toast, 0, len(st.UI.Toasts))
		for _, t := range st.UI.Toasts {
			if t.ID != id {
				toasts = append(toasts, t)
			}
		}
		st.UI.Toasts = toasts
	})
}

func (s *Store) ClearToasts() {
	s.set(func(st *State) {
		st.UI.Toasts = []Toast{}
	})
}

func (s *Store) Toasts() []Toast {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Toast(nil), s.state.UI.Toasts...)
}

func (s *Store) ToastSuccess(message string) string {
	return s.AddToast(Toast{Type: ToastTypeSuccess, Title: "Success", Message: message})
}

func (s *Store) ToastError(message string) string {
	return s.AddToast(Toast{Type: ToastTypeError, Title: "Error", Message: message})
}

func (s *Store) ToastInfo(message string) string {
	return s.AddToast(Toast{Type: ToastTypeInfo, Title: "Info", Message: message})
}

func (s *Store) ToastWarning(message string) string {
	return s.AddToast(Toast{Type: ToastTypeWarning, Title: "Warning", Message: message})
}

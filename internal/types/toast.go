package types

import "time"

// Toast represents a notification message
type Toast struct {
	Level   ToastLevel
	Message string
	Expires time.Time
}

// Expired reports whether the toast should no longer be shown at now
func (t Toast) Expired(now time.Time) bool {
	return !t.Expires.IsZero() && !now.Before(t.Expires)
}

// ToastLevel indicates the severity of a toast
type ToastLevel int

const (
	ToastInfo ToastLevel = iota
	ToastSuccess
	ToastWarning
	ToastError
)

// PruneToasts drops expired toasts, keeping order
func PruneToasts(toasts []Toast, now time.Time) []Toast {
	kept := toasts[:0]
	for _, t := range toasts {
		if !t.Expired(now) {
			kept = append(kept, t)
		}
	}
	return kept
}

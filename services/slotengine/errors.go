package slotengine

import "fmt"

// Error codes returned by the engine. Handlers map these onto HTTP statuses:
// conflicts are 409, the rest of the admission failures are 422 and invalid
// input is 400.
const (
	CodeInvalidTime  = "invalidTime"
	CodeInvalidDate  = "invalidDate"
	CodeVenueClosed  = "venueClosed"
	CodeSlotBlocked  = "slotBlocked"
	CodeSlotConflict = "slotConflict"
)

// SlotError is the engine's error type. Hour is set when the failure is about
// a specific requested hour, so callers can tell the user which slot was the
// problem.
type SlotError struct {
	Code    string
	Hour    int
	Message string
}

func (e *SlotError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newSlotError(code string, hour int, format string, args ...any) *SlotError {
	return &SlotError{Code: code, Hour: hour, Message: fmt.Sprintf(format, args...)}
}

// ErrorCode extracts the engine code from err, or "" for foreign errors.
func ErrorCode(err error) string {
	if se, ok := err.(*SlotError); ok {
		return se.Code
	}
	return ""
}

// IsConflict reports whether err is a booking conflict (409 semantics).
func IsConflict(err error) bool {
	return ErrorCode(err) == CodeSlotConflict
}

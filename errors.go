package bufferbuffer

import (
	"errors"
	"fmt"
)

var (
	// ErrBorrowConflict is matched by every *BorrowConflictError via errors.Is.
	ErrBorrowConflict = errors.New("borrow conflict")

	// ErrViewReleased is the panic value when a view is used after Release.
	ErrViewReleased = errors.New("view already released")

	// ErrBorrowed is returned by TrySwitch while any view is outstanding.
	ErrBorrowed = errors.New("buffer is borrowed")
)

// BorrowConflictError reports an acquisition that would break the
// shared/exclusive rule on one slot.
type BorrowConflictError struct {
	Slot      SlotID
	Role      Role // accessor that made the request
	Requested Mode
	Held      Mode
	Readers   int // outstanding shared views at the time of the request
}

func (e *BorrowConflictError) Error() string {
	if e.Held == Shared {
		return fmt.Sprintf("borrow conflict on slot %s: %s requested %s access while %d %s view(s) outstanding",
			e.Slot, e.Role, e.Requested, e.Readers, e.Held)
	}
	return fmt.Sprintf("borrow conflict on slot %s: %s requested %s access while %s view outstanding",
		e.Slot, e.Role, e.Requested, e.Held)
}

// Is lets errors.Is(err, ErrBorrowConflict) match.
func (e *BorrowConflictError) Is(target error) bool {
	return target == ErrBorrowConflict
}

package bufferbuffer

// SlotID names one of the two physical storage cells.
type SlotID int

const (
	SlotA SlotID = iota
	SlotB
)

func (s SlotID) String() string {
	switch s {
	case SlotA:
		return "A"
	case SlotB:
		return "B"
	}
	return "?"
}

// Mode is the access mode of a view.
type Mode int

const (
	Shared Mode = iota
	Exclusive
)

func (m Mode) String() string {
	if m == Exclusive {
		return "exclusive"
	}
	return "shared"
}

// Role is the logical role a slot plays at acquisition time.
type Role int

const (
	RoleCurrent Role = iota
	RoleNext
)

func (r Role) String() string {
	if r == RoleNext {
		return "next"
	}
	return "current"
}

// cell is one storage slot with runtime-checked borrowing. readers counts
// outstanding shared views; writing marks an outstanding exclusive view.
// The two are never non-zero at the same time.
type cell[T any] struct {
	id      SlotID
	value   T
	readers int
	writing bool
}

func (c *cell[T]) borrow(role Role) error {
	if c.writing {
		return &BorrowConflictError{Slot: c.id, Role: role, Requested: Shared, Held: Exclusive}
	}
	c.readers++
	return nil
}

func (c *cell[T]) borrowMut(role Role) error {
	switch {
	case c.writing:
		return &BorrowConflictError{Slot: c.id, Role: role, Requested: Exclusive, Held: Exclusive}
	case c.readers > 0:
		return &BorrowConflictError{Slot: c.id, Role: role, Requested: Exclusive, Held: Shared, Readers: c.readers}
	}
	c.writing = true
	return nil
}

func (c *cell[T]) release() {
	if c.readers > 0 {
		c.readers--
	}
}

func (c *cell[T]) releaseMut() {
	c.writing = false
}

func (c *cell[T]) borrowed() bool {
	return c.writing || c.readers > 0
}

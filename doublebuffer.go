package bufferbuffer

import "fmt"

// DoubleBuffer holds a current and a next value of the same type and swaps
// their roles on Switch without copying. A DoubleBuffer must not be copied
// after first use and is not safe for concurrent use.
type DoubleBuffer[T any] struct {
	a, b    cell[T]
	flipped bool
}

// New returns a buffer whose current value is current and whose next value
// is next.
func New[T any](current, next T) *DoubleBuffer[T] {
	return &DoubleBuffer[T]{
		a: cell[T]{id: SlotA, value: current},
		b: cell[T]{id: SlotB, value: next},
	}
}

func (db *DoubleBuffer[T]) current() *cell[T] {
	if db.flipped {
		return &db.b
	}
	return &db.a
}

func (db *DoubleBuffer[T]) next() *cell[T] {
	if db.flipped {
		return &db.a
	}
	return &db.b
}

// Current returns a shared view of the current value. It panics with a
// *BorrowConflictError if the current slot is exclusively borrowed, which
// only happens when a Next view is carried across Switch.
func (db *DoubleBuffer[T]) Current() *Ref[T] {
	r, err := db.TryCurrent()
	if err != nil {
		panic(err)
	}
	return r
}

// TryCurrent is Current returning the conflict instead of panicking.
func (db *DoubleBuffer[T]) TryCurrent() (*Ref[T], error) {
	c := db.current()
	if err := c.borrow(RoleCurrent); err != nil {
		return nil, err
	}
	return &Ref[T]{c: c}, nil
}

// Load returns the current value without leaving a borrow outstanding. The
// shared view it takes is released before Load returns. Like Current, it
// panics with a *BorrowConflictError if the current slot is exclusively
// borrowed.
func (db *DoubleBuffer[T]) Load() T {
	r := db.Current()
	defer r.Release()
	return r.Get()
}

// Next returns an exclusive view of the next value. It panics with a
// *BorrowConflictError if the next slot already has any view outstanding.
func (db *DoubleBuffer[T]) Next() *RefMut[T] {
	m, err := db.TryNext()
	if err != nil {
		panic(err)
	}
	return m
}

// TryNext is Next returning the conflict instead of panicking.
func (db *DoubleBuffer[T]) TryNext() (*RefMut[T], error) {
	c := db.next()
	if err := c.borrowMut(RoleNext); err != nil {
		return nil, err
	}
	return &RefMut[T]{c: c}, nil
}

// Switch exchanges the current and next roles.
//
// Outstanding views are not checked. A view acquired before Switch stays
// bound to its physical slot, so a Current view now reads the next value
// and a Next view now writes the current one. Release every view of a step
// before calling Switch, or use TrySwitch.
func (db *DoubleBuffer[T]) Switch() {
	db.flipped = !db.flipped
}

// TrySwitch exchanges the roles only if no view into either slot is
// outstanding.
func (db *DoubleBuffer[T]) TrySwitch() error {
	for _, c := range []*cell[T]{&db.a, &db.b} {
		if c.borrowed() {
			return fmt.Errorf("switch: slot %s: %w", c.id, ErrBorrowed)
		}
	}
	db.Switch()
	return nil
}

// ReadCurrent calls fn with the current value under a shared view. The view
// is released when fn returns or panics.
func (db *DoubleBuffer[T]) ReadCurrent(fn func(T)) {
	r := db.Current()
	defer r.Release()
	fn(r.Get())
}

// WriteNext calls fn with a pointer to the next value under an exclusive
// view. The view is released when fn returns or panics.
func (db *DoubleBuffer[T]) WriteNext(fn func(*T)) {
	m := db.Next()
	defer m.Release()
	fn(m.Ptr())
}

// Step runs one update: fn reads the current value and writes the next one,
// then the roles are switched. If fn panics, or Next conflicts with a view
// left over from earlier, every view Step acquired is released and the roles
// are left unchanged.
func (db *DoubleBuffer[T]) Step(fn func(current T, next *T)) {
	func() {
		r := db.Current()
		defer r.Release()
		m := db.Next()
		defer m.Release()
		fn(r.Get(), m.Ptr())
	}()
	db.Switch()
}

// Flipped reports whether slot B currently holds the current value.
func (db *DoubleBuffer[T]) Flipped() bool {
	return db.flipped
}

// CurrentSlot reports which physical slot is current.
func (db *DoubleBuffer[T]) CurrentSlot() SlotID {
	return db.current().id
}

// NextSlot reports which physical slot is next.
func (db *DoubleBuffer[T]) NextSlot() SlotID {
	return db.next().id
}

// Borrowed reports whether any view into either slot is outstanding.
func (db *DoubleBuffer[T]) Borrowed() bool {
	return db.a.borrowed() || db.b.borrowed()
}

package bufferbuffer

// Ref is a shared, read-only view into one slot. Any number of Refs into
// the same slot may be outstanding at once. The value returned by Get must
// not be written through (for slices and maps this is by convention only).
type Ref[T any] struct {
	c *cell[T]
}

// Get returns the slot's value.
func (r *Ref[T]) Get() T {
	if r.c == nil {
		panic(ErrViewReleased)
	}
	return r.c.value
}

// Slot reports the physical slot this view is bound to.
func (r *Ref[T]) Slot() SlotID {
	if r.c == nil {
		panic(ErrViewReleased)
	}
	return r.c.id
}

// Release ends the borrow. Calling it more than once is a no-op.
func (r *Ref[T]) Release() {
	if r.c == nil {
		return
	}
	r.c.release()
	r.c = nil
}

// RefMut is an exclusive, read-write view into one slot. At most one
// RefMut into a slot exists at a time, and never alongside a Ref.
type RefMut[T any] struct {
	c *cell[T]
}

// Get returns the slot's value.
func (m *RefMut[T]) Get() T {
	return *m.Ptr()
}

// Set replaces the slot's value.
func (m *RefMut[T]) Set(v T) {
	*m.Ptr() = v
}

// Ptr returns a pointer to the slot's value for in-place updates. The
// pointer must not be retained after Release.
func (m *RefMut[T]) Ptr() *T {
	if m.c == nil {
		panic(ErrViewReleased)
	}
	return &m.c.value
}

// Slot reports the physical slot this view is bound to.
func (m *RefMut[T]) Slot() SlotID {
	if m.c == nil {
		panic(ErrViewReleased)
	}
	return m.c.id
}

// Release ends the borrow. Calling it more than once is a no-op.
func (m *RefMut[T]) Release() {
	if m.c == nil {
		return
	}
	m.c.releaseMut()
	m.c = nil
}

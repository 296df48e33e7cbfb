// Package bufferbuffer provides a generic double buffer for stepwise
// simulations.
//
// A simulation step reads the state produced by the previous step and
// writes the state for the following one. Doing both in a single value lets
// early writes leak into later reads of the same step. DoubleBuffer keeps two
// values instead: the current value, read during a step, and the next value,
// written during it. Switch then exchanges their roles in constant time
// without copying.
//
// # Example Usage
//
//	db := bufferbuffer.New([]int{2, 4, 6}, nil)
//	db.Step(func(cur []int, next *[]int) {
//		*next = (*next)[:0]
//		for _, n := range cur {
//			*next = append(*next, n+1)
//		}
//	})
//	// db.Load() is now [3 5 7]
//
// # Borrowing
//
// Each of the two slots is checked independently at run time:
//   - any number of shared views (Ref, from Current), or
//   - exactly one exclusive view (RefMut, from Next),
//
// never both on the same slot. Because Current and Next address different
// slots, a step may hold one of each at the same time. A request that would
// break the rule fails immediately: Current and Next panic with a
// *BorrowConflictError, TryCurrent and TryNext return it. Views are released
// with Release, or automatically by ReadCurrent, WriteNext and Step. A view
// that is never released stays borrowed for good, so one-off reads should use
// Load, which releases its view before returning.
//
// # Switching
//
// Switch does not check for outstanding views. A view acquired before Switch
// keeps pointing at its physical slot, which now plays the other role. The
// caller is expected to release every view of a step before switching.
// TrySwitch enforces this and refuses to switch while anything is borrowed.
//
// # Concurrency
//
// Borrow checking is bookkeeping for a single goroutine, not a lock. A
// DoubleBuffer shared between goroutines needs external synchronization
// around the whole container.
package bufferbuffer

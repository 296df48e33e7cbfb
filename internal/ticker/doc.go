// Package ticker runs a fixed time-step loop for the demo and examples.
//
// Each tick calls a TickFunc on the goroutine that called Run, so state
// touched only from the TickFunc (such as a DoubleBuffer) needs no locking.
//
// # Example Usage
//
//	loop := ticker.New(ticker.Config{
//		TickRate: 16667 * time.Microsecond, // 60 FPS
//		MaxTicks: 600,
//	}, func(ctx context.Context, tick uint64) error {
//		world.Tick()
//		return nil
//	}, log)
//	err := loop.Run(ctx)
//
// A TickFunc ends the loop early by returning ErrStop. Any other error ends
// it and is returned from Run. A panicking tick is recovered, logged and
// counted, and the loop carries on with the next tick. A panicked tick still
// advances TickNumber and counts toward MaxTicks.
package ticker

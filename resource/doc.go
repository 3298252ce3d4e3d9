// Package resource provides process-wide limits shared by concurrent searches.
//
// # Worker Slots
//
// Every enumeration worker holds one slot while it scores a chunk of
// selection masks. When several datasets are searched at the same time they
// draw from the same pool, so the process never runs more scoring goroutines
// than configured:
//
//	ctrl := resource.NewController(resource.Config{MaxWorkers: 8})
//	if err := ctrl.AcquireWorker(ctx); err != nil {
//	    return err
//	}
//	defer ctrl.ReleaseWorker()
//
// # IO Throttling
//
// Dataset loaders call AcquireIO before each read so that pulling many large
// inputs from object storage stays under IOLimitBytesPerSec.
//
// A nil *Controller imposes no limits.
package resource

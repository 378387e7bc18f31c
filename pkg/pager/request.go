package pager

import (
	"context"
	"sync"
)

// PageRequest is the handle returned by LoadController.FetchNewPage. It lets
// the caller await the outcome of a page load or abandon it.
//
// A request completes when the controller reaches a terminal event for it:
// items appended, an error recorded, the has-more flag set explicitly, or the
// request cancelled. Done and Err are safe from any goroutine; Cancel must be
// called on the UI thread like the rest of the controller API.
type PageRequest struct {
	page     int
	done     chan struct{}
	once     sync.Once
	err      error
	cancelFn context.CancelFunc
	onCancel func()
}

func newPageRequest(page int) *PageRequest {
	return &PageRequest{page: page, done: make(chan struct{})}
}

// Page returns the page index this request was issued for.
func (r *PageRequest) Page() int {
	return r.page
}

// Done returns a channel that is closed when the request completes.
func (r *PageRequest) Done() <-chan struct{} {
	return r.done
}

// Err returns the outcome of a completed request: nil for success, the fetch
// error for failure, or context.Canceled if the request was cancelled.
// Before completion it returns nil.
func (r *PageRequest) Err() error {
	select {
	case <-r.done:
		return r.err
	default:
		return nil
	}
}

// Cancel abandons the request. The fetch context (if any) is cancelled and
// the owning controller returns to idle without recording an error, so a
// later FetchNewPage may try the same page again. Cancelling a completed
// request is a no-op.
func (r *PageRequest) Cancel() {
	if r.cancelFn != nil {
		r.cancelFn()
	}
	if r.onCancel != nil {
		r.onCancel()
	}
}

// complete resolves the request exactly once. The error is published before
// the channel close, so waiters observing Done see the final Err value.
func (r *PageRequest) complete(err error) {
	r.once.Do(func() {
		r.err = err
		if r.cancelFn != nil {
			r.cancelFn()
		}
		close(r.done)
	})
}

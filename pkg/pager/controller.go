package pager

import (
	"context"
	"fmt"
	"slices"

	"github.com/go-drift/drift/pkg/platform"
)

// FetchFunc loads one page of items. It runs on a background goroutine and
// should honor ctx cancellation. pageIndex is zero-based.
type FetchFunc[T any] func(ctx context.Context, pageIndex int) ([]T, error)

// LoadController owns the state of an incrementally loaded list and notifies
// listeners on every state transition.
//
// The zero value is not usable; create controllers with NewLoadController.
// Always call Dispose when done to cancel in-flight work and release
// listeners. See ExampleLoadController for usage patterns.
type LoadController[T any] struct {
	// Fetch, when set, is run by FetchNewPage to load the next page.
	Fetch FetchFunc[T]

	// OnPageRequested, when set and Fetch is nil, is fired by FetchNewPage
	// with the next page index. The application reports completion later via
	// AppendItems, SetError, or SetHasMoreItems.
	OnPageRequested func(pageIndex int)

	// Dispatch routes Fetch completions onto the UI thread. When nil the
	// controller uses platform.Dispatch, falling back to direct invocation
	// if no dispatcher is registered (headless tests).
	Dispatch func(fn func())

	pageSize       int
	items          []T
	pageCount      int
	hasMore        bool
	fetching       bool
	err            error
	inflight       *PageRequest
	listeners      map[int]func()
	nextListenerID int
}

// NewLoadController creates a controller for pages of up to pageSize items.
// A page shorter than pageSize marks the list exhausted.
func NewLoadController[T any](pageSize int) *LoadController[T] {
	if pageSize <= 0 {
		panic(fmt.Sprintf(
			"pager: NewLoadController called with page size %d.\n\n"+
				"The page size drives the has-more heuristic: a page with fewer than\n"+
				"pageSize items marks the list exhausted. It must be positive and should\n"+
				"match the page size the data source serves.", pageSize))
	}
	return &LoadController[T]{
		pageSize:  pageSize,
		hasMore:   true,
		listeners: make(map[int]func()),
	}
}

// PageSize returns the configured page size.
func (c *LoadController[T]) PageSize() int {
	return c.pageSize
}

// Items returns the items loaded so far, in arrival order. The slice is nil
// until the first AppendItems call. Callers must not mutate it.
func (c *LoadController[T]) Items() []T {
	return c.items
}

// ItemCount returns the number of items loaded so far.
func (c *LoadController[T]) ItemCount() int {
	return len(c.items)
}

// PageCount returns the number of successfully appended pages.
func (c *LoadController[T]) PageCount() int {
	return c.pageCount
}

// HasMoreItems reports whether another page may exist.
func (c *LoadController[T]) HasMoreItems() bool {
	return c.hasMore
}

// IsFetching reports whether a fetch is in flight.
func (c *LoadController[T]) IsFetching() bool {
	return c.fetching
}

// Err returns the last fetch error, or nil.
func (c *LoadController[T]) Err() error {
	return c.err
}

// Status returns the controller's position in the loading cycle.
func (c *LoadController[T]) Status() Status {
	switch {
	case c.fetching:
		return StatusFetching
	case c.err != nil:
		return StatusErrored
	default:
		return StatusIdle
	}
}

// NoItemsFound reports whether loading completed without producing any
// items: at least one page arrived, it was empty, and no more pages exist.
func (c *LoadController[T]) NoItemsFound() bool {
	return c.items != nil && len(c.items) == 0 && !c.hasMore
}

// FetchNewPage requests the next page. While a fetch is in flight it returns
// the outstanding request, and once the list is exhausted it returns nil, so
// re-entrant calls from scrolling never issue duplicate work.
//
// With Fetch set the page loads on a background goroutine and the result is
// marshalled back through Dispatch. Otherwise OnPageRequested (if any) fires
// with the page index and the returned request completes on the next
// terminal mutator.
func (c *LoadController[T]) FetchNewPage() *PageRequest {
	if c.fetching {
		return c.inflight
	}
	if !c.hasMore {
		return nil
	}

	page := c.pageCount
	req := newPageRequest(page)
	req.onCancel = func() {
		if c.inflight != req {
			return
		}
		c.fetching = false
		c.inflight = nil
		req.complete(context.Canceled)
		c.notifyListeners()
	}
	c.inflight = req
	c.fetching = true
	c.notifyListeners()

	switch {
	case c.Fetch != nil:
		ctx, cancel := context.WithCancel(context.Background())
		req.cancelFn = cancel
		go func() {
			items, err := c.Fetch(ctx, page)
			c.dispatch(func() {
				if c.inflight != req {
					// Cancelled, reset, or settled out of band.
					return
				}
				if ctx.Err() != nil {
					req.Cancel()
					return
				}
				if err != nil {
					c.SetError(err)
					return
				}
				c.AppendItems(items)
			})
		}()
	case c.OnPageRequested != nil:
		c.OnPageRequested(page)
	}
	return req
}

// AppendItems appends one page of items in order, updates the has-more flag
// from the page length, increments the page count, and clears the fetching
// flag. It does not require a preceding FetchNewPage.
func (c *LoadController[T]) AppendItems(items []T) {
	if c.items == nil {
		// Materialize an empty slice so NoItemsFound can tell "loaded
		// nothing" apart from "never loaded".
		c.items = make([]T, 0, len(items))
	}
	c.items = append(c.items, items...)
	c.hasMore = len(items) >= c.pageSize
	c.pageCount++
	c.settle(nil)
	c.notifyListeners()
}

// SetHasMoreItems overrides the has-more flag for callers that know the true
// page boundary by other means, and clears the fetching flag.
func (c *LoadController[T]) SetHasMoreItems(hasMore bool) {
	c.hasMore = hasMore
	c.settle(nil)
	c.notifyListeners()
}

// SetError records a fetch failure and clears the fetching flag. Items and
// the has-more flag are left untouched.
func (c *LoadController[T]) SetError(err error) {
	c.err = err
	c.settle(err)
	c.notifyListeners()
}

// Retry clears the error and nothing else. It does not start a fetch; the
// render layer re-derives the loading affordance from state and the next
// visibility-triggered FetchNewPage resumes progress.
func (c *LoadController[T]) Retry() {
	c.err = nil
	c.notifyListeners()
}

// Reset restores the initial empty state: no items, no pages, has-more true,
// no error, not fetching. In-flight work is cancelled and its late result
// discarded.
func (c *LoadController[T]) Reset() {
	if c.inflight != nil {
		c.inflight.complete(context.Canceled)
		c.inflight = nil
	}
	c.items = nil
	c.pageCount = 0
	c.hasMore = true
	c.fetching = false
	c.err = nil
	c.notifyListeners()
}

// RemoveItem removes every loaded item matching the predicate, preserving
// the order of the rest, and clears the fetching flag. It returns the number
// of items removed.
func (c *LoadController[T]) RemoveItem(predicate func(T) bool) int {
	removed := 0
	c.items = slices.DeleteFunc(c.items, func(item T) bool {
		if predicate(item) {
			removed++
			return true
		}
		return false
	})
	c.settle(nil)
	c.notifyListeners()
	return removed
}

// AddListener adds a callback that fires after every state transition.
// Returns an unsubscribe function.
func (c *LoadController[T]) AddListener(fn func()) func() {
	if c.listeners == nil {
		return func() {}
	}
	id := c.nextListenerID
	c.nextListenerID++
	c.listeners[id] = fn
	return func() {
		delete(c.listeners, id)
	}
}

// Dispose cancels in-flight work and releases all listeners.
func (c *LoadController[T]) Dispose() {
	if c.inflight != nil {
		c.inflight.complete(context.Canceled)
		c.inflight = nil
	}
	c.fetching = false
	c.listeners = nil
}

// settle ends the fetching phase and resolves the outstanding request.
func (c *LoadController[T]) settle(err error) {
	c.fetching = false
	if c.inflight != nil {
		c.inflight.complete(err)
		c.inflight = nil
	}
}

func (c *LoadController[T]) dispatch(fn func()) {
	if c.Dispatch != nil {
		c.Dispatch(fn)
		return
	}
	if !platform.Dispatch(fn) {
		fn()
	}
}

func (c *LoadController[T]) notifyListeners() {
	for _, listener := range c.listeners {
		listener()
	}
}

// Package pager provides the pagination state controller behind the paged
// view widgets.
//
// LoadController is an observable store for incrementally loaded lists: the
// items appended so far, the number of completed pages, whether more pages
// are believed to exist, whether a fetch is in flight, and the last fetch
// error. It follows the same controller conventions as the rest of the
// framework (animation.AnimationController, widgets.ScrollController):
// a NewX constructor, AddListener returning an unsubscribe function, and
// Dispose for teardown.
//
// # Driving a fetch
//
// The controller never performs I/O itself. There are two ways to connect it
// to a data source:
//
//   - Set Fetch to a FetchFunc. FetchNewPage runs it on a background
//     goroutine and marshals the result back to the UI thread, appending the
//     items or recording the error. The returned PageRequest can be awaited
//     or cancelled.
//
//   - Set OnPageRequested. FetchNewPage fires it with the next page index and
//     the application later reports completion through AppendItems, SetError,
//     or SetHasMoreItems. This also completes the outstanding PageRequest.
//
// AppendItems may be called without a preceding FetchNewPage; push-based data
// sources deliver pages out of band and the controller accepts them.
//
// # Threading
//
// Like the rest of the framework, the controller is NOT thread-safe: all
// mutators and accessors must run on the UI thread. The only concession to
// concurrency is the Fetch goroutine, whose completion is routed through the
// Dispatch hook (platform.Dispatch by default). PageRequest.Done and
// PageRequest.Err are safe to use from any goroutine.
package pager

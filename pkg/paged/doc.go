// Package paged provides scrollable list and grid widgets that load their
// content incrementally from a [pager.LoadController].
//
// Four widgets share one slot-resolution algorithm and differ only in the
// layout container they delegate to:
//
//   - [ListView]: a vertically scrolling list, virtualized when ItemExtent
//     is set.
//   - [GridView]: a vertically scrolling grid, shaped by a [GridDelegate].
//   - [ListSection]: the list without its own scroll container, for
//     embedding inside a host [widgets.ScrollView].
//   - [GridSection]: the grid without its own scroll container.
//
// Each widget renders one slot per loaded item plus, while more pages may
// exist, a single trailing sentinel slot. Rendering the sentinel triggers
// the next page fetch, so scrolling drives pagination without any glue code.
// The sentinel shows a loading indicator, or an error affordance with a
// retry button after a failed fetch. When loading completes with no items at
// all, the widget shows an empty placeholder instead.
//
// Widgets either receive a controller through [Config] or own a private one
// built from PageSize and the fetch hooks. An owned controller is disposed
// with the widget; a supplied one stays alive and can be shared by several
// views or mutated directly by application code.
package paged

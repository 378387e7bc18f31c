package paged

import (
	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/platform"

	"github.com/go-drift/pagewise/pkg/pager"
)

// shellWidget is satisfied by every paged widget variant. The shared state
// logic only needs the Config; the variants keep their layout fields to
// themselves.
type shellWidget[T any] interface {
	core.Widget
	config() Config[T]
	variantName() string
}

// shellState holds the controller subscription shared by all paged widget
// variants. Variant states embed it and implement Build on top of slotCount
// and buildSlot.
type shellState[T any] struct {
	core.StateBase
	controller  *pager.LoadController[T]
	owned       bool
	unsubscribe func()
}

func (s *shellState[T]) InitState() {
	w, ok := s.currentWidget()
	if !ok {
		return
	}
	cfg := w.config()
	cfg.validate(w.variantName())
	s.attach(cfg)
}

func (s *shellState[T]) Dispose() {
	s.detach()
	s.StateBase.Dispose()
}

func (s *shellState[T]) DidUpdateWidget(oldWidget core.StatefulWidget) {
	old, ok := oldWidget.(shellWidget[T])
	if !ok {
		return
	}
	w, ok := s.currentWidget()
	if !ok {
		return
	}
	cfg := w.config()
	cfg.validate(w.variantName())
	if old.config().Controller != cfg.Controller {
		s.detach()
		s.attach(cfg)
		return
	}
	if s.owned && s.controller != nil {
		// Same owned controller; keep its loaded state but pick up new hooks.
		s.controller.Fetch = cfg.Fetch
		s.controller.OnPageRequested = cfg.OnPageRequested
	}
}

func (s *shellState[T]) attach(cfg Config[T]) {
	if cfg.Controller != nil {
		s.controller = cfg.Controller
		s.owned = false
	} else {
		c := pager.NewLoadController[T](cfg.PageSize)
		c.Fetch = cfg.Fetch
		c.OnPageRequested = cfg.OnPageRequested
		s.controller = c
		s.owned = true
	}
	s.unsubscribe = s.controller.AddListener(func() {
		s.SetState(nil)
	})
}

func (s *shellState[T]) detach() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
	if s.owned && s.controller != nil {
		s.controller.Dispose()
	}
	s.controller = nil
	s.owned = false
}

func (s *shellState[T]) currentWidget() (shellWidget[T], bool) {
	if s.Element() == nil {
		return nil, false
	}
	w, ok := s.Element().Widget().(shellWidget[T])
	return w, ok
}

// slotCount is the number of positions the layout container renders: one per
// loaded item, plus one trailing sentinel while more pages may exist, or a
// single placeholder slot when loading finished with nothing.
func (s *shellState[T]) slotCount() int {
	c := s.controller
	if c == nil {
		return 0
	}
	if c.NoItemsFound() {
		return 1
	}
	count := c.ItemCount()
	if c.HasMoreItems() {
		count++
	}
	return count
}

// buildSlot maps a slot index to its widget: the loaded item, the empty
// placeholder, the error affordance, or the fetch-triggering loading
// sentinel. All variants share this resolution; they differ only in how the
// resulting slots are laid out.
func (s *shellState[T]) buildSlot(ctx core.BuildContext, cfg Config[T], index int) core.Widget {
	c := s.controller
	if c == nil {
		return nil
	}
	if c.NoItemsFound() {
		return buildEmptySlot(ctx, cfg)
	}
	if index < c.ItemCount() {
		return cfg.ItemBuilder(ctx, c.Items()[index], index)
	}
	if err := c.Err(); err != nil {
		return buildErrorSlot(ctx, cfg, err, c.Retry)
	}
	return loadTrigger[T]{
		controller: c,
		page:       c.PageCount(),
		child:      buildLoadingSlot(ctx, cfg),
	}
}

// loadTrigger wraps the loading placeholder and calls FetchNewPage when it
// first appears. The page index is the widget key, so advancing to the next
// page remounts the trigger and fires exactly one fetch per page, no matter
// how often the tree rebuilds in between.
type loadTrigger[T any] struct {
	core.StatefulBase
	controller *pager.LoadController[T]
	page       int
	child      core.Widget
}

func (t loadTrigger[T]) Key() any {
	return t.page
}

func (t loadTrigger[T]) CreateState() core.State {
	return &loadTriggerState[T]{}
}

type loadTriggerState[T any] struct {
	core.StateBase
}

func (s *loadTriggerState[T]) InitState() {
	w, ok := s.currentWidget()
	if !ok || w.controller == nil {
		return
	}
	c := w.controller
	// Defer past the current build. Without a registered dispatcher
	// (headless tests) fire inline.
	fire := func() { c.FetchNewPage() }
	if !platform.Dispatch(fire) {
		fire()
	}
}

func (s *loadTriggerState[T]) Build(ctx core.BuildContext) core.Widget {
	w, ok := s.currentWidget()
	if !ok {
		return nil
	}
	return w.child
}

func (s *loadTriggerState[T]) currentWidget() (loadTrigger[T], bool) {
	if s.Element() == nil {
		return loadTrigger[T]{}, false
	}
	w, ok := s.Element().Widget().(loadTrigger[T])
	return w, ok
}

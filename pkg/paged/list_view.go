package paged

import (
	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/layout"
	"github.com/go-drift/drift/pkg/widgets"
)

// ListView is a vertically scrolling list that loads items page by page.
//
// While more pages may exist the list ends in a sentinel slot whose
// appearance triggers the next fetch. Set ItemExtent to a fixed row height
// to enable virtualization; the sentinel then only fires once it actually
// scrolls into view. Without ItemExtent all slots build eagerly, which also
// means every available page loads back to back.
//
// Example:
//
//	paged.ListView[Article]{
//	    PageSize:   20,
//	    Fetch:      api.Articles,
//	    ItemExtent: 72,
//	    ItemBuilder: func(ctx core.BuildContext, a Article, index int) core.Widget {
//	        return ArticleTile{Article: a}
//	    },
//	}
type ListView[T any] struct {
	core.StatefulBase
	Config[T]

	// ItemExtent is the fixed height of each slot. Required for
	// virtualization; 0 builds all slots eagerly.
	ItemExtent float64
	// CacheExtent is the number of pixels to build beyond the visible area.
	CacheExtent float64
	// ScrollController manages the scroll position.
	ScrollController *widgets.ScrollController
	// Physics determines how the list responds to user input.
	Physics widgets.ScrollPhysics
	// Padding is applied around the list content.
	Padding layout.EdgeInsets
}

func (l ListView[T]) config() Config[T] { return l.Config }
func (l ListView[T]) variantName() string { return "ListView" }
func (l ListView[T]) CreateState() core.State { return &listViewState[T]{} }

type listViewState[T any] struct {
	shellState[T]
}

func (s *listViewState[T]) Build(ctx core.BuildContext) core.Widget {
	if s.Element() == nil || s.controller == nil {
		return nil
	}
	w, ok := s.Element().Widget().(ListView[T])
	if !ok {
		return nil
	}
	count := s.slotCount()
	if w.ItemExtent > 0 {
		return widgets.ListViewBuilder{
			ItemCount:   count,
			ItemExtent:  w.ItemExtent,
			CacheExtent: w.CacheExtent,
			ItemBuilder: func(ctx core.BuildContext, index int) core.Widget {
				return s.buildSlot(ctx, w.Config, index)
			},
			Controller: w.ScrollController,
			Physics:    w.Physics,
			Padding:    w.Padding,
		}
	}
	children := make([]core.Widget, count)
	for i := range children {
		children[i] = s.buildSlot(ctx, w.Config, i)
	}
	return widgets.ListView{
		Children:   children,
		Controller: w.ScrollController,
		Physics:    w.Physics,
		Padding:    w.Padding,
	}
}

// ListSection is the list variant without its own scroll container. Embed it
// in a host [widgets.ScrollView] alongside other content; it lays its slots
// out in a plain column and relies on the host for scrolling. Because all
// slots build eagerly, every available page loads back to back unless the
// controller caps progress via the has-more flag.
type ListSection[T any] struct {
	core.StatefulBase
	Config[T]
}

func (l ListSection[T]) config() Config[T] { return l.Config }
func (l ListSection[T]) variantName() string { return "ListSection" }
func (l ListSection[T]) CreateState() core.State { return &listSectionState[T]{} }

type listSectionState[T any] struct {
	shellState[T]
}

func (s *listSectionState[T]) Build(ctx core.BuildContext) core.Widget {
	if s.Element() == nil || s.controller == nil {
		return nil
	}
	w, ok := s.Element().Widget().(ListSection[T])
	if !ok {
		return nil
	}
	count := s.slotCount()
	children := make([]core.Widget, count)
	for i := range children {
		children[i] = s.buildSlot(ctx, w.Config, i)
	}
	return widgets.Column{
		Children:           children,
		MainAxisSize:       widgets.MainAxisSizeMin,
		CrossAxisAlignment: widgets.CrossAxisAlignmentStretch,
	}
}

package paged

import (
	"math"

	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/layout"
	"github.com/go-drift/drift/pkg/widgets"
)

// GridView is a vertically scrolling grid that loads items page by page.
// A [GridDelegate] decides the column count and tile size from the available
// width. The trailing sentinel and the empty placeholder span the full width
// below the tiles.
//
// Example:
//
//	paged.GridView[Photo]{
//	    PageSize: 30,
//	    Fetch:    api.Photos,
//	    Delegate: paged.GridDelegateWithMaxCrossAxisExtent{
//	        MaxCrossAxisExtent: 160,
//	        MainAxisSpacing:    8,
//	        CrossAxisSpacing:   8,
//	    },
//	    ItemBuilder: func(ctx core.BuildContext, p Photo, index int) core.Widget {
//	        return PhotoTile{Photo: p}
//	    },
//	}
type GridView[T any] struct {
	core.StatefulBase
	Config[T]

	// Delegate shapes the grid. Required.
	Delegate GridDelegate
	// ScrollController manages the scroll position.
	ScrollController *widgets.ScrollController
	// Physics determines how the grid responds to user input.
	Physics widgets.ScrollPhysics
	// Padding is applied around the grid content.
	Padding layout.EdgeInsets
}

func (g GridView[T]) config() Config[T] { return g.Config }
func (g GridView[T]) variantName() string { return "GridView" }
func (g GridView[T]) CreateState() core.State { return &gridViewState[T]{} }

type gridViewState[T any] struct {
	shellState[T]
}

func (s *gridViewState[T]) Build(ctx core.BuildContext) core.Widget {
	if s.Element() == nil || s.controller == nil {
		return nil
	}
	w, ok := s.Element().Widget().(GridView[T])
	if !ok {
		return nil
	}
	requireDelegate(w.Delegate, "GridView")
	return widgets.ScrollView{
		Child:      s.buildGrid(ctx, w.Config, w.Delegate),
		Controller: w.ScrollController,
		Physics:    w.Physics,
		Padding:    w.Padding,
	}
}

// GridSection is the grid variant without its own scroll container, for
// embedding in a host [widgets.ScrollView] alongside other content.
type GridSection[T any] struct {
	core.StatefulBase
	Config[T]

	// Delegate shapes the grid. Required.
	Delegate GridDelegate
}

func (g GridSection[T]) config() Config[T] { return g.Config }
func (g GridSection[T]) variantName() string { return "GridSection" }
func (g GridSection[T]) CreateState() core.State { return &gridSectionState[T]{} }

type gridSectionState[T any] struct {
	shellState[T]
}

func (s *gridSectionState[T]) Build(ctx core.BuildContext) core.Widget {
	if s.Element() == nil || s.controller == nil {
		return nil
	}
	w, ok := s.Element().Widget().(GridSection[T])
	if !ok {
		return nil
	}
	requireDelegate(w.Delegate, "GridSection")
	return s.buildGrid(ctx, w.Config, w.Delegate)
}

func requireDelegate(delegate GridDelegate, widget string) {
	if delegate == nil {
		panic("paged: " + widget + " requires a Delegate.\n\n" +
			"The delegate decides the column count and tile size:\n\n" +
			"\tDelegate: paged.GridDelegateWithFixedCrossAxisCount{CrossAxisCount: 2}")
	}
}

// buildGrid lays the item slots out as fixed-size tiles in a wrapping flow
// and places any trailing sentinel slot full-width below them. Tile geometry
// is resolved against the incoming constraints, so the grid reshapes on
// rotation or window resize.
func (s *shellState[T]) buildGrid(ctx core.BuildContext, cfg Config[T], delegate GridDelegate) core.Widget {
	return widgets.LayoutBuilder{
		Builder: func(ctx core.BuildContext, constraints layout.Constraints) core.Widget {
			c := s.controller
			if c == nil {
				return nil
			}
			if c.NoItemsFound() {
				return s.buildSlot(ctx, cfg, 0)
			}
			width := constraints.MaxWidth
			if width >= math.MaxFloat64 {
				panic("paged: grid was given unbounded width.\n\n" +
					"Grids resolve their column count from the available width. Place the\n" +
					"grid in a vertically scrolling context or constrain its width.")
			}
			grid := delegate.layoutFor(width)
			itemCount := c.ItemCount()
			tiles := make([]core.Widget, 0, itemCount)
			for i := 0; i < itemCount; i++ {
				tiles = append(tiles, widgets.SizedBox{
					Width:  grid.tileWidth,
					Height: grid.tileHeight,
					Child:  s.buildSlot(ctx, cfg, i),
				})
			}
			body := widgets.Wrap{
				Children:   tiles,
				Spacing:    grid.crossAxisSpacing,
				RunSpacing: grid.mainAxisSpacing,
			}
			if s.slotCount() == itemCount {
				return body
			}
			return widgets.Column{
				Children: []core.Widget{
					body,
					s.buildSlot(ctx, cfg, itemCount),
				},
				MainAxisSize:       widgets.MainAxisSizeMin,
				CrossAxisAlignment: widgets.CrossAxisAlignmentStretch,
			}
		},
	}
}

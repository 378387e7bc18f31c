package main

import (
	"context"
	"strconv"

	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/graphics"
	"github.com/go-drift/drift/pkg/theme"
	"github.com/go-drift/drift/pkg/widgets"

	"github.com/go-drift/pagewise/pkg/paged"
	"github.com/go-drift/pagewise/pkg/pager"
)

const feedPageSize = 8

// feedPage demonstrates the paged list: a controller owned by the page,
// fetch-mode loading from the catalog, tap-to-remove, reset, and a button
// that makes the next page fail to show the retry affordance.
type feedPage struct {
	core.StatefulBase
	Catalog *Catalog
}

func (f feedPage) CreateState() core.State {
	return &feedPageState{}
}

type feedPageState struct {
	core.StateBase
	controller *pager.LoadController[CatalogItem]
}

func (s *feedPageState) InitState() {
	catalog := s.catalog()
	s.controller = core.UseController(s, func() *pager.LoadController[CatalogItem] {
		c := pager.NewLoadController[CatalogItem](feedPageSize)
		c.Fetch = func(ctx context.Context, page int) ([]CatalogItem, error) {
			return catalog.Page(ctx, page, feedPageSize)
		}
		return c
	})
	// Rebuild the header stats on every controller transition.
	core.UseListenable(s, s.controller)
}

func (s *feedPageState) catalog() *Catalog {
	if s.Element() == nil {
		return nil
	}
	if w, ok := s.Element().Widget().(feedPage); ok {
		return w.Catalog
	}
	return nil
}

func (s *feedPageState) Build(ctx core.BuildContext) core.Widget {
	_, colors, _ := theme.UseTheme(ctx)
	catalog := s.catalog()
	c := s.controller

	stats := strconv.Itoa(c.ItemCount()) + " of " + strconv.Itoa(catalog.Len()) + " items, " +
		strconv.Itoa(c.PageCount()) + " pages"

	return widgets.Column{
		Children: []core.Widget{
			widgets.PaddingSym(16, 4, widgets.Row{
				Children: []core.Widget{
					widgets.Expanded{Child: widgets.Text{
						Content: stats,
						Style: graphics.TextStyle{
							Color:    colors.OnSurfaceVariant,
							FontSize: 12,
						},
					}},
					pillButton(ctx, "Fail next", false, catalog.FailNextPage),
					widgets.HSpace(8),
					pillButton(ctx, "Reset", false, c.Reset),
				},
				CrossAxisAlignment: widgets.CrossAxisAlignmentCenter,
			}),
			widgets.Expanded{Child: paged.ListView[CatalogItem]{
				Config: paged.Config[CatalogItem]{
					Controller: c,
					ItemBuilder: func(ctx core.BuildContext, item CatalogItem, index int) core.Widget {
						return itemTile(ctx, item, func() {
							// Tap a row to remove it.
							c.RemoveItem(func(other CatalogItem) bool {
								return other.ID == item.ID
							})
						})
					},
				},
				ItemExtent: 64,
			}},
		},
		CrossAxisAlignment: widgets.CrossAxisAlignmentStretch,
	}
}

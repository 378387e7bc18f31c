package main

import (
	"context"

	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/layout"
	"github.com/go-drift/drift/pkg/theme"
	"github.com/go-drift/drift/pkg/widgets"

	"github.com/go-drift/pagewise/pkg/paged"
	"github.com/go-drift/pagewise/pkg/pager"
)

const sectionsPageSize = 6

// sectionsPage demonstrates the section variants: a list section and a grid
// section embedded in one host scroll view, observing a single shared
// controller. Both stay in sync because they render from the same state.
type sectionsPage struct {
	core.StatefulBase
	Catalog *Catalog
}

func (p sectionsPage) CreateState() core.State {
	return &sectionsPageState{}
}

type sectionsPageState struct {
	core.StateBase
	controller *pager.LoadController[CatalogItem]
}

func (s *sectionsPageState) InitState() {
	var catalog *Catalog
	if w, ok := s.Element().Widget().(sectionsPage); ok {
		catalog = w.Catalog
	}
	s.controller = core.UseController(s, func() *pager.LoadController[CatalogItem] {
		c := pager.NewLoadController[CatalogItem](sectionsPageSize)
		c.Fetch = func(ctx context.Context, page int) ([]CatalogItem, error) {
			return catalog.Page(ctx, page, sectionsPageSize)
		}
		return c
	})
}

func (s *sectionsPageState) Build(ctx core.BuildContext) core.Widget {
	_, colors, _ := theme.UseTheme(ctx)

	itemBuilder := func(ctx core.BuildContext, item CatalogItem, index int) core.Widget {
		return itemTile(ctx, item, nil)
	}

	return widgets.ScrollView{
		Physics: widgets.BouncingScrollPhysics{},
		Padding: layout.EdgeInsetsAll(16),
		Child: widgets.Column{
			Children: []core.Widget{
				sectionTitle("As a list", colors),
				widgets.VSpace(8),
				paged.ListSection[CatalogItem]{
					Config: paged.Config[CatalogItem]{
						Controller:  s.controller,
						ItemBuilder: itemBuilder,
					},
				},
				widgets.VSpace(24),
				sectionTitle("The same feed as a grid", colors),
				widgets.VSpace(8),
				paged.GridSection[CatalogItem]{
					Config: paged.Config[CatalogItem]{
						Controller: s.controller,
						ItemBuilder: func(ctx core.BuildContext, item CatalogItem, index int) core.Widget {
							return gridTile(ctx, item)
						},
					},
					Delegate: paged.GridDelegateWithFixedCrossAxisCount{
						CrossAxisCount:   3,
						MainAxisSpacing:  4,
						CrossAxisSpacing: 4,
					},
				},
			},
			MainAxisSize:       widgets.MainAxisSizeMin,
			CrossAxisAlignment: widgets.CrossAxisAlignmentStretch,
		},
	}
}

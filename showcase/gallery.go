package main

import (
	"context"

	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/layout"
	"github.com/go-drift/drift/pkg/widgets"

	"github.com/go-drift/pagewise/pkg/paged"
)

const galleryPageSize = 12

// galleryPage demonstrates the paged grid with an adaptive column count.
// The widget owns its controller; only the page size and fetch function are
// supplied.
type galleryPage struct {
	core.StatelessBase
	Catalog *Catalog
}

func (g galleryPage) Build(ctx core.BuildContext) core.Widget {
	catalog := g.Catalog
	return paged.GridView[CatalogItem]{
		Config: paged.Config[CatalogItem]{
			PageSize: galleryPageSize,
			Fetch: func(ctx context.Context, page int) ([]CatalogItem, error) {
				return catalog.Page(ctx, page, galleryPageSize)
			},
			ItemBuilder: func(ctx core.BuildContext, item CatalogItem, index int) core.Widget {
				return gridTile(ctx, item)
			},
		},
		Delegate: paged.GridDelegateWithMaxCrossAxisExtent{
			MaxCrossAxisExtent: 140,
			MainAxisSpacing:    4,
			CrossAxisSpacing:   4,
		},
		Padding: layout.EdgeInsetsAll(12),
		Physics: widgets.BouncingScrollPhysics{},
	}
}

package paged

import (
	"github.com/go-drift/drift/pkg/core"

	"github.com/go-drift/pagewise/pkg/pager"
)

// Config carries the fields shared by all paged widgets: where the items
// come from and how each slot is rendered. Embed values are promoted, so the
// fields are set directly on the widget:
//
//	paged.ListView[Article]{
//	    PageSize: 20,
//	    Fetch:    loadArticles,
//	    ItemBuilder: func(ctx core.BuildContext, a Article, index int) core.Widget {
//	        return ArticleTile{Article: a}
//	    },
//	}
//
// Exactly one item source must be configured: either Controller, or PageSize
// together with an optional Fetch or OnPageRequested hook (the widget then
// owns a private controller). ItemBuilder is always required.
type Config[T any] struct {
	// Controller supplies pagination state from outside the widget. The
	// widget subscribes but never disposes it. Mutually exclusive with
	// PageSize, Fetch, and OnPageRequested.
	Controller *pager.LoadController[T]

	// PageSize configures the widget's own controller when Controller is
	// nil. Required in that case.
	PageSize int

	// Fetch loads pages for the widget's own controller.
	// See [pager.LoadController].
	Fetch pager.FetchFunc[T]

	// OnPageRequested is the callback-mode fetch hook for the widget's own
	// controller. See [pager.LoadController].
	OnPageRequested func(pageIndex int)

	// ItemBuilder renders one loaded item. Required.
	ItemBuilder func(ctx core.BuildContext, item T, index int) core.Widget

	// LoadingBuilder replaces the default loading indicator in the sentinel
	// slot.
	LoadingBuilder func(ctx core.BuildContext) core.Widget

	// EmptyBuilder replaces the default placeholder shown when loading
	// completes without any items.
	EmptyBuilder func(ctx core.BuildContext) core.Widget

	// ErrorBuilder replaces the default error view. Only allowed together
	// with DisableRetry; the builder owns the whole failure UI.
	ErrorBuilder func(ctx core.BuildContext, err error) core.Widget

	// RetryBuilder replaces the default error-plus-retry-button view.
	// Calling retry clears the error and lets the sentinel resume fetching.
	// Not allowed with DisableRetry.
	RetryBuilder func(ctx core.BuildContext, err error, retry func()) core.Widget

	// DisableRetry turns off the automatic retry button after a failed
	// fetch. The error is then rendered by ErrorBuilder or a plain default.
	DisableRetry bool
}

func (c Config[T]) validate(widget string) {
	if c.ItemBuilder == nil {
		panic("paged: " + widget + " requires an ItemBuilder.\n\n" +
			"ItemBuilder renders one loaded item per slot:\n\n" +
			"\tItemBuilder: func(ctx core.BuildContext, item T, index int) core.Widget {\n" +
			"\t    return ItemTile{Item: item}\n" +
			"\t}")
	}
	if c.Controller != nil {
		if c.PageSize != 0 {
			panic("paged: " + widget + " was given both a Controller and a PageSize.\n\n" +
				"PageSize configures the widget's own controller and is meaningless\n" +
				"when an external Controller is supplied. Set one or the other.")
		}
		if c.Fetch != nil || c.OnPageRequested != nil {
			panic("paged: " + widget + " was given both a Controller and a fetch hook.\n\n" +
				"Fetch and OnPageRequested belong to the controller. When supplying an\n" +
				"external Controller, set them on the controller itself.")
		}
	} else if c.PageSize <= 0 {
		panic("paged: " + widget + " needs an item source.\n\n" +
			"Either supply an external Controller, or set a positive PageSize so the\n" +
			"widget can own one (optionally with Fetch or OnPageRequested).")
	}
	if c.DisableRetry && c.RetryBuilder != nil {
		panic("paged: " + widget + " sets RetryBuilder with DisableRetry.\n\n" +
			"RetryBuilder customizes the automatic retry affordance, which\n" +
			"DisableRetry turns off. Drop one of the two.")
	}
	if !c.DisableRetry && c.ErrorBuilder != nil {
		panic("paged: " + widget + " sets ErrorBuilder without DisableRetry.\n\n" +
			"ErrorBuilder takes over the whole failure UI and suppresses the\n" +
			"automatic retry button, so it requires DisableRetry. To keep the retry\n" +
			"button with a custom look, use RetryBuilder instead.")
	}
}

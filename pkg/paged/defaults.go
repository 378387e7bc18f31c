package paged

import (
	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/graphics"
	"github.com/go-drift/drift/pkg/theme"
	"github.com/go-drift/drift/pkg/widgets"
)

// Default slot content, used when the corresponding Config builder is nil.
// Each default follows the current theme.

func buildLoadingSlot[T any](ctx core.BuildContext, cfg Config[T]) core.Widget {
	if cfg.LoadingBuilder != nil {
		return cfg.LoadingBuilder(ctx)
	}
	return widgets.Center{
		Child: widgets.PaddingAll(16, widgets.ActivityIndicator{Animating: true}),
	}
}

func buildEmptySlot[T any](ctx core.BuildContext, cfg Config[T]) core.Widget {
	if cfg.EmptyBuilder != nil {
		return cfg.EmptyBuilder(ctx)
	}
	_, colors, _ := theme.UseTheme(ctx)
	return widgets.Center{
		Child: widgets.PaddingAll(24, widgets.Text{
			Content: "No items found",
			Style: graphics.TextStyle{
				Color:    colors.OnSurfaceVariant,
				FontSize: 14,
			},
		}),
	}
}

func buildErrorSlot[T any](ctx core.BuildContext, cfg Config[T], err error, retry func()) core.Widget {
	if cfg.DisableRetry {
		if cfg.ErrorBuilder != nil {
			return cfg.ErrorBuilder(ctx, err)
		}
		return defaultErrorText(ctx, err)
	}
	if cfg.RetryBuilder != nil {
		return cfg.RetryBuilder(ctx, err, retry)
	}
	return widgets.Center{
		Child: widgets.PaddingAll(16, widgets.Column{
			MainAxisAlignment:  widgets.MainAxisAlignmentCenter,
			CrossAxisAlignment: widgets.CrossAxisAlignmentCenter,
			MainAxisSize:       widgets.MainAxisSizeMin,
			Children: []core.Widget{
				defaultErrorText(ctx, err),
				widgets.VSpace(12),
				theme.ButtonOf(ctx, "Retry", retry),
			},
		}),
	}
}

func defaultErrorText(ctx core.BuildContext, err error) core.Widget {
	_, colors, _ := theme.UseTheme(ctx)
	message := "Something went wrong"
	if err != nil {
		message = err.Error()
	}
	return widgets.Center{
		Child: widgets.PaddingAll(16, widgets.Text{
			Content:  message,
			Wrap:     graphics.TextWrapWrap,
			MaxLines: 3,
			Style: graphics.TextStyle{
				Color:    colors.Error,
				FontSize: 14,
			},
		}),
	}
}

package main

import (
	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/graphics"
	"github.com/go-drift/drift/pkg/layout"
	"github.com/go-drift/drift/pkg/theme"
	"github.com/go-drift/drift/pkg/widgets"
)

// sectionTitle creates a styled heading for a demo section.
func sectionTitle(text string, colors theme.ColorScheme) core.Widget {
	return widgets.Text{
		Content: text,
		Style: graphics.TextStyle{
			Color:      colors.Primary,
			FontSize:   18,
			FontWeight: graphics.FontWeightBold,
		},
	}
}

// pillButton creates a compact tappable pill used in the top bar and for
// secondary actions on the demo pages.
func pillButton(ctx core.BuildContext, label string, active bool, onTap func()) core.Widget {
	_, colors, _ := theme.UseTheme(ctx)
	background := colors.SurfaceVariant
	foreground := colors.OnSurfaceVariant
	if active {
		background = colors.Primary
		foreground = colors.OnPrimary
	}
	return widgets.GestureDetector{
		OnTap: onTap,
		Child: widgets.Container{
			Color:   background,
			Padding: layout.EdgeInsetsSymmetric(12, 6),
			Child: widgets.Text{
				Content: label,
				Style: graphics.TextStyle{
					Color:    foreground,
					FontSize: 13,
				},
			},
		},
	}
}

// categoryColor picks an accent for a catalog category.
func categoryColor(category string, colors theme.ColorScheme) graphics.Color {
	switch category {
	case "photo":
		return graphics.RGB(96, 165, 250)
	case "food":
		return graphics.RGB(251, 146, 60)
	case "cycling":
		return graphics.RGB(74, 222, 128)
	default:
		return colors.Primary
	}
}

// itemTile renders one catalog item as a list row.
func itemTile(ctx core.BuildContext, item CatalogItem, onTap func()) core.Widget {
	_, colors, _ := theme.UseTheme(ctx)
	return widgets.GestureDetector{
		OnTap: onTap,
		Child: widgets.PaddingSym(16, 8, widgets.Row{
			Children: []core.Widget{
				widgets.Container{
					Width:  8,
					Height: 40,
					Color:  categoryColor(item.Category, colors),
				},
				widgets.HSpace(12),
				widgets.Expanded{Child: widgets.Column{
					MainAxisAlignment:  widgets.MainAxisAlignmentCenter,
					CrossAxisAlignment: widgets.CrossAxisAlignmentStart,
					MainAxisSize:       widgets.MainAxisSizeMin,
					Children: []core.Widget{
						widgets.Text{
							Content: item.Title,
							Style: graphics.TextStyle{
								Color:      colors.OnSurface,
								FontSize:   15,
								FontWeight: graphics.FontWeightBold,
							},
						},
						widgets.VSpace(2),
						widgets.Text{
							Content:  item.Subtitle,
							MaxLines: 1,
							Style: graphics.TextStyle{
								Color:    colors.OnSurfaceVariant,
								FontSize: 12,
							},
						},
					},
				}},
			},
			CrossAxisAlignment: widgets.CrossAxisAlignmentCenter,
		}),
	}
}

// gridTile renders one catalog item as a grid cell.
func gridTile(ctx core.BuildContext, item CatalogItem) core.Widget {
	_, colors, _ := theme.UseTheme(ctx)
	return widgets.PaddingAll(4, widgets.Container{
		Color:     colors.SurfaceVariant,
		Alignment: layout.AlignmentCenter,
		Padding:   layout.EdgeInsetsAll(8),
		Child: widgets.Column{
			MainAxisAlignment:  widgets.MainAxisAlignmentCenter,
			CrossAxisAlignment: widgets.CrossAxisAlignmentCenter,
			MainAxisSize:       widgets.MainAxisSizeMin,
			Children: []core.Widget{
				widgets.Container{
					Width:  20,
					Height: 20,
					Color:  categoryColor(item.Category, colors),
				},
				widgets.VSpace(8),
				widgets.Text{
					Content:  item.Title,
					Wrap:     graphics.TextWrapWrap,
					MaxLines: 2,
					Style: graphics.TextStyle{
						Color:    colors.OnSurface,
						FontSize: 12,
					},
				},
			},
		},
	})
}

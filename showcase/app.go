// Package main is the pagewise demo application. It shows the paged list
// and grid widgets loading a small embedded catalog through a simulated
// remote API, including the empty, error, and retry flows.
package main

import (
	"log"

	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/theme"
	"github.com/go-drift/drift/pkg/widgets"
)

// App returns the root widget for the pagewise showcase.
func App() core.Widget {
	return ShowcaseApp{}
}

type demoTab int

const (
	tabFeed demoTab = iota
	tabGallery
	tabSections
)

func (t demoTab) title() string {
	switch t {
	case tabFeed:
		return "Feed"
	case tabGallery:
		return "Gallery"
	default:
		return "Sections"
	}
}

// ShowcaseApp owns the theme and the active demo tab.
type ShowcaseApp struct {
	core.StatefulBase
}

func (ShowcaseApp) CreateState() core.State {
	return &showcaseState{}
}

type showcaseState struct {
	core.StateBase
	catalog     *Catalog
	tab         demoTab
	isDark      bool
	cachedTheme *theme.AppThemeData
	cachedDark  bool
}

func (s *showcaseState) InitState() {
	catalog, err := LoadCatalog()
	if err != nil {
		log.Fatalf("load catalog: %v", err)
	}
	s.catalog = catalog
	s.isDark = true
}

func (s *showcaseState) themeData() *theme.AppThemeData {
	if s.cachedTheme == nil || s.cachedDark != s.isDark {
		brightness := theme.BrightnessLight
		if s.isDark {
			brightness = theme.BrightnessDark
		}
		s.cachedTheme = theme.NewAppThemeData(theme.TargetPlatformMaterial, brightness)
		s.cachedDark = s.isDark
	}
	return s.cachedTheme
}

func (s *showcaseState) Build(ctx core.BuildContext) core.Widget {
	return theme.AppTheme{
		Data: s.themeData(),
		Child: appShell{
			Tab:     s.tab,
			IsDark:  s.isDark,
			Catalog: s.catalog,
			OnTab: func(tab demoTab) {
				s.SetState(func() { s.tab = tab })
			},
			OnToggleTheme: func() {
				s.SetState(func() { s.isDark = !s.isDark })
			},
		},
	}
}

// appShell draws the top bar and the active demo page. It is a separate
// widget so it can read the theme installed by its parent.
type appShell struct {
	core.StatelessBase
	Tab           demoTab
	IsDark        bool
	Catalog       *Catalog
	OnTab         func(demoTab)
	OnToggleTheme func()
}

func (a appShell) Build(ctx core.BuildContext) core.Widget {
	_, colors, _ := theme.UseTheme(ctx)

	tabs := make([]core.Widget, 0, 7)
	for _, tab := range []demoTab{tabFeed, tabGallery, tabSections} {
		tab := tab
		tabs = append(tabs, pillButton(ctx, tab.title(), tab == a.Tab, func() {
			a.OnTab(tab)
		}), widgets.HSpace(8))
	}
	toggleLabel := "Light"
	if !a.IsDark {
		toggleLabel = "Dark"
	}
	tabs = append(tabs, widgets.Expanded{Child: widgets.SizedBox{}},
		pillButton(ctx, toggleLabel, false, a.OnToggleTheme))

	var body core.Widget
	switch a.Tab {
	case tabFeed:
		body = feedPage{Catalog: a.Catalog}
	case tabGallery:
		body = galleryPage{Catalog: a.Catalog}
	default:
		body = sectionsPage{Catalog: a.Catalog}
	}

	return widgets.Container{
		Color: colors.Background,
		Child: widgets.Column{
			Children: []core.Widget{
				widgets.PaddingSym(16, 12, widgets.Row{
					Children:    tabs,
					CrossAxisAlignment: widgets.CrossAxisAlignmentCenter,
				}),
				widgets.Expanded{Child: body},
			},
			CrossAxisAlignment: widgets.CrossAxisAlignmentStretch,
		},
	}
}

package paged_test

import (
	"errors"
	"testing"

	"github.com/go-drift/drift/pkg/core"
	drifttest "github.com/go-drift/drift/pkg/testing"
	"github.com/go-drift/drift/pkg/widgets"

	"github.com/go-drift/pagewise/pkg/paged"
	"github.com/go-drift/pagewise/pkg/pager"
)

func textItemBuilder(ctx core.BuildContext, item string, index int) core.Widget {
	return widgets.Text{Content: item}
}

func TestListView_SentinelTriggersFirstFetch(t *testing.T) {
	tester := drifttest.NewWidgetTesterWithT(t)

	var requested []int
	controller := pager.NewLoadController[string](2)
	defer controller.Dispose()
	controller.OnPageRequested = func(page int) { requested = append(requested, page) }

	tester.PumpWidget(paged.ListView[string]{
		Config: paged.Config[string]{
			Controller:  controller,
			ItemBuilder: textItemBuilder,
		},
	})
	// The sentinel defers its fetch past the mounting frame.
	tester.Pump()

	if len(requested) != 1 || requested[0] != 0 {
		t.Fatalf("requested = %v, want [0]", requested)
	}
	if !controller.IsFetching() {
		t.Error("expected controller fetching after sentinel build")
	}
	if !tester.Find(drifttest.ByType[widgets.ActivityIndicator]()).Exists() {
		t.Error("expected a loading indicator in the sentinel slot")
	}
}

func TestListView_RendersLoadedItems(t *testing.T) {
	tester := drifttest.NewWidgetTesterWithT(t)

	controller := pager.NewLoadController[string](2)
	defer controller.Dispose()
	controller.OnPageRequested = func(int) {}

	tester.PumpWidget(paged.ListView[string]{
		Config: paged.Config[string]{
			Controller:  controller,
			ItemBuilder: textItemBuilder,
		},
	})

	controller.AppendItems([]string{"Alpha", "Beta"})
	tester.Pump()

	if !tester.Find(drifttest.ByText("Alpha")).Exists() {
		t.Error("expected first item to render")
	}
	if !tester.Find(drifttest.ByText("Beta")).Exists() {
		t.Error("expected second item to render")
	}
	// Full page, so a sentinel remains at the tail.
	if !tester.Find(drifttest.ByType[widgets.ActivityIndicator]()).Exists() {
		t.Error("expected the tail sentinel while more pages may exist")
	}
}

func TestListView_NoSentinelWhenExhausted(t *testing.T) {
	tester := drifttest.NewWidgetTesterWithT(t)

	controller := pager.NewLoadController[string](2)
	defer controller.Dispose()
	controller.OnPageRequested = func(int) {}

	tester.PumpWidget(paged.ListView[string]{
		Config: paged.Config[string]{
			Controller:  controller,
			ItemBuilder: textItemBuilder,
		},
	})

	controller.AppendItems([]string{"Alpha", "Beta"})
	controller.AppendItems([]string{"Gamma"})
	tester.Pump()

	if !tester.Find(drifttest.ByText("Gamma")).Exists() {
		t.Error("expected last item to render")
	}
	if tester.Find(drifttest.ByType[widgets.ActivityIndicator]()).Exists() {
		t.Error("short page should remove the tail sentinel")
	}
}

func TestListView_FetchesOncePerPage(t *testing.T) {
	tester := drifttest.NewWidgetTesterWithT(t)

	var requested []int
	controller := pager.NewLoadController[string](2)
	defer controller.Dispose()
	controller.OnPageRequested = func(page int) { requested = append(requested, page) }

	tester.PumpWidget(paged.ListView[string]{
		Config: paged.Config[string]{
			Controller:  controller,
			ItemBuilder: textItemBuilder,
		},
	})

	// Rebuilds while the fetch is outstanding must not issue duplicates.
	tester.Pump()
	tester.Pump()
	if len(requested) != 1 {
		t.Fatalf("requested = %v, want a single request", requested)
	}

	controller.AppendItems([]string{"Alpha", "Beta"})
	// One frame rebuilds with the next sentinel, the next frame runs its
	// deferred fetch.
	tester.Pump()
	tester.Pump()

	if len(requested) != 2 || requested[1] != 1 {
		t.Fatalf("requested = %v, want [0 1]", requested)
	}
}

func TestListView_ShowsEmptyPlaceholder(t *testing.T) {
	tester := drifttest.NewWidgetTesterWithT(t)

	controller := pager.NewLoadController[string](2)
	defer controller.Dispose()
	controller.OnPageRequested = func(int) {}

	tester.PumpWidget(paged.ListView[string]{
		Config: paged.Config[string]{
			Controller:  controller,
			ItemBuilder: textItemBuilder,
		},
	})

	controller.AppendItems(nil)
	tester.Pump()

	if !tester.Find(drifttest.ByText("No items found")).Exists() {
		t.Error("expected the empty placeholder")
	}
	if tester.Find(drifttest.ByType[widgets.ActivityIndicator]()).Exists() {
		t.Error("empty state should not show a loading indicator")
	}
}

func TestListView_CustomEmptyBuilder(t *testing.T) {
	tester := drifttest.NewWidgetTesterWithT(t)

	controller := pager.NewLoadController[string](2)
	defer controller.Dispose()
	controller.OnPageRequested = func(int) {}

	tester.PumpWidget(paged.ListView[string]{
		Config: paged.Config[string]{
			Controller:  controller,
			ItemBuilder: textItemBuilder,
			EmptyBuilder: func(ctx core.BuildContext) core.Widget {
				return widgets.Text{Content: "Nothing here yet"}
			},
		},
	})

	controller.AppendItems(nil)
	tester.Pump()

	if !tester.Find(drifttest.ByText("Nothing here yet")).Exists() {
		t.Error("expected the custom empty placeholder")
	}
}

func TestListView_ErrorShowsRetryAffordance(t *testing.T) {
	tester := drifttest.NewWidgetTesterWithT(t)

	var requested []int
	controller := pager.NewLoadController[string](2)
	defer controller.Dispose()
	controller.OnPageRequested = func(page int) { requested = append(requested, page) }

	tester.PumpWidget(paged.ListView[string]{
		Config: paged.Config[string]{
			Controller:  controller,
			ItemBuilder: textItemBuilder,
		},
	})

	controller.SetError(errors.New("network down"))
	tester.Pump()

	if !tester.Find(drifttest.ByText("network down")).Exists() {
		t.Error("expected the error message")
	}
	if !tester.Find(drifttest.ByText("Retry")).Exists() {
		t.Fatal("expected the retry button")
	}

	if err := tester.Tap(drifttest.ByText("Retry")); err != nil {
		t.Fatalf("Tap failed: %v", err)
	}
	tester.Pump()

	if controller.Err() != nil {
		t.Error("retry should clear the error")
	}
	// The remounted sentinel fires its deferred fetch on the next frame,
	// resuming with the same page.
	tester.Pump()
	if len(requested) != 2 || requested[1] != 0 {
		t.Fatalf("requested = %v, want [0 0]", requested)
	}
}

func TestListView_DisableRetryShowsPlainError(t *testing.T) {
	tester := drifttest.NewWidgetTesterWithT(t)

	controller := pager.NewLoadController[string](2)
	defer controller.Dispose()
	controller.OnPageRequested = func(int) {}

	tester.PumpWidget(paged.ListView[string]{
		Config: paged.Config[string]{
			Controller:   controller,
			ItemBuilder:  textItemBuilder,
			DisableRetry: true,
		},
	})

	controller.SetError(errors.New("network down"))
	tester.Pump()

	if !tester.Find(drifttest.ByText("network down")).Exists() {
		t.Error("expected the error message")
	}
	if tester.Find(drifttest.ByText("Retry")).Exists() {
		t.Error("DisableRetry should suppress the retry button")
	}
}

func TestListView_OwnedControllerRequestsFirstPage(t *testing.T) {
	tester := drifttest.NewWidgetTesterWithT(t)

	var requested []int
	tester.PumpWidget(paged.ListView[string]{
		Config: paged.Config[string]{
			PageSize:        5,
			OnPageRequested: func(page int) { requested = append(requested, page) },
			ItemBuilder:     textItemBuilder,
		},
	})
	tester.Pump()

	if len(requested) != 1 || requested[0] != 0 {
		t.Fatalf("requested = %v, want [0]", requested)
	}
	if !tester.Find(drifttest.ByType[widgets.ActivityIndicator]()).Exists() {
		t.Error("expected a loading indicator from the widget's own controller")
	}
}

func TestListSection_EmbedsInHostScrollView(t *testing.T) {
	tester := drifttest.NewWidgetTesterWithT(t)

	controller := pager.NewLoadController[string](2)
	defer controller.Dispose()
	controller.OnPageRequested = func(int) {}
	controller.AppendItems([]string{"Alpha"})

	tester.PumpWidget(widgets.ScrollView{
		Child: widgets.Column{
			Children: []core.Widget{
				widgets.Text{Content: "Header"},
				paged.ListSection[string]{
					Config: paged.Config[string]{
						Controller:  controller,
						ItemBuilder: textItemBuilder,
					},
				},
			},
			MainAxisSize: widgets.MainAxisSizeMin,
		},
	})

	if !tester.Find(drifttest.ByText("Header")).Exists() {
		t.Error("expected host content above the section")
	}
	if !tester.Find(drifttest.ByText("Alpha")).Exists() {
		t.Error("expected the section's loaded item")
	}
}

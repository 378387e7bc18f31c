package paged

import (
	"testing"

	"github.com/go-drift/drift/pkg/core"

	"github.com/go-drift/pagewise/pkg/pager"
)

func stubItemBuilder(ctx core.BuildContext, item string, index int) core.Widget {
	return nil
}

func TestConfigValidation(t *testing.T) {
	controller := pager.NewLoadController[string](10)
	defer controller.Dispose()

	tests := []struct {
		name      string
		cfg       Config[string]
		wantPanic bool
	}{
		{
			name:      "missing item builder",
			cfg:       Config[string]{PageSize: 10},
			wantPanic: true,
		},
		{
			name:      "external controller",
			cfg:       Config[string]{Controller: controller, ItemBuilder: stubItemBuilder},
			wantPanic: false,
		},
		{
			name:      "own controller with page size",
			cfg:       Config[string]{PageSize: 10, ItemBuilder: stubItemBuilder},
			wantPanic: false,
		},
		{
			name:      "no item source",
			cfg:       Config[string]{ItemBuilder: stubItemBuilder},
			wantPanic: true,
		},
		{
			name:      "controller and page size",
			cfg:       Config[string]{Controller: controller, PageSize: 10, ItemBuilder: stubItemBuilder},
			wantPanic: true,
		},
		{
			name: "controller and fetch hook",
			cfg: Config[string]{
				Controller:      controller,
				ItemBuilder:     stubItemBuilder,
				OnPageRequested: func(int) {},
			},
			wantPanic: true,
		},
		{
			name: "retry builder with retry disabled",
			cfg: Config[string]{
				PageSize:     10,
				ItemBuilder:  stubItemBuilder,
				DisableRetry: true,
				RetryBuilder: func(core.BuildContext, error, func()) core.Widget { return nil },
			},
			wantPanic: true,
		},
		{
			name: "error builder without disabling retry",
			cfg: Config[string]{
				PageSize:     10,
				ItemBuilder:  stubItemBuilder,
				ErrorBuilder: func(core.BuildContext, error) core.Widget { return nil },
			},
			wantPanic: true,
		},
		{
			name: "error builder with retry disabled",
			cfg: Config[string]{
				PageSize:     10,
				ItemBuilder:  stubItemBuilder,
				DisableRetry: true,
				ErrorBuilder: func(core.BuildContext, error) core.Widget { return nil },
			},
			wantPanic: false,
		},
		{
			name: "retry builder with retry enabled",
			cfg: Config[string]{
				PageSize:     10,
				ItemBuilder:  stubItemBuilder,
				RetryBuilder: func(core.BuildContext, error, func()) core.Widget { return nil },
			},
			wantPanic: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				recovered := recover()
				if tt.wantPanic && recovered == nil {
					t.Error("expected a configuration panic")
				}
				if !tt.wantPanic && recovered != nil {
					t.Errorf("unexpected panic: %v", recovered)
				}
			}()
			tt.cfg.validate("ListView")
		})
	}
}

package main

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	_ "embed"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

// CatalogItem is one entry in the demo feed.
type CatalogItem struct {
	ID       string `yaml:"-"`
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
	Category string `yaml:"category"`
}

// Catalog serves pages of demo items with artificial latency, standing in
// for a remote API. A fail flag lets the UI demonstrate the error and retry
// flow on demand.
type Catalog struct {
	items    []CatalogItem
	latency  time.Duration
	failNext atomic.Bool
}

var errCatalogUnavailable = errors.New("catalog unavailable, try again")

func LoadCatalog() (*Catalog, error) {
	var doc struct {
		Items []CatalogItem `yaml:"items"`
	}
	if err := yaml.Unmarshal(catalogYAML, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	for i := range doc.Items {
		doc.Items[i].ID = uuid.NewString()
	}
	return &Catalog{items: doc.Items, latency: 600 * time.Millisecond}, nil
}

// Len returns the total number of items the catalog can serve.
func (c *Catalog) Len() int {
	return len(c.items)
}

// FailNextPage makes the next Page call return an error.
func (c *Catalog) FailNextPage() {
	c.failNext.Store(true)
}

// Page returns one page of items after the configured latency. Pages past
// the end are empty. Safe to call from the fetch goroutine.
func (c *Catalog) Page(ctx context.Context, pageIndex, pageSize int) ([]CatalogItem, error) {
	select {
	case <-time.After(c.latency):
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	if c.failNext.CompareAndSwap(true, false) {
		return nil, errCatalogUnavailable
	}
	start := pageIndex * pageSize
	if start >= len(c.items) {
		return nil, nil
	}
	end := start + pageSize
	if end > len(c.items) {
		end = len(c.items)
	}
	page := make([]CatalogItem, end-start)
	copy(page, c.items[start:end])
	return page, nil
}

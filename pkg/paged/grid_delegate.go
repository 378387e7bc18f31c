package paged

import (
	"fmt"
	"math"
)

// GridDelegate shapes a paged grid: given the available cross-axis width it
// decides the column count and tile size. Two implementations cover the
// common cases; custom delegates are possible but rarely needed.
type GridDelegate interface {
	layoutFor(crossAxisExtent float64) gridLayout
}

// gridLayout is the resolved geometry for one build pass.
type gridLayout struct {
	columns          int
	tileWidth        float64
	tileHeight       float64
	mainAxisSpacing  float64
	crossAxisSpacing float64
}

// GridDelegateWithFixedCrossAxisCount lays tiles out in a fixed number of
// columns, splitting the available width evenly.
type GridDelegateWithFixedCrossAxisCount struct {
	// CrossAxisCount is the number of columns. Must be positive.
	CrossAxisCount int
	// MainAxisSpacing is the gap between rows.
	MainAxisSpacing float64
	// CrossAxisSpacing is the gap between columns.
	CrossAxisSpacing float64
	// ChildAspectRatio is tile width divided by tile height.
	// Defaults to 1 (square tiles).
	ChildAspectRatio float64
}

func (d GridDelegateWithFixedCrossAxisCount) layoutFor(crossAxisExtent float64) gridLayout {
	if d.CrossAxisCount <= 0 {
		panic(fmt.Sprintf(
			"paged: GridDelegateWithFixedCrossAxisCount has CrossAxisCount %d.\n\n"+
				"The column count must be positive.", d.CrossAxisCount))
	}
	return resolveGrid(crossAxisExtent, d.CrossAxisCount, d.MainAxisSpacing, d.CrossAxisSpacing, d.ChildAspectRatio)
}

// GridDelegateWithMaxCrossAxisExtent lays tiles out in as many columns as
// fit with each tile at most MaxCrossAxisExtent wide. The tile width grows
// to fill the row, so grids adapt to any screen width.
type GridDelegateWithMaxCrossAxisExtent struct {
	// MaxCrossAxisExtent is the maximum tile width. Must be positive.
	MaxCrossAxisExtent float64
	// MainAxisSpacing is the gap between rows.
	MainAxisSpacing float64
	// CrossAxisSpacing is the gap between columns.
	CrossAxisSpacing float64
	// ChildAspectRatio is tile width divided by tile height.
	// Defaults to 1 (square tiles).
	ChildAspectRatio float64
}

func (d GridDelegateWithMaxCrossAxisExtent) layoutFor(crossAxisExtent float64) gridLayout {
	if d.MaxCrossAxisExtent <= 0 {
		panic(fmt.Sprintf(
			"paged: GridDelegateWithMaxCrossAxisExtent has MaxCrossAxisExtent %v.\n\n"+
				"The maximum tile width must be positive.", d.MaxCrossAxisExtent))
	}
	columns := int(math.Ceil((crossAxisExtent + d.CrossAxisSpacing) / (d.MaxCrossAxisExtent + d.CrossAxisSpacing)))
	if columns < 1 {
		columns = 1
	}
	return resolveGrid(crossAxisExtent, columns, d.MainAxisSpacing, d.CrossAxisSpacing, d.ChildAspectRatio)
}

func resolveGrid(crossAxisExtent float64, columns int, mainSpacing, crossSpacing, aspectRatio float64) gridLayout {
	if aspectRatio <= 0 {
		aspectRatio = 1
	}
	tileWidth := (crossAxisExtent - crossSpacing*float64(columns-1)) / float64(columns)
	if tileWidth < 0 {
		tileWidth = 0
	}
	return gridLayout{
		columns:          columns,
		tileWidth:        tileWidth,
		tileHeight:       tileWidth / aspectRatio,
		mainAxisSpacing:  mainSpacing,
		crossAxisSpacing: crossSpacing,
	}
}

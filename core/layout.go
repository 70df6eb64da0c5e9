package core

// Layout constants for synthesised node positions: five columns, 150 units
// apart, offset 100 from the origin.
const (
	LayoutColumns = 5
	LayoutSpacing = 150
	LayoutOffset  = 100
)

// GridPosition returns the canvas position of the i-th synthesised node
// (column i mod 5, row i div 5).
func GridPosition(i int) (x, y float64) {
	x = float64((i%LayoutColumns)*LayoutSpacing + LayoutOffset)
	y = float64((i/LayoutColumns)*LayoutSpacing + LayoutOffset)

	return x, y
}

package tui

import "time"

// UI Layout Constants

const (
	// Modal Dimensions
	ModalWidthMargin  = 10 // Horizontal margin for the help overlay (m.width - 10)
	ModalHeightMargin = 4  // Vertical margin for the help overlay (m.height - 4)

	// Main view rows outside the table body
	HeaderLines    = 3 // Controls + filter line + blank
	TableHeadLines = 2 // Column titles + rule
	StatusBarLines = 1

	// Column widths (cells, before the email column takes the rest)
	ColumnFirstWidth   = 14
	ColumnLastWidth    = 16
	ColumnCountryWidth = 18
	ColumnMinEmail     = 20
	ColumnGap          = 2

	// Page step when the table height is unknown
	DefaultPageSize = 10

	// Status messages clear after this long
	StatusTimeout = 3 * time.Second

	// Filter input limits
	FilterCharLimit = 64
	FilterWidth     = 30
)

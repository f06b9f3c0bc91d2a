package tui

import "sync"

// RowCursor tracks the selected row and scroll offset of the table with
// thread safety
type RowCursor struct {
	mu sync.RWMutex

	index  int // Selected row in the derived list
	offset int // First visible row
	count  int // Rows in the derived list
}

// NewRowCursor creates a cursor over an empty table
func NewRowCursor() *RowCursor {
	return &RowCursor{}
}

// Index returns the selected row (meaningless when Count is 0)
func (c *RowCursor) Index() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.index
}

// Offset returns the first visible row
func (c *RowCursor) Offset() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.offset
}

// Count returns the number of rows the cursor moves over
func (c *RowCursor) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.count
}

// SetCount updates the row count after the derived list changed, keeping
// the selection in bounds
func (c *RowCursor) SetCount(count, pageSize int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.count = count
	if c.index >= count {
		c.index = count - 1
	}
	if c.index < 0 {
		c.index = 0
	}
	c.adjustScrollOffsetLocked(pageSize)
}

// Move moves the selection by delta rows, stopping at either end
func (c *RowCursor) Move(delta, pageSize int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.count == 0 {
		return
	}

	c.index += delta
	if c.index < 0 {
		c.index = 0
	} else if c.index >= c.count {
		c.index = c.count - 1
	}

	c.adjustScrollOffsetLocked(pageSize)
}

// Top selects the first row
func (c *RowCursor) Top(pageSize int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.index = 0
	c.adjustScrollOffsetLocked(pageSize)
}

// Bottom selects the last row
func (c *RowCursor) Bottom(pageSize int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.count > 0 {
		c.index = c.count - 1
	}
	c.adjustScrollOffsetLocked(pageSize)
}

// adjustScrollOffsetLocked keeps the selection visible (must be called with lock held)
func (c *RowCursor) adjustScrollOffsetLocked(pageSize int) {
	if pageSize < 1 {
		pageSize = 1
	}
	if c.index < c.offset {
		c.offset = c.index
	} else if c.index >= c.offset+pageSize {
		c.offset = c.index - pageSize + 1
	}

	// Don't leave blank rows under the last one
	if maxOffset := c.count - pageSize; c.offset > maxOffset {
		c.offset = maxOffset
	}
	if c.offset < 0 {
		c.offset = 0
	}
}

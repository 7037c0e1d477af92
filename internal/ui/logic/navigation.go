package logic

// Navigator handles cursor movement and viewport management over the
// currently visible (post-filter) row set.
type Navigator struct {
	selectedIndex  int
	viewportOffset int
	viewportHeight int
	totalRows      int
}

// NewNavigator creates a new navigator
func NewNavigator() *Navigator {
	return &Navigator{}
}

// UpdateState updates the navigator's state
func (n *Navigator) UpdateState(selectedIndex, viewportOffset, viewportHeight, totalRows int) {
	n.selectedIndex = selectedIndex
	n.viewportOffset = viewportOffset
	n.viewportHeight = viewportHeight
	n.totalRows = totalRows
	n.clamp()
	n.ensureSelectedVisible()
}

// GetSelectedIndex returns the current selected index
func (n *Navigator) GetSelectedIndex() int {
	return n.selectedIndex
}

// GetViewportOffset returns the current viewport offset
func (n *Navigator) GetViewportOffset() int {
	return n.viewportOffset
}

// Move shifts the cursor by delta rows, clamped to the visible set.
func (n *Navigator) Move(delta int) (int, int) {
	n.selectedIndex += delta
	n.clamp()
	n.ensureSelectedVisible()
	return n.selectedIndex, n.viewportOffset
}

// SetSelectedIndex sets the selected index and ensures it's visible
func (n *Navigator) SetSelectedIndex(index int) (int, int) {
	n.selectedIndex = index
	n.clamp()
	n.ensureSelectedVisible()
	return n.selectedIndex, n.viewportOffset
}

// JumpToTop moves the cursor to the first visible row.
func (n *Navigator) JumpToTop() (int, int) {
	return n.SetSelectedIndex(0)
}

// JumpToBottom moves the cursor to the last visible row.
func (n *Navigator) JumpToBottom() (int, int) {
	return n.SetSelectedIndex(n.totalRows - 1)
}

// PageUp moves the cursor up by one viewport height.
func (n *Navigator) PageUp() (int, int) {
	return n.Move(-n.pageSize())
}

// PageDown moves the cursor down by one viewport height.
func (n *Navigator) PageDown() (int, int) {
	return n.Move(n.pageSize())
}

func (n *Navigator) pageSize() int {
	if n.viewportHeight > 1 {
		return n.viewportHeight - 1
	}
	return 1
}

func (n *Navigator) clamp() {
	if n.selectedIndex >= n.totalRows {
		n.selectedIndex = n.totalRows - 1
	}
	if n.selectedIndex < 0 {
		n.selectedIndex = 0
	}
}

// ensureSelectedVisible adjusts the viewport to keep the selected row visible
func (n *Navigator) ensureSelectedVisible() {
	if n.viewportHeight <= 0 {
		n.viewportOffset = 0
		return
	}

	// Selected row above the viewport: scroll up
	if n.selectedIndex < n.viewportOffset {
		n.viewportOffset = n.selectedIndex
	}

	// Selected row below the viewport: scroll down
	if n.selectedIndex >= n.viewportOffset+n.viewportHeight {
		n.viewportOffset = n.selectedIndex - n.viewportHeight + 1
	}

	// Final validation: ensure viewport doesn't exceed bounds
	maxOffset := n.totalRows - n.viewportHeight
	if maxOffset < 0 {
		maxOffset = 0
	}
	if n.viewportOffset > maxOffset {
		n.viewportOffset = maxOffset
	}
	if n.viewportOffset < 0 {
		n.viewportOffset = 0
	}
}

package logic

// Navigator handles cursor and viewport math over a list of cards
type Navigator struct {
	selectedIndex  int
	viewportOffset int
	viewportHeight int // cards that fit on screen
	total          int
}

// NewNavigator creates a new navigator
func NewNavigator() *Navigator {
	return &Navigator{viewportHeight: 1}
}

// UpdateState updates the navigator's state
func (n *Navigator) UpdateState(selectedIndex, viewportOffset, viewportHeight, total int) {
	n.selectedIndex = selectedIndex
	n.viewportOffset = viewportOffset
	n.viewportHeight = viewportHeight
	n.total = total
	if n.viewportHeight < 1 {
		n.viewportHeight = 1
	}
}

// GetMaxIndex returns the maximum selectable index, -1 for an empty list
func (n *Navigator) GetMaxIndex() int {
	return n.total - 1
}

// SetSelectedIndex clamps index to the list, scrolls it into view and
// returns the new selection and offset
func (n *Navigator) SetSelectedIndex(index int) (int, int) {
	if index > n.GetMaxIndex() {
		index = n.GetMaxIndex()
	}
	if index < 0 {
		index = 0
	}
	n.selectedIndex = index
	n.ensureSelectedVisible()
	return n.selectedIndex, n.viewportOffset
}

// Move shifts the selection by delta cards
func (n *Navigator) Move(delta int) (int, int) {
	return n.SetSelectedIndex(n.selectedIndex + delta)
}

// Page shifts the selection by one screen; pages is negative to go up
func (n *Navigator) Page(pages int) (int, int) {
	return n.Move(pages * n.viewportHeight)
}

// EnsureSelectedVisible adjusts the viewport to keep the selected card on screen
func (n *Navigator) ensureSelectedVisible() {
	// If selected item is above viewport, scroll up
	if n.selectedIndex < n.viewportOffset {
		n.viewportOffset = n.selectedIndex
	}

	// If selected item is below viewport, scroll down
	if n.selectedIndex >= n.viewportOffset+n.viewportHeight {
		n.viewportOffset = n.selectedIndex - n.viewportHeight + 1
	}

	// Never leave blank space below the last card
	maxPossibleOffset := n.total - n.viewportHeight
	if maxPossibleOffset < 0 {
		maxPossibleOffset = 0
	}
	if n.viewportOffset > maxPossibleOffset {
		n.viewportOffset = maxPossibleOffset
	}
	if n.viewportOffset < 0 {
		n.viewportOffset = 0
	}
}

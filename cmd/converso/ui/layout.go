package ui

// Fixed geometry of the chat screen, in terminal cells.
const (
	// HeaderHeight is the title line plus the divider under it.
	HeaderHeight = 2
	// FooterHeight is the single hint line.
	FooterHeight = 1
	// InputRowHeight is the one-line input inside its border.
	InputRowHeight = 3
	// SendButtonWidth is the width of the send button block.
	SendButtonWidth = 5
	// InputGap separates the capsule from the send button.
	InputGap = 1
	// bubbleChrome is border plus padding on both sides of a bubble.
	bubbleChrome = 4
)

// ListHeight returns the height left for the message list.
func ListHeight(totalHeight int) int {
	h := totalHeight - HeaderHeight - InputRowHeight - FooterHeight
	if h < 1 {
		return 1
	}
	return h
}

// InputWidth returns the inner width of the text input for a screen width.
func InputWidth(totalWidth int) int {
	// capsule border (2) + capsule padding (2)
	w := totalWidth - SendButtonWidth - InputGap - 4
	if w < 1 {
		return 1
	}
	return w
}

// SendButtonHit reports whether the cell (x, y) lies on the send button for a
// screen of the given size.
func SendButtonHit(x, y, totalWidth, totalHeight int) bool {
	top := HeaderHeight + ListHeight(totalHeight)
	left := totalWidth - SendButtonWidth
	return y >= top && y < top+InputRowHeight && x >= left && x < totalWidth
}

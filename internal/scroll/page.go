package scroll

// Page turns mouse wheel notches into a vertical page offset, the way a
// browser scrolls a document of fixed height.
type Page struct {
	offset   float64
	height   float64
	perNotch float64
}

// NewPage creates a page of the given scrollable height. Non-positive
// values fall back to one notch of 100 pixels and a height of 0.
func NewPage(height, pixelsPerNotch float64) *Page {
	if !(height > 0) {
		height = 0
	}
	if !(pixelsPerNotch > 0) {
		pixelsPerNotch = 100
	}
	return &Page{height: height, perNotch: pixelsPerNotch}
}

// Wheel applies wheel movement. Positive notches scroll toward the top, as
// SDL reports them. It returns the new offset and whether it changed; a
// browser fires no scroll event when the offset stays put.
func (p *Page) Wheel(notches float64) (offset float64, moved bool) {
	next := p.offset - notches*p.perNotch
	next = min(max(next, 0), p.height)
	if next == p.offset {
		return p.offset, false
	}
	p.offset = next
	return p.offset, true
}

// Offset returns the current offset.
func (p *Page) Offset() float64 {
	return p.offset
}

// Height returns the scrollable height.
func (p *Page) Height() float64 {
	return p.height
}

// Package element holds the visual flags shared by the clickable and
// displayable parts of the screen.
package element

// Element carries an active marker and a visibility flag. The zero value is
// inactive and hidden.
type Element struct {
	active  bool
	visible bool
}

// New returns an element with the given initial flags.
func New(active, visible bool) Element {
	return Element{active: active, visible: visible}
}

func (e *Element) SetActive(active bool)   { e.active = active }
func (e *Element) SetVisible(visible bool) { e.visible = visible }
func (e *Element) IsActive() bool          { return e.active }
func (e *Element) IsVisible() bool         { return e.visible }

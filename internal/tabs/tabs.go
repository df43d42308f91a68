// Package tabs implements the two-tab toggle used by the provisioning screen:
// selecting a trigger shows its panel, hides the other one and moves the
// active marker.
package tabs

import (
	"errors"
	"fmt"
)

// Tab identifies one of the two tabs.
type Tab int

const (
	TabMnemonic Tab = iota
	TabHex
)

func (t Tab) String() string {
	switch t {
	case TabMnemonic:
		return "mnemonic"
	case TabHex:
		return "hex"
	default:
		return "unknown"
	}
}

// Other returns the opposite tab.
func (t Tab) Other() Tab {
	if t == TabMnemonic {
		return TabHex
	}
	return TabMnemonic
}

// TriggerSelector returns the selector under which the trigger of t is resolved.
func TriggerSelector(t Tab) string { return "trigger:" + t.String() }

// PanelSelector returns the selector under which the panel of t is resolved.
func PanelSelector(t Tab) string { return "panel:" + t.String() }

// Element is a node of the document the controller mutates.
// Triggers only see SetActive, panels only see SetVisible.
type Element interface {
	SetActive(active bool)
	SetVisible(visible bool)
}

// Document resolves elements by selector.
type Document interface {
	Lookup(selector string) (Element, bool)
}

// ErrResolution is returned when a required element is not in the document.
var ErrResolution = errors.New("element not found")

// ResolutionError names the selector that could not be resolved.
type ResolutionError struct {
	Selector string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("resolve %q: %v", e.Selector, ErrResolution)
}

func (e *ResolutionError) Unwrap() error { return ErrResolution }

// State is the desired rendering of the toggle.
type State struct {
	Active Tab
}

// Select returns the state produced by clicking the trigger of tab.
func Select(tab Tab) State {
	return State{Active: tab}
}

// Controller holds the four resolved elements.
type Controller struct {
	triggers [2]Element
	panels   [2]Element
}

// New resolves both triggers and both panels from doc.
// It fails on the first missing element.
func New(doc Document) (*Controller, error) {
	c := &Controller{}
	for _, t := range []Tab{TabMnemonic, TabHex} {
		trigger, ok := doc.Lookup(TriggerSelector(t))
		if !ok {
			return nil, &ResolutionError{Selector: TriggerSelector(t)}
		}
		panel, ok := doc.Lookup(PanelSelector(t))
		if !ok {
			return nil, &ResolutionError{Selector: PanelSelector(t)}
		}
		c.triggers[t] = trigger
		c.panels[t] = panel
	}
	return c, nil
}

// Click is the reaction to a click on the trigger of tab.
func (c *Controller) Click(tab Tab) {
	c.Apply(Select(tab))
}

// Apply pushes s to the elements. The inactive side is cleared first.
func (c *Controller) Apply(s State) {
	if s.Active != TabMnemonic && s.Active != TabHex {
		return
	}
	off := s.Active.Other()

	c.triggers[off].SetActive(false)
	c.triggers[s.Active].SetActive(true)

	c.panels[off].SetVisible(false)
	c.panels[s.Active].SetVisible(true)
}

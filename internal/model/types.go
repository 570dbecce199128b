// Package model defines core data structures for ratcycle.
package model

import "strings"

// Device is a controllable mouse reported by the device tool.
type Device struct {
	// ID is the handle passed back to the tool (e.g. "mouse0").
	ID string `json:"id"`
	// Description is the free text after the first colon of the listing.
	Description string `json:"description,omitempty"`
}

// String returns the device handle.
func (d Device) String() string {
	return d.ID
}

// ParseDevice splits a "<deviceId>:<description>" listing line. ok is false
// for lines that carry no device handle.
func ParseDevice(line string) (Device, bool) {
	id, desc, _ := strings.Cut(line, ":")
	id = strings.TrimSpace(id)
	if id == "" {
		return Device{}, false
	}
	return Device{ID: id, Description: strings.TrimSpace(desc)}, true
}

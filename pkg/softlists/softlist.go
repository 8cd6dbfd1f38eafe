// Package softlists models software lists: named collections of software
// items (cartridges, discs, tapes) that can be mounted into a system.
//
// Like the driver registry, the software-list registry is an external
// collaborator. The favorites store uses it only to resolve the long name
// of a software item's parent.
package softlists

import (
	"fmt"
	"strings"
)

// SupportStatus describes how well a software item works.
type SupportStatus int

const (
	// Supported software works as expected.
	Supported SupportStatus = iota
	// PartiallySupported software runs with known problems.
	PartiallySupported
	// Unsupported software does not work.
	Unsupported
)

// String returns the persisted spelling of the status.
func (s SupportStatus) String() string {
	switch s {
	case Supported:
		return "yes"
	case PartiallySupported:
		return "partial"
	case Unsupported:
		return "no"
	default:
		return fmt.Sprintf("SupportStatus(%d)", int(s))
	}
}

// Valid reports whether s is one of the known statuses.
func (s SupportStatus) Valid() bool {
	return s >= Supported && s <= Unsupported
}

// MarshalText implements encoding.TextMarshaler.
func (s SupportStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *SupportStatus) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "", "yes", "supported":
		*s = Supported
	case "partial", "partially_supported":
		*s = PartiallySupported
	case "no", "unsupported":
		*s = Unsupported
	default:
		return fmt.Errorf("unknown support status %q", string(text))
	}
	return nil
}

// Part is one mountable piece of a software item.
type Part struct {
	Name      string `json:"name" yaml:"name"`
	Interface string `json:"interface" yaml:"interface"`
}

// Software is an item in a software list.
type Software struct {
	ShortName string        `json:"name" yaml:"name"`
	LongName  string        `json:"description" yaml:"description"`
	Parent    string        `json:"parent,omitempty" yaml:"parent,omitempty"`
	Year      string        `json:"year,omitempty" yaml:"year,omitempty"`
	Publisher string        `json:"publisher,omitempty" yaml:"publisher,omitempty"`
	Supported SupportStatus `json:"supported" yaml:"supported"`
	Parts     []Part        `json:"parts,omitempty" yaml:"parts,omitempty"`
}

// FindPart returns the part with the given name.
func (s *Software) FindPart(name string) (*Part, bool) {
	for i := range s.Parts {
		if s.Parts[i].Name == name {
			return &s.Parts[i], true
		}
	}
	return nil, false
}

// List is a named software list.
type List struct {
	Name        string     `json:"name" yaml:"name"`
	Description string     `json:"description,omitempty" yaml:"description,omitempty"`
	Software    []Software `json:"software" yaml:"software"`
}

// Registry enumerates the software lists known to the front-end.
type Registry interface {
	// Entries returns the items of the named list.
	Entries(list string) ([]Software, bool)
}

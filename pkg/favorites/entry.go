// Package favorites keeps the user's favorite systems and software items.
//
// A Store holds an ordered set of entries keyed by (start empty, list,
// short name, driver). System favorites are "start empty" placeholders that
// carry only their driver; software favorites carry a list and item name.
// Every add or remove rewrites favorites.ini in the UI directory, and a
// lazily sorted copy of the set serves presentation order.
//
// Store is not safe for concurrent use.
package favorites

import (
	"strings"

	"github.com/agentstation/marquee/pkg/constants"
	"github.com/agentstation/marquee/pkg/drivers"
	"github.com/agentstation/marquee/pkg/softlists"
)

// Entry is one favorite system or software item.
type Entry struct {
	ShortName      string                  `json:"short_name" yaml:"short_name"`
	LongName       string                  `json:"long_name" yaml:"long_name"`
	ParentName     string                  `json:"parent,omitempty" yaml:"parent,omitempty"`
	ParentLongName string                  `json:"parent_long_name,omitempty" yaml:"parent_long_name,omitempty"`
	Year           string                  `json:"year,omitempty" yaml:"year,omitempty"`
	Publisher      string                  `json:"publisher,omitempty" yaml:"publisher,omitempty"`
	Support        softlists.SupportStatus `json:"support" yaml:"support"`
	Part           string                  `json:"part,omitempty" yaml:"part,omitempty"`
	DriverName     string                  `json:"driver" yaml:"driver"`
	Driver         *drivers.Driver         `json:"-" yaml:"-"`
	ListName       string                  `json:"list,omitempty" yaml:"list,omitempty"`
	Interface      string                  `json:"interface,omitempty" yaml:"interface,omitempty"`
	Instance       string                  `json:"instance,omitempty" yaml:"instance,omitempty"`
	DeviceType     string                  `json:"device_type,omitempty" yaml:"device_type,omitempty"`
	StartEmpty     bool                    `json:"start_empty" yaml:"start_empty"`
	Available      bool                    `json:"available" yaml:"available"`
	InfoText       string                  `json:"-" yaml:"-"`
}

// NewSystemEntry returns the favorite for running d with nothing mounted.
func NewSystemEntry(d *drivers.Driver) Entry {
	e := Entry{
		ShortName:  d.Name,
		LongName:   d.FullName,
		ParentName: d.Parent,
		Year:       d.Year,
		Publisher:  d.Manufacturer,
		Support:    softlists.Supported,
		DriverName: d.Name,
		Driver:     d,
		StartEmpty: true,
	}
	e.InfoText = infoText(&e)
	return e
}

// NewSoftwareEntry returns the favorite for running sw's part on d.
// The parent long name is left for the caller to resolve.
func NewSoftwareEntry(sw softlists.Software, part softlists.Part, d *drivers.Driver, list, instance, deviceType string) Entry {
	e := Entry{
		ShortName:  sw.ShortName,
		LongName:   sw.LongName,
		ParentName: sw.Parent,
		Year:       sw.Year,
		Publisher:  sw.Publisher,
		Support:    sw.Supported,
		Part:       part.Name,
		DriverName: d.Name,
		Driver:     d,
		ListName:   list,
		Interface:  part.Interface,
		Instance:   instance,
		DeviceType: deviceType,
	}
	e.InfoText = infoText(&e)
	return e
}

// IsSystem reports whether e is a system-level favorite.
func (e *Entry) IsSystem() bool {
	return e.ListName == ""
}

// DriverDisplayName is the driver's full name, falling back to its short name.
func (e *Entry) DriverDisplayName() string {
	if e.Driver != nil {
		return e.Driver.DisplayName()
	}
	return e.DriverName
}

func infoText(e *Entry) string {
	var b strings.Builder
	b.WriteString(e.LongName)
	b.WriteByte('\n')
	b.WriteString(constants.SoftwareInfoLabel)
	b.WriteByte('\n')
	b.WriteString(e.ListName)
	b.WriteByte(':')
	b.WriteString(e.ShortName)
	return b.String()
}

// Package drivers describes emulated system definitions ("drivers") and the
// registry used to resolve them by short name.
//
// The registry is an external collaborator of the category and favorites
// subsystems: they only ever call Find and read a driver's display name.
// Catalog is an in-memory implementation backed by a YAML file.
package drivers

// Driver is an emulated system definition.
type Driver struct {
	Name         string `json:"name" yaml:"name"`                                       // Short name, e.g. "pacman"
	FullName     string `json:"full_name" yaml:"full_name"`                             // Display name, e.g. "Pac-Man (Midway)"
	Parent       string `json:"parent,omitempty" yaml:"parent,omitempty"`               // Parent short name for clones
	Year         string `json:"year,omitempty" yaml:"year,omitempty"`                   // Release year, free text ("1980", "198?")
	Manufacturer string `json:"manufacturer,omitempty" yaml:"manufacturer,omitempty"` // Manufacturer or publisher
}

// DisplayName returns the full name, or the short name when none is set.
func (d *Driver) DisplayName() string {
	if d.FullName != "" {
		return d.FullName
	}
	return d.Name
}

// IsClone reports whether the driver has a parent.
func (d *Driver) IsClone() bool {
	return d.Parent != ""
}

// Registry resolves drivers by short name.
type Registry interface {
	// Find returns the driver with the given short name.
	Find(name string) (*Driver, bool)
}

// RegistryFunc allows functions to implement Registry.
type RegistryFunc func(name string) (*Driver, bool)

// Find implements Registry.
func (f RegistryFunc) Find(name string) (*Driver, bool) {
	return f(name)
}

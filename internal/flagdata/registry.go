package flagdata

import (
	"errors"
	"fmt"
)

// UnknownLabel is returned by Label for identifiers with no description.
const UnknownLabel = "Unknown flag"

// minFlags is the smallest set that can fill a round of three options.
const minFlags = 3

// Registry holds the loaded flags in file order and indexes them by ID.
type Registry struct {
	flags []Flag
	byID  map[string]*Flag
}

// NewRegistry builds a registry, rejecting empty or duplicate IDs.
func NewRegistry(flags []Flag) (*Registry, error) {
	if len(flags) < minFlags {
		return nil, fmt.Errorf("need at least %d flags, got %d", minFlags, len(flags))
	}

	r := &Registry{
		flags: flags,
		byID:  make(map[string]*Flag, len(flags)),
	}
	for i := range flags {
		id := flags[i].ID
		if id == "" {
			return nil, fmt.Errorf("flag %d has no id", i)
		}
		if _, dup := r.byID[id]; dup {
			return nil, fmt.Errorf("duplicate flag id %q", id)
		}
		r.byID[id] = &r.flags[i]
	}
	return r, nil
}

// LoadRegistry loads and creates a registry from the embedded flags.json.
func LoadRegistry() (*Registry, error) {
	flags, err := LoadFlags()
	if err != nil {
		return nil, err
	}
	if len(flags) == 0 {
		return nil, errors.New("no flags loaded from flags.json")
	}
	return NewRegistry(flags)
}

// MustLoadRegistry loads a registry, panicking on error.
func MustLoadRegistry() *Registry {
	r, err := LoadRegistry()
	if err != nil {
		panic(err)
	}
	return r
}

// IDs returns the country identifiers in file order.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.flags))
	for i := range r.flags {
		ids[i] = r.flags[i].ID
	}
	return ids
}

// Get returns the flag with the given ID, or nil if not found.
func (r *Registry) Get(id string) *Flag {
	return r.byID[id]
}

// Name returns the display name for id, falling back to the id itself.
func (r *Registry) Name(id string) string {
	if f := r.byID[id]; f != nil && f.Name != "" {
		return f.Name
	}
	return id
}

// Label returns the accessibility description for id, or UnknownLabel.
func (r *Registry) Label(id string) string {
	if f := r.byID[id]; f != nil && f.Label != "" {
		return f.Label
	}
	return UnknownLabel
}

// Count returns the number of flags in the registry.
func (r *Registry) Count() int {
	return len(r.flags)
}

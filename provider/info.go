// Package provider defines the identity value objects for external gallery providers.
package provider

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"golang.org/x/exp/slices"
)

// Info describes a provider: its normalized name, the ordered set of
// capabilities it supports and an optional human-readable description.
// One Info instance is owned by each provider implementation and exposed
// read-only for its whole lifetime.
type Info struct {
	name          Name
	description   mo.Option[string]
	capabilities  []Capability
	capabilitySet map[Capability]struct{}
}

// NewInfo validates and assembles provider info. The capability order is
// preserved for serialization; membership queries use a set.
func NewInfo(name Name, capabilities []Capability, description mo.Option[string]) (Info, error) {
	if name.IsZero() || strings.TrimSpace(name.String()) == "" {
		return Info{}, ErrInfoEmptyName
	}
	if len(capabilities) == 0 {
		return Info{}, ErrInfoNoCapabilities
	}
	for _, c := range capabilities {
		if !c.Valid() {
			return Info{}, ErrInfoInvalidCapability.Because(fmt.Errorf("capability %q", string(c)))
		}
	}

	return Info{
		name:         name,
		description:  description,
		capabilities: slices.Clone(capabilities),
		capabilitySet: lo.SliceToMap(capabilities, func(c Capability) (Capability, struct{}) {
			return c, struct{}{}
		}),
	}, nil
}

// Name returns the provider's normalized name.
func (i Info) Name() Name {
	return i.name
}

// Description returns the optional human-readable description.
func (i Info) Description() mo.Option[string] {
	return i.description
}

// Capabilities returns the supported capabilities in declaration order.
func (i Info) Capabilities() []Capability {
	return slices.Clone(i.capabilities)
}

// HasCapability reports whether the provider supports the capability. O(1).
func (i Info) HasCapability(c Capability) bool {
	_, ok := i.capabilitySet[c]
	return ok
}

// IsZero reports whether the info was never constructed through NewInfo.
func (i Info) IsZero() bool {
	return i.name.IsZero()
}

// Equal compares two infos. Capabilities are compared as sets, matching
// the serialization contract where order carries no meaning for identity.
func (i Info) Equal(other Info) bool {
	if i.name != other.name || i.description != other.description {
		return false
	}
	if len(i.capabilitySet) != len(other.capabilitySet) {
		return false
	}
	for c := range i.capabilitySet {
		if !other.HasCapability(c) {
			return false
		}
	}
	return true
}

func (i Info) String() string {
	caps := lo.Map(i.capabilities, func(c Capability, _ int) string { return c.String() })
	return fmt.Sprintf("Info(name=%s, capabilities=[%s])", i.name, strings.Join(caps, ", "))
}

// infoDocument is the wire shape of provider info.
type infoDocument struct {
	Name         string            `json:"name"`
	Description  mo.Option[string] `json:"description"`
	Capabilities []Capability      `json:"capabilities"`
}

// MarshalJSON encodes the info using its external wire contract.
func (i Info) MarshalJSON() ([]byte, error) {
	return json.Marshal(infoDocument{
		Name:         i.name.String(),
		Description:  i.description,
		Capabilities: i.capabilities,
	})
}

// UnmarshalJSON decodes and re-validates the wire representation.
func (i *Info) UnmarshalJSON(data []byte) error {
	var doc infoDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	name, err := NewName(doc.Name)
	if err != nil {
		return err
	}

	info, err := NewInfo(name, doc.Capabilities, doc.Description)
	if err != nil {
		return err
	}

	*i = info
	return nil
}

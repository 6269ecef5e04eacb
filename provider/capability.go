// Package provider defines the identity value objects for external gallery providers.
package provider

import "encoding/json"

// Capability enumerates the operation kinds a provider may support.
// The wire strings are part of the external contract.
type Capability string

const (
	CapabilityFetchLatest Capability = "fetch_latest"
	CapabilityFetchByUser Capability = "fetch_by_user"
	CapabilityFetchByTags Capability = "fetch_by_tags"
	CapabilityUpload      Capability = "upload"
)

// Capabilities lists every member of the closed enumeration.
func Capabilities() []Capability {
	return []Capability{
		CapabilityFetchLatest,
		CapabilityFetchByUser,
		CapabilityFetchByTags,
		CapabilityUpload,
	}
}

// Valid reports whether the capability belongs to the closed enumeration.
func (c Capability) Valid() bool {
	switch c {
	case CapabilityFetchLatest, CapabilityFetchByUser, CapabilityFetchByTags, CapabilityUpload:
		return true
	}
	return false
}

func (c Capability) String() string {
	return string(c)
}

// ParseCapability converts a wire string into a Capability.
func ParseCapability(s string) (Capability, error) {
	c := Capability(s)
	if !c.Valid() {
		return "", ErrUnknownCapability
	}
	return c, nil
}

// UnmarshalJSON decodes and validates the wire representation.
func (c *Capability) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	parsed, err := ParseCapability(s)
	if err != nil {
		return err
	}

	*c = parsed
	return nil
}

// Package provider defines the identity value objects for external gallery providers.
package provider

import "github.com/galeriafora-cli/galeriafora/fault"

// Construction failures for provider identity value objects.
var (
	// ErrEmptyName rejects names that are empty or whitespace-only.
	ErrEmptyName = fault.New("provider_name_empty", "provider name cannot be empty or whitespace")

	// ErrNameNormalizesToEmpty rejects names that contain only non-alphanumeric characters.
	ErrNameNormalizesToEmpty = fault.New("provider_name_normalizes_to_empty", "provider name cannot contain only non-alphanumeric characters")

	// ErrUnknownCapability rejects capability values outside the closed enumeration.
	ErrUnknownCapability = fault.New("provider_capability_unknown", "unknown provider capability")

	// ErrInfoEmptyName rejects provider info built on a zero-value name.
	ErrInfoEmptyName = fault.New("provider_info_empty_name", "provider info requires a non-empty name")

	// ErrInfoNoCapabilities rejects provider info without any capabilities.
	ErrInfoNoCapabilities = fault.New("provider_info_no_capabilities", "provider info requires at least one capability")

	// ErrInfoInvalidCapability rejects provider info holding an unrecognized capability.
	ErrInfoInvalidCapability = fault.New("provider_info_invalid_capability", "provider info holds an unrecognized capability")
)

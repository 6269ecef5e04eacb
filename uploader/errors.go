package uploader

import "github.com/galeriafora-cli/galeriafora/fault"

// ErrNilRegistry rejects uploader construction without a registry.
var ErrNilRegistry = fault.New("uploader_nil_registry", "uploader requires a registry")

// Resolution failures carry the operation in their code so callers can
// tell which entry point rejected the request. The capability kind is
// shared: both entry points gate on the same upload capability.
var (
	ErrUploadNoProviders = fault.New("upload_no_providers", "no providers are registered")
	ErrUploadInvalidName = fault.New("upload_invalid_name", "provider name is invalid or unknown")

	ErrUploadToMultipleNoProviders = fault.New("upload_to_multiple_no_providers", "no providers are registered")
	ErrUploadToMultipleInvalidName = fault.New("upload_to_multiple_invalid_name", "provider name is invalid or unknown")

	ErrUploadUnsupported = fault.New("upload_unsupported", "provider does not support uploads")
)

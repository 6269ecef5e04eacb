// Package uploader orchestrates write operations against registered
// gallery providers. Resolution mirrors the fetcher; delivery failures
// after a successful resolution are reported as outcomes, not errors.
package uploader

import (
	"context"

	"github.com/galeriafora-cli/galeriafora/fault"
	"github.com/galeriafora-cli/galeriafora/gallery"
	"github.com/galeriafora-cli/galeriafora/log"
	"github.com/galeriafora-cli/galeriafora/provider"
	"github.com/galeriafora-cli/galeriafora/registry"
)

// Uploader resolves providers by name and delegates uploads to them.
// Construct through New; the zero value is invalid.
type Uploader struct {
	registry gallery.Registry
}

// New constructs an uploader over the given registry.
func New(r gallery.Registry) (*Uploader, error) {
	if r == nil {
		return nil, ErrNilRegistry
	}
	return &Uploader{registry: r}, nil
}

// Upload delivers media to the named provider. Resolution failures
// return an error; a failure during delivery itself is swallowed into
// a false result so batch callers can keep going.
func (u *Uploader) Upload(ctx context.Context, providerName string, media []gallery.Media) (bool, error) {
	p, err := u.resolve(providerName, ErrUploadNoProviders, ErrUploadInvalidName)
	if err != nil {
		return false, err
	}

	if err := p.Upload(ctx, media); err != nil {
		log.Warnf("upload to %s failed: %s", p.Info().Name(), err)
		return false, nil
	}

	return true, nil
}

// UploadToMultiple delivers the same media to several providers in the
// given order. The registry must hold at least one provider before
// anything else is considered. Any resolution failure aborts the whole
// batch before side effects are reported; delivery failures are
// recorded per provider and never stop the batch.
func (u *Uploader) UploadToMultiple(ctx context.Context, media []gallery.Media, providerNames []string) (*Report, error) {
	if len(u.registry.Providers()) == 0 {
		return nil, ErrUploadToMultipleNoProviders
	}

	targets := make([]gallery.Provider, 0, len(providerNames))
	for _, name := range providerNames {
		p, err := u.resolve(name, ErrUploadToMultipleNoProviders, ErrUploadToMultipleInvalidName)
		if err != nil {
			return nil, err
		}
		targets = append(targets, p)
	}

	report := newReport()
	for i, p := range targets {
		name := providerNames[i]

		if err := p.Upload(ctx, media); err != nil {
			log.Warnf("upload to %s failed: %s", p.Info().Name(), err)
			report.record(name, Outcome{Cause: err})
			continue
		}

		report.record(name, Outcome{OK: true})
	}

	return report, nil
}

// resolve runs the shared resolution protocol: empty registry first,
// then name validation and lookup, then the capability check. The
// error kinds carry the calling operation.
func (u *Uploader) resolve(providerName string, errNoProviders, errInvalidName *fault.Error) (gallery.Provider, error) {
	if len(u.registry.Providers()) == 0 {
		return nil, errNoProviders
	}

	p, err := registry.Find(u.registry, providerName)
	if err != nil {
		return nil, errInvalidName.Because(err)
	}

	if !p.Info().HasCapability(provider.CapabilityUpload) {
		return nil, ErrUploadUnsupported
	}

	return p, nil
}

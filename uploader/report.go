package uploader

import (
	"bytes"
	"encoding/json"

	"golang.org/x/exp/slices"
)

// Outcome is the per-provider result of a batch upload. Cause holds the
// delivery failure when OK is false and the provider was reached.
type Outcome struct {
	OK    bool
	Cause error
}

// Report collects batch upload outcomes keyed by the provider name as
// given by the caller, preserving first-seen order. A repeated name
// updates its existing entry in place.
type Report struct {
	names    []string
	outcomes map[string]Outcome
}

func newReport() *Report {
	return &Report{outcomes: map[string]Outcome{}}
}

func (r *Report) record(name string, outcome Outcome) {
	if _, seen := r.outcomes[name]; !seen {
		r.names = append(r.names, name)
	}
	r.outcomes[name] = outcome
}

// Names returns the provider names in first-seen order.
func (r *Report) Names() []string {
	return slices.Clone(r.names)
}

// Outcome returns the recorded outcome for a provider name.
func (r *Report) Outcome(name string) (Outcome, bool) {
	outcome, ok := r.outcomes[name]
	return outcome, ok
}

// Succeeded reports whether the named provider accepted the upload.
func (r *Report) Succeeded(name string) bool {
	return r.outcomes[name].OK
}

// AllSucceeded reports whether every provider accepted the upload.
func (r *Report) AllSucceeded() bool {
	for _, outcome := range r.outcomes {
		if !outcome.OK {
			return false
		}
	}
	return true
}

// Len returns the number of distinct provider names in the report.
func (r *Report) Len() int {
	return len(r.names)
}

// MarshalJSON encodes the report as an object mapping each provider
// name to its success flag, in first-seen order.
func (r *Report) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, name := range r.names {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		value, err := json.Marshal(r.outcomes[name].OK)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// SPDX-License-Identifier: MIT
// Package: sigmakit/compose
//
// request.go — the composer request and its YAML form.

package compose

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/sigmakit/schedule"
	"github.com/katalvlaran/sigmakit/sigma"
)

// Request describes one composed schedule.
//
// Field notes:
//   - EndStep and TotalSteps are optional; see the package doc for how an
//     absent one is derived from the other.
//   - Denoise 0 selects 1.
//   - Precision 0 selects sigma.DefaultPrecision.
//   - Model is only consulted for registered scheduler names. Closed-form
//     families work without it.
type Request struct {
	PadStartValue float64 `yaml:"pad_start_value"`
	StartValue    float64 `yaml:"start_value"`
	EndValue      float64 `yaml:"end_value"`
	PadEndValue   float64 `yaml:"pad_end_value"`

	Scheduler  string       `yaml:"scheduler"`
	Params     FamilyParams `yaml:"params,omitempty"`
	StartStep  int          `yaml:"scheduler_start_step"`
	EndStep    *int         `yaml:"scheduler_end_step,omitempty"`
	TotalSteps *int         `yaml:"total_steps,omitempty"`
	Denoise    float64      `yaml:"denoise,omitempty"`

	FlipSchedule bool            `yaml:"flip_schedule,omitempty"`
	Precision    sigma.Precision `yaml:"precision,omitempty"`
	Target       sigma.Target    `yaml:"execution_target,omitempty"`

	Model schedule.Sampling `yaml:"-"`
}

// FamilyParams is the YAML-facing subset of schedule.Params.
// Zero values select the synthesizer defaults.
type FamilyParams struct {
	Cutoff   float64 `yaml:"cutoff,omitempty"`
	Slope    float64 `yaml:"slope,omitempty"`
	Offset   float64 `yaml:"offset,omitempty"`
	Midpoint int     `yaml:"midpoint,omitempty"`
	Rho      float64 `yaml:"rho,omitempty"`
	KLKind   string  `yaml:"kl_kind,omitempty"`
	Beta     float64 `yaml:"beta,omitempty"`
}

// Step returns a pointer to n, for filling the optional step fields.
func Step(n int) *int { return &n }

// scheduleParams converts p for the synthesizer.
func (p FamilyParams) scheduleParams() (schedule.Params, error) {
	out := schedule.Params{
		Cutoff:   p.Cutoff,
		Slope:    p.Slope,
		Offset:   p.Offset,
		Midpoint: p.Midpoint,
		Rho:      p.Rho,
		Beta:     p.Beta,
	}
	if p.KLKind != "" {
		kind, err := schedule.ParseKLKind(p.KLKind)
		if err != nil {
			return schedule.Params{}, err
		}
		out.KLKind = kind
	}
	return out, nil
}

// LoadRequest reads and validates a YAML request file.
func LoadRequest(path string) (Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Request{}, fmt.Errorf("compose: reading request: %w", err)
	}
	req, err := decodeBytes(data)
	if err != nil {
		return Request{}, fmt.Errorf("%s: %w", path, err)
	}
	return req, nil
}

// DecodeRequest reads a YAML request from r, validates it against the
// request schema and decodes it.
func DecodeRequest(r io.Reader) (Request, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Request{}, fmt.Errorf("compose: reading request: %w", err)
	}
	return decodeBytes(data)
}

func decodeBytes(data []byte) (Request, error) {
	if err := ValidateRequest(data); err != nil {
		return Request{}, err
	}

	var req Request
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return Request{}, fmt.Errorf("%w: empty document", ErrInvalidRequest)
		}
		return Request{}, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	return req, nil
}

// Encode writes r as YAML. Model is never written.
func (r Request) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("compose: encoding request: %w", err)
	}
	return enc.Close()
}

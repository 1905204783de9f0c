// SPDX-License-Identifier: MIT
// Package: sigmakit/compose
//
// schema.go — CUE validation of request documents.

package compose

import (
	_ "embed"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"gopkg.in/yaml.v3"
)

//go:embed request.cue
var requestSchema string

// Schema returns the CUE source the request documents are checked against.
func Schema() string { return requestSchema }

// ValidateRequest checks a YAML request document against the embedded
// #Request definition. The definition is closed, so unknown keys fail too.
func ValidateRequest(data []byte) error {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	if doc == nil {
		doc = map[string]any{}
	}

	ctx := cuecontext.New()
	schema := ctx.CompileString(requestSchema, cue.Filename("request.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compose: compiling request schema: %w", err)
	}
	def := schema.LookupPath(cue.ParsePath("#Request"))

	v := def.Unify(ctx.Encode(doc))
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidRequest, cueerrors.Details(err, nil))
	}
	return nil
}

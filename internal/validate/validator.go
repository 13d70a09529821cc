// Package validate compiles the embedded request schemas once at startup and
// checks inbound payloads against them before they reach the services.
package validate

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/equibridge/backend/internal/apperr"
)

//go:embed schemas/*.json
var schemaFS embed.FS

const (
	SchemaJobPost    = "job_post"
	SchemaQuizSubmit = "quiz_submit"
)

type Validator struct {
	schemas map[string]*jsonschema.Schema
}

// NewValidator compiles every embedded schema. A schema that fails to
// compile is a programming error and aborts startup.
func NewValidator() (*Validator, error) {
	entries, err := fs.ReadDir(schemaFS, "schemas")
	if err != nil {
		return nil, fmt.Errorf("read schemas: %w", err)
	}
	schemas := make(map[string]*jsonschema.Schema, len(entries))
	for _, e := range entries {
		name := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
		data, err := schemaFS.ReadFile("schemas/" + e.Name())
		if err != nil {
			return nil, fmt.Errorf("read schema %q: %w", name, err)
		}
		id := "https://equibridge.dev/schemas/" + name
		schemas[name], err = jsonschema.CompileString(id, string(data))
		if err != nil {
			return nil, fmt.Errorf("compile schema %q: %w", name, err)
		}
	}
	return &Validator{schemas: schemas}, nil
}

// DecodeBody reads a request body once, checks it against the named schema
// and unmarshals it into dst.
func (v *Validator) DecodeBody(r *http.Request, name string, dst any) error {
	var raw json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		return apperr.Invalid("invalid JSON body")
	}
	if err := v.Validate(name, raw); err != nil {
		return err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return apperr.Invalid("invalid JSON body")
	}
	return nil
}

// Validate checks raw against the named schema. Schema violations come back
// as invalid-input errors so handlers map them to 400.
func (v *Validator) Validate(name string, raw json.RawMessage) error {
	schema, ok := v.schemas[name]
	if !ok {
		return fmt.Errorf("unknown schema %q", name)
	}
	var doc interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return apperr.Invalid("invalid JSON body")
	}
	if err := schema.Validate(doc); err != nil {
		return apperr.Invalid(fmt.Sprintf("request does not match schema: %v", err))
	}
	return nil
}

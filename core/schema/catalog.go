// Copyright 2026 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package schema holds the TRS data contract: Go models for every object
// exchanged with a registry, the JSON Schema catalog responses are checked
// against, and validation of outbound payloads.
package schema

import (
	"bytes"
	_ "embed"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Names of the schemas held by the catalog.
const (
	SchemaChecksum    = "Checksum"
	SchemaError       = "Error"
	SchemaFileWrapper = "FileWrapper"
	SchemaImageData   = "ImageData"
	SchemaService     = "Service"
	SchemaTool        = "Tool"
	SchemaToolClass   = "ToolClass"
	SchemaToolFile    = "ToolFile"
	SchemaToolVersion = "ToolVersion"
)

const catalogURL = "https://trs-sdk-go.local/schemas/trs.json"

//go:embed schemas/trs.json
var catalogJSON []byte

var catalogNames = []string{
	SchemaChecksum,
	SchemaError,
	SchemaFileWrapper,
	SchemaImageData,
	SchemaService,
	SchemaTool,
	SchemaToolClass,
	SchemaToolFile,
	SchemaToolVersion,
}

// Catalog validates decoded JSON documents against the TRS response schemas.
// A Catalog is immutable once built and safe for concurrent use.
type Catalog struct {
	schemas map[string]*jsonschema.Schema
}

// NewCatalog compiles the embedded TRS schema catalog.
func NewCatalog() (*Catalog, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(catalogJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema catalog: %w", err)
	}

	c := jsonschema.NewCompiler()
	c.AssertFormat()
	if err := c.AddResource(catalogURL, doc); err != nil {
		return nil, fmt.Errorf("failed to add schema catalog: %w", err)
	}

	schemas := make(map[string]*jsonschema.Schema, len(catalogNames))
	for _, name := range catalogNames {
		sch, err := c.Compile(catalogURL + "#/$defs/" + name)
		if err != nil {
			return nil, fmt.Errorf("failed to compile schema '%s': %w", name, err)
		}
		schemas[name] = sch
	}
	return &Catalog{schemas: schemas}, nil
}

// Validate checks doc against the named schema. doc must be a value produced
// by jsonschema.UnmarshalJSON (numbers as json.Number).
func (c *Catalog) Validate(name string, doc any) error {
	sch, ok := c.schemas[name]
	if !ok {
		return fmt.Errorf("unknown schema '%s'", name)
	}
	if err := sch.Validate(doc); err != nil {
		return fmt.Errorf("document does not conform to schema '%s': %w", name, err)
	}
	return nil
}

// Names returns the schema names known to the catalog.
func (c *Catalog) Names() []string {
	names := make([]string, len(catalogNames))
	copy(names, catalogNames)
	return names
}

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

package schema

import (
	"strings"
	"testing"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDoc(t *testing.T, s string) any {
	t.Helper()
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(s))
	require.NoError(t, err)
	return doc
}

func TestCatalog_Validate(t *testing.T) {
	catalog, err := NewCatalog()
	require.NoError(t, err)

	testCases := []struct {
		name    string
		schema  string
		doc     string
		wantErr bool
	}{
		{"Error with message", SchemaError, `{"code": 404, "message": "not found"}`, false},
		{"Error without message", SchemaError, `{"code": 500}`, false},
		{"Error missing code", SchemaError, `{"message": "oops"}`, true},
		{"Error non-integer code", SchemaError, `{"code": "404"}`, true},
		{"Error unknown field", SchemaError, `{"code": 400, "detail": "x"}`, true},
		{"Tool class", SchemaToolClass, `{"id": "1", "name": "Workflow"}`, false},
		{"Tool file", SchemaToolFile, `{"path": "main.cwl", "file_type": "PRIMARY_DESCRIPTOR"}`, false},
		{"Tool file bad type", SchemaToolFile, `{"path": "main.cwl", "file_type": "SOMETHING"}`, true},
		{"File wrapper", SchemaFileWrapper, `{"content": "cwlVersion: v1.0", "checksum": [{"checksum": "ab", "type": "sha1"}]}`, false},
		{"File wrapper bad checksum", SchemaFileWrapper, `{"checksum": [{"checksum": "ab"}]}`, true},
		{"Tool version missing url", SchemaToolVersion, `{"id": "v1"}`, true},
		{
			"Tool",
			SchemaTool,
			`{"id": "123456", "organization": "org", "url": "https://x.y.z/tools/123456",
			  "toolclass": {"id": "1", "name": "Workflow"},
			  "versions": [{"id": "v1", "url": "https://x.y.z/tools/123456/versions/v1", "descriptor_type": ["CWL"]}]}`,
			false,
		},
		{
			"Service",
			SchemaService,
			`{"id": "org.ga4gh.trs", "name": "TRS", "version": "2.0.0",
			  "createdAt": "2019-06-04T12:58:19Z",
			  "organization": {"name": "ELIXIR", "url": "https://elixir-europe.org"},
			  "type": {"artifact": "trs", "group": "org.ga4gh", "version": "2.0.1"}}`,
			false,
		},
		{
			"Service bad timestamp",
			SchemaService,
			`{"id": "org.ga4gh.trs", "name": "TRS", "version": "2.0.0",
			  "createdAt": "yesterday",
			  "organization": {"name": "ELIXIR", "url": "https://elixir-europe.org"},
			  "type": {"artifact": "trs", "group": "org.ga4gh", "version": "2.0.1"}}`,
			true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := catalog.Validate(tc.schema, mustDoc(t, tc.doc))
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCatalog_UnknownSchema(t *testing.T) {
	catalog, err := NewCatalog()
	require.NoError(t, err)

	err = catalog.Validate("Nope", mustDoc(t, `{}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown schema 'Nope'")
}

func TestCatalog_Names(t *testing.T) {
	catalog, err := NewCatalog()
	require.NoError(t, err)

	names := catalog.Names()
	assert.Contains(t, names, SchemaTool)
	assert.Contains(t, names, SchemaError)

	// The returned slice is a copy.
	names[0] = "mutated"
	assert.NotContains(t, catalog.Names(), "mutated")
}

func strPtr(s string) *string { return &s }

func TestValidatePayload(t *testing.T) {
	cwl := DescriptorCWL
	primary := FileTypePrimaryDescriptor
	bogus := FileType("BOGUS")

	testCases := []struct {
		name    string
		payload any
		errMsg  string
	}{
		{
			name: "Valid tool",
			payload: &ToolRegister{
				Organization: "org",
				ToolClass:    ToolClassRegisterID{Name: strPtr("Workflow")},
				Versions: []ToolVersionRegister{{
					DescriptorType: []DescriptorType{DescriptorCWL},
					Files: []FilesRegister{{
						Type:        &cwl,
						ToolFile:    &ToolFileRegister{Path: strPtr("main.cwl"), FileType: &primary},
						FileWrapper: &FileWrapperRegister{Content: strPtr("cwlVersion: v1.0")},
					}},
				}},
			},
		},
		{
			name:    "Tool missing organization",
			payload: &ToolRegister{Versions: []ToolVersionRegister{}},
			errMsg:  "ToolRegister.Organization is required",
		},
		{
			name:    "Tool missing versions",
			payload: &ToolRegister{Organization: "org"},
			errMsg:  "ToolRegister.Versions is required",
		},
		{
			name: "Bad descriptor type",
			payload: &ToolVersionRegister{
				DescriptorType: []DescriptorType{"COBOL"},
			},
			errMsg: "must be one of",
		},
		{
			name: "Bad file type",
			payload: &ToolVersionRegister{
				Files: []FilesRegister{{ToolFile: &ToolFileRegister{FileType: &bogus}}},
			},
			errMsg: "FileType must be one of",
		},
		{
			name: "Checksum missing type",
			payload: &ToolVersionRegister{
				Images: []ImageDataRegister{{Checksum: []ChecksumRegister{{Checksum: "ab"}}}},
			},
			errMsg: "Type is required",
		},
		{
			name:    "Valid tool class",
			payload: &ToolClassRegister{Name: strPtr("Workflow")},
		},
		{
			name: "Service missing organization url",
			payload: &ServiceRegister{
				ID: "org.ga4gh.trs", Name: "TRS", Version: "2.0.0",
				Organization: Organization{Name: "ELIXIR"},
				Type:         ServiceType{Artifact: "trs", Group: "org.ga4gh", Version: "2.0.1"},
			},
			errMsg: "ServiceRegister.Organization.URL is required",
		},
		{
			name: "Service with contact mail",
			payload: &ServiceRegister{
				ID: "org.ga4gh.trs", Name: "TRS", Version: "2.0.0",
				ContactURL:   strPtr("mailto:support@example.com"),
				Organization: Organization{Name: "ELIXIR", URL: "https://elixir-europe.org"},
				Type:         ServiceType{Artifact: "trs", Group: "org.ga4gh", Version: "2.0.1"},
			},
		},
		{
			name:    "Nil payload",
			payload: nil,
			errMsg:  "payload is nil",
		},
		{
			name:    "Not a struct",
			payload: "tool",
			errMsg:  "invalid payload",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidatePayload(tc.payload)
			if tc.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidPayload)
			assert.Contains(t, err.Error(), tc.errMsg)
		})
	}
}

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

package transport_test

import (
	"errors"
	"testing"

	"github.com/elixir-cloud-aai/trs-sdk-go/core/schema"
	"github.com/elixir-cloud-aai/trs-sdk-go/core/transport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalog(t *testing.T) *schema.Catalog {
	t.Helper()
	c, err := schema.NewCatalog()
	require.NoError(t, err)
	return c
}

func ok(body string) *transport.RawResponse {
	return &transport.RawResponse{StatusCode: 200, Body: []byte(body)}
}

func TestDecode_Object(t *testing.T) {
	catalog := newCatalog(t)

	out, err := transport.Decode(
		ok(`{"id": "1", "name": "Workflow"}`),
		transport.Expectation{Shape: transport.ShapeObject, Schema: schema.SchemaToolClass},
		schema.SchemaError, catalog,
	)
	require.NoError(t, err)
	require.Nil(t, out.ServiceError)

	tc, err := transport.DecodeInto[schema.ToolClass](out)
	require.NoError(t, err)
	require.NotNil(t, tc.Name)
	assert.Equal(t, "Workflow", *tc.Name)
}

func TestDecode_ListPreservesOrder(t *testing.T) {
	catalog := newCatalog(t)

	out, err := transport.Decode(
		ok(`[{"path": "c.cwl"}, {"path": "a.cwl"}, {"path": "b.cwl"}]`),
		transport.Expectation{Shape: transport.ShapeList, Schema: schema.SchemaToolFile},
		schema.SchemaError, catalog,
	)
	require.NoError(t, err)

	files, err := transport.DecodeInto[[]schema.ToolFile](out)
	require.NoError(t, err)
	require.Len(t, files, 3)
	assert.Equal(t, "c.cwl", *files[0].Path)
	assert.Equal(t, "a.cwl", *files[1].Path)
	assert.Equal(t, "b.cwl", *files[2].Path)
}

func TestDecode_String(t *testing.T) {
	testCases := []struct {
		name     string
		body     string
		expected string
	}{
		{"JSON string", `"123456"`, "123456"},
		{"JSON number", `42`, "42"},
		{"JSON object", `{ "id" : "1" }`, `{"id":"1"}`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := transport.Decode(ok(tc.body), transport.Expectation{Shape: transport.ShapeString}, schema.SchemaError, newCatalog(t))
			require.NoError(t, err)
			assert.Equal(t, tc.expected, out.Text)
		})
	}
}

func TestDecode_NoContentAndBytes(t *testing.T) {
	catalog := newCatalog(t)

	out, err := transport.Decode(ok("not json at all"), transport.Expectation{Shape: transport.ShapeNoContent}, schema.SchemaError, catalog)
	require.NoError(t, err)
	assert.Equal(t, &transport.Outcome{}, out)

	out, err = transport.Decode(ok("PK\x03\x04"), transport.Expectation{Shape: transport.ShapeBytes}, schema.SchemaError, catalog)
	require.NoError(t, err)
	assert.Equal(t, []byte("PK\x03\x04"), out.Raw)
}

func TestDecode_InvalidSuccessBody(t *testing.T) {
	testCases := []struct {
		name string
		body string
		want transport.Expectation
	}{
		{"Not JSON", `<html>`, transport.Expectation{Shape: transport.ShapeObject, Schema: schema.SchemaTool}},
		{"Empty body", ``, transport.Expectation{Shape: transport.ShapeObject, Schema: schema.SchemaTool}},
		{"Trailing garbage", `{"id": "1"} x`, transport.Expectation{Shape: transport.ShapeObject, Schema: schema.SchemaToolClass}},
		{"Missing required field", `{"id": "1"}`, transport.Expectation{Shape: transport.ShapeObject, Schema: schema.SchemaToolVersion}},
		{"Object where list expected", `{"path": "a"}`, transport.Expectation{Shape: transport.ShapeList, Schema: schema.SchemaToolFile}},
		{"Bad list element", `[{"path": "a"}, {"path": 1}]`, transport.Expectation{Shape: transport.ShapeList, Schema: schema.SchemaToolFile}},
		{"String not JSON", `plain text`, transport.Expectation{Shape: transport.ShapeString}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := transport.Decode(ok(tc.body), tc.want, schema.SchemaError, newCatalog(t))
			require.Error(t, err)
			assert.Nil(t, out)
			assert.ErrorIs(t, err, transport.ErrInvalidResponse)
		})
	}
}

func TestDecode_ServiceError(t *testing.T) {
	catalog := newCatalog(t)
	want := transport.Expectation{Shape: transport.ShapeObject, Schema: schema.SchemaTool}

	out, err := transport.Decode(
		&transport.RawResponse{StatusCode: 404, Body: []byte(`{"code": 404, "message": "Tool not found"}`)},
		want, schema.SchemaError, catalog,
	)
	require.NoError(t, err)
	require.NotNil(t, out.ServiceError)
	assert.Equal(t, &transport.ServiceError{StatusCode: 404, Code: 404, Message: "Tool not found"}, out.ServiceError)
	assert.Nil(t, out.JSON)

	out, err = transport.Decode(
		&transport.RawResponse{StatusCode: 500, Body: []byte(`{"code": 500}`)},
		want, schema.SchemaError, catalog,
	)
	require.NoError(t, err)
	assert.Equal(t, "Internal Server Error", out.ServiceError.Message)

	_, err = transport.DecodeInto[schema.Tool](out)
	assert.ErrorIs(t, err, transport.ErrInvalidResponse)
}

func TestDecode_InvalidErrorBody(t *testing.T) {
	catalog := newCatalog(t)
	want := transport.Expectation{Shape: transport.ShapeNoContent}

	for _, body := range []string{"Internal Server Error", `{"error": "boom"}`, `{"code": "x"}`} {
		_, err := transport.Decode(&transport.RawResponse{StatusCode: 500, Body: []byte(body)}, want, schema.SchemaError, catalog)
		require.Error(t, err, body)
		assert.ErrorIs(t, err, transport.ErrInvalidResponse)
	}
}

func TestRawResponse_OK(t *testing.T) {
	for code, expected := range map[int]bool{199: false, 200: true, 201: true, 204: true, 299: true, 300: false, 404: false, 500: false} {
		assert.Equal(t, expected, (&transport.RawResponse{StatusCode: code}).OK(), code)
	}
}

func TestMethod_Verb(t *testing.T) {
	testCases := map[transport.Method]string{
		transport.MethodGet:    "GET",
		transport.MethodPost:   "POST",
		transport.MethodPut:    "PUT",
		transport.MethodDelete: "DELETE",
	}
	for m, expected := range testCases {
		verb, err := m.Verb()
		require.NoError(t, err)
		assert.Equal(t, expected, verb)
		assert.Equal(t, expected, m.String())
	}

	_, err := transport.Method(0).Verb()
	assert.True(t, errors.Is(err, transport.ErrUnsupportedMethod))
	_, err = transport.Method(99).Verb()
	assert.ErrorIs(t, err, transport.ErrUnsupportedMethod)
	assert.Equal(t, "Method(99)", transport.Method(99).String())
}

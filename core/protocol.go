// Copyright 2026 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package core

import "github.com/elixir-cloud-aai/trs-sdk-go/core/schema"

// Read-side TRS objects.
type (
	Checksum       = schema.Checksum
	FileWrapper    = schema.FileWrapper
	ToolFile       = schema.ToolFile
	ImageData      = schema.ImageData
	ToolClass      = schema.ToolClass
	ToolVersion    = schema.ToolVersion
	Tool           = schema.Tool
	Organization   = schema.Organization
	ServiceType    = schema.ServiceType
	Service        = schema.Service
	DescriptorType = schema.DescriptorType
	FileType       = schema.FileType
	ImageType      = schema.ImageType
)

// Write-side payloads. They are validated before any request is sent.
type (
	ServiceRegister     = schema.ServiceRegister
	ToolClassRegister   = schema.ToolClassRegister
	ToolClassRegisterID = schema.ToolClassRegisterID
	ToolRegister        = schema.ToolRegister
	ToolVersionRegister = schema.ToolVersionRegister
	FilesRegister       = schema.FilesRegister
	FileWrapperRegister = schema.FileWrapperRegister
	ToolFileRegister    = schema.ToolFileRegister
	ImageDataRegister   = schema.ImageDataRegister
	ChecksumRegister    = schema.ChecksumRegister
)

// Response content types a caller may request with WithAccept.
const (
	ContentTypeJSON = "application/json"
	ContentTypeText = "text/plain"
	ContentTypeZip  = "application/zip"
)

// FileListing is the result of GetFiles. Files is set for the JSON listing,
// Archive for format "zip".
type FileListing struct {
	Files   []ToolFile
	Archive []byte
}

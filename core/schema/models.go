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

import "time"

// DescriptorType is the workflow language of a descriptor.
type DescriptorType string

const (
	DescriptorCWL    DescriptorType = "CWL"
	DescriptorWDL    DescriptorType = "WDL"
	DescriptorNFL    DescriptorType = "NFL"
	DescriptorGalaxy DescriptorType = "GALAXY"
	DescriptorSMK    DescriptorType = "SMK"

	// Plain variants return the bare descriptor instead of a FileWrapper.
	DescriptorPlainCWL    DescriptorType = "PLAIN_CWL"
	DescriptorPlainWDL    DescriptorType = "PLAIN_WDL"
	DescriptorPlainNFL    DescriptorType = "PLAIN_NFL"
	DescriptorPlainGalaxy DescriptorType = "PLAIN_GALAXY"
	DescriptorPlainSMK    DescriptorType = "PLAIN_SMK"
)

// FileType classifies a file belonging to a tool version.
type FileType string

const (
	FileTypeTest                FileType = "TEST_FILE"
	FileTypePrimaryDescriptor   FileType = "PRIMARY_DESCRIPTOR"
	FileTypeSecondaryDescriptor FileType = "SECONDARY_DESCRIPTOR"
	FileTypeContainerfile       FileType = "CONTAINERFILE"
	FileTypeOther               FileType = "OTHER"
)

// FileTypes lists every FileType in declaration order.
var FileTypes = []FileType{
	FileTypeTest,
	FileTypePrimaryDescriptor,
	FileTypeSecondaryDescriptor,
	FileTypeContainerfile,
	FileTypeOther,
}

// ImageType is the container technology of an image.
type ImageType string

const (
	ImageDocker      ImageType = "Docker"
	ImageSingularity ImageType = "Singularity"
	ImageConda       ImageType = "Conda"
)

// Checksum is a digest of a file or image.
type Checksum struct {
	Checksum string `json:"checksum"`
	Type     string `json:"type"`
}

// FileWrapper carries either the content of a file or a URL to it.
type FileWrapper struct {
	Checksum []Checksum `json:"checksum,omitempty"`
	Content  *string    `json:"content,omitempty"`
	URL      *string    `json:"url,omitempty"`
}

// ToolFile describes one file of a tool version.
type ToolFile struct {
	FileType *FileType `json:"file_type,omitempty"`
	Path     *string   `json:"path,omitempty"`
}

// ImageData describes a container image of a tool version.
type ImageData struct {
	Checksum     []Checksum `json:"checksum,omitempty"`
	ImageName    *string    `json:"image_name,omitempty"`
	ImageType    *ImageType `json:"image_type,omitempty"`
	RegistryHost *string    `json:"registry_host,omitempty"`
	Size         *int64     `json:"size,omitempty"`
	Updated      *string    `json:"updated,omitempty"`
}

// ToolClass is a category a tool belongs to.
type ToolClass struct {
	Description *string `json:"description,omitempty"`
	ID          *string `json:"id,omitempty"`
	Name        *string `json:"name,omitempty"`
}

// ToolVersion is one version of a tool.
type ToolVersion struct {
	Author         []string         `json:"author,omitempty"`
	Containerfile  *bool            `json:"containerfile,omitempty"`
	DescriptorType []DescriptorType `json:"descriptor_type,omitempty"`
	ID             string           `json:"id"`
	Images         []ImageData      `json:"images,omitempty"`
	IncludedApps   []string         `json:"included_apps,omitempty"`
	IsProduction   *bool            `json:"is_production,omitempty"`
	MetaVersion    *string          `json:"meta_version,omitempty"`
	Name           *string          `json:"name,omitempty"`
	Signed         *bool            `json:"signed,omitempty"`
	URL            string           `json:"url"`
	Verified       *bool            `json:"verified,omitempty"`
	VerifiedSource []string         `json:"verified_source,omitempty"`
}

// Tool is a registered tool and its versions.
type Tool struct {
	Aliases      []string      `json:"aliases,omitempty"`
	CheckerURL   *string       `json:"checker_url,omitempty"`
	Description  *string       `json:"description,omitempty"`
	HasChecker   *bool         `json:"has_checker,omitempty"`
	ID           string        `json:"id"`
	MetaVersion  *string       `json:"meta_version,omitempty"`
	Name         *string       `json:"name,omitempty"`
	Organization string        `json:"organization"`
	ToolClass    ToolClass     `json:"toolclass"`
	URL          string        `json:"url"`
	Versions     []ToolVersion `json:"versions"`
}

// Organization is the provider of a service.
type Organization struct {
	Name string `json:"name" validate:"required"`
	URL  string `json:"url" validate:"required,url"`
}

// ServiceType identifies the API a service implements.
type ServiceType struct {
	Artifact string `json:"artifact" validate:"required"`
	Group    string `json:"group" validate:"required"`
	Version  string `json:"version" validate:"required"`
}

// Service is the GA4GH service-info document.
type Service struct {
	ContactURL       *string      `json:"contactUrl,omitempty"`
	CreatedAt        *time.Time   `json:"createdAt,omitempty"`
	Description      *string      `json:"description,omitempty"`
	DocumentationURL *string      `json:"documentationUrl,omitempty"`
	Environment      *string      `json:"environment,omitempty"`
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	Organization     Organization `json:"organization"`
	Type             ServiceType  `json:"type"`
	UpdatedAt        *time.Time   `json:"updatedAt,omitempty"`
	Version          string       `json:"version"`
}

// Error is the body of a non-2xx TRS response.
type Error struct {
	Code    int     `json:"code"`
	Message *string `json:"message,omitempty"`
}

// ServiceRegister is the payload for registering service info.
type ServiceRegister struct {
	ContactURL       *string      `json:"contactUrl,omitempty" validate:"omitempty,uri"`
	CreatedAt        *time.Time   `json:"createdAt,omitempty"`
	Description      *string      `json:"description,omitempty"`
	DocumentationURL *string      `json:"documentationUrl,omitempty" validate:"omitempty,url"`
	Environment      *string      `json:"environment,omitempty"`
	ID               string       `json:"id" validate:"required"`
	Name             string       `json:"name" validate:"required"`
	Organization     Organization `json:"organization"`
	Type             ServiceType  `json:"type"`
	UpdatedAt        *time.Time   `json:"updatedAt,omitempty"`
	Version          string       `json:"version" validate:"required"`
}

// ToolClassRegister is the payload for creating or replacing a tool class.
type ToolClassRegister struct {
	Description *string `json:"description,omitempty"`
	Name        *string `json:"name,omitempty"`
}

// ToolClassRegisterID references a tool class from a ToolRegister, either an
// existing one by ID or a new one by name.
type ToolClassRegisterID struct {
	Description *string `json:"description,omitempty"`
	ID          *string `json:"id,omitempty"`
	Name        *string `json:"name,omitempty"`
}

// ChecksumRegister is the write-side Checksum.
type ChecksumRegister struct {
	Checksum string `json:"checksum" validate:"required"`
	Type     string `json:"type" validate:"required"`
}

// FileWrapperRegister is the write-side FileWrapper.
type FileWrapperRegister struct {
	Checksum []ChecksumRegister `json:"checksum,omitempty" validate:"dive"`
	Content  *string            `json:"content,omitempty"`
	URL      *string            `json:"url,omitempty"`
}

// ToolFileRegister is the write-side ToolFile.
type ToolFileRegister struct {
	FileType *FileType `json:"file_type,omitempty" validate:"omitempty,oneof=TEST_FILE PRIMARY_DESCRIPTOR SECONDARY_DESCRIPTOR CONTAINERFILE OTHER"`
	Path     *string   `json:"path,omitempty"`
}

// FilesRegister bundles a file with its metadata for a version payload.
type FilesRegister struct {
	FileWrapper *FileWrapperRegister `json:"file_wrapper,omitempty"`
	ToolFile    *ToolFileRegister    `json:"tool_file,omitempty"`
	Type        *DescriptorType      `json:"type,omitempty" validate:"omitempty,oneof=CWL WDL NFL GALAXY SMK"`
}

// ImageDataRegister is the write-side ImageData.
type ImageDataRegister struct {
	Checksum     []ChecksumRegister `json:"checksum,omitempty" validate:"dive"`
	ImageName    *string            `json:"image_name,omitempty"`
	ImageType    *ImageType         `json:"image_type,omitempty" validate:"omitempty,oneof=Docker Singularity Conda"`
	RegistryHost *string            `json:"registry_host,omitempty"`
	Size         *int64             `json:"size,omitempty" validate:"omitempty,gte=0"`
	Updated      *string            `json:"updated,omitempty"`
}

// ToolVersionRegister is the payload for creating or replacing a tool
// version. ID is only honoured when the version is embedded in a
// ToolRegister.
type ToolVersionRegister struct {
	Author         []string            `json:"author,omitempty"`
	DescriptorType []DescriptorType    `json:"descriptor_type,omitempty" validate:"dive,oneof=CWL WDL NFL GALAXY SMK"`
	Files          []FilesRegister     `json:"files,omitempty" validate:"dive"`
	ID             *string             `json:"id,omitempty"`
	Images         []ImageDataRegister `json:"images,omitempty" validate:"dive"`
	IncludedApps   []string            `json:"included_apps,omitempty"`
	IsProduction   *bool               `json:"is_production,omitempty"`
	Name           *string             `json:"name,omitempty"`
	Signed         *bool               `json:"signed,omitempty"`
	Verified       *bool               `json:"verified,omitempty"`
	VerifiedSource []string            `json:"verified_source,omitempty"`
}

// ToolRegister is the payload for creating or replacing a tool.
type ToolRegister struct {
	Aliases      []string              `json:"aliases,omitempty"`
	CheckerURL   *string               `json:"checker_url,omitempty"`
	Description  *string               `json:"description,omitempty"`
	HasChecker   *bool                 `json:"has_checker,omitempty"`
	Name         *string               `json:"name,omitempty"`
	Organization string                `json:"organization" validate:"required"`
	ToolClass    ToolClassRegisterID   `json:"toolclass"`
	Versions     []ToolVersionRegister `json:"versions" validate:"required,dive"`
}

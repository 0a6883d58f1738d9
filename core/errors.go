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

package core

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/elixir-cloud-aai/trs-sdk-go/core/schema"
	"github.com/elixir-cloud-aai/trs-sdk-go/core/transport"
	"github.com/elixir-cloud-aai/trs-sdk-go/core/trsuri"
)

// ServiceError is a well-formed non-2xx answer from the registry. It is
// returned as the error value of an operation and can be inspected with
// errors.As.
type ServiceError = transport.ServiceError

// Every failure returned by a TRSClient wraps exactly one of these, except
// for *ServiceError.
var (
	ErrInvalidAddress            = trsuri.ErrInvalidAddress
	ErrInvalidResourceIdentifier = trsuri.ErrInvalidResourceIdentifier
	ErrInvalidPayload            = schema.ErrInvalidPayload
	ErrConnectionFailure         = transport.ErrConnectionFailure
	ErrInvalidResponse           = transport.ErrInvalidResponse
	ErrUnsupportedMethod         = transport.ErrUnsupportedMethod

	// ErrContentTypeUnavailable is returned when the requested response
	// content type is not offered by an operation.
	ErrContentTypeUnavailable = errors.New("requested content type not provided by the service")

	// ErrFileInformationUnavailable is returned by RetrieveFiles when the
	// file listing, a file path or a file's content is unavailable.
	ErrFileInformationUnavailable = errors.New("file information unavailable")

	// ErrOutputDirectory is returned when the output location of
	// RetrieveFiles cannot be created.
	ErrOutputDirectory = errors.New("could not create output directory")

	// ErrWriteFile is returned when RetrieveFiles cannot write a file.
	ErrWriteFile = errors.New("could not write file")
)

var errorKinds = []struct {
	err  error
	name string
}{
	{ErrInvalidAddress, "InvalidAddress"},
	{ErrInvalidResourceIdentifier, "InvalidResourceIdentifier"},
	{ErrContentTypeUnavailable, "ContentTypeUnavailable"},
	{ErrInvalidPayload, "InvalidPayload"},
	{ErrFileInformationUnavailable, "FileInformationUnavailable"},
	{ErrOutputDirectory, "OutputDirectoryError"},
	{ErrWriteFile, "WriteFileError"},
	{ErrConnectionFailure, "ConnectionFailure"},
	{ErrInvalidResponse, "InvalidResponseError"},
	{ErrUnsupportedMethod, "UnsupportedMethod"},
}

// ErrorKind names the failure class of err, e.g. "ConnectionFailure" or
// "ServiceError". Errors outside the client's taxonomy are reported as
// "Error".
func ErrorKind(err error) string {
	if err == nil {
		return ""
	}
	for _, k := range errorKinds {
		if errors.Is(err, k.err) {
			return k.name
		}
	}
	var se *ServiceError
	if errors.As(err, &se) {
		return "ServiceError"
	}
	return "Error"
}

// LogError writes err to logger at error level as "<Kind>: <message>". It is
// meant for the outermost layer of a program that wants a last-resort record
// of failures it does not handle; the client never calls it itself.
func LogError(logger *slog.Logger, err error) {
	if err == nil {
		return
	}
	if logger == nil {
		logger = slog.Default()
	}
	logger.LogAttrs(context.Background(), slog.LevelError, fmt.Sprintf("%s: %v", ErrorKind(err), err),
		slog.String("kind", ErrorKind(err)),
	)
}

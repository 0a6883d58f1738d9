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
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidPayload is returned when an outbound object fails validation.
// No request is sent in that case.
var ErrInvalidPayload = errors.New("invalid payload")

var validate = validator.New()

// ValidatePayload checks a write-side payload (ServiceRegister,
// ToolClassRegister, ToolRegister, ToolVersionRegister) against its
// declared constraints.
func ValidatePayload(payload any) error {
	if payload == nil {
		return fmt.Errorf("%w: payload is nil", ErrInvalidPayload)
	}
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	var valErrs validator.ValidationErrors
	if errors.As(err, &valErrs) {
		msgs := make([]string, 0, len(valErrs))
		for _, fe := range valErrs {
			msgs = append(msgs, formatFieldError(fe))
		}
		return fmt.Errorf("%w: %s", ErrInvalidPayload, strings.Join(msgs, "; "))
	}
	return fmt.Errorf("%w: %w", ErrInvalidPayload, err)
}

func formatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Namespace())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", fe.Namespace(), fe.Param())
	case "url", "uri":
		return fmt.Sprintf("%s must be a valid %s", fe.Namespace(), strings.ToUpper(fe.Tag()))
	default:
		return fmt.Sprintf("%s failed '%s' validation", fe.Namespace(), fe.Tag())
	}
}

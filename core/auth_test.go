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

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenFromSecret(t *testing.T) {
	ctx := context.Background()
	const name = "projects/p/secrets/trs-token/versions/latest"

	t.Run("Trims and wraps the secret", func(t *testing.T) {
		var asked string
		ts, err := tokenFromSecret(ctx, name, func(ctx context.Context, n string) ([]byte, error) {
			asked = n
			return []byte("  s3cr3t\n"), nil
		})
		require.NoError(t, err)
		assert.Equal(t, name, asked)

		token, err := ts.Token()
		require.NoError(t, err)
		assert.Equal(t, "s3cr3t", token.AccessToken)
		assert.Equal(t, "Bearer", token.Type())
	})

	t.Run("Access failure", func(t *testing.T) {
		_, err := tokenFromSecret(ctx, name, func(context.Context, string) ([]byte, error) {
			return nil, errors.New("permission denied")
		})
		assert.ErrorContains(t, err, "permission denied")
	})

	t.Run("Empty secret", func(t *testing.T) {
		_, err := tokenFromSecret(ctx, name, func(context.Context, string) ([]byte, error) {
			return []byte(" \n"), nil
		})
		assert.ErrorContains(t, err, "is empty")
	})

	t.Run("Token is sent with calls", func(t *testing.T) {
		ts, err := tokenFromSecret(ctx, name, func(context.Context, string) ([]byte, error) {
			return []byte("s3cr3t"), nil
		})
		require.NoError(t, err)

		client, ft := newFakeClient(t, respondWith(200, `[]`), WithTokenSource(ts))
		_, err = client.GetToolClasses(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Bearer s3cr3t", ft.last().Header.Get("Authorization"))
	})
}

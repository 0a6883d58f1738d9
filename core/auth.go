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
	"fmt"
	"strings"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
	"google.golang.org/api/option"
)

// GoogleIDTokenSource returns a token source minting Google-signed ID tokens
// for audience, for registries deployed behind Google IAM (e.g. Cloud Run).
// Pass it to WithTokenSource.
func GoogleIDTokenSource(ctx context.Context, audience string, opts ...option.ClientOption) (oauth2.TokenSource, error) {
	ts, err := idtoken.NewTokenSource(ctx, audience, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create ID token source for audience '%s': %w", audience, err)
	}
	return ts, nil
}

// SecretManagerTokenSource reads a bearer token from a Secret Manager secret
// version, e.g. "projects/p/secrets/trs-token/versions/latest". The secret
// is read once; surrounding whitespace is dropped.
func SecretManagerTokenSource(ctx context.Context, secretVersion string, opts ...option.ClientOption) (oauth2.TokenSource, error) {
	client, err := secretmanager.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create secret manager client: %w", err)
	}
	defer client.Close()

	return tokenFromSecret(ctx, secretVersion, func(ctx context.Context, name string) ([]byte, error) {
		resp, err := client.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{Name: name})
		if err != nil {
			return nil, err
		}
		return resp.GetPayload().GetData(), nil
	})
}

type secretAccessor func(ctx context.Context, name string) ([]byte, error)

func tokenFromSecret(ctx context.Context, name string, access secretAccessor) (oauth2.TokenSource, error) {
	data, err := access(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to access secret '%s': %w", name, err)
	}
	token := strings.TrimSpace(string(data))
	if token == "" {
		return nil, fmt.Errorf("secret '%s' is empty", name)
	}
	return oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"}), nil
}

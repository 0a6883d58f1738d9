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
	"os"
	"path"
	"path/filepath"

	"cloud.google.com/go/storage"
)

// FileSink is the destination RetrieveFilesTo writes into.
type FileSink interface {
	// Prepare makes the destination ready to receive files.
	Prepare(ctx context.Context) error
	// WriteFile stores content under relPath, a path relative to the
	// destination root as reported by the registry.
	WriteFile(ctx context.Context, relPath string, content []byte) error
}

type dirSink struct {
	dir string
}

// DirSink returns a FileSink writing below dir on the local filesystem.
// Missing directories, including parents of nested paths, are created.
func DirSink(dir string) FileSink {
	return &dirSink{dir: dir}
}

func (s *dirSink) Prepare(ctx context.Context) error {
	return os.MkdirAll(s.dir, 0o755)
}

func (s *dirSink) WriteFile(ctx context.Context, relPath string, content []byte) error {
	dest := filepath.Join(s.dir, filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}
	return os.WriteFile(dest, content, 0o644)
}

type gcsSink struct {
	bucket *storage.BucketHandle
	name   string
	prefix string
}

// NewGCSSink returns a FileSink writing objects into a Google Cloud Storage
// bucket, each named prefix + "/" + the file's relative path.
func NewGCSSink(client *storage.Client, bucket, prefix string) FileSink {
	return &gcsSink{bucket: client.Bucket(bucket), name: bucket, prefix: prefix}
}

// Prepare checks that the bucket exists and is accessible.
func (s *gcsSink) Prepare(ctx context.Context) error {
	if _, err := s.bucket.Attrs(ctx); err != nil {
		return fmt.Errorf("bucket '%s': %w", s.name, err)
	}
	return nil
}

func (s *gcsSink) WriteFile(ctx context.Context, relPath string, content []byte) error {
	w := s.bucket.Object(objectName(s.prefix, relPath)).NewWriter(ctx)
	if _, err := w.Write(content); err != nil {
		return errors.Join(err, w.Close())
	}
	return w.Close()
}

// objectName joins prefix and relPath with forward slashes.
func objectName(prefix, relPath string) string {
	return path.Join(prefix, relPath)
}

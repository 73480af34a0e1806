// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package filesystem

import (
	"io/fs"
)

// Accessor is the set of filesystem operations a project session relies on.
type Accessor interface {
	// ResolvePath returns the canonical absolute form of path.
	ResolvePath(path string) string

	ReadFile(path string) ([]byte, error)
	ReadDir(path string) ([]fs.FileInfo, error)
	Stat(path string) (fs.FileInfo, error)

	FileExists(path string) bool
	DirectoryExists(path string) bool
}

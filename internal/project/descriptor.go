// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package project

import (
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/tsproject-fs/internal/filesystem"
)

// Descriptor is the declared shape of a project: where its descriptor
// lives, which root directories it spans and which files it contains.
type Descriptor struct {
	Path      string
	RootDirs  []string
	FileNames []string

	Options *Options
}

// Load parses and resolves the descriptor at path through fs.
// It fails with *ConfigParseErr when the file cannot be read or parsed
// and with a *multierror.Error of diagnostics when resolution finds problems.
func Load(path string, fs filesystem.Accessor) (*Descriptor, error) {
	path = fs.ResolvePath(path)

	raw, err := ParseConfigFile(path, fs.ReadFile)
	if err != nil {
		return nil, err
	}

	pc := ResolveOptions(raw, fs, filepath.Dir(path))
	if len(pc.Errors) > 0 {
		return nil, &multierror.Error{
			Errors:      pc.Errors,
			ErrorFormat: formatDiagnostics,
		}
	}

	return &Descriptor{
		Path:      path,
		RootDirs:  pc.Options.RootDirs,
		FileNames: pc.FileNames,
		Options:   pc.Options,
	}, nil
}

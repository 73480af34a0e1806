// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package overlay

import (
	"log"
	"path/filepath"

	"github.com/hashicorp/go-memdb"
	"github.com/hashicorp/tsproject-fs/internal/logging"
	"github.com/hashicorp/tsproject-fs/internal/pathcmp"
	"github.com/hashicorp/tsproject-fs/internal/project"
)

// DefaultAncestorDepth is how many directory levels above each declared
// file are recorded as known directories. It is a heuristic, not a walk
// up to the filesystem root.
const DefaultAncestorDepth = 2

type buildOptions struct {
	ancestorDepth int
}

type BuildOption func(*buildOptions)

// WithAncestorDepth overrides DefaultAncestorDepth. Values below 1
// leave the default in place.
func WithAncestorDepth(depth int) BuildOption {
	return func(o *buildOptions) {
		if depth > 0 {
			o.ancestorDepth = depth
		}
	}
}

// Overlay is the immutable index of a project's known files and
// directories. It is safe for concurrent use once built.
type Overlay struct {
	db       *memdb.MemDB
	rootDirs []string
}

// Build indexes the files and directories declared by d.
// The descriptor path and declared file paths are passed through
// resolvePath before being indexed; root directories are indexed verbatim.
func Build(d *project.Descriptor, resolvePath func(string) string, logger *log.Logger, opts ...BuildOption) (*Overlay, error) {
	if logger == nil {
		logger = logging.NopLogger()
	}
	if d == nil {
		return nil, &UnavailableErr{Reason: "no project descriptor"}
	}
	if len(d.RootDirs) == 0 {
		return nil, &UnavailableErr{Path: d.Path, Reason: "no rootDirs declared"}
	}

	bo := &buildOptions{ancestorDepth: DefaultAncestorDepth}
	for _, opt := range opts {
		opt(bo)
	}

	db, err := memdb.NewMemDB(dbSchema)
	if err != nil {
		return nil, err
	}

	txn := db.Txn(true)
	defer txn.Abort()

	for _, dir := range d.RootDirs {
		logger.Printf("Adding rootdir: %s", dir)
		err := insertPath(txn, directoriesTableName, dir)
		if err != nil {
			return nil, err
		}
	}

	err = insertPath(txn, filesTableName, resolvePath(d.Path))
	if err != nil {
		return nil, err
	}

	for _, name := range d.FileNames {
		path := resolvePath(name)
		logger.Printf("Adding file: %s", path)
		err := insertPath(txn, filesTableName, path)
		if err != nil {
			return nil, err
		}

		dir := path
		for i := 0; i < bo.ancestorDepth; i++ {
			parent := filepath.Dir(dir)
			if parent == dir {
				break
			}
			dir = parent

			logger.Printf("Adding dir: %s", dir)
			err := insertPath(txn, directoriesTableName, dir)
			if err != nil {
				return nil, err
			}
		}
	}

	txn.Commit()

	rootDirs := make([]string, len(d.RootDirs))
	copy(rootDirs, d.RootDirs)

	return &Overlay{
		db:       db,
		rootDirs: rootDirs,
	}, nil
}

// HasFile reports whether path is a known file.
// path is expected to be resolved already.
func (o *Overlay) HasFile(path string) (bool, error) {
	return hasPath(o.db, filesTableName, path)
}

// HasDirectory reports whether path is a known directory.
// path is expected to be resolved already.
func (o *Overlay) HasDirectory(path string) (bool, error) {
	return hasPath(o.db, directoriesTableName, path)
}

// UnderRootDir reports whether path literally starts with any root directory.
func (o *Overlay) UnderRootDir(path string) bool {
	return pathcmp.HasAnyPrefix(path, o.rootDirs)
}

func (o *Overlay) RootDirs() []string {
	rootDirs := make([]string, len(o.rootDirs))
	copy(rootDirs, o.rootDirs)
	return rootDirs
}

// Files returns all known files in lexical order.
func (o *Overlay) Files() ([]string, error) {
	return listPaths(o.db, filesTableName)
}

// Directories returns all known directories in lexical order.
func (o *Overlay) Directories() ([]string, error) {
	return listPaths(o.db, directoriesTableName)
}

// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package filesystem

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

type accessor struct {
	fs  afero.Fs
	cwd string
}

// NewOsAccessor returns an Accessor backed by the OS filesystem.
// Relative paths are resolved against the current working directory.
func NewOsAccessor() (*accessor, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return NewAccessor(afero.NewOsFs(), cwd), nil
}

// NewAccessor returns an Accessor backed by any afero filesystem,
// resolving relative paths against cwd.
func NewAccessor(afs afero.Fs, cwd string) *accessor {
	return &accessor{
		fs:  afs,
		cwd: filepath.Clean(cwd),
	}
}

func (a *accessor) ResolvePath(path string) string {
	if path == "" {
		return a.cwd
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(a.cwd, path)
	}
	return filepath.Clean(path)
}

func (a *accessor) ReadFile(path string) ([]byte, error) {
	return afero.ReadFile(a.fs, a.ResolvePath(path))
}

func (a *accessor) ReadDir(path string) ([]fs.FileInfo, error) {
	return afero.ReadDir(a.fs, a.ResolvePath(path))
}

func (a *accessor) Stat(path string) (fs.FileInfo, error) {
	return a.fs.Stat(a.ResolvePath(path))
}

func (a *accessor) FileExists(path string) bool {
	fi, err := a.Stat(path)
	if err != nil {
		return false
	}
	return !fi.IsDir()
}

func (a *accessor) DirectoryExists(path string) bool {
	fi, err := a.Stat(path)
	if err != nil {
		return false
	}
	return fi.IsDir()
}

// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package overlay

import (
	"io/fs"
	"log"

	"github.com/hashicorp/tsproject-fs/internal/filesystem"
	"github.com/hashicorp/tsproject-fs/internal/logging"
	"github.com/hashicorp/tsproject-fs/internal/project"
)

// ProxyAccessor answers existence queries from an Overlay and passes
// every other operation through to the wrapped accessor.
type ProxyAccessor struct {
	host    filesystem.Accessor
	overlay *Overlay
	logger  *log.Logger
}

var _ filesystem.Accessor = &ProxyAccessor{}

// Load reads the descriptor at descriptorPath through host and builds
// its Overlay. Any failure is reported as *UnavailableErr.
func Load(descriptorPath string, host filesystem.Accessor, logger *log.Logger, opts ...BuildOption) (*Overlay, error) {
	d, err := project.Load(descriptorPath, host)
	if err != nil {
		return nil, &UnavailableErr{
			Path:   descriptorPath,
			Reason: "unable to load project descriptor",
			Err:    err,
		}
	}

	o, err := Build(d, host.ResolvePath, logger, opts...)
	if err != nil {
		if IsUnavailable(err) {
			return nil, err
		}
		return nil, &UnavailableErr{
			Path:   d.Path,
			Reason: "unable to build index",
			Err:    err,
		}
	}

	return o, nil
}

// NewProxyAccessor returns an accessor serving existence queries for
// the project described at descriptorPath. When no overlay can be
// built the reason is logged and host itself is returned.
func NewProxyAccessor(descriptorPath string, host filesystem.Accessor, logger *log.Logger, opts ...BuildOption) filesystem.Accessor {
	if logger == nil {
		logger = logging.NopLogger()
	}

	o, err := Load(descriptorPath, host, logger, opts...)
	if err != nil {
		logger.Printf("%s; using real filesystem", err)
		return host
	}

	return NewProxyAccessorFromOverlay(host, o, logger)
}

func NewProxyAccessorFromOverlay(host filesystem.Accessor, o *Overlay, logger *log.Logger) *ProxyAccessor {
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &ProxyAccessor{
		host:    host,
		overlay: o,
		logger:  logger,
	}
}

// Unwrap returns the accessor which ProxyAccessor wraps.
func (p *ProxyAccessor) Unwrap() filesystem.Accessor {
	return p.host
}

func (p *ProxyAccessor) Overlay() *Overlay {
	return p.overlay
}

func (p *ProxyAccessor) ResolvePath(path string) string {
	return p.host.ResolvePath(path)
}

func (p *ProxyAccessor) ReadFile(path string) ([]byte, error) {
	return p.host.ReadFile(path)
}

func (p *ProxyAccessor) ReadDir(path string) ([]fs.FileInfo, error) {
	return p.host.ReadDir(path)
}

func (p *ProxyAccessor) Stat(path string) (fs.FileInfo, error) {
	return p.host.Stat(path)
}

// FileExists reports known files without touching the real filesystem.
// Other files are looked up on the real filesystem only if they sit
// under a root directory and are not generated artifacts, which allows
// new sources to be discovered without re-declaring the project.
func (p *ProxyAccessor) FileExists(path string) bool {
	path = p.host.ResolvePath(path)
	known, err := p.overlay.HasFile(path)
	if err != nil {
		p.logger.Printf("Failed to look up file %s: %s", path, err)
	}
	if known {
		p.logger.Printf("Found: %s", path)
		return true
	}

	if !IsGenerated(path) && p.overlay.UnderRootDir(path) {
		p.logger.Printf("Search: %s", path)
		return p.host.FileExists(path)
	}

	p.logger.Printf("Did not find: %s", path)
	return false
}

// DirectoryExists only ever reports known directories.
func (p *ProxyAccessor) DirectoryExists(path string) bool {
	path = p.host.ResolvePath(path)
	known, err := p.overlay.HasDirectory(path)
	if err != nil {
		p.logger.Printf("Failed to look up directory %s: %s", path, err)
	}
	if known {
		p.logger.Printf("Dir Found: %s", path)
		return true
	}

	p.logger.Printf("Dir NOT Found: %s", path)
	return false
}

// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package project

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
	"github.com/hashicorp/tsproject-fs/internal/filesystem"
	"github.com/hashicorp/tsproject-fs/internal/pathcmp"
)

const (
	compilerOptionsKey = "compilerOptions"
	filesKey           = "files"
	includeKey         = "include"
	excludeKey         = "exclude"
)

var defaultInclude = []string{"**/*"}

var (
	sourceExtensions = []string{".ts", ".tsx"}
	jsExtensions     = []string{".js", ".jsx"}
)

// ParsedConfig is the outcome of resolving a RawConfig. Errors holds
// one *Diagnostic per problem found; FileNames is still populated
// on a best-effort basis when there are errors.
type ParsedConfig struct {
	Options    *Options
	UnusedKeys []string
	FileNames  []string
	Errors     []error
}

// ResolveOptions decodes compilerOptions and expands the declared
// file list of raw, after merging in any configs it extends.
// Relative paths are resolved against baseDir and directories
// are enumerated through fs.
func ResolveOptions(raw *RawConfig, fs filesystem.Accessor, baseDir string) *ParsedConfig {
	r := &resolver{
		raw:     raw,
		fs:      fs,
		baseDir: fs.ResolvePath(baseDir),
		seen:    make(map[string]bool, 0),
		pc: &ParsedConfig{
			Options: &Options{},
		},
	}

	r.applyExtends()
	r.decodeOptions()
	r.collectFiles()

	if len(r.pc.FileNames) == 0 && len(r.pc.Errors) == 0 {
		r.diag("no inputs were found in config file")
	}

	return r.pc
}

type resolver struct {
	raw     *RawConfig
	fs      filesystem.Accessor
	baseDir string

	exclude []*pattern
	seen    map[string]bool

	pc *ParsedConfig
}

func (r *resolver) diag(format string, a ...interface{}) {
	r.pc.Errors = append(r.pc.Errors, &Diagnostic{
		File:    r.raw.Path,
		Message: fmt.Sprintf(format, a...),
	})
}

func (r *resolver) decodeOptions() {
	rawOpts, ok := r.raw.Data[compilerOptionsKey]
	if !ok || rawOpts == nil {
		return
	}

	decoded, err := DecodeOptions(rawOpts)
	if err != nil {
		r.diag("invalid %s: %s", compilerOptionsKey, err)
		return
	}

	opts := decoded.Options
	for i, dir := range opts.RootDirs {
		opts.RootDirs[i] = resolveAgainst(r.baseDir, dir)
	}
	for _, p := range []*string{&opts.RootDir, &opts.BaseURL, &opts.OutDir} {
		if *p != "" {
			*p = resolveAgainst(r.baseDir, *p)
		}
	}

	r.pc.Options = opts
	r.pc.UnusedKeys = decoded.UnusedKeys
}

func (r *resolver) collectFiles() {
	files, hasFiles, err := stringList(r.raw.Data, filesKey)
	if err != nil {
		r.diag("%s", err)
	}
	include, hasInclude, err := stringList(r.raw.Data, includeKey)
	if err != nil {
		r.diag("%s", err)
	}
	exclude, _, err := stringList(r.raw.Data, excludeKey)
	if err != nil {
		r.diag("%s", err)
	}

	if !hasFiles && !hasInclude {
		include = defaultInclude
	}

	for _, raw := range exclude {
		p, err := compilePattern(r.baseDir, raw, true)
		if err != nil {
			r.diag("invalid exclude pattern %q: %s", raw, err)
			continue
		}
		r.exclude = append(r.exclude, p)
	}

	// files entries are taken as declared, whether or not they exist yet
	for _, f := range files {
		r.add(r.fs.ResolvePath(resolveAgainst(r.baseDir, f)))
	}

	for _, raw := range include {
		p, err := compilePattern(r.baseDir, raw, false)
		if err != nil {
			r.diag("invalid include pattern %q: %s", raw, err)
			continue
		}
		if p.isFile {
			if r.fs.FileExists(p.base) && !r.isExcluded(p.base) {
				r.add(r.fs.ResolvePath(p.base))
			}
			continue
		}
		r.walk(p.base, func(path string) {
			if r.isSourceFile(path) && p.Match(path) && !r.isExcluded(path) {
				r.add(r.fs.ResolvePath(path))
			}
		})
	}
}

func (r *resolver) add(path string) {
	if r.seen[path] {
		return
	}
	r.seen[path] = true
	r.pc.FileNames = append(r.pc.FileNames, path)
}

func (r *resolver) walk(dir string, visit func(path string)) {
	infos, err := r.fs.ReadDir(dir)
	if err != nil {
		// include patterns may point at directories which do not exist (yet)
		return
	}

	for _, fi := range infos {
		name := fi.Name()
		path := filepath.Join(dir, name)
		if fi.IsDir() {
			if r.skipDir(name, path) {
				continue
			}
			r.walk(path, visit)
			continue
		}
		visit(path)
	}
}

func (r *resolver) skipDir(name, path string) bool {
	if name == "node_modules" || strings.HasPrefix(name, ".") {
		return true
	}
	outDir := r.pc.Options.OutDir
	if outDir != "" && pathcmp.PathEquals(path, outDir) {
		return true
	}
	return r.isExcluded(path)
}

func (r *resolver) isExcluded(path string) bool {
	for _, p := range r.exclude {
		if p.Match(path) {
			return true
		}
	}
	return false
}

func (r *resolver) isSourceFile(path string) bool {
	for _, ext := range sourceExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	if r.pc.Options.AllowJs {
		for _, ext := range jsExtensions {
			if strings.HasSuffix(path, ext) {
				return true
			}
		}
	}
	return false
}

func resolveAgainst(baseDir, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(baseDir, path)
}

func stringList(data map[string]interface{}, key string) ([]string, bool, error) {
	v, ok := data[key]
	if !ok || v == nil {
		return nil, false, nil
	}

	items, ok := v.([]interface{})
	if !ok {
		return nil, true, fmt.Errorf("%q must be an array, given %T", key, v)
	}

	list := make([]string, 0, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, true, fmt.Errorf("%q[%d] must be a string, given %T", key, i, item)
		}
		list = append(list, s)
	}

	return list, true, nil
}

// pattern is a compiled include or exclude entry. base is the longest
// literal (wildcard-free) directory prefix, from which enumeration starts.
type pattern struct {
	base   string
	isFile bool
	globs  []glob.Glob
}

func (p *pattern) Match(path string) bool {
	path = filepath.ToSlash(path)
	for _, g := range p.globs {
		if g.Match(path) {
			return true
		}
	}
	return false
}

func compilePattern(baseDir, raw string, exclude bool) (*pattern, error) {
	segments := strings.Split(filepath.ToSlash(raw), "/")

	lit := 0
	for lit < len(segments) && !hasWildcard(segments[lit]) {
		lit++
	}
	literal := strings.Join(segments[:lit], "/")
	rest := strings.Join(segments[lit:], "/")

	p := &pattern{
		base: baseDir,
	}
	if literal != "" {
		p.base = resolveAgainst(baseDir, filepath.FromSlash(literal))
	}

	if rest == "" && !exclude {
		last := segments[len(segments)-1]
		if strings.Contains(last, ".") {
			p.isFile = true
		} else {
			rest = "**/*"
		}
	}

	full := strings.TrimSuffix(glob.QuoteMeta(filepath.ToSlash(p.base)), "/")
	if rest != "" {
		full += "/" + rest
	}

	candidates := []string{full}
	if exclude {
		candidates = append(candidates, full+"/**")
	}

	for _, c := range candidates {
		for _, expanded := range expandGlobstars(c) {
			g, err := glob.Compile(expanded, '/')
			if err != nil {
				return nil, err
			}
			p.globs = append(p.globs, g)
		}
	}

	return p, nil
}

func hasWildcard(segment string) bool {
	return strings.ContainsAny(segment, "*?[{")
}

// expandGlobstars returns pattern variants in which every "/**/"
// either spans one or more directories or collapses to "/", so that
// "src/**/*.ts" also matches "src/a.ts".
func expandGlobstars(pattern string) []string {
	i := strings.Index(pattern, "/**/")
	if i < 0 {
		return []string{pattern}
	}

	head, tail := pattern[:i], pattern[i+len("/**/"):]
	out := make([]string, 0)
	for _, rest := range expandGlobstars(tail) {
		out = append(out, head+"/**/"+rest, head+"/"+rest)
	}
	return out
}

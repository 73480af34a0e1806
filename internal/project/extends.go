// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package project

import (
	"fmt"
	"path/filepath"
	"strings"
)

const extendsKey = "extends"

// pathOptions are compilerOptions whose relative values are resolved
// against the directory of the config which declares them.
var pathOptions = []string{"rootDir", "baseUrl", "outDir"}

// applyExtends replaces the raw config with one in which every config
// named by "extends" has been merged in. compilerOptions are merged key
// by key; files, include and exclude are inherited when not declared.
func (r *resolver) applyExtends() {
	if _, ok := r.raw.Data[extendsKey]; !ok {
		return
	}

	seen := map[string]bool{r.raw.Path: true}
	data, err := r.extend(r.raw.Path, r.raw.Data, seen)
	if err != nil {
		r.diag("%s", err)
		return
	}

	r.raw = &RawConfig{
		Path: r.raw.Path,
		Data: data,
	}
}

func (r *resolver) extend(path string, data map[string]interface{}, seen map[string]bool) (map[string]interface{}, error) {
	bases, err := extendsList(data)
	if err != nil {
		return nil, err
	}
	if len(bases) == 0 {
		return data, nil
	}

	merged := make(map[string]interface{}, 0)
	for _, base := range bases {
		basePath, err := r.extendedConfigPath(path, base)
		if err != nil {
			return nil, err
		}
		if seen[basePath] {
			return nil, fmt.Errorf("circularity detected while resolving configuration: %s", basePath)
		}

		raw, err := ParseConfigFile(basePath, r.fs.ReadFile)
		if err != nil {
			return nil, err
		}

		seen[basePath] = true
		baseData, err := r.extend(basePath, raw.Data, seen)
		delete(seen, basePath)
		if err != nil {
			return nil, err
		}

		mergeConfig(merged, absolutize(baseData, filepath.Dir(basePath)))
	}

	own := make(map[string]interface{}, len(data))
	for k, v := range data {
		if k != extendsKey {
			own[k] = v
		}
	}
	mergeConfig(merged, own)

	return merged, nil
}

func extendsList(data map[string]interface{}) ([]string, error) {
	v, ok := data[extendsKey]
	if !ok || v == nil {
		return nil, nil
	}

	switch ext := v.(type) {
	case string:
		return []string{ext}, nil
	case []interface{}:
		bases := make([]string, 0, len(ext))
		for i, item := range ext {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%q[%d] must be a string, given %T", extendsKey, i, item)
			}
			bases = append(bases, s)
		}
		return bases, nil
	}

	return nil, fmt.Errorf("%q must be a string or an array, given %T", extendsKey, v)
}

// extendedConfigPath locates the config named by an "extends" entry
// of the config at from. Only file paths are supported; configs shipped
// in packages would require module resolution.
func (r *resolver) extendedConfigPath(from, name string) (string, error) {
	slashed := filepath.ToSlash(name)
	if !filepath.IsAbs(name) && !strings.HasPrefix(slashed, "./") && !strings.HasPrefix(slashed, "../") {
		return "", fmt.Errorf("extends %q: configs from packages are not supported", name)
	}

	path := r.fs.ResolvePath(resolveAgainst(filepath.Dir(from), name))
	if !strings.HasSuffix(path, ".json") && !r.fs.FileExists(path) {
		path += ".json"
	}
	return path, nil
}

// mergeConfig copies src over dst. compilerOptions objects are
// merged rather than replaced.
func mergeConfig(dst, src map[string]interface{}) {
	for k, v := range src {
		if k == compilerOptionsKey {
			srcOpts, srcOk := v.(map[string]interface{})
			dstOpts, dstOk := dst[k].(map[string]interface{})
			if srcOk && dstOk {
				opts := make(map[string]interface{}, len(dstOpts)+len(srcOpts))
				for name, val := range dstOpts {
					opts[name] = val
				}
				for name, val := range srcOpts {
					opts[name] = val
				}
				dst[k] = opts
				continue
			}
		}
		dst[k] = v
	}
}

// absolutize returns a shallow copy of data in which relative paths
// are resolved against dir, so they keep pointing at the same place
// once merged into a config living elsewhere.
func absolutize(data map[string]interface{}, dir string) map[string]interface{} {
	out := make(map[string]interface{}, len(data))
	for k, v := range data {
		out[k] = v
	}

	if opts, ok := data[compilerOptionsKey].(map[string]interface{}); ok {
		resolved := make(map[string]interface{}, len(opts))
		for k, v := range opts {
			resolved[k] = v
		}
		for _, key := range pathOptions {
			if s, ok := opts[key].(string); ok && s != "" {
				resolved[key] = resolveAgainst(dir, s)
			}
		}
		if dirs, ok := opts["rootDirs"].([]interface{}); ok {
			resolved["rootDirs"] = absolutizeList(dirs, dir)
		}
		out[compilerOptionsKey] = resolved
	}

	for _, key := range []string{filesKey, includeKey, excludeKey} {
		if list, ok := data[key].([]interface{}); ok {
			out[key] = absolutizeList(list, dir)
		}
	}

	return out
}

func absolutizeList(list []interface{}, dir string) []interface{} {
	out := make([]interface{}, len(list))
	for i, item := range list {
		if s, ok := item.(string); ok {
			out[i] = resolveAgainst(dir, s)
			continue
		}
		out[i] = item
	}
	return out
}

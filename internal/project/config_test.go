// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package project

import (
	"errors"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mapReader(files map[string]string) func(string) ([]byte, error) {
	return func(path string) ([]byte, error) {
		content, ok := files[path]
		if !ok {
			return nil, os.ErrNotExist
		}
		return []byte(content), nil
	}
}

func TestParseConfigFile_jsonc(t *testing.T) {
	readFile := mapReader(map[string]string{
		"/proj/tsconfig.json": `{
	// composite roots
	"compilerOptions": {
		"rootDirs": ["src", "gen",],
	},
	/* explicit list */
	"files": ["src/a.ts"],
}`,
	})

	raw, err := ParseConfigFile("/proj/tsconfig.json", readFile)
	if err != nil {
		t.Fatal(err)
	}

	expected := &RawConfig{
		Path: "/proj/tsconfig.json",
		Data: map[string]interface{}{
			"compilerOptions": map[string]interface{}{
				"rootDirs": []interface{}{"src", "gen"},
			},
			"files": []interface{}{"src/a.ts"},
		},
	}
	if diff := cmp.Diff(expected, raw); diff != "" {
		t.Fatalf("unexpected config: %s", diff)
	}
}

func TestParseConfigFile_missing(t *testing.T) {
	_, err := ParseConfigFile("/proj/tsconfig.json", mapReader(map[string]string{}))
	if err == nil {
		t.Fatal("expected error for missing descriptor")
	}

	var parseErr *ConfigParseErr
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ConfigParseErr, given %T", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected wrapped os.ErrNotExist, given %s", err)
	}
}

func TestParseConfigFile_invalid(t *testing.T) {
	testCases := []struct {
		name    string
		content string
	}{
		{"syntax error", `{"compilerOptions": `},
		{"not an object", `["a.ts"]`},
		{"null", `null`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			readFile := mapReader(map[string]string{
				"/proj/tsconfig.json": tc.content,
			})
			_, err := ParseConfigFile("/proj/tsconfig.json", readFile)
			if err == nil {
				t.Fatal("expected error")
			}
			var parseErr *ConfigParseErr
			if !errors.As(err, &parseErr) {
				t.Fatalf("expected *ConfigParseErr, given %T", err)
			}
		})
	}
}

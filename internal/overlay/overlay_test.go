// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

//go:build !windows
// +build !windows

package overlay

import (
	"bytes"
	"errors"
	"log"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hashicorp/tsproject-fs/internal/project"
)

func testDescriptor() *project.Descriptor {
	return &project.Descriptor{
		Path:      "/proj/tsconfig.json",
		RootDirs:  []string{"/proj/src"},
		FileNames: []string{"/proj/src/a.ts"},
	}
}

func cleanPath(path string) string {
	return filepath.Clean(path)
}

func overlayContents(t *testing.T, o *Overlay) ([]string, []string) {
	files, err := o.Files()
	if err != nil {
		t.Fatal(err)
	}
	dirs, err := o.Directories()
	if err != nil {
		t.Fatal(err)
	}
	return files, dirs
}

func TestBuild(t *testing.T) {
	o, err := Build(testDescriptor(), cleanPath, nil)
	if err != nil {
		t.Fatal(err)
	}

	files, dirs := overlayContents(t, o)

	expectedFiles := []string{"/proj/src/a.ts", "/proj/tsconfig.json"}
	if diff := cmp.Diff(expectedFiles, files); diff != "" {
		t.Fatalf("unexpected files: %s", diff)
	}
	expectedDirs := []string{"/proj", "/proj/src"}
	if diff := cmp.Diff(expectedDirs, dirs); diff != "" {
		t.Fatalf("unexpected directories: %s", diff)
	}
	if diff := cmp.Diff([]string{"/proj/src"}, o.RootDirs()); diff != "" {
		t.Fatalf("unexpected root dirs: %s", diff)
	}
}

func TestBuild_resolvesFileNames(t *testing.T) {
	d := &project.Descriptor{
		Path:      "/proj/tsconfig.json",
		RootDirs:  []string{"/proj/src"},
		FileNames: []string{"src/lib/../a.ts"},
	}
	resolve := func(path string) string {
		return filepath.Join("/proj", path)
	}

	o, err := Build(d, resolve, nil)
	if err != nil {
		t.Fatal(err)
	}
	known, err := o.HasFile("/proj/src/a.ts")
	if err != nil {
		t.Fatal(err)
	}
	if !known {
		t.Fatal("expected resolved file to be known")
	}
	known, err = o.HasFile("src/lib/../a.ts")
	if err != nil {
		t.Fatal(err)
	}
	if known {
		t.Fatal("expected unresolved file name not to be known")
	}
}

func TestBuild_resolvesDescriptorPath(t *testing.T) {
	d := &project.Descriptor{
		Path:      "tsconfig.json",
		RootDirs:  []string{"/proj/src"},
		FileNames: []string{"src/a.ts"},
	}
	host := realFs(t, testTsconfig)

	o, err := Build(d, host.ResolvePath, nil)
	if err != nil {
		t.Fatal(err)
	}

	files, _ := overlayContents(t, o)
	expectedFiles := []string{"/proj/src/a.ts", "/proj/tsconfig.json"}
	if diff := cmp.Diff(expectedFiles, files); diff != "" {
		t.Fatalf("unexpected files: %s", diff)
	}

	p := NewProxyAccessorFromOverlay(host, o, nil)
	if !p.FileExists("tsconfig.json") {
		t.Fatal("expected relative descriptor path to be known")
	}
}

func TestHasPath_unknownTable(t *testing.T) {
	o, err := Build(testDescriptor(), cleanPath, nil)
	if err != nil {
		t.Fatal(err)
	}

	_, err = hasPath(o.db, "unknown", "/proj/src/a.ts")
	if err == nil {
		t.Fatal("expected lookup in unknown table to fail")
	}
}

func TestBuild_noRootDirs(t *testing.T) {
	d := testDescriptor()
	d.RootDirs = nil

	_, err := Build(d, cleanPath, nil)
	if err == nil {
		t.Fatal("expected error for descriptor without rootDirs")
	}
	if !IsUnavailable(err) {
		t.Fatalf("expected *UnavailableErr, given %T", err)
	}

	expectedMsg := "overlay unavailable for /proj/tsconfig.json: no rootDirs declared"
	if diff := cmp.Diff(expectedMsg, err.Error()); diff != "" {
		t.Fatalf("unexpected error message: %s", diff)
	}
}

func TestBuild_nilDescriptor(t *testing.T) {
	_, err := Build(nil, cleanPath, nil)
	var ue *UnavailableErr
	if !errors.As(err, &ue) {
		t.Fatalf("expected *UnavailableErr, given %#v", err)
	}
}

func TestBuild_idempotent(t *testing.T) {
	d := &project.Descriptor{
		Path:     "/proj/tsconfig.json",
		RootDirs: []string{"/proj/src", "/proj/gen"},
		FileNames: []string{
			"/proj/src/a.ts",
			"/proj/src/lib/b.ts",
			"/proj/gen/c.ngfactory.ts",
			"/proj/src/a.ts",
		},
	}

	first, err := Build(d, cleanPath, nil)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Build(d, cleanPath, nil)
	if err != nil {
		t.Fatal(err)
	}

	files1, dirs1 := overlayContents(t, first)
	files2, dirs2 := overlayContents(t, second)

	if diff := cmp.Diff(files1, files2); diff != "" {
		t.Fatalf("file sets differ: %s", diff)
	}
	if diff := cmp.Diff(dirs1, dirs2); diff != "" {
		t.Fatalf("directory sets differ: %s", diff)
	}

	expectedFiles := []string{
		"/proj/gen/c.ngfactory.ts",
		"/proj/src/a.ts",
		"/proj/src/lib/b.ts",
		"/proj/tsconfig.json",
	}
	if diff := cmp.Diff(expectedFiles, files1); diff != "" {
		t.Fatalf("unexpected files: %s", diff)
	}
}

func TestBuild_ancestorDepth(t *testing.T) {
	d := &project.Descriptor{
		Path:      "/w/proj/tsconfig.json",
		RootDirs:  []string{"/w/proj/src"},
		FileNames: []string{"/w/proj/src/x/app/lib/a.ts"},
	}

	testCases := []struct {
		name         string
		opts         []BuildOption
		expectedDirs []string
	}{
		{
			"default",
			nil,
			[]string{"/w/proj/src", "/w/proj/src/x/app", "/w/proj/src/x/app/lib"},
		},
		{
			"depth 1",
			[]BuildOption{WithAncestorDepth(1)},
			[]string{"/w/proj/src", "/w/proj/src/x/app/lib"},
		},
		{
			"depth 3",
			[]BuildOption{WithAncestorDepth(3)},
			[]string{"/w/proj/src", "/w/proj/src/x", "/w/proj/src/x/app", "/w/proj/src/x/app/lib"},
		},
		{
			"depth 10 stops at filesystem root",
			[]BuildOption{WithAncestorDepth(10)},
			[]string{
				"/",
				"/w",
				"/w/proj",
				"/w/proj/src",
				"/w/proj/src/x",
				"/w/proj/src/x/app",
				"/w/proj/src/x/app/lib",
			},
		},
		{
			"zero keeps default",
			[]BuildOption{WithAncestorDepth(0)},
			[]string{"/w/proj/src", "/w/proj/src/x/app", "/w/proj/src/x/app/lib"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			o, err := Build(d, cleanPath, nil, tc.opts...)
			if err != nil {
				t.Fatal(err)
			}
			_, dirs := overlayContents(t, o)
			if diff := cmp.Diff(tc.expectedDirs, dirs); diff != "" {
				t.Fatalf("unexpected directories: %s", diff)
			}
		})
	}
}

func TestBuild_logging(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := log.New(buf, "", 0)

	_, err := Build(testDescriptor(), cleanPath, logger)
	if err != nil {
		t.Fatal(err)
	}

	expected := []string{
		"Adding rootdir: /proj/src",
		"Adding file: /proj/src/a.ts",
		"Adding dir: /proj/src",
		"Adding dir: /proj",
	}
	given := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if diff := cmp.Diff(expected, given); diff != "" {
		t.Fatalf("unexpected log lines: %s", diff)
	}
}

func TestOverlay_RootDirsIsCopy(t *testing.T) {
	d := testDescriptor()
	o, err := Build(d, cleanPath, nil)
	if err != nil {
		t.Fatal(err)
	}

	d.RootDirs[0] = "/elsewhere"
	dirs := o.RootDirs()
	dirs[0] = "/mutated"

	if !o.UnderRootDir("/proj/src/new.ts") {
		t.Fatal("expected overlay root dirs to be unaffected by outside mutation")
	}
}

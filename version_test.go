// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"testing"

	goversion "github.com/hashicorp/go-version"
)

func TestVersionString(t *testing.T) {
	v, err := goversion.NewVersion(VersionString())
	if err != nil {
		t.Fatal(err)
	}
	if v.Prerelease() != prerelease {
		t.Fatalf("expected prerelease %q, given %q", prerelease, v.Prerelease())
	}
}

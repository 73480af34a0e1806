// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package overlay

import (
	"strings"
)

var (
	generatedCategories = []string{"ngsummary", "ngstyle", "ngfactory"}
	sourceExtensions    = []string{"ts", "tsx", "d.ts"}
)

// IsGenerated reports whether path names an artifact of a code
// generation pass, e.g. "app.ngfactory.ts" or "app.ngsummary.d.ts".
// Such files only appear through re-declaring the project.
//
// The test is a plain suffix match on "<category>.<extension>", so
// "appngfactory.ts" is generated too. The suffix alone is not.
func IsGenerated(path string) bool {
	for _, cat := range generatedCategories {
		for _, ext := range sourceExtensions {
			suffix := cat + "." + ext
			if len(path) > len(suffix) && strings.HasSuffix(path, suffix) {
				return true
			}
		}
	}
	return false
}

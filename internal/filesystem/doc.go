// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

// Package filesystem defines the accessor through which the language
// service reaches the real filesystem.
//
// - resolves paths into the canonical absolute form used for comparisons
// - answers existence queries (files vs. directories)
// - reads file contents and directory listings
package filesystem

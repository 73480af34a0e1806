// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

// Package project reads a tsconfig.json project descriptor and turns it
// into the closed list of declared files and root directories.
//
// Configs named by "extends" are followed when given as file paths.
// Configs published in packages (e.g. "@tsconfig/node16") are not
// resolved and are reported as a diagnostic.
package project

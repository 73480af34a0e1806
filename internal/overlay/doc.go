// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

// Package overlay answers filesystem existence queries for a project
// from a precomputed index of its declared files and directories.
//
// The index is built once per project session from the project
// descriptor and never changes afterwards. A ProxyAccessor placed in
// front of the real accessor serves FileExists and DirectoryExists
// from that index. Undeclared files are looked up on the real
// filesystem only when they sit under one of the project's root
// directories and are not generated artifacts; undeclared
// directories are never looked up.
package overlay

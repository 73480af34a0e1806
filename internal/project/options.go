// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package project

import (
	"github.com/mitchellh/mapstructure"
)

// Options is the subset of compilerOptions relevant to file discovery.
type Options struct {
	// RootDirs lists the composite source roots; an empty list
	// opts the project out of the overlay.
	RootDirs []string `mapstructure:"rootDirs"`
	RootDir  string   `mapstructure:"rootDir"`
	BaseURL  string   `mapstructure:"baseUrl"`
	OutDir   string   `mapstructure:"outDir"`
	AllowJs  bool     `mapstructure:"allowJs"`
}

type DecodedOptions struct {
	Options    *Options
	UnusedKeys []string
}

func DecodeOptions(input interface{}) (*DecodedOptions, error) {
	var md mapstructure.Metadata
	var options Options

	config := &mapstructure.DecoderConfig{
		Metadata: &md,
		Result:   &options,
	}
	decoder, err := mapstructure.NewDecoder(config)
	if err != nil {
		panic(err)
	}

	if err := decoder.Decode(input); err != nil {
		return nil, err
	}

	return &DecodedOptions{
		Options:    &options,
		UnusedKeys: md.Unused,
	}, nil
}

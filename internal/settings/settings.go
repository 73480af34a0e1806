// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package settings

import (
	"encoding/json"
	"fmt"

	"github.com/hashicorp/tsproject-fs/internal/logging"
	"github.com/mitchellh/mapstructure"
	"github.com/tailscale/hujson"
)

type Options struct {
	// AncestorDepth is how many directory levels above each declared
	// file are treated as known. Zero means the built-in default.
	AncestorDepth int `mapstructure:"ancestorDepth"`

	// LogFilePath is a templated absolute path, e.g.
	// "/tmp/tsproject-fs-{{ pid }}.log"
	LogFilePath string `mapstructure:"logFilePath"`
}

func (o *Options) Validate() error {
	if o.AncestorDepth < 0 {
		return fmt.Errorf("ancestorDepth must not be negative, got %d", o.AncestorDepth)
	}

	if o.LogFilePath != "" {
		_, err := logging.ParseLogPath(o.LogFilePath)
		if err != nil {
			return fmt.Errorf("invalid logFilePath: %w", err)
		}
	}

	return nil
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

// ParseFile decodes settings from JSON-with-comments content.
func ParseFile(b []byte) (*DecodedOptions, error) {
	standardized, err := hujson.Standardize(b)
	if err != nil {
		return nil, fmt.Errorf("invalid JSONC: %w", err)
	}

	var raw map[string]interface{}
	err = json.Unmarshal(standardized, &raw)
	if err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	return DecodeOptions(raw)
}

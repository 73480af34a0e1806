// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package project

import (
	"encoding/json"
	"fmt"

	"github.com/tailscale/hujson"
)

// RawConfig is the descriptor content before options are decoded.
type RawConfig struct {
	Path string
	Data map[string]interface{}
}

// ParseConfigFile reads the descriptor at path through readFile.
// Comments and trailing commas are accepted, as tsconfig.json allows them.
func ParseConfigFile(path string, readFile func(string) ([]byte, error)) (*RawConfig, error) {
	b, err := readFile(path)
	if err != nil {
		return nil, &ConfigParseErr{Path: path, Err: err}
	}

	standardized, err := hujson.Standardize(b)
	if err != nil {
		return nil, &ConfigParseErr{Path: path, Err: fmt.Errorf("invalid JSONC: %w", err)}
	}

	var data map[string]interface{}
	err = json.Unmarshal(standardized, &data)
	if err != nil {
		return nil, &ConfigParseErr{Path: path, Err: fmt.Errorf("invalid JSON: %w", err)}
	}
	if data == nil {
		return nil, &ConfigParseErr{Path: path, Err: fmt.Errorf("expected a JSON object")}
	}

	return &RawConfig{
		Path: path,
		Data: data,
	}, nil
}

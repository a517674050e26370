// Copyright 2021 Optakt Labs OÜ
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const compressedExt = ".zst"

type decompressor interface {
	Decompress(compressed []byte) ([]byte, error)
}

// decodeFile reads the file at the given path into value. Files ending in
// `.zst` are decompressed first, and the extension before it picks the format:
// YAML for `.yaml` and `.yml`, JSON otherwise.
func decodeFile(codec decompressor, path string, value interface{}) error {

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read file: %w", err)
	}

	name := path
	if filepath.Ext(name) == compressedExt {
		data, err = codec.Decompress(data)
		if err != nil {
			return fmt.Errorf("could not decompress file: %w", err)
		}
		name = strings.TrimSuffix(name, compressedExt)
	}

	switch filepath.Ext(name) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, value)
	default:
		err = json.Unmarshal(data, value)
	}
	if err != nil {
		return fmt.Errorf("could not decode file (format: %s): %w", filepath.Ext(name), err)
	}

	return nil
}

// Copyright 2026 Benoit Pereira da Silva
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// config holds the CLI's optional settings, loaded from a .cowstr.yaml file
// in the current directory. Every field has a usable zero value, so a
// missing file is not an error.
type config struct {
	// LogLevel is one of "debug", "info", "warn", "error". Empty means "info".
	LogLevel string `yaml:"logLevel"`

	// IngestKeepNewline selects between the package's ScanLines (keeps the
	// trailing newline) and a stripped-newline variant for `cowstr ingest`.
	IngestKeepNewline bool `yaml:"ingestKeepNewline"`

	// IngestSkipBlank drops blank lines from `cowstr ingest`'s output via
	// textual.SkipBlank instead of reporting stats for every empty token.
	IngestSkipBlank bool `yaml:"ingestSkipBlank"`
}

const configFileName = ".cowstr.yaml"

// loadConfig reads configFileName from the current directory.
//
// A missing file yields the zero value config, not an error: the CLI is
// fully usable without a config file.
func loadConfig() (config, error) {
	var cfg config

	data, err := os.ReadFile(configFileName)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading %s: %w", configFileName, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", configFileName, err)
	}
	return cfg, nil
}

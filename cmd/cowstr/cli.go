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

import "github.com/spf13/cobra"

// cli bundles the root command together with the resolved configuration, so
// subcommands can read settings like the default ingest split behavior
// without reaching for a global.
type cli struct {
	cfg     config
	rootCmd *cobra.Command
}

func newCLI(cfg config) *cli {
	rootCmd := &cobra.Command{
		Use:           "cowstr",
		Short:         "Inspect and exercise the cowstring copy-on-write string type",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	c := &cli{cfg: cfg, rootCmd: rootCmd}

	rootCmd.AddCommand(c.newDescribeCmd())
	rootCmd.AddCommand(c.newConcatCmd())
	rootCmd.AddCommand(c.newIngestCmd())

	return c
}

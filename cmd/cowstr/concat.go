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

	"github.com/PreyMa/COWStrings/pkg/cowstring"
	"github.com/spf13/cobra"
)

func (c *cli) newConcatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "concat <value>...",
		Short: "Fold values together with Append, printing the mode transition at each step",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			result := cowstring.New()
			defer result.Release()

			for _, arg := range args {
				before := cowstring.Introspect(&result).Mode()

				if err := result.AppendString(arg); err != nil {
					return fmt.Errorf("appending %q: %w", arg, err)
				}

				after := cowstring.Introspect(&result).Mode()
				_, _ = fmt.Fprintf(out, "%-20q %s -> %s\n", arg, before, after)
			}

			_, _ = fmt.Fprintf(out, "result: %s\n", result.String())
			return nil
		},
	}
}

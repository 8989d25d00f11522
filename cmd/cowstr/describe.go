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

func (c *cli) newDescribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe <value>",
		Short: "Construct a cowstring.String from a value and print its internal representation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := cowstring.FromString(args[0])
			if err != nil {
				return fmt.Errorf("constructing string: %w", err)
			}
			defer s.Release()

			introspection := cowstring.Introspect(&s)
			out := cmd.OutOrStdout()

			_, _ = fmt.Fprintf(out, "mode:           %s\n", introspection.Mode())
			_, _ = fmt.Fprintf(out, "byte capacity:  %d\n", introspection.ByteCap())
			_, _ = fmt.Fprintf(out, "byte used:      %d\n", introspection.ByteUsed())
			_, _ = fmt.Fprintf(out, "code points:    %d\n", s.Len())
			_, _ = fmt.Fprintf(out, "ref count:      %d\n", introspection.RefCount())
			_, _ = fmt.Fprintf(out, "cached length:  %t\n", introspection.HasCachedCodePoints())
			return nil
		},
	}
}

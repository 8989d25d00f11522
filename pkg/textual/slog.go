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

package textual

import (
	"context"
	"log/slog"
)

// Slog is a processor that logs the content of carriers with their index and string representation.
func Slog[C Carrier[C]](label string) ProcessorFunc[C] {
	return ProcessorFunc[C](func(ctx context.Context, in <-chan C) <-chan C {
		return Async(ctx, in, func(p C) C {
			s := p.UTF8String()
			if err := p.GetError(); err != nil {
				slog.Error(label, "err", err, "index", p.GetIndex(), "string", s)
			} else {
				slog.Info(label, "index", p.GetIndex(), "string", s)
			}
			return p
		})
	})
}

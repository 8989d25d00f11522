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

package cowstring

import (
	"errors"

	"github.com/PreyMa/COWStrings/pkg/rcbuffer"
)

// ErrIndexOutOfRange is returned by CharAt and SetCharAt when the requested
// code point index is not within [0, Len()).
var ErrIndexOutOfRange = errors.New("cowstring: code point index out of range")

// ErrLiteralNotTerminated is returned by FromLiteral when the supplied data
// does not end with a trailing zero byte. A literal is expected to carry its
// own terminator, exactly as a C array-literal initializer does; a Go
// caller that wants cowstring to grow one for it should use LiteralString
// instead.
var ErrLiteralNotTerminated = errors.New("cowstring: literal data is not NUL-terminated")

// ErrOutOfMemory is returned when a buffer allocation fails while growing a
// String. It aliases rcbuffer.ErrOutOfMemory so callers can compare against
// either name.
var ErrOutOfMemory = rcbuffer.ErrOutOfMemory

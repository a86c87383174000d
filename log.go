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

package gzjson

import (
	"github.com/rs/zerolog"
)

// The library stays silent unless the consumer installs a logger.
var log = zerolog.Nop()

// SetLogger installs the logger used by Read and Write to emit debug events.
// Call it once during program initialization; the library does not
// synchronize replacement with concurrent calls.
func SetLogger(logger zerolog.Logger) {
	log = logger.With().Str("component", "gzjson").Logger()
}

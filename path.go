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

// Path constrains the location identifiers accepted by Read and Write.
// Plain strings satisfy it, as does any named type whose underlying type
// is a string, so callers with their own path wrappers can pass them
// without converting at every call site. Both forms are normalized to the
// same internal representation and behave identically.
type Path interface {
	~string
}

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

package gzjson_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/gzjson"
)

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	gzjson.SetLogger(zerolog.New(&buf).Level(zerolog.DebugLevel))
	defer gzjson.SetLogger(zerolog.Nop())

	path := filepath.Join(t.TempDir(), "value.json.gz")

	err := gzjson.Write(path, map[string]interface{}{"a": 1})
	require.NoError(t, err)

	var got interface{}
	err = gzjson.Read(path, &got)
	require.NoError(t, err)

	logs := buf.String()
	assert.Contains(t, logs, "file written")
	assert.Contains(t, logs, "file read")
	assert.Contains(t, logs, `"component":"gzjson"`)
}

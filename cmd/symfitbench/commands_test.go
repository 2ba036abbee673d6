// Copyright 2026 go-symfit Authors
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
	"bytes"
	"regexp"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func TestListOps(t *testing.T) {
	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	listOps(cmd, nil)

	text := out.String()
	assert.Regexp(t, regexp.MustCompile(`(?m)^0\s+variable\s+0\s+-$`), text)
	assert.Regexp(t, regexp.MustCompile(`(?m)^4\s+div\s+2\s+0\.25$`), text)
	assert.Regexp(t, regexp.MustCompile(`(?m)^27\s+rsqrt\s+1\s+1\.41421$`), text)
	assert.Contains(t, text, "metrics: pearson, spearman, mae, mse, rmse, logloss")
}

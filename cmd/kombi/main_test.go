// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCalcCmd(t *testing.T) {
	out, err := execute(t, "calc", "1+2*3", "(1+2)*3")
	require.NoError(t, err)
	assert.Equal(t, "1+2*3 = 7\n(1+2)*3 = 9\n", out)
}

func TestCalcCmdCollectsErrors(t *testing.T) {
	out, err := execute(t, "calc", "1+", "2*2", "1/0")
	require.Error(t, err)
	assert.Equal(t, "2*2 = 4\n", out)
	assert.Contains(t, err.Error(), "2 errors occurred")
	assert.Contains(t, err.Error(), `parse "1+"`)
	assert.Contains(t, err.Error(), "division by zero")
}

func TestCalcCmdKeepsArgumentOrder(t *testing.T) {
	var args, want []string
	failing := 0
	for i := range 32 {
		if i%5 == 0 {
			args = append(args, fmt.Sprintf("%d/0", i))
			failing++
			continue
		}
		args = append(args, fmt.Sprintf("%d*2", i))
		want = append(want, fmt.Sprintf("%d*2 = %d\n", i, i*2))
	}
	out, err := execute(t, append([]string{"calc"}, args...)...)
	require.Error(t, err)
	assert.Equal(t, strings.Join(want, ""), out)
	assert.Contains(t, err.Error(), fmt.Sprintf("%d errors occurred", failing))
}

func TestNetstringCmd(t *testing.T) {
	out, err := execute(t, "netstring", "5:hello,5:world,")
	require.NoError(t, err)
	assert.Equal(t, "hello\nworld\n", out)

	_, err = execute(t, "netstring", "--max", "3", "5:hello,")
	assert.ErrorContains(t, err, "exceeds limit of 3")
}

func TestNetstringCmdLenient(t *testing.T) {
	out, err := execute(t, "netstring", "--lenient", "5:hello,xx,3:abc,")
	require.NoError(t, err)
	assert.Equal(t, "hello\nabc\n", out)
}

func TestNetstringCmdFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.ns")
	require.NoError(t, os.WriteFile(path, []byte("2:ok,"), 0o644))

	out, err := execute(t, "netstring", "--file", path)
	require.NoError(t, err)
	assert.Equal(t, "ok\n", out)

	_, err = execute(t, "netstring", "--file", path, "2:ok,")
	assert.ErrorContains(t, err, "not both")
}

func TestListCmd(t *testing.T) {
	out, err := execute(t, "list", "[1, 2, 3]")
	require.NoError(t, err)
	assert.Equal(t, "3 items, sum 6\n", out)

	_, err = execute(t, "list", "[1,]")
	assert.ErrorContains(t, err, "parse list")
}

func TestNoInput(t *testing.T) {
	_, err := execute(t, "list")
	assert.ErrorContains(t, err, "no input")
}

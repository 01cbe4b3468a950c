package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	dir := t.TempDir()
	cmd := newRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{
		"--config", filepath.Join(dir, "config.toml"),
		"--log", filepath.Join(dir, "findpanel.log"),
	}, args...))
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestFindCommand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "init.lua")
	require.NoError(t, os.WriteFile(path, []byte("require('a')\nlocal required = 1"), 0644))

	out, _, err := execute(t, "find", "--word", "require", path)
	require.NoError(t, err)
	assert.Equal(t, "== "+path+" ==\n"+
		"1 occurrence found in document matching pattern require\n"+
		"1: require('a')\n", out)
}

func TestFindCommandReplaceAndWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "init.lua")
	require.NoError(t, os.WriteFile(path, []byte("old_name()"), 0644))

	_, errOut, err := execute(t, "find", "--regex", `old_(\w+)`, "--replace", "new_$1", "--replace-all", "--write", path)
	require.NoError(t, err)
	assert.Equal(t, "1 of 1 files changed, 1 saved\n", errOut)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new_name()", string(data))
}

func TestFindCommandArgs(t *testing.T) {
	_, _, err := execute(t, "find", "pattern")
	assert.Error(t, err)

	_, _, err = execute(t, "find", "--write", "pattern", t.TempDir())
	assert.ErrorContains(t, err, "--write requires --replace-all")
}

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRoot_DefaultFormat(t *testing.T) {
	in := `{"timestamp":"2012-08-28T18:15:00Z","message":"foo","priority":42,"priorityName":"bar"}` + "\n"

	out, _, err := execute(t, in)
	require.NoError(t, err)
	assert.Equal(t, "2012-08-28T18:15:00+00:00 bar (42): foo\n", out)
}

func TestRoot_FormatFlags(t *testing.T) {
	in := strings.Join([]string{
		`{"timestamp":"2012-08-28T18:15:00Z","message":"first","priority":3}`,
		``,
		`{"timestamp":"2012-08-28T18:16:00Z","message":"second","priorityName":"warning"}`,
	}, "\n")

	out, _, err := execute(t, in, "--format", "[%timestamp%] %priorityName%/%priority% %message%", "--date-format", "U")
	require.NoError(t, err)
	assert.Equal(t, "[1346177700] ERR/3 first\n[1346177760] warning/4 second\n", out)
}

func TestRoot_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "simplelog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("formatter:\n  format: \"%timestamp% %message%\"\n  dateTimeFormat: \"15:04\"\n"), 0o600))

	in := `{"timestamp":"2012-08-28T18:15:00Z","message":"from config"}`

	out, _, err := execute(t, in, "--config", path)
	require.NoError(t, err)
	assert.Equal(t, "18:15 from config\n", out)

	out, _, err = execute(t, in, "--config", path, "--date-format", "2006")
	require.NoError(t, err)
	assert.Equal(t, "2012 from config\n", out)
}

func TestRoot_InvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "simplelog.toml")
	require.NoError(t, os.WriteFile(path, []byte("[formatter]\nformat = 42\n"), 0o600))

	_, _, err := execute(t, "", "--config", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be a string")
}

func TestRoot_Files(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.jsonl")
	b := filepath.Join(dir, "b.jsonl")
	require.NoError(t, os.WriteFile(a, []byte(`{"message":"one"}`+"\n"), 0o600))
	require.NoError(t, os.WriteFile(b, []byte(`{"message":"two"}`+"\n"), 0o600))

	out, _, err := execute(t, "", "--format", "%message%", a, b)
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\n", out)

	_, _, err = execute(t, "", filepath.Join(dir, "missing.jsonl"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open input")
}

func TestRoot_MalformedLines(t *testing.T) {
	in := "not json\n{\"message\":\"ok\"}\nnull\n{\"message\":\"half\"} trailing\n"

	out, stderr, err := execute(t, in, "--format", "%message%")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "3 malformed line(s) skipped")
	assert.Equal(t, "ok\n", out)
	assert.Contains(t, stderr, "simplelog: WARN: skipping line (-:1)")
	assert.Contains(t, stderr, "(-:3)")
	assert.Contains(t, stderr, "(-:4)")
	assert.NotContains(t, out, "half")
}

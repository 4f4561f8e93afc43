package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testdata(name string) string {
	return filepath.Join("..", "..", "testdata", name)
}

func runCmd(t *testing.T, args ...string) (int, string, string) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	code := run(append([]string{"paramgen"}, args...), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunUsage(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{
			name:       "no command",
			wantCode:   1,
			wantStdout: "generate",
			wantStderr: "missing command",
		},
		{
			name:       "help flag",
			args:       []string{"--help"},
			wantCode:   0,
			wantStdout: "template",
		},
		{
			name:       "unknown command",
			args:       []string{"frobnicate"},
			wantCode:   1,
			wantStderr: `unknown command "frobnicate"`,
		},
		{
			name:       "client stub",
			args:       []string{"client", testdata("params.csv")},
			wantCode:   1,
			wantStderr: "client generation is not implemented",
		},
		{
			name:       "generate without path",
			args:       []string{"generate"},
			wantCode:   1,
			wantStderr: "Usage: paramgen generate [options] PATH",
		},
		{
			name:       "generate with two paths",
			args:       []string{"generate", "a.txt", "b.txt"},
			wantCode:   1,
			wantStderr: "expected exactly one input path",
		},
		{
			name:       "generate missing file",
			args:       []string{"generate", testdata("missing.txt")},
			wantCode:   1,
			wantStderr: "failed to access",
		},
		{
			name:       "invalid delimiter",
			args:       []string{"generate", "--delimiter", "::", testdata("params.csv")},
			wantCode:   1,
			wantStderr: "delimiter must be a single character",
		},
		{
			name:       "empty marker",
			args:       []string{"generate", "--marker", "", testdata("params.csv")},
			wantCode:   1,
			wantStderr: "marker must not be empty",
		},
		{
			name:       "missing type mapping",
			args:       []string{"generate", "--types", testdata("missing.yaml"), testdata("params.csv")},
			wantCode:   1,
			wantStderr: "missing.yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, stderr := runCmd(t, tt.args...)
			assert.Equal(t, tt.wantCode, code)
			assert.Contains(t, stdout, tt.wantStdout)
			assert.Contains(t, stderr, tt.wantStderr)
		})
	}
}

func TestRunTemplate(t *testing.T) {
	code, stdout, _ := runCmd(t, "template")
	assert.Equal(t, 0, code)
	assert.Equal(t, tableTemplate, stdout)

	code, stdout, _ = runCmd(t, "template", "txt")
	assert.Equal(t, 0, code)
	assert.Equal(t, strideTemplate, stdout)

	code, stdout, _ = runCmd(t, "template", "TSV")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "Parameter\tGo Parameter\tType\tDescription\tValues\n")

	code, _, stderr := runCmd(t, "template", "xml")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, `unknown template format "xml"`)
}

func TestRunGenerate(t *testing.T) {
	code, stdout, stderr := runCmd(t, "generate", testdata("params.txt"))
	require.Equal(t, 0, code, stderr)

	assert.Equal(t, "type NAME struct {\n"+
		"// Required. Maximum items to return.\n"+
		"Limit int `qs:\"limit,omitempty\"`\n"+
		"// Number of items to skip.\n"+
		"Offset int `qs:\"offset,omitempty\"`\n"+
		"NoCache enum.Bool `qs:\"noCache,omitempty\"`\n"+
		"Order  `qs:\"order,omitempty\"`\n"+
		"}\n", stdout)
	assert.Contains(t, stderr, "parameter has no type")
}

func TestRunGenerateOptions(t *testing.T) {
	code, stdout, stderr := runCmd(t, "generate",
		"--name", "Basic",
		"--types", testdata("types.yaml"),
		testdata("params.csv"),
	)
	require.Equal(t, 0, code, stderr)

	assert.Contains(t, stdout, "type Basic struct {\n")
	assert.Contains(t, stdout, "CreatedAfter int64 `qs:\"createdAfter,omitempty\"`\n")
	assert.Contains(t, stdout, "Limit int `qs:\"limit,omitempty\"`\n", "default rules stay active")
}

func TestRunGenerateBare(t *testing.T) {
	code, stdout, stderr := runCmd(t, "generate", "--bare", "--delimiter", "tab", testdata("params.tsv"))
	require.Equal(t, 0, code, stderr)

	assert.Equal(t, "// Required. The item id.\n"+
		"Id int `qs:\"id,omitempty\"`\n"+
		"// Search query.\n"+
		"Q string `qs:\"q,omitempty\"`\n", stdout)
}

func TestRunTemplateRoundTrip(t *testing.T) {
	for _, format := range []string{"csv", "tsv"} {
		t.Run(format, func(t *testing.T) {
			code, template, stderr := runCmd(t, "template", format)
			require.Equal(t, 0, code, stderr)

			path := filepath.Join(t.TempDir(), "params."+format)
			require.NoError(t, os.WriteFile(path, []byte(template), 0644))

			code, stdout, stderr := runCmd(t, "generate", "--bare", path)
			require.Equal(t, 0, code, stderr)

			assert.Contains(t, stdout, "// Required. Maximum items to return.\nLimit int `qs:\"limit,omitempty\"`\n")
			assert.Contains(t, stdout, "NoCache enum.Bool `qs:\"noCache,omitempty\"`\n")
		})
	}
}

func TestRunGenerateWidthFromEnv(t *testing.T) {
	t.Setenv("PARAMGEN_WIDTH", "12")

	code, stdout, stderr := runCmd(t, "generate", "--bare", testdata("params.tsv"))
	require.Equal(t, 0, code, stderr)

	assert.Contains(t, stdout, "// Required.\n// The item id.\nId int")
}

func TestParseDelimiter(t *testing.T) {
	tests := map[string]rune{
		"tab":       '\t',
		`\t`:        '\t',
		"TAB":       '\t',
		"comma":     ',',
		"semicolon": ';',
		"|":         '|',
		";":         ';',
	}
	for in, want := range tests {
		got, err := parseDelimiter(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := parseDelimiter("")
	assert.Error(t, err)
	_, err = parseDelimiter("ab")
	assert.Error(t, err)
}

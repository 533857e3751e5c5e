package main

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCLI 执行命令并返回退出码、stdout、stderr
func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// =============================================================================
// split
// =============================================================================

func TestSplit_AllTokens(t *testing.T) {
	code, out, _ := runCLI(t, "These are some words", "split")
	require.Equal(t, 0, code)
	assert.Equal(t, "These\nare\nsome\nwords\n", out)
}

func TestSplit_TakePrintsRest(t *testing.T) {
	code, out, _ := runCLI(t, "say joe Hey Joe, what's up?", "split", "--take", "2")
	require.Equal(t, 0, code)
	assert.Equal(t, "say\njoe\nrest: \"Hey Joe, what's up?\"\n", out)
}

func TestSplit_ShowRestAfterExhaustion(t *testing.T) {
	code, out, _ := runCLI(t, "hello world       ", "split", "--rest")
	require.Equal(t, 0, code)
	assert.Equal(t, "hello\nworld\nrest: \"\"\n", out)
}

func TestSplit_JSON(t *testing.T) {
	input := "word1   word2  word3     word4 word5    some  more   text "
	code, out, _ := runCLI(t, input, "split", "--format", "json", "--take", "5")
	require.Equal(t, 0, code)

	var result splitResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, []string{"word1", "word2", "word3", "word4", "word5"}, result.Tokens)
	assert.Equal(t, "   some  more   text ", result.Rest)
}

func TestSplit_JSONEmptyInput(t *testing.T) {
	code, out, _ := runCLI(t, "", "split", "--format", "json")
	require.Equal(t, 0, code)
	assert.JSONEq(t, `{"tokens":[],"rest":""}`, out)
}

func TestSplit_JSONInvalidUTF8RestIsBase64(t *testing.T) {
	code, out, _ := runCLI(t, "a \xffb\xfe tail", "split", "--take", "1", "--format", "json")
	require.Equal(t, 0, code)

	var result splitResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, []string{"a"}, result.Tokens)
	assert.Equal(t, "base64", result.RestEncoding)

	rest, err := base64.StdEncoding.DecodeString(result.Rest)
	require.NoError(t, err)
	assert.Equal(t, "\xffb\xfe tail", string(rest))
}

func TestSplit_TextInvalidUTF8RestIsQuoted(t *testing.T) {
	code, out, _ := runCLI(t, "a \xffb tail", "split", "--take", "1")
	require.Equal(t, 0, code)
	assert.Equal(t, "a\nrest: \"\\xffb tail\"\n", out)
}

func TestSplit_FromFile(t *testing.T) {
	path := writeFile(t, "input.txt", "hello\n")
	code, out, _ := runCLI(t, "ignored stdin", "split", path)
	require.Equal(t, 0, code)
	assert.Equal(t, "hello\n", out)
}

func TestSplit_MissingFile(t *testing.T) {
	code, _, errOut := runCLI(t, "", "split", filepath.Join(t.TempDir(), "nope.txt"))
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "read input")
}

func TestSplit_TooManyFiles(t *testing.T) {
	code, _, errOut := runCLI(t, "", "split", "a.txt", "b.txt")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "at most one input file")
}

func TestSplit_InvalidFormat(t *testing.T) {
	code, _, errOut := runCLI(t, "a b", "split", "--format", "xml")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "split.format")
}

func TestSplit_NegativeTake(t *testing.T) {
	code, _, errOut := runCLI(t, "a b", "split", "--take", "-1")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "split.take")
}

func TestSplit_ConfigFileAndFlagOverride(t *testing.T) {
	cfgPath := writeFile(t, "splitrest.yaml", `
split:
  format: "json"
  take: 1
`)

	code, out, _ := runCLI(t, "say Hello, World!", "split", "--config", cfgPath)
	require.Equal(t, 0, code)
	assert.JSONEq(t, `{"tokens":["say"],"rest":"Hello, World!"}`, out)

	// 命令行参数覆盖配置文件
	code, out, _ = runCLI(t, "say Hello, World!", "split", "--config", cfgPath, "--format", "text")
	require.Equal(t, 0, code)
	assert.Equal(t, "say\nrest: \"Hello, World!\"\n", out)
}

func TestSplit_WritesMetricsTextfile(t *testing.T) {
	promPath := filepath.Join(t.TempDir(), "splitrest.prom")
	t.Setenv("SPLITREST_METRICS_ENABLED", "true")
	t.Setenv("SPLITREST_METRICS_TEXTFILE_PATH", promPath)

	code, _, _ := runCLI(t, "a bb ccc", "split")
	require.Equal(t, 0, code)

	data, err := os.ReadFile(promPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "splitrest_tokens_total 3")
	assert.Contains(t, string(data), `splitrest_runs_total{command="split",status="ok"} 1`)
}

func TestSplit_SetupFailureIsRecorded(t *testing.T) {
	promPath := filepath.Join(t.TempDir(), "splitrest.prom")
	t.Setenv("SPLITREST_METRICS_ENABLED", "true")
	t.Setenv("SPLITREST_METRICS_TEXTFILE_PATH", promPath)

	// 参数校验失败
	code, _, _ := runCLI(t, "a b", "split", "--format", "xml")
	require.Equal(t, 1, code)

	data, err := os.ReadFile(promPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `splitrest_runs_total{command="split",status="error"} 1`)

	// 输入文件读取失败
	code, _, _ = runCLI(t, "", "count", filepath.Join(t.TempDir(), "nope.txt"))
	require.Equal(t, 1, code)

	data, err = os.ReadFile(promPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `splitrest_runs_total{command="count",status="error"} 1`)
}

func TestSetup_FlagErrorReturnsUsableEnv(t *testing.T) {
	env, err := setup("split", []string{"--bogus"}, strings.NewReader(""), io.Discard)
	require.Error(t, err)
	require.NotNil(t, env)
	require.NotNil(t, env.collector)

	assert.ErrorIs(t, env.finish("split", err), err)

	expected := `
# HELP splitrest_runs_total Total number of command runs
# TYPE splitrest_runs_total counter
splitrest_runs_total{command="split",status="error"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(env.collector.Registry(), strings.NewReader(expected), "splitrest_runs_total"))
}

func TestSplit_Help(t *testing.T) {
	code, _, errOut := runCLI(t, "", "split", "-h")
	assert.Equal(t, 0, code)
	assert.Contains(t, errOut, "-take")
}

// =============================================================================
// count
// =============================================================================

func TestCount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		args  []string
		want  string
	}{
		{name: "default whitespace", input: "These are some words", args: nil, want: "4\n"},
		{name: "empty", input: "", args: nil, want: "0\n"},
		{name: "estimator", input: "abcdefghijklmnop", args: []string{"--counter", "estimator"}, want: "4\n"},
		{name: "tiktoken empty input", input: "", args: []string{"--counter", "cl100k"}, want: "0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out, _ := runCLI(t, tt.input, append([]string{"count"}, tt.args...)...)
			require.Equal(t, 0, code)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestCount_UnknownCounter(t *testing.T) {
	code, _, errOut := runCLI(t, "a", "count", "--counter", "bpe")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "unknown counter")
}

// =============================================================================
// 其他命令
// =============================================================================

func TestRun_Version(t *testing.T) {
	code, out, _ := runCLI(t, "", "version")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "splitrest dev")
}

func TestRun_HelpAndUsage(t *testing.T) {
	code, out, _ := runCLI(t, "", "help")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Usage:")

	code, _, errOut := runCLI(t, "")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "Usage:")

	code, _, errOut = runCLI(t, "", "frobnicate")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "Unknown command: frobnicate")
}

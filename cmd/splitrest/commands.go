package main

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/BaSui01/splitrest/config"
	"github.com/BaSui01/splitrest/internal/metrics"
	"github.com/BaSui01/splitrest/tokenizer"
)

// options 命令行参数，显式给出的值覆盖配置文件
type options struct {
	configPath string
	take       int
	format     string
	showRest   bool
	counter    string
}

// splitResult 是 json 格式的输出。
// rest 不是合法 UTF-8 时以 base64 编码输出，并设置 rest_encoding。
type splitResult struct {
	Tokens       []string `json:"tokens"`
	Rest         string   `json:"rest"`
	RestEncoding string   `json:"rest_encoding,omitempty"`
}

func newSplitResult(tokens []string, rest string) splitResult {
	if utf8.ValidString(rest) {
		return splitResult{Tokens: tokens, Rest: rest}
	}
	return splitResult{
		Tokens:       tokens,
		Rest:         base64.StdEncoding.EncodeToString([]byte(rest)),
		RestEncoding: "base64",
	}
}

// commandEnv 子命令运行所需的依赖
type commandEnv struct {
	cfg       *config.Config
	logger    *zap.Logger
	collector *metrics.Collector
	input     string
}

func newFlagSet(name string, opts *options, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "Path to config file")
	switch name {
	case "split":
		fs.IntVar(&opts.take, "take", 0, "Extract only the first n tokens")
		fs.StringVar(&opts.format, "format", config.FormatText, "Output format: text, json")
		fs.BoolVar(&opts.showRest, "rest", false, "Print the unconsumed remainder")
	case "count":
		fs.StringVar(&opts.counter, "counter", "whitespace", "Counter name")
	}
	return fs
}

// setup 解析参数、加载配置并读取输入。
// 出错时仍返回可用的 env，使失败的执行也能被 finish 记录。
func setup(name string, args []string, stdin io.Reader, stderr io.Writer) (*commandEnv, error) {
	env := &commandEnv{
		cfg:    config.DefaultConfig(),
		logger: zap.NewNop(),
	}
	err := env.load(name, args, stdin, stderr)
	env.collector = metrics.NewCollector(env.cfg.Metrics.Namespace, env.logger)
	return env, err
}

func (e *commandEnv) load(name string, args []string, stdin io.Reader, stderr io.Writer) error {
	var opts options
	fs := newFlagSet(name, &opts, stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 1 {
		return fmt.Errorf("expected at most one input file, got %d", fs.NArg())
	}

	loader := config.NewLoader()
	if opts.configPath != "" {
		loader = loader.WithConfigPath(opts.configPath)
	}
	cfg, err := loader.Load()
	if err != nil {
		return err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "take":
			cfg.Split.Take = opts.take
		case "format":
			cfg.Split.Format = opts.format
		case "rest":
			cfg.Split.ShowRest = opts.showRest
		case "counter":
			cfg.Split.Counter = opts.counter
		}
	})

	e.cfg = cfg
	e.logger = initLogger(cfg.Log).With(zap.String("command", name))

	if err := cfg.Validate(); err != nil {
		return err
	}

	e.input, err = readInput(fs.Arg(0), stdin)
	return err
}

// readInput 读取文件内容，path 为空或 "-" 时读取 stdin
func readInput(path string, stdin io.Reader) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}

// finish 记录执行结果并按需写出指标
func (e *commandEnv) finish(command string, err error) error {
	if errors.Is(err, flag.ErrHelp) {
		return err
	}
	e.collector.RecordRun(command, err)
	if e.cfg.Metrics.Enabled && e.cfg.Metrics.TextfilePath != "" {
		if werr := e.collector.WriteTextfile(e.cfg.Metrics.TextfilePath); werr != nil {
			e.logger.Warn("failed to write metrics", zap.Error(werr))
		}
	}
	_ = e.logger.Sync()
	return err
}

// =============================================================================
// ✂️ split 命令
// =============================================================================

func runSplit(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	env, err := setup("split", args, stdin, stderr)
	if err != nil {
		return env.finish("split", err)
	}
	return env.finish("split", env.split(stdout))
}

func (e *commandEnv) split(w io.Writer) error {
	sw := tokenizer.NewSplitWhitespace(e.input)
	take := e.cfg.Split.Take

	tokens := []string{}
	for take == 0 || len(tokens) < take {
		tok, ok := sw.Next()
		if !ok {
			break
		}
		e.collector.RecordToken(tok)
		tokens = append(tokens, tok)
	}
	rest := sw.Rest()
	e.collector.RecordRest(rest)

	e.logger.Info("split completed",
		zap.Int("tokens", len(tokens)),
		zap.Int("rest_bytes", len(rest)))

	if e.cfg.Split.Format == config.FormatJSON {
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(newSplitResult(tokens, rest)); err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
		return nil
	}

	for _, tok := range tokens {
		if _, err := fmt.Fprintln(w, tok); err != nil {
			return fmt.Errorf("write token: %w", err)
		}
	}
	if e.cfg.Split.ShowRest || take > 0 {
		if _, err := fmt.Fprintf(w, "rest: %s\n", strconv.Quote(rest)); err != nil {
			return fmt.Errorf("write rest: %w", err)
		}
	}
	return nil
}

// =============================================================================
// 🔢 count 命令
// =============================================================================

func runCount(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	env, err := setup("count", args, stdin, stderr)
	if err != nil {
		return env.finish("count", err)
	}
	return env.finish("count", env.count(stdout))
}

func (e *commandEnv) count(w io.Writer) error {
	counter, err := tokenizer.GetCounter(e.cfg.Split.Counter)
	if err != nil {
		return err
	}

	n, err := counter.CountTokens(e.input)
	if err != nil {
		return fmt.Errorf("count tokens with %s: %w", counter.Name(), err)
	}

	e.logger.Info("count completed",
		zap.String("counter", counter.Name()),
		zap.Int("tokens", n))

	_, err = fmt.Fprintln(w, n)
	return err
}

package tokenizer

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// ErrUnknownCounter is returned by GetCounter when no counter matches.
var ErrUnknownCounter = errors.New("unknown counter")

// Counter 是统一的 Token 计数接口.
type Counter interface {
	// CountTokens 返回给定文本的 token 数.
	CountTokens(text string) (int, error)

	// Name 返回计数器名称.
	Name() string
}

// WhitespaceCounter 按空白切分计数，与 SplitWhitespace 产出的 token 一一对应.
type WhitespaceCounter struct{}

func (WhitespaceCounter) CountTokens(text string) (int, error) {
	sw := NewSplitWhitespace(text)
	n := 0
	for {
		if _, ok := sw.Next(); !ok {
			return n, nil
		}
		n++
	}
}

func (WhitespaceCounter) Name() string {
	return "whitespace"
}

// 全局计数器注册表.
var (
	counters = map[string]Counter{
		"whitespace": WhitespaceCounter{},
		"estimator":  NewEstimatorCounter(0),
	}
	countersMu sync.RWMutex
)

func init() {
	registerTiktokenCounters(counters)
}

// RegisterCounter 以给定名称注册计数器，同名覆盖.
func RegisterCounter(name string, c Counter) {
	countersMu.Lock()
	defer countersMu.Unlock()
	counters[name] = c
}

// GetCounter 返回注册在 name 下的计数器。
// 精确匹配失败时尝试前缀匹配（如 "estimator-cjk" 匹配 "estimator"），取最长前缀.
func GetCounter(name string) (Counter, error) {
	countersMu.RLock()
	defer countersMu.RUnlock()

	if c, ok := counters[name]; ok {
		return c, nil
	}

	var (
		best    Counter
		bestLen int
	)
	for prefix, c := range counters {
		if strings.HasPrefix(name, prefix) && len(prefix) > bestLen {
			best, bestLen = c, len(prefix)
		}
	}
	if best != nil {
		return best, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownCounter, name)
}

// GetCounterOr 返回注册的计数器，未注册时回退到 WhitespaceCounter.
func GetCounterOr(name string) Counter {
	c, err := GetCounter(name)
	if err != nil {
		return WhitespaceCounter{}
	}
	return c
}

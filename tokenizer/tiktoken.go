package tokenizer

import (
	"fmt"
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

// TiktokenCounter counts BPE tokens with a tiktoken encoding
// (cl100k_base, o200k_base, ...).
type TiktokenCounter struct {
	encoding string
	enc      *tiktoken.Tiktoken
	once     sync.Once
	initErr  error
}

// 注册表中的 tiktoken 编码: 计数器名 → 编码名.
var tiktokenEncodings = map[string]string{
	"cl100k": "cl100k_base",
	"o200k":  "o200k_base",
}

// NewTiktokenCounter creates a counter for the named encoding. The encoding
// is loaded on first use, so construction never fails or touches the network.
func NewTiktokenCounter(encoding string) *TiktokenCounter {
	return &TiktokenCounter{encoding: encoding}
}

// init lazily 初始化 tiktoken 编码(可以在第一次使用时下载数据).
func (t *TiktokenCounter) init() error {
	t.once.Do(func() {
		enc, err := tiktoken.GetEncoding(t.encoding)
		if err != nil {
			t.initErr = fmt.Errorf("init tiktoken encoding %s: %w", t.encoding, err)
			return
		}
		t.enc = enc
	})
	return t.initErr
}

func (t *TiktokenCounter) CountTokens(text string) (int, error) {
	if text == "" {
		return 0, nil
	}
	if err := t.init(); err != nil {
		return 0, err
	}
	return len(t.enc.Encode(text, nil, nil)), nil
}

func (t *TiktokenCounter) Name() string {
	return fmt.Sprintf("tiktoken[%s]", t.encoding)
}

// registerTiktokenCounters 把已知编码登记到 counters，调用方需持有写锁或处于包初始化阶段.
func registerTiktokenCounters(m map[string]Counter) {
	for name, encoding := range tiktokenEncodings {
		m[name] = NewTiktokenCounter(encoding)
	}
}

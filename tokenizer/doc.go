// Package tokenizer 提供零拷贝的空白分词游标 SplitWhitespace，
// 以及基于它的 Token 计数器（空白计数与 CJK 估算器）。
//
// 游标在任意时刻都可以通过 Rest 取回尚未消费的原始文本，
// 例如先读出命令名，再把剩余部分原样交给下游处理：
//
//	sw := tokenizer.NewSplitWhitespace("say Hello, World!")
//	cmd, _ := sw.Next() // "say"
//	arg := sw.Rest()    // "Hello, World!"
package tokenizer

/*
Package main 提供 splitrest 命令行入口。

# 概述

cmd/splitrest 从文件或标准输入读取文本，用 tokenizer.SplitWhitespace
逐个取出空白分隔的 token，并可在取出若干个之后原样输出剩余文本。

# 主要能力

  - 子命令：split（切分并输出 token 与剩余文本）、count（按计数器统计）、
    version、help
  - 配置：YAML 文件 + SPLITREST_ 环境变量，命令行参数优先
  - 结构化日志（zap），默认写 stderr，stdout 只输出数据
  - 指标：可选写出 Prometheus textfile
  - 构建注入：Version、BuildTime、GitCommit 通过 ldflags 设置
*/
package main

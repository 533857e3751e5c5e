/*
包 metrics 提供基于 Prometheus 的分词指标采集能力。

# 概述

Collector 在私有 Registry 上注册指标，多个 Collector 可以并存
（例如测试中），不会与默认 Registry 冲突。命令行工具在结束时
通过 WriteTextfile 把指标写成 node_exporter textfile 格式。

# 核心类型

  - Collector：持有 token 计数、token 长度直方图、剩余长度 Gauge
    与按 command/status 分组的执行计数。
*/
package metrics

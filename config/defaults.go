// =============================================================================
// 📦 splitrest 默认配置
// =============================================================================
package config

// DefaultConfig 返回默认配置
func DefaultConfig() *Config {
	return &Config{
		Split:   DefaultSplitConfig(),
		Log:     DefaultLogConfig(),
		Metrics: DefaultMetricsConfig(),
	}
}

// DefaultSplitConfig 返回默认分词配置
func DefaultSplitConfig() SplitConfig {
	return SplitConfig{
		Take:     0,
		Format:   FormatText,
		Counter:  "whitespace",
		ShowRest: false,
	}
}

// DefaultLogConfig 返回默认日志配置
// 输出到 stderr，stdout 只承载数据
func DefaultLogConfig() LogConfig {
	return LogConfig{
		Level:            "warn",
		Format:           "json",
		OutputPaths:      []string{"stderr"},
		EnableCaller:     false,
		EnableStacktrace: false,
	}
}

// DefaultMetricsConfig 返回默认指标配置
func DefaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Enabled:      false,
		Namespace:    "splitrest",
		TextfilePath: "",
	}
}

// Package config 提供 splitrest 的配置管理功能。
//
// 支持从 YAML 文件与环境变量（SPLITREST_ 前缀）加载配置，
// 并在使用前进行校验。
package config

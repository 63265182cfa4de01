package locale

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// 预定义错误常量.
var (
	// ErrFileNotFound 配置文件不存在.
	ErrFileNotFound = errors.New("配置文件不存在")

	// ErrEmptySupported 支持的语言列表为空.
	ErrEmptySupported = errors.New("支持的语言列表为空")

	// ErrDefaultNotSupported 默认语言无法匹配到支持列表.
	ErrDefaultNotSupported = errors.New("默认语言无法匹配到支持列表")
)

// Config 应用语言配置.
//
// 通常来源于应用的本地化元数据文件，例如:
//
//	default: en-US
//	supported:
//	  - en-US
//	  - zh-Hans-CN
//	  - ar
type Config struct {
	// Default 默认标签，最佳匹配失败时兜底；可为空.
	Default string `mapstructure:"default"`

	// Supported 支持的标签列表，顺序即同级匹配时的决胜顺序.
	Supported []string `mapstructure:"supported"`
}

// Validate 验证配置.
func (c *Config) Validate() error {
	if len(c.Supported) == 0 {
		return ErrEmptySupported
	}
	if c.Default != "" {
		if _, ok := FindBestMatch(Parse(c.Default), c.SupportedTags()); !ok {
			return fmt.Errorf("%w: %s", ErrDefaultNotSupported, c.Default)
		}
	}
	return nil
}

// SupportedTags 返回解析后的支持列表，保持原有顺序.
func (c *Config) SupportedTags() []Tag {
	tags := make([]Tag, 0, len(c.Supported))
	for _, raw := range c.Supported {
		tags = append(tags, Parse(raw))
	}
	return tags
}

// DefaultTag 返回解析后的默认标签.
func (c *Config) DefaultTag() Tag {
	return Parse(c.Default)
}

// Options 将配置转换为中间件选项.
func (c *Config) Options() []Option {
	opts := []Option{WithSupportedTags(c.SupportedTags()...)}
	if c.Default != "" {
		opts = append(opts, WithDefaultTag(c.DefaultTag()))
	}
	return opts
}

// LoadConfig 从文件加载语言配置.
// 支持 yaml, json, toml 等格式（根据文件扩展名自动识别），加载后自动验证.
func LoadConfig(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// MustLoadConfig 加载语言配置，失败时 panic.
func MustLoadConfig(path string) *Config {
	c, err := LoadConfig(path)
	if err != nil {
		panic(err)
	}
	return c
}

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

// DefaultConfigPath 默认配置文件路径（工作目录下 config/config.yaml）
func DefaultConfigPath() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("获取工作目录失败: %w", err)
	}
	return filepath.Join(wd, "config", "config.yaml"), nil
}

// Default 默认配置
func Default() *Config {
	return &Config{
		App:     AppConfig{Name: "skillforge", LogLevel: "info"},
		Server:  ServerConfig{ListenAddr: "127.0.0.1:8422"},
		Storage: StorageConfig{DBPath: "./data/skillforge.db"},
		AI: AIConfig{DeepSeek: DeepSeekConfig{
			APIKey:     "${DEEPSEEK_API_KEY}",
			BaseURL:    "https://api.deepseek.com",
			Model:      "deepseek-chat",
			MaxRetries: 1,
		}},
	}
}

// WriteFile 把配置写回 yaml 文件（首次启动生成默认配置用）
func WriteFile(path string, cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("cfg 不能为空")
	}
	if path == "" {
		return fmt.Errorf("path 不能为空")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("创建配置目录失败: %w", err)
	}

	payload := map[string]any{
		"app": map[string]any{
			"name":      cfg.App.Name,
			"log_level": cfg.App.LogLevel,
		},
		"server": map[string]any{
			"listen_addr": cfg.Server.ListenAddr,
		},
		"storage": map[string]any{
			"db_path": cfg.Storage.DBPath,
		},
		"ai": map[string]any{
			"deepseek": map[string]any{
				"api_key":     cfg.AI.DeepSeek.APIKey,
				"base_url":    cfg.AI.DeepSeek.BaseURL,
				"model":       cfg.AI.DeepSeek.Model,
				"max_retries": cfg.AI.DeepSeek.MaxRetries,
			},
		},
	}

	b, err := yaml.Marshal(payload)
	if err != nil {
		return fmt.Errorf("序列化配置失败: %w", err)
	}

	// api_key 可能落盘，权限收紧
	if err := os.WriteFile(path, b, 0o600); err != nil {
		return fmt.Errorf("写入配置文件失败: %w", err)
	}
	return nil
}

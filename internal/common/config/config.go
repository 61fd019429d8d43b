package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

// Config 应用配置
type Config struct {
	App     AppConfig     `json:"app"`
	Storage StorageConfig `json:"storage"`
	Auth    AuthConfig    `json:"auth"`
	Consul  ConsulConfig  `json:"consul"`
	Jaeger  JaegerConfig  `json:"jaeger"`
	Log     LogConfig     `json:"log"`
}

// AppConfig 应用自身信息
type AppConfig struct {
	Name string `json:"name"` // 应用名称（同时作为 tracing 的 service name）
}

// StorageConfig 本地存储配置
type StorageConfig struct {
	Path string `json:"path"` // SQLite 数据库文件路径
}

// AuthConfig 登录令牌配置（可选能力，默认关闭）
type AuthConfig struct {
	Enabled   bool   `json:"enabled"`    // 是否在登录/注册时签发 access token
	JWTSecret string `json:"jwt_secret"` // HS256 签名密钥
	Issuer    string `json:"issuer"`
	Audience  string `json:"audience"`
	TTLHours  int    `json:"ttl_hours"` // token 有效期（小时），<=0 时取默认 24h
}

// ConsulConfig Consul配置（仅用于从 KV 拉取配置）
type ConsulConfig struct {
	Host string `json:"host"`
	Port int    `json:"port"`
}

// JaegerConfig Jaeger配置
type JaegerConfig struct {
	Endpoint string  `json:"endpoint"`
	Sampler  float64 `json:"sampler"` // 采样率 0.0-1.0
}

// LogConfig 日志配置
type LogConfig struct {
	Level  string `json:"level"`  // debug, info, warn, error
	Format string `json:"format"` // json, text
	Output string `json:"output"` // stdout, file
	Path   string `json:"path"`   // 日志文件路径
}

var (
	globalConfig *Config
	configOnce   sync.Once
)

// LoadConfig 加载配置
func LoadConfig(configPath string) (*Config, error) {
	var err error
	configOnce.Do(func() {
		globalConfig = &Config{}
		// 如果配置文件不存在，使用默认配置
		if _, err = os.Stat(configPath); os.IsNotExist(err) {
			logrus.Warnf("Config file not found: %s, using default config", configPath)
			globalConfig = defaultConfig()
			err = nil
			return
		}

		data, readErr := os.ReadFile(configPath)
		if readErr != nil {
			err = fmt.Errorf("failed to read config file: %w", readErr)
			return
		}

		if unmarshalErr := json.Unmarshal(data, globalConfig); unmarshalErr != nil {
			err = fmt.Errorf("failed to parse config file: %w", unmarshalErr)
			return
		}
	})

	if err != nil {
		return nil, err
	}

	return globalConfig, nil
}

// GetConfig 获取全局配置
func GetConfig() *Config {
	if globalConfig == nil {
		return defaultConfig()
	}
	return globalConfig
}

// defaultConfig 默认配置（开发环境）
func defaultConfig() *Config {
	return &Config{
		App: AppConfig{
			Name: "smartdriveschool",
		},
		Storage: StorageConfig{
			Path: "data/driveschool.db",
		},
		Auth: AuthConfig{
			Enabled:  false,
			Issuer:   "smartdriveschool",
			Audience: "smartdriveschool",
			TTLHours: 24,
		},
		Consul: ConsulConfig{
			Host: "localhost",
			Port: 8500,
		},
		Jaeger: JaegerConfig{
			Endpoint: "http://localhost:14268/api/traces",
			Sampler:  1.0,
		},
		Log: LogConfig{
			Level:  "debug",
			Format: "text",
			Output: "stdout",
			Path:   "logs/app.log",
		},
	}
}

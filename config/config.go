package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultConfigYAML 内置默认配置
//
//go:embed default.yaml
var DefaultConfigYAML []byte

// Config 应用配置
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Email    EmailConfig    `mapstructure:"email"`
	Security SecurityConfig `mapstructure:"security"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Port    string   `mapstructure:"port"`
	Mode    string   `mapstructure:"mode"`
	BaseURL string   `mapstructure:"base_url"`
	Origins []string `mapstructure:"allowed_origins"`

	// ExposeErrors 500 响应中返回原始错误，仅用于本地排查
	ExposeErrors bool `mapstructure:"expose_errors"`
}

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	Driver       string `mapstructure:"driver"` // mysql / postgres
	Host         string `mapstructure:"host"`
	Port         string `mapstructure:"port"`
	Username     string `mapstructure:"username"`
	Password     string `mapstructure:"password"`
	DBName       string `mapstructure:"dbname"`
	Charset      string `mapstructure:"charset"`
	SSLMode      string `mapstructure:"sslmode"`
	LogLevel     string `mapstructure:"log_level"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
	AutoMigrate  bool   `mapstructure:"auto_migrate"`
}

// JWTConfig JWT配置
type JWTConfig struct {
	Secret            string        `mapstructure:"secret"`
	AccessTTLMinutes  int           `mapstructure:"access_ttl_minutes"`
	RefreshTTLHours   int           `mapstructure:"refresh_ttl_hours"`
	RotateRefresh     bool          `mapstructure:"rotate_refresh"`
	AccessExpireTime  time.Duration `mapstructure:"-"`
	RefreshExpireTime time.Duration `mapstructure:"-"`
}

// EmailConfig 邮件配置
type EmailConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
}

// SecurityConfig 登录限流等安全配置
type SecurityConfig struct {
	LoginMaxAttempts   int `mapstructure:"login_max_attempts"`
	LoginWindowSeconds int `mapstructure:"login_window_seconds"`
}

var (
	// GlobalConfig 全局配置实例
	GlobalConfig *Config
)

// LoadConfig 加载配置
// 优先级: 环境变量 > 外部配置文件 > 嵌入的默认配置
// configPath: 可选的外部配置文件路径
func LoadConfig(configPath string) (*Config, error) {
	// .env 文件可选，仅用于本地开发
	if err := godotenv.Load(); err == nil {
		log.Println("已加载 .env 文件")
	}

	v := viper.New()
	v.SetConfigType("yaml")

	// 1. 首先加载嵌入的默认配置
	if err := v.ReadConfig(bytes.NewReader(DefaultConfigYAML)); err != nil {
		return nil, fmt.Errorf("读取内置配置失败: %w", err)
	}
	log.Println("已加载内置默认配置")

	// 2. 尝试加载外部配置文件（可选，用于覆盖默认配置）
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.MergeInConfig(); err != nil {
			log.Printf("警告: 无法读取指定配置文件 %s: %v", configPath, err)
		} else {
			log.Printf("已合并外部配置文件: %s", configPath)
		}
	} else {
		externalViper := viper.New()
		externalViper.SetConfigName("config")
		externalViper.SetConfigType("yaml")
		externalViper.AddConfigPath(".")
		externalViper.AddConfigPath("./config")
		externalViper.AddConfigPath("/etc/monviso")
		externalViper.AddConfigPath("$HOME/.monviso")

		if err := externalViper.ReadInConfig(); err == nil {
			if err := v.MergeConfigMap(externalViper.AllSettings()); err != nil {
				log.Printf("警告: 合并外部配置失败: %v", err)
			} else {
				log.Printf("已合并外部配置文件: %s", externalViper.ConfigFileUsed())
			}
		}
	}

	// 3. 环境变量覆盖，如 MONVISO_JWT_SECRET
	v.SetEnvPrefix("MONVISO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}
	cfg.applyDefaults()

	GlobalConfig = &cfg

	return &cfg, nil
}

// applyDefaults 补全缺省值并计算过期时间
func (c *Config) applyDefaults() {
	if c.JWT.AccessTTLMinutes <= 0 {
		c.JWT.AccessTTLMinutes = 15
	}
	if c.JWT.RefreshTTLHours <= 0 {
		c.JWT.RefreshTTLHours = 24 * 7
	}
	c.JWT.AccessExpireTime = time.Duration(c.JWT.AccessTTLMinutes) * time.Minute
	c.JWT.RefreshExpireTime = time.Duration(c.JWT.RefreshTTLHours) * time.Hour

	if c.Database.Driver == "" {
		c.Database.Driver = "mysql"
	}
	if c.Security.LoginMaxAttempts <= 0 {
		c.Security.LoginMaxAttempts = 10
	}
	if c.Security.LoginWindowSeconds <= 0 {
		c.Security.LoginWindowSeconds = 60
	}
}

// MustLoadConfig 加载配置，失败则 panic
func MustLoadConfig(configPath string) *Config {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		panic(fmt.Sprintf("加载配置失败: %v", err))
	}
	return cfg
}

// GetConfig 获取全局配置
func GetConfig() *Config {
	if GlobalConfig == nil {
		panic("配置未初始化，请先调用 LoadConfig")
	}
	return GlobalConfig
}

// SafeErrorMessage 默认不向客户端暴露内部错误详情
// 仅在显式开启 server.expose_errors 时返回原始错误
func SafeErrorMessage(err error, fallback string) string {
	if err == nil || GlobalConfig == nil || !GlobalConfig.Server.ExposeErrors {
		return fallback
	}
	return err.Error()
}

// PrintConfig 打印当前配置（隐藏敏感信息）
func PrintConfig() {
	if GlobalConfig == nil {
		return
	}
	log.Printf("当前配置:")
	log.Printf("  服务器: %s (模式: %s)", GlobalConfig.Server.Port, GlobalConfig.Server.Mode)
	log.Printf("  数据库: %s %s@%s:%s/%s",
		GlobalConfig.Database.Driver,
		GlobalConfig.Database.Username,
		GlobalConfig.Database.Host,
		GlobalConfig.Database.Port,
		GlobalConfig.Database.DBName)
	log.Printf("  令牌有效期: access=%s refresh=%s", GlobalConfig.JWT.AccessExpireTime, GlobalConfig.JWT.RefreshExpireTime)
	log.Printf("  邮件服务: %v", GlobalConfig.Email.Enabled)
}

package database

import (
	"fmt"
	"log"
	"strings"

	"monviso/config"
	"monviso/models"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Init 初始化数据库连接
func Init(cfg *config.Config) error {
	dialector, err := Dialector(&cfg.Database)
	if err != nil {
		return err
	}

	DB, err = gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(LogLevel(cfg.Database.LogLevel)),
	})
	if err != nil {
		return fmt.Errorf("连接数据库失败: %w", err)
	}

	// 获取底层 *sql.DB 连接池配置
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	if cfg.Database.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	}
	if cfg.Database.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	}

	if cfg.Database.AutoMigrate {
		if err := Migrate(DB); err != nil {
			return fmt.Errorf("数据库迁移失败: %w", err)
		}
	}

	log.Println("数据库初始化成功")
	return nil
}

// Dialector 根据配置构造 gorm 方言
func Dialector(cfg *config.DatabaseConfig) (gorm.Dialector, error) {
	switch strings.ToLower(cfg.Driver) {
	case "", "mysql":
		return mysql.Open(MySQLDSN(cfg)), nil
	case "postgres", "postgresql":
		return postgres.Open(PostgresDSN(cfg)), nil
	default:
		return nil, fmt.Errorf("不支持的数据库驱动: %s", cfg.Driver)
	}
}

// MySQLDSN 构建 MySQL DSN 连接字符串
func MySQLDSN(cfg *config.DatabaseConfig) string {
	charset := cfg.Charset
	if charset == "" {
		charset = "utf8mb4"
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=%s&parseTime=True&loc=UTC",
		cfg.Username,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		charset,
	)
}

// PostgresDSN 构建 PostgreSQL DSN 连接字符串
func PostgresDSN(cfg *config.DatabaseConfig) string {
	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		cfg.Host,
		cfg.Port,
		cfg.Username,
		cfg.Password,
		cfg.DBName,
		sslMode,
	)
}

// LogLevel 将配置字符串映射为 gorm 日志级别
func LogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

// Migrate 自动迁移数据库表
// users 必须最先迁移，其余表的外键依赖它
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.Category{},
		&models.Income{},
		&models.Expense{},
		&models.SavingsGoal{},
		&models.Transaction{},
		&models.RefreshToken{},
	)
}

// GetDB 获取数据库连接
func GetDB() *gorm.DB {
	return DB
}

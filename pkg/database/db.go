package database

import (
	"Blackout/config"
	"Blackout/pkg/log"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB 初始化数据库连接
func NewDB(conf *config.Config) *gorm.DB {
	db, err := Open(conf.Database)
	if err != nil {
		log.L.Fatal("failed to connect database", zap.String("driver", conf.Database.Driver), zap.Error(err))
	}
	log.L.Info("connect database success", zap.String("driver", conf.Database.Driver))
	return db
}

// Open 按驱动打开连接，开启 TranslateError 以便识别唯一键冲突
func Open(conf *config.Database) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch conf.Driver {
	case config.DriverMySQL:
		dialector = mysql.Open(conf.Source())
	case config.DriverSqlite, "":
		dialector = sqlite.Open(conf.Source())
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", conf.Driver)
	}

	return gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
}

// Migrate 建表，相当于 create_all
func Migrate(db *gorm.DB, models ...any) error {
	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// OpenMemory 内存 sqlite，单连接保证所有查询落在同一个库上，测试用
func OpenMemory(models ...any) (*gorm.DB, error) {
	db, err := Open(&config.Database{Driver: config.DriverSqlite, Path: ":memory:"})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	if err := Migrate(db, models...); err != nil {
		return nil, err
	}
	return db, nil
}

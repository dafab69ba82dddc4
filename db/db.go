package db

import (
	"log"
	"os"
	"path/filepath"
	"time"

	sqlmysql "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"parkpulse-analytics/pkg/config"
)

// Dao is the shared gorm handle. The analytics services only ever read
// through it.
var Dao *gorm.DB

func Init() {
	cfg := config.GetConfig()

	dsn := os.Getenv("MYSQL_DSN")
	if dsn == "" {
		dsn = cfg.Database.DSN
	}
	if dsn == "" {
		log.Fatalf("database DSN not configured; set MYSQL_DSN or database.dsn")
	}

	// Fail fast on a malformed DSN and log the target without leaking
	// credentials.
	parsed, err := sqlmysql.ParseDSN(dsn)
	if err != nil {
		log.Fatalf("invalid mysql DSN: %v", err)
	}
	log.Printf("connecting to mysql at %s/%s", parsed.Addr, parsed.DBName)

	logDir := cfg.Log.Dir
	if err := os.MkdirAll(logDir, os.ModePerm); err != nil {
		log.Fatalf("failed to create log directory: %v", err)
	}
	logFile := filepath.Join(logDir, time.Now().Format("2006-01-02")+".log")
	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Fatalf("failed to open gorm log file: %v", err)
	}

	var logLevel logger.LogLevel
	switch cfg.Database.LogLevel {
	case "silent":
		logLevel = logger.Silent
	case "error":
		logLevel = logger.Error
	case "warn":
		logLevel = logger.Warn
	default:
		logLevel = logger.Info
	}

	gormLogger := logger.New(
		log.New(file, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logLevel,
			IgnoreRecordNotFoundError: true,
		},
	)

	Dao, err = gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: gormLogger})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	sqlDB, err := Dao.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	log.Printf("database connected (max open: %d, max idle: %d)",
		cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns)
}

// GetStats exposes connection pool numbers for the health endpoint.
func GetStats() map[string]interface{} {
	if Dao == nil {
		return map[string]interface{}{"connected": false}
	}
	sqlDB, err := Dao.DB()
	if err != nil {
		return map[string]interface{}{"connected": false, "error": err.Error()}
	}
	stats := sqlDB.Stats()
	return map[string]interface{}{
		"connected":       true,
		"open_conns":      stats.OpenConnections,
		"in_use":          stats.InUse,
		"idle":            stats.Idle,
		"wait_count":      stats.WaitCount,
		"max_open_conns":  stats.MaxOpenConnections,
		"wait_duration_s": stats.WaitDuration.Seconds(),
	}
}

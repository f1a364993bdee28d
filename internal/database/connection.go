package database

import (
	"fmt"
	"strings"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"readings-api-server/internal/models"
)

func Connect() (*gorm.DB, error) {
	config, err := NewConfig()
	if err != nil {
		return nil, err
	}

	dialector, err := newDialector(*config)
	if err != nil {
		return nil, err
	}

	sqlLogger, err := newSQLLogger(*config)
	if err != nil {
		return nil, err
	}

	db, err := Open(dialector, sqlLogger)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if config.Driver == DriverSQLite {
		// sqlite serializes writers, extra connections only produce SQLITE_BUSY.
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(3)
		sqlDB.SetMaxOpenConns(5)
	}
	sqlDB.SetConnMaxLifetime(time.Minute)

	return db, nil
}

// Open connects with the given dialector and creates the readings table and
// its lookup index when missing.
func Open(dialector gorm.Dialector, sqlLogger logger.Interface) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: sqlLogger,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open database")
	}

	if err := db.AutoMigrate(&models.Reading{}); err != nil {
		return nil, errors.Wrap(err, "failed to migrate readings table")
	}
	return db, nil
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func newDialector(config envConfig) (gorm.Dialector, error) {
	switch config.Driver {
	case DriverSQLite:
		return sqlite.Open(config.SQLitePath + "?_busy_timeout=5000"), nil
	case DriverPostgres:
		return postgres.Open(connectionString(config)), nil
	default:
		return nil, errors.Errorf("unsupported database driver %q", config.Driver)
	}
}

func connectionString(config envConfig) string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		config.Host, config.User, config.Password, config.DBName, config.Port)
}

func parseLogLevel(level string) (logger.LogLevel, error) {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent, nil
	case "error":
		return logger.Error, nil
	case "warn", "":
		return logger.Warn, nil
	case "info":
		return logger.Info, nil
	default:
		return logger.Silent, errors.Errorf("unknown sql log level %q", level)
	}
}

func newSQLLogger(config envConfig) (logger.Interface, error) {
	level, err := parseLogLevel(config.SQLLogLevel)
	if err != nil {
		return nil, err
	}
	if config.SQLLogFile == "" {
		return logger.Default.LogMode(level), nil
	}

	// one file per day, a week of history
	writer, err := rotatelogs.New(
		config.SQLLogFile+".%Y%m%d",
		rotatelogs.WithLinkName(config.SQLLogFile),
		rotatelogs.WithMaxAge(7*24*time.Hour),
		rotatelogs.WithRotationTime(24*time.Hour),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open sql log file")
	}

	log := logrus.New()
	log.SetOutput(writer)
	log.SetFormatter(&logrus.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})

	return logger.New(log, logger.Config{
		SlowThreshold: 200 * time.Millisecond,
		LogLevel:      level,
		Colorful:      false,
	}), nil
}

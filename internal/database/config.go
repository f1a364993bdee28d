package database

import (
	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type envConfig struct {
	Driver     string `env:"DB_DRIVER" envDefault:"sqlite"`
	SQLitePath string `env:"SQLITE_PATH" envDefault:"database.db"`
	Host       string `env:"HOST"`
	Port       string `env:"PORT" envDefault:"5432"`
	User       string `env:"USER,unset" envDefault:"postgres"`
	Password   string `env:"PASSWORD,unset"`
	DBName     string `env:"DATABASE" envDefault:"postgres"`
	// gorm statement log, rotated daily. Empty keeps gorm's stdout logger.
	SQLLogFile  string `env:"SQL_LOG_FILE"`
	SQLLogLevel string `env:"SQL_LOG_LEVEL" envDefault:"warn"`
}

// NewConfig reads the database settings from the environment. A .env file
// in the working directory is loaded first when present.
func NewConfig() (*envConfig, error) {
	_ = godotenv.Load()

	dbConfig := &envConfig{}
	opts := env.Options{}
	if err := env.Parse(dbConfig, opts); err != nil {
		return nil, err
	}
	return dbConfig, nil
}

package database

import (
	"database/sql"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/deppfellow/pos-backend/internal/config"
	"github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog"
)

// mysqlDSN builds a go-sql-driver DSN. Dates are parsed into time.Time.
func mysqlDSN(cfg config.DatabaseConfig) string {
	mysqlConfig := mysql.NewConfig()
	mysqlConfig.User = cfg.User
	mysqlConfig.Passwd = cfg.Password
	mysqlConfig.Net = "tcp"
	mysqlConfig.Addr = net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
	mysqlConfig.DBName = cfg.Name
	mysqlConfig.ParseTime = true

	return mysqlConfig.FormatDSN()
}

// openMySQL sizes a database/sql pool. database/sql has no query hook, so
// slow query logging is only available on the postgres driver.
func openMySQL(cfg *config.Config, logger *zerolog.Logger) (*sql.DB, error) {
	db, err := sql.Open("mysql", mysqlDSN(cfg.Database))
	if err != nil {
		return nil, fmt.Errorf("failed to open mysql pool: %w", err)
	}

	db.SetMaxOpenConns(cfg.Database.MaxConns)
	db.SetMaxIdleConns(cfg.Database.MaxConns)
	if cfg.Database.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)
	}
	if cfg.Database.ConnMaxIdleTime > 0 {
		db.SetConnMaxIdleTime(time.Duration(cfg.Database.ConnMaxIdleTime) * time.Second)
	}

	if cfg.Observability != nil && cfg.Observability.Logging.SlowQueryThreshold > 0 {
		logger.Info().
			Dur("slow_query_threshold", cfg.Observability.Logging.SlowQueryThreshold).
			Msg("slow query logging is not supported by the mysql driver")
	}

	return db, nil
}

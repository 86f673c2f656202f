package database

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
)

type Opts struct {
	Driver             string
	DSN                string
	Username           string
	Password           string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeMin int
	LogLevel           string
	// Migrating/Seeding: 连接池收紧到单连接，SQL 日志静默
	Migrating bool
	Seeding   bool
}

func NewGorm(o Opts) (*gorm.DB, error) {
	var dial gorm.Dialector
	switch o.Driver {
	case "postgres", "":
		dial = postgres.Open(normalizePostgresDSN(o.DSN, o.Username, o.Password))
	case "mysql":
		dial = mysql.Open(normalizeMySQLDSN(o.DSN))
	default:
		return nil, ErrUnsupportedDriver
	}

	lvl := logger.Warn
	switch o.LogLevel {
	case "silent":
		lvl = logger.Silent
	case "error":
		lvl = logger.Error
	case "info":
		lvl = logger.Info
	}
	if o.Migrating || o.Seeding {
		lvl = logger.Silent
	}

	db, err := gorm.Open(dial, &gorm.Config{
		Logger: logger.Default.LogMode(lvl),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if o.Migrating || o.Seeding {
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
	} else {
		sqlDB.SetMaxOpenConns(o.MaxOpenConns)
		sqlDB.SetMaxIdleConns(o.MaxIdleConns)
	}
	sqlDB.SetConnMaxLifetime(time.Duration(o.ConnMaxLifetimeMin) * time.Minute)

	db = db.Session(&gorm.Session{
		PrepareStmt:     true, // 预编译缓存，提高 QPS
		CreateBatchSize: 200,
	})
	return db, nil
}

// normalizePostgresDSN 把 postgresql:// URL 中缺失的用户名/密码按 override 注入。
// 已是 key=value 形式的 DSN 原样返回。
func normalizePostgresDSN(input, userOverride, passOverride string) string {
	in := strings.TrimSpace(input)
	if in == "" || (!strings.HasPrefix(in, "postgres://") && !strings.HasPrefix(in, "postgresql://")) {
		return in
	}
	u, err := url.Parse(in)
	if err != nil {
		return in // 解析失败交给驱动报错
	}

	var user, pass string
	if u.User != nil {
		user = u.User.Username()
		pass, _ = u.User.Password()
	}
	if userOverride != "" {
		user = userOverride
	}
	if passOverride != "" {
		pass = passOverride
	}
	switch {
	case user != "" && pass != "":
		u.User = url.UserPassword(user, pass)
	case user != "":
		u.User = url.User(user)
	}

	q := u.Query()
	if q.Get("sslmode") == "" {
		q.Set("sslmode", "disable")
		u.RawQuery = q.Encode()
	}
	return u.String()
}

// normalizeMySQLDSN 强制 clientFoundRows=true：RowsAffected 按匹配行数计，
// 不然值没变化的更新会报 0 行，被上层当成行不存在。
func normalizeMySQLDSN(dsn string) string {
	if dsn == "" || strings.Contains(dsn, "clientFoundRows") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "clientFoundRows=true"
}

var ErrUnsupportedDriver = fmt.Errorf("database: unsupported driver")

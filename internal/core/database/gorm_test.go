package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeMySQLDSN(t *testing.T) {
	assert.Equal(t, "user:pw@tcp(db:3306)/shop?clientFoundRows=true",
		normalizeMySQLDSN("user:pw@tcp(db:3306)/shop"))
	assert.Equal(t, "user:pw@tcp(db:3306)/shop?parseTime=true&clientFoundRows=true",
		normalizeMySQLDSN("user:pw@tcp(db:3306)/shop?parseTime=true"))

	// 显式设置过就不动
	dsn := "user@tcp(db)/shop?clientFoundRows=false"
	assert.Equal(t, dsn, normalizeMySQLDSN(dsn))
	assert.Equal(t, "", normalizeMySQLDSN(""))
}

func TestNormalizePostgresDSN(t *testing.T) {
	// key=value 形式原样返回
	kv := "host=localhost user=app dbname=shop"
	assert.Equal(t, kv, normalizePostgresDSN(kv, "other", "pw"))

	got := normalizePostgresDSN("postgresql://localhost:5432/shop", "app", "secret")
	assert.Contains(t, got, "app:secret@")
	assert.Contains(t, got, "sslmode=disable")

	// URL 里已有凭证时 override 仍然优先
	got = normalizePostgresDSN("postgres://old:creds@db:5432/shop?sslmode=require", "app", "")
	assert.Contains(t, got, "app:creds@")
	assert.Contains(t, got, "sslmode=require")
}

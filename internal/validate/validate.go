// Package validate holds the pure string checks used by the HTTP handlers.
package validate

import (
	"html"
	"regexp"
	"strings"
)

var (
	reEmail = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	reAlnum = regexp.MustCompile(`^[A-Za-z0-9]+$`)
	// 字母开头，允许单个内部分隔符（空格/'/-）
	reName = regexp.MustCompile(`^\p{L}+([ '-]\p{L}+)*$`)
	// 宽松的国际手机号
	rePhone = regexp.MustCompile(`^\+?[0-9]{7,15}$`)
)

func Email(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 191 {
		return false
	}
	return reEmail.MatchString(s)
}

// Password: ≥8 位，仅限字母数字
func Password(s string) bool {
	return len(s) >= 8 && reAlnum.MatchString(s)
}

func Name(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 64 {
		return false
	}
	return reName.MatchString(s)
}

func Phone(s string) bool {
	s = strings.TrimSpace(s)
	return rePhone.MatchString(strings.ReplaceAll(s, " ", ""))
}

func Role(s string) bool {
	switch s {
	case "admin", "customer":
		return true
	}
	return false
}

// Sanitize returns an HTML-escaped copy of s.
func Sanitize(s string) string {
	return html.EscapeString(strings.TrimSpace(s))
}

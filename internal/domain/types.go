package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// StringArray 以 JSON 文本落库的字符串数组列（postgres/mysql/sqlite 通用）。
type StringArray []string

func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		a = StringArray{}
	}
	b, err := json.Marshal([]string(a))
	return string(b), err
}

func (a *StringArray) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*a = StringArray{}
		return nil
	case []byte:
		return json.Unmarshal(v, (*[]string)(a))
	case string:
		return json.Unmarshal([]byte(v), (*[]string)(a))
	default:
		return errors.New("domain: unsupported StringArray source")
	}
}

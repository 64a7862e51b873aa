package id

import (
	"strings"

	"github.com/google/uuid"
)

// New 生成新的UUID（string格式）
func New() string {
	return uuid.New().String()
}

// Canonical 解析ID并返回小写标准形式
// uuid.Parse 还接受大写、{...} 和 urn:uuid: 写法，存储中只有标准形式
func Canonical(raw string) (string, bool) {
	u, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", false
	}
	return u.String(), true
}

// Filter 丢弃格式非法的ID，统一为标准形式后按原有顺序去重
func Filter(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	valid := make([]string, 0, len(ids))
	for _, raw := range ids {
		v, ok := Canonical(raw)
		if !ok {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		valid = append(valid, v)
	}
	return valid
}

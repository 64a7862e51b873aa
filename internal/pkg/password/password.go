package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// Cost bcrypt 计算强度
const Cost = 12

// MaxLength bcrypt 只使用前 72 字节，更长的密码直接拒绝
const MaxLength = 72

var (
	ErrEmpty   = errors.New("password is empty")
	ErrTooLong = errors.New("password exceeds 72 bytes")
)

// Hash 生成 bcrypt 哈希
func Hash(password string) (string, error) {
	switch {
	case password == "":
		return "", ErrEmpty
	case len(password) > MaxLength:
		return "", ErrTooLong
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), Cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify 校验密码，哈希为空或格式错误时返回 false
func Verify(password, hash string) bool {
	if password == "" || hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

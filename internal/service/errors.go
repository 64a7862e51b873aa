package service

import (
	"errors"

	"cidian/internal/model/dictionary"
)

// ValidationError 参数校验失败，Message 可直接返回给调用方
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(msg string) error {
	return &ValidationError{Message: msg}
}

// EntryConflictError 中文或英文与已有词条重复
// Existing 为已存在的词条，仅在能查到时非空
type EntryConflictError struct {
	Message  string
	Existing *dictionary.Entry
}

func (e *EntryConflictError) Error() string {
	return e.Message
}

var (
	ErrEntryNotFound = errors.New("Dictionary entry not found")
	ErrAdminNotFound = errors.New("Admin not found")
	ErrAdminExists   = errors.New("Username or email already exists")

	// ErrSelfDeactivate 不能停用自己的账号
	ErrSelfDeactivate = &ValidationError{Message: "Cannot deactivate your own account"}
	// ErrSelfDelete 不能删除自己的账号
	ErrSelfDelete = &ValidationError{Message: "Cannot delete your own account"}
	// ErrLastSuperAdmin 操作后将没有可用的超级管理员
	ErrLastSuperAdmin = errors.New("At least one active super admin must remain")

	// ErrInvalidCredentials 登录失败，不区分用户不存在、未启用和密码错误
	ErrInvalidCredentials = errors.New("Invalid username or password")

	ErrAIUnavailable      = errors.New("AI translation is not configured")
	ErrStorageUnavailable = errors.New("Snapshot storage is not configured")
)

package auth

import (
	"context"
	"errors"

	"cidian/internal/model/auth"
)

var (
	// ErrNotFound 管理员不存在
	ErrNotFound = errors.New("admin not found")
	// ErrDuplicate 用户名或邮箱已被占用（唯一约束冲突）
	ErrDuplicate = errors.New("duplicate username or email")
)

// AdminUpdate 管理员可修改字段，nil 表示不修改
type AdminUpdate struct {
	IsActive *bool
	Role     *auth.Role
}

// AdminRepo 管理员仓库接口
type AdminRepo interface {
	// Create 创建管理员，CreatedAt/UpdatedAt 由仓库填充
	Create(ctx context.Context, admin *auth.Admin) error

	// FindByID 根据ID查询
	FindByID(ctx context.Context, id string) (*auth.Admin, error)

	// FindByUsername 根据用户名查询（用户名已小写）
	FindByUsername(ctx context.Context, username string) (*auth.Admin, error)

	// FindByEmail 根据邮箱查询（邮箱已小写）
	FindByEmail(ctx context.Context, email string) (*auth.Admin, error)

	// FindActiveByLogin 根据用户名或邮箱查询启用状态的管理员
	FindActiveByLogin(ctx context.Context, identifier string) (*auth.Admin, error)

	// List 按创建时间倒序列出全部管理员
	List(ctx context.Context) ([]*auth.Admin, error)

	// Update 修改启用状态或角色
	Update(ctx context.Context, id string, update AdminUpdate) error

	// UpdateLastLoginAt 更新最后登录时间
	UpdateLastLoginAt(ctx context.Context, id string) error

	// Delete 删除管理员
	Delete(ctx context.Context, id string) error

	// CountActiveSuperAdmins 统计启用状态的超级管理员数量
	CountActiveSuperAdmins(ctx context.Context) (int64, error)
}

package auth

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"cidian/internal/model/auth"
	"cidian/internal/pkg/sqlite"
)

const adminColumns = `id, username, email, password_hash, role, is_active, last_login_at, created_at, updated_at`

// SQLAdminRepo 管理员仓库（SQLite）
type SQLAdminRepo struct {
	db *sqlx.DB
}

// NewSQLAdminRepo 创建管理员仓库
func NewSQLAdminRepo(db *sqlx.DB) *SQLAdminRepo {
	return &SQLAdminRepo{db: db}
}

// Create 创建管理员
func (r *SQLAdminRepo) Create(ctx context.Context, admin *auth.Admin) error {
	now := time.Now().UTC()
	admin.CreatedAt = now
	admin.UpdatedAt = now

	_, err := r.db.NamedExecContext(ctx,
		`INSERT INTO admins (`+adminColumns+`)
		 VALUES (:id, :username, :email, :password_hash, :role, :is_active, :last_login_at, :created_at, :updated_at)`,
		admin)
	return mapSQLError(err)
}

// FindByID 根据ID查询
func (r *SQLAdminRepo) FindByID(ctx context.Context, id string) (*auth.Admin, error) {
	return r.get(ctx, `WHERE id = ?`, id)
}

// FindByUsername 根据用户名查询
func (r *SQLAdminRepo) FindByUsername(ctx context.Context, username string) (*auth.Admin, error) {
	return r.get(ctx, `WHERE username = ?`, username)
}

// FindByEmail 根据邮箱查询
func (r *SQLAdminRepo) FindByEmail(ctx context.Context, email string) (*auth.Admin, error) {
	return r.get(ctx, `WHERE email = ?`, email)
}

// FindActiveByLogin 根据用户名或邮箱查询启用状态的管理员
func (r *SQLAdminRepo) FindActiveByLogin(ctx context.Context, identifier string) (*auth.Admin, error) {
	return r.get(ctx, `WHERE (username = ? OR email = ?) AND is_active = 1`, identifier, identifier)
}

// List 查询管理员列表
func (r *SQLAdminRepo) List(ctx context.Context) ([]*auth.Admin, error) {
	admins := make([]*auth.Admin, 0)
	err := r.db.SelectContext(ctx, &admins,
		`SELECT `+adminColumns+` FROM admins ORDER BY created_at DESC, rowid DESC`)
	return admins, err
}

// Update 修改启用状态或角色
func (r *SQLAdminRepo) Update(ctx context.Context, id string, update AdminUpdate) error {
	sets := []string{"updated_at = ?"}
	args := []interface{}{time.Now().UTC()}
	if update.IsActive != nil {
		sets = append(sets, "is_active = ?")
		args = append(args, *update.IsActive)
	}
	if update.Role != nil {
		sets = append(sets, "role = ?")
		args = append(args, string(*update.Role))
	}
	args = append(args, id)

	result, err := r.db.ExecContext(ctx,
		`UPDATE admins SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return mapSQLError(err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateLastLoginAt 更新最后登录时间
func (r *SQLAdminRepo) UpdateLastLoginAt(ctx context.Context, id string) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`UPDATE admins SET last_login_at = ?, updated_at = ? WHERE id = ?`, now, now, id)
	return err
}

// Delete 删除管理员
func (r *SQLAdminRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM admins WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// CountActiveSuperAdmins 统计启用状态的超级管理员数量
func (r *SQLAdminRepo) CountActiveSuperAdmins(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.GetContext(ctx, &n,
		`SELECT COUNT(*) FROM admins WHERE role = ? AND is_active = 1`, string(auth.RoleSuperAdmin))
	return n, err
}

func (r *SQLAdminRepo) get(ctx context.Context, where string, args ...interface{}) (*auth.Admin, error) {
	var admin auth.Admin
	if err := r.db.GetContext(ctx, &admin, `SELECT `+adminColumns+` FROM admins `+where, args...); err != nil {
		return nil, mapSQLError(err)
	}
	return &admin, nil
}

// mapSQLError 将驱动错误映射为仓库错误
func mapSQLError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sql.ErrNoRows):
		return ErrNotFound
	case sqlite.IsUniqueViolation(err):
		return ErrDuplicate
	default:
		return err
	}
}

package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"cidian/internal/model/auth"
	"cidian/internal/pkg/ctxutil"
	"cidian/internal/pkg/id"
	"cidian/internal/pkg/password"
	authRepo "cidian/internal/repository/auth"
)

// AdminService 管理员管理服务
// 调用方角色由中间件保证为超级管理员，这里只处理针对自身和最后一个超级管理员的保护
type AdminService struct {
	repo authRepo.AdminRepo
}

// NewAdminService 创建管理员服务
func NewAdminService(repo authRepo.AdminRepo) *AdminService {
	return &AdminService{repo: repo}
}

// CreateAdminInput 创建管理员输入
type CreateAdminInput struct {
	Username string
	Email    string
	Password string
	Role     string // 为空时默认 ADMIN
}

// Create 创建管理员
func (s *AdminService) Create(ctx context.Context, in CreateAdminInput) (*auth.Admin, error) {
	username := auth.NormalizeIdentity(in.Username)
	email := auth.NormalizeIdentity(in.Email)
	if username == "" || email == "" || in.Password == "" {
		return nil, invalid("Username, email, and password are required")
	}
	if !auth.ValidEmail(email) {
		return nil, invalid("Invalid email format")
	}

	role := auth.RoleAdmin
	if in.Role != "" {
		r, ok := auth.ParseRole(in.Role)
		if !ok {
			return nil, invalid("Invalid role, must be one of ADMIN, MODERATOR, SUPER_ADMIN")
		}
		role = r
	}

	if existing, _ := s.repo.FindByUsername(ctx, username); existing != nil {
		return nil, ErrAdminExists
	}
	if existing, _ := s.repo.FindByEmail(ctx, email); existing != nil {
		return nil, ErrAdminExists
	}

	hashed, err := password.Hash(in.Password)
	if errors.Is(err, password.ErrTooLong) {
		return nil, invalid("Password must not exceed 72 bytes")
	}
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")
		return nil, err
	}

	admin := &auth.Admin{
		ID:       id.New(),
		Username: username,
		Email:    email,
		Password: hashed,
		Role:     role,
		IsActive: true,
	}
	if err := s.repo.Create(ctx, admin); err != nil {
		if errors.Is(err, authRepo.ErrDuplicate) {
			return nil, ErrAdminExists
		}
		log.Error().Err(err).Str("username", username).Msg("failed to create admin")
		return nil, err
	}

	log.Info().Str("admin_id", admin.ID).Str("role", role.String()).Msg("admin created")
	return admin, nil
}

// List 列出全部管理员，按创建时间倒序
func (s *AdminService) List(ctx context.Context) ([]*auth.Admin, error) {
	return s.repo.List(ctx)
}

// UpdateAdminInput 修改管理员输入，nil 表示不修改
type UpdateAdminInput struct {
	IsActive *bool
	Role     *string
}

// Update 修改管理员启用状态或角色
func (s *AdminService) Update(ctx context.Context, caller *ctxutil.Session, adminID string, in UpdateAdminInput) (*auth.Admin, error) {
	adminID, ok := id.Canonical(adminID)
	if !ok {
		return nil, invalid("Invalid admin id")
	}
	if in.IsActive == nil && in.Role == nil {
		return nil, invalid("Nothing to update, provide isActive or role")
	}
	if caller != nil && caller.AdminID == adminID && in.IsActive != nil && !*in.IsActive {
		return nil, ErrSelfDeactivate
	}

	var update authRepo.AdminUpdate
	update.IsActive = in.IsActive
	if in.Role != nil {
		r, ok := auth.ParseRole(*in.Role)
		if !ok {
			return nil, invalid("Invalid role, must be one of ADMIN, MODERATOR, SUPER_ADMIN")
		}
		update.Role = &r
	}

	target, err := s.repo.FindByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, authRepo.ErrNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}

	if removesSuperAdmin(target, update) {
		if err := s.ensureAnotherSuperAdmin(ctx); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Update(ctx, adminID, update); err != nil {
		if errors.Is(err, authRepo.ErrNotFound) {
			return nil, ErrAdminNotFound
		}
		log.Error().Err(err).Str("admin_id", adminID).Msg("failed to update admin")
		return nil, err
	}

	return s.repo.FindByID(ctx, adminID)
}

// Delete 删除管理员
func (s *AdminService) Delete(ctx context.Context, caller *ctxutil.Session, adminID string) error {
	adminID, ok := id.Canonical(adminID)
	if !ok {
		return invalid("Invalid admin id")
	}
	if caller != nil && caller.AdminID == adminID {
		return ErrSelfDelete
	}

	target, err := s.repo.FindByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, authRepo.ErrNotFound) {
			return ErrAdminNotFound
		}
		return err
	}

	if target.Role == auth.RoleSuperAdmin && target.IsActive {
		if err := s.ensureAnotherSuperAdmin(ctx); err != nil {
			return err
		}
	}

	if err := s.repo.Delete(ctx, adminID); err != nil {
		if errors.Is(err, authRepo.ErrNotFound) {
			return ErrAdminNotFound
		}
		log.Error().Err(err).Str("admin_id", adminID).Msg("failed to delete admin")
		return err
	}

	log.Info().Str("admin_id", adminID).Msg("admin deleted")
	return nil
}

// removesSuperAdmin 修改后目标是否不再是启用的超级管理员
func removesSuperAdmin(target *auth.Admin, update authRepo.AdminUpdate) bool {
	if target.Role != auth.RoleSuperAdmin || !target.IsActive {
		return false
	}
	deactivated := update.IsActive != nil && !*update.IsActive
	demoted := update.Role != nil && *update.Role != auth.RoleSuperAdmin
	return deactivated || demoted
}

// ensureAnotherSuperAdmin 目标之外至少还有一个启用的超级管理员
func (s *AdminService) ensureAnotherSuperAdmin(ctx context.Context) error {
	n, err := s.repo.CountActiveSuperAdmins(ctx)
	if err != nil {
		return err
	}
	if n <= 1 {
		return ErrLastSuperAdmin
	}
	return nil
}

// EnsureSuperAdmin 初始化超级管理员
// 用户名已存在时只重新启用并提升为超级管理员，不修改密码；返回值 created 表示是否新建
func (s *AdminService) EnsureSuperAdmin(ctx context.Context, in CreateAdminInput) (admin *auth.Admin, created bool, err error) {
	existing, err := s.repo.FindByUsername(ctx, auth.NormalizeIdentity(in.Username))
	if err != nil && !errors.Is(err, authRepo.ErrNotFound) {
		return nil, false, err
	}

	if existing == nil {
		in.Role = auth.RoleSuperAdmin.String()
		admin, err = s.Create(ctx, in)
		return admin, err == nil, err
	}

	active, role := true, auth.RoleSuperAdmin
	if err := s.repo.Update(ctx, existing.ID, authRepo.AdminUpdate{IsActive: &active, Role: &role}); err != nil {
		return nil, false, err
	}
	log.Info().Str("admin_id", existing.ID).Msg("super admin re-activated")

	admin, err = s.repo.FindByID(ctx, existing.ID)
	return admin, false, err
}

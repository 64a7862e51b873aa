package admin

import (
	"time"

	"cidian/internal/model/auth"
	"cidian/internal/service"
)

// Handler 管理员管理处理器，路由需要超级管理员权限
type Handler struct {
	adminService *service.AdminService
}

// NewHandler 创建管理员管理处理器
func NewHandler(adminService *service.AdminService) *Handler {
	return &Handler{adminService: adminService}
}

// AdminView 管理员信息（不含密码）
type AdminView struct {
	ID          string     `json:"id"`
	Username    string     `json:"username"`
	Email       string     `json:"email"`
	Role        string     `json:"role"`
	IsActive    bool       `json:"isActive"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func toAdminView(a *auth.Admin) AdminView {
	return AdminView{
		ID:          a.ID,
		Username:    a.Username,
		Email:       a.Email,
		Role:        a.Role.String(),
		IsActive:    a.IsActive,
		LastLoginAt: a.LastLoginAt,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

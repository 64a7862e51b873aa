package auth

import (
	"context"
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Admin 管理员实体
// ID使用UUID格式（string），用户名和邮箱统一小写存储
type Admin struct {
	ID          string     `bson:"_id" json:"id" db:"id"`                    // UUID格式的ID
	Username    string     `bson:"username" json:"username" db:"username"`   // 用户名（唯一，小写）
	Email       string     `bson:"email" json:"email" db:"email"`            // 邮箱（唯一，小写）
	Password    string     `bson:"password" json:"-" db:"password_hash"`     // 密码哈希（不返回）
	Role        Role       `bson:"role" json:"role" db:"role"`               // 角色
	IsActive    bool       `bson:"is_active" json:"isActive" db:"is_active"` // 是否启用
	LastLoginAt *time.Time `bson:"last_login_at,omitempty" json:"lastLoginAt,omitempty" db:"last_login_at"`
	CreatedAt   time.Time  `bson:"created_at" json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time  `bson:"updated_at" json:"updatedAt" db:"updated_at"`
}

// Collection 返回集合名称
func (a *Admin) Collection() string {
	return "admins"
}

// EnsureIndexes 创建和维护索引
// 用户名和邮箱的唯一性由索引保证
func (a *Admin) EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	coll := db.Collection(a.Collection())
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{bson.E{Key: "username", Value: 1}},
			Options: options.Index().SetName("idx_username").SetUnique(true),
		},
		{
			Keys:    bson.D{bson.E{Key: "email", Value: 1}},
			Options: options.Index().SetName("idx_email").SetUnique(true),
		},
		{
			Keys:    bson.D{bson.E{Key: "role", Value: 1}, bson.E{Key: "is_active", Value: 1}},
			Options: options.Index().SetName("idx_role_active"),
		},
		{
			Keys:    bson.D{bson.E{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_created_at"),
		},
	}
	_, err := coll.Indexes().CreateMany(ctx, indexes)
	return err
}

// Role 管理员角色
type Role string

const (
	RoleAdmin      Role = "ADMIN"       // 管理员
	RoleModerator  Role = "MODERATOR"   // 审核员
	RoleSuperAdmin Role = "SUPER_ADMIN" // 超级管理员
)

// IsValid 检查角色是否有效
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleModerator || r == RoleSuperAdmin
}

// String 返回角色字符串
func (r Role) String() string {
	return string(r)
}

// ParseRole 将任意大小写及 -/_ 写法统一为规范角色
// 例如 "super_admin"、"Super-Admin" 都会得到 RoleSuperAdmin
func ParseRole(s string) (Role, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	normalized = strings.NewReplacer("-", "_", " ", "_").Replace(normalized)
	r := Role(normalized)
	return r, r.IsValid()
}

// IsSuperAdmin 判断角色字符串是否为超级管理员（大小写无关）
func IsSuperAdmin(role string) bool {
	r, ok := ParseRole(role)
	return ok && r == RoleSuperAdmin
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail 检查邮箱格式
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// NormalizeIdentity 去除空白并转换为小写
func NormalizeIdentity(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

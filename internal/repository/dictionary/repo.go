package dictionary

import (
	"context"
	"errors"
	"strings"

	"cidian/internal/model/dictionary"
)

var (
	// ErrNotFound 记录不存在
	ErrNotFound = errors.New("dictionary entry not found")
	// ErrDuplicate 中文或英文与已有记录重复（唯一约束冲突）
	ErrDuplicate = errors.New("duplicate chinese or english value")
)

// EntryRepo 词条仓库接口
// MongoDB 与 SQLite 两种实现行为一致：唯一约束冲突返回 ErrDuplicate，记录不存在返回 ErrNotFound
type EntryRepo interface {
	// Create 创建词条，CreatedAt/UpdatedAt 由仓库填充
	Create(ctx context.Context, entry *dictionary.Entry) error

	// FindByID 根据ID查询
	FindByID(ctx context.Context, id string) (*dictionary.Entry, error)

	// FindConflict 查找 chinese 或 english 相同的其他词条，excludeID 对应的记录不参与比较
	// 没有冲突时返回 (nil, nil)
	FindConflict(ctx context.Context, chinese, english, excludeID string) (*dictionary.Entry, error)

	// Search 前缀搜索（四个字段任一匹配，大小写无关），prefix 为空返回全部
	Search(ctx context.Context, prefix string) ([]*dictionary.Entry, error)

	// Update 按ID更新可编辑字段与状态
	Update(ctx context.Context, entry *dictionary.Entry) error

	// Delete 删除单个词条
	Delete(ctx context.Context, id string) error

	// DeleteMany 批量删除，返回实际删除数量，不存在的ID不报错
	DeleteMany(ctx context.Context, ids []string) (int64, error)

	// UpdateStatusMany 批量更新审核状态，返回实际匹配数量
	UpdateStatusMany(ctx context.Context, ids []string, status dictionary.Status) (int64, error)
}

// escapeLike 转义 LIKE 通配符
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

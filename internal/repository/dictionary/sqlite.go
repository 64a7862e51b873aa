package dictionary

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"cidian/internal/model/dictionary"
	"cidian/internal/pkg/sqlite"
)

const entryColumns = `id, chinese, english, pinyin, phonetic, status, created_at, updated_at`

// SQLEntryRepo 词条仓库（SQLite）
// 额外维护 *_fold 小写列用于大小写无关的前缀搜索
type SQLEntryRepo struct {
	db *sqlx.DB
}

// NewSQLEntryRepo 创建词条仓库
func NewSQLEntryRepo(db *sqlx.DB) *SQLEntryRepo {
	return &SQLEntryRepo{db: db}
}

// Create 创建词条
func (r *SQLEntryRepo) Create(ctx context.Context, entry *dictionary.Entry) error {
	now := time.Now().UTC()
	entry.CreatedAt = now
	entry.UpdatedAt = now

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO dictionary (id, chinese, english, pinyin, phonetic, status,
			chinese_fold, english_fold, pinyin_fold, phonetic_fold, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.Chinese, entry.English, entry.Pinyin, entry.Phonetic, string(entry.Status),
		fold(entry.Chinese), fold(entry.English), fold(entry.Pinyin), fold(entry.Phonetic),
		entry.CreatedAt, entry.UpdatedAt)
	return mapSQLError(err)
}

// FindByID 根据ID查询
func (r *SQLEntryRepo) FindByID(ctx context.Context, id string) (*dictionary.Entry, error) {
	var entry dictionary.Entry
	err := r.db.GetContext(ctx, &entry, `SELECT `+entryColumns+` FROM dictionary WHERE id = ?`, id)
	if err != nil {
		return nil, mapSQLError(err)
	}
	return &entry, nil
}

// FindConflict 查找 chinese 或 english 相同的其他词条
func (r *SQLEntryRepo) FindConflict(ctx context.Context, chinese, english, excludeID string) (*dictionary.Entry, error) {
	var entry dictionary.Entry
	err := r.db.GetContext(ctx, &entry,
		`SELECT `+entryColumns+` FROM dictionary
		 WHERE (chinese = ? OR english = ?) AND id <> ?
		 ORDER BY seq LIMIT 1`,
		chinese, english, excludeID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// Search 前缀搜索
func (r *SQLEntryRepo) Search(ctx context.Context, prefix string) ([]*dictionary.Entry, error) {
	entries := make([]*dictionary.Entry, 0)

	if prefix == "" {
		err := r.db.SelectContext(ctx, &entries, `SELECT `+entryColumns+` FROM dictionary ORDER BY seq`)
		return entries, err
	}

	pattern := escapeLike(fold(prefix)) + "%"
	err := r.db.SelectContext(ctx, &entries,
		`SELECT `+entryColumns+` FROM dictionary
		 WHERE chinese_fold LIKE ? ESCAPE '\'
		    OR english_fold LIKE ? ESCAPE '\'
		    OR pinyin_fold LIKE ? ESCAPE '\'
		    OR phonetic_fold LIKE ? ESCAPE '\'
		 ORDER BY seq`,
		pattern, pattern, pattern, pattern)
	return entries, err
}

// Update 更新词条
func (r *SQLEntryRepo) Update(ctx context.Context, entry *dictionary.Entry) error {
	entry.UpdatedAt = time.Now().UTC()

	result, err := r.db.ExecContext(ctx,
		`UPDATE dictionary SET chinese = ?, english = ?, pinyin = ?, phonetic = ?, status = ?,
			chinese_fold = ?, english_fold = ?, pinyin_fold = ?, phonetic_fold = ?, updated_at = ?
		 WHERE id = ?`,
		entry.Chinese, entry.English, entry.Pinyin, entry.Phonetic, string(entry.Status),
		fold(entry.Chinese), fold(entry.English), fold(entry.Pinyin), fold(entry.Phonetic),
		entry.UpdatedAt, entry.ID)
	if err != nil {
		return mapSQLError(err)
	}
	return requireAffected(result)
}

// Delete 删除词条
func (r *SQLEntryRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM dictionary WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

// DeleteMany 批量删除
func (r *SQLEntryRepo) DeleteMany(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	query, args, err := sqlx.In(`DELETE FROM dictionary WHERE id IN (?)`, ids)
	if err != nil {
		return 0, err
	}
	result, err := r.db.ExecContext(ctx, r.db.Rebind(query), args...)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// UpdateStatusMany 批量更新审核状态
func (r *SQLEntryRepo) UpdateStatusMany(ctx context.Context, ids []string, status dictionary.Status) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	query, args, err := sqlx.In(`UPDATE dictionary SET status = ?, updated_at = ? WHERE id IN (?)`,
		string(status), time.Now().UTC(), ids)
	if err != nil {
		return 0, err
	}
	result, err := r.db.ExecContext(ctx, r.db.Rebind(query), args...)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func fold(s string) string {
	return strings.ToLower(s)
}

func requireAffected(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
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

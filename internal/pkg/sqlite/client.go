package sqlite

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// Client SQLite 客户端封装
// 用于单机部署和测试；与 MongoDB 实现相同的仓库接口
type Client struct {
	db *sqlx.DB
}

// New 打开数据库并执行迁移，path 为空时使用内存数据库
func New(path string) (*Client, error) {
	var dsn string
	if path == "" {
		dsn = ":memory:"
	} else {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
		dsn = path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	}

	db, err := sqlx.Connect("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	// SQLite 不支持并发写；内存库也依赖单连接共享同一份数据
	db.SetMaxOpenConns(1)

	c := &Client{db: db}
	if err := c.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate sqlite database: %w", err)
	}
	return c, nil
}

// DB 获取 sqlx 连接
func (c *Client) DB() *sqlx.DB {
	return c.db
}

// Ping 检查连接是否可用
func (c *Client) Ping(ctx context.Context) error {
	return c.db.PingContext(ctx)
}

// Close 关闭连接
func (c *Client) Close() error {
	return c.db.Close()
}

func (c *Client) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS admins (
			id TEXT PRIMARY KEY,
			username TEXT UNIQUE NOT NULL,
			email TEXT UNIQUE NOT NULL,
			password_hash TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT 'ADMIN',
			is_active INTEGER NOT NULL DEFAULT 1,
			last_login_at DATETIME,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS dictionary (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT UNIQUE NOT NULL,
			chinese TEXT UNIQUE NOT NULL,
			english TEXT UNIQUE NOT NULL,
			pinyin TEXT NOT NULL,
			phonetic TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'NOT_REVIEWED',
			chinese_fold TEXT NOT NULL DEFAULT '',
			english_fold TEXT NOT NULL DEFAULT '',
			pinyin_fold TEXT NOT NULL DEFAULT '',
			phonetic_fold TEXT NOT NULL DEFAULT '',
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		)`,

		`CREATE INDEX IF NOT EXISTS idx_dictionary_status ON dictionary(status)`,
		`CREATE INDEX IF NOT EXISTS idx_admins_created_at ON admins(created_at)`,
	}

	for _, m := range migrations {
		if _, err := c.db.Exec(m); err != nil {
			return err
		}
	}
	return nil
}

// IsUniqueViolation 判断错误是否为唯一约束冲突
func IsUniqueViolation(err error) bool {
	var se *sqlite.Error
	if errors.As(err, &se) {
		code := se.Code()
		return code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
	}
	return false
}

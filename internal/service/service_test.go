package service

import (
	"context"
	"testing"

	"cidian/internal/model/dictionary"
	"cidian/internal/pkg/sqlite"
	authRepo "cidian/internal/repository/auth"
	dictRepo "cidian/internal/repository/dictionary"
)

// newTestDB 内存 SQLite，测试结束时关闭
func newTestDB(t *testing.T) *sqlite.Client {
	t.Helper()
	client, err := sqlite.New("")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func newTestEntryRepo(t *testing.T) dictRepo.EntryRepo {
	return dictRepo.NewSQLEntryRepo(newTestDB(t).DB())
}

func newTestAdminRepo(t *testing.T) authRepo.AdminRepo {
	return authRepo.NewSQLAdminRepo(newTestDB(t).DB())
}

// memoryCache 记录失效次数的内存缓存，按代数分区
type memoryCache struct {
	data        map[string][]*dictionary.Entry
	gen         int64
	invalidated int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: map[string][]*dictionary.Entry{}}
}

func (c *memoryCache) Get(ctx context.Context, q string) ([]*dictionary.Entry, int64, bool) {
	e, ok := c.data[q]
	return e, c.gen, ok
}

func (c *memoryCache) Set(ctx context.Context, gen int64, q string, entries []*dictionary.Entry) {
	if gen != c.gen {
		return
	}
	c.data[q] = entries
}

func (c *memoryCache) Invalidate(ctx context.Context) {
	c.invalidated++
	c.gen++
	c.data = map[string][]*dictionary.Entry{}
}

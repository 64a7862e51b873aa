package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"cidian/internal/model/auth"
	"cidian/internal/model/dictionary"
)

// EnsureIndexes 创建所有模型的索引
// 应用启动时调用，唯一索引是 chinese/english、username/email 去重的最终保证
func EnsureIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return EnsureAllIndexes(ctx, db,
		&auth.Admin{},
		&dictionary.Entry{},
	)
}

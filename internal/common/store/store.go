package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Record kv_records 表的 GORM 模型：每个集合一行，value 为完整 JSON。
// 单 key 的写入即整体替换；跨 key 不保证原子性。
type Record struct {
	Key   string `gorm:"primaryKey;size:64"`
	Value string `gorm:"type:text;not null"`
}

// TableName 固定表名
func (Record) TableName() string {
	return "kv_records"
}

// Store 客户端本地的持久化 KV 存储（单文件 SQLite）。
// 通过 Open 显式构造并传给各服务，不做隐式全局单例。
type Store struct {
	db *gorm.DB
}

// Open 打开（或创建）path 指向的数据库文件，并确保表结构存在。
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("store path is empty")
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite store: %w", err)
	}
	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, fmt.Errorf("failed to migrate store schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close 关闭底层数据库连接。
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Read 读取 key 对应的完整值；从未写入过时返回 nil（不是错误）。
func (s *Store) Read(ctx context.Context, key string) ([]byte, error) {
	if s == nil || s.db == nil {
		return nil, fmt.Errorf("store db is nil")
	}
	var r Record
	err := s.db.WithContext(ctx).First(&r, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return []byte(r.Value), nil
}

// Write 整体替换 key 对应的值。
func (s *Store) Write(ctx context.Context, key string, value []byte) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("store db is nil")
	}
	return s.db.WithContext(ctx).Save(&Record{Key: key, Value: string(value)}).Error
}

// Delete 删除 key；key 不存在时静默成功。
func (s *Store) Delete(ctx context.Context, key string) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("store db is nil")
	}
	return s.db.WithContext(ctx).Delete(&Record{}, "key = ?", key).Error
}

// EnsureKey 显式初始化：key 不存在时写入默认值，存在则保持不变。
func (s *Store) EnsureKey(ctx context.Context, key string, def []byte) error {
	cur, err := s.Read(ctx, key)
	if err != nil {
		return err
	}
	if cur != nil {
		return nil
	}
	return s.Write(ctx, key, def)
}

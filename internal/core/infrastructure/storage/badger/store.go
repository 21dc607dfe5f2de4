// Package badger 提供基于BadgerDB的存储实现
package badger

import (
	"context"
	"fmt"
	"os"

	badgerdb "github.com/dgraph-io/badger/v3"
	badgerconfig "github.com/luoshu/v1/internal/config/storage/badger"
	log "github.com/luoshu/v1/pkg/interfaces/infrastructure/log"
	interfaces "github.com/luoshu/v1/pkg/interfaces/infrastructure/storage"
)

// 确保Store实现了interfaces.BadgerStore接口
var _ interfaces.BadgerStore = (*Store)(nil)

// Store 实现BadgerStore接口
type Store struct {
	db     *badgerdb.DB
	config *badgerconfig.Config
	logger log.Logger
}

// New 创建新的BadgerStore实例
func New(config *badgerconfig.Config, logger log.Logger) (interfaces.BadgerStore, error) {
	dataDir := config.GetPath()
	if dataDir == "" {
		return nil, fmt.Errorf("BadgerDB数据目录路径未配置")
	}

	logger.Infof("初始化BadgerDB存储，数据目录: %s", dataDir)

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("无法创建BadgerDB数据目录: %w", err)
	}

	opts := badgerdb.DefaultOptions(dataDir)
	opts.SyncWrites = config.IsSyncWritesEnabled()
	opts.MemTableSize = config.GetMemTableSize()
	opts.NumMemtables = 2
	opts.NumCompactors = 2
	opts.Logger = nil // BadgerDB自带日志过于冗长，统一走本项目日志

	// BadgerDB要求值阈值不超过最大批大小（内存表的15%），
	// 小内存表配置下默认阈值会导致打开失败，按上限收紧
	maxBatchSize := (15 * opts.MemTableSize) / 100
	if opts.ValueThreshold > maxBatchSize {
		opts.ValueThreshold = maxBatchSize
	}

	db, err := badgerdb.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("无法打开BadgerDB: %w", err)
	}

	return &Store{
		db:     db,
		config: config,
		logger: logger,
	}, nil
}

// Get 获取指定键的值，键不存在时返回(nil, nil)
func (s *Store) Get(ctx context.Context, key []byte) ([]byte, error) {
	var value []byte

	err := s.db.View(func(txn *badgerdb.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if err == badgerdb.ErrKeyNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("读取键值失败: %w", err)
	}

	return value, nil
}

// Set 设置键值对
func (s *Store) Set(ctx context.Context, key, value []byte) error {
	err := s.db.Update(func(txn *badgerdb.Txn) error {
		return txn.Set(key, value)
	})
	if err != nil {
		return fmt.Errorf("设置键值失败: %w", err)
	}
	return nil
}

// Delete 删除指定键
func (s *Store) Delete(ctx context.Context, key []byte) error {
	err := s.db.Update(func(txn *badgerdb.Txn) error {
		return txn.Delete(key)
	})
	if err != nil {
		return fmt.Errorf("删除键值失败: %w", err)
	}
	return nil
}

// Exists 检查键是否存在
func (s *Store) Exists(ctx context.Context, key []byte) (bool, error) {
	err := s.db.View(func(txn *badgerdb.Txn) error {
		_, err := txn.Get(key)
		return err
	})
	if err == badgerdb.ErrKeyNotFound {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("检查键存在性失败: %w", err)
	}
	return true, nil
}

// NewTransaction 创建事务，update为true时允许写入
func (s *Store) NewTransaction(update bool) (interfaces.Transaction, error) {
	if s.db.IsClosed() {
		return nil, fmt.Errorf("存储已关闭")
	}
	return &Transaction{
		txn: s.db.NewTransaction(update),
	}, nil
}

// Close 关闭存储并释放资源
func (s *Store) Close() error {
	s.logger.Info("关闭BadgerDB存储")
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("关闭BadgerDB失败: %w", err)
	}
	return nil
}

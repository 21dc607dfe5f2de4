// Package memory 提供基于BigCache的内存缓存实现
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/allegro/bigcache/v3"
	memoryconfig "github.com/luoshu/v1/internal/config/storage/memory"
	"github.com/luoshu/v1/pkg/interfaces/infrastructure/log"
	storage "github.com/luoshu/v1/pkg/interfaces/infrastructure/storage"
)

// 确保Store实现了storage.MemoryStore接口
var _ storage.MemoryStore = (*Store)(nil)

// Store 实现MemoryStore接口，基于BigCache提供热读缓存
//
// 缓存只承载旁路读加速语义：未命中回源持久化存储，
// 条目过期或被逐出不影响正确性。
type Store struct {
	cache  *bigcache.BigCache
	logger log.Logger
	mutex  sync.RWMutex
	closed bool
}

// New 创建新的BigCache内存存储实例
func New(config *memoryconfig.Config, logger log.Logger) (storage.MemoryStore, error) {
	lifeWindow, err := time.ParseDuration(config.GetLifeWindow())
	if err != nil {
		logger.Warnf("解析生命周期窗口失败: %v，使用默认值", err)
		lifeWindow = 10 * time.Minute
	}

	cleanWindow, err := time.ParseDuration(config.GetCleanWindow())
	if err != nil {
		logger.Warnf("解析清理窗口失败: %v，使用默认值", err)
		cleanWindow = 5 * time.Minute
	}

	bigCacheConfig := bigcache.DefaultConfig(lifeWindow)
	bigCacheConfig.MaxEntriesInWindow = config.GetMaxEntriesInWindow()
	bigCacheConfig.MaxEntrySize = config.GetMaxEntrySize()
	bigCacheConfig.Shards = config.GetShards()
	bigCacheConfig.CleanWindow = cleanWindow

	cache, err := bigcache.New(context.Background(), bigCacheConfig)
	if err != nil {
		return nil, err
	}

	return &Store{
		cache:  cache,
		logger: logger,
	}, nil
}

// Get 获取缓存值，第二个返回值指示是否命中
func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	value, err := s.cache.Get(key)
	if err != nil {
		if err == bigcache.ErrEntryNotFound {
			return nil, false, nil
		}
		return nil, false, err
	}

	return value, true, nil
}

// Set 设置缓存值
//
// BigCache按全局LifeWindow统一过期，不支持逐条TTL；
// ttl参数仅为接口兼容保留，非零时记录调试日志。
func (s *Store) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if ttl > 0 {
		s.logger.Debugf("BigCache不支持逐条TTL，键[%s]按全局生命周期过期", key)
	}

	if err := s.cache.Set(key, value); err != nil {
		s.logger.Warnf("设置缓存键[%s]失败: %v", key, err)
		return err
	}

	return nil
}

// Delete 删除指定键的缓存
func (s *Store) Delete(ctx context.Context, key string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if err := s.cache.Delete(key); err != nil && err != bigcache.ErrEntryNotFound {
		s.logger.Warnf("删除缓存键[%s]失败: %v", key, err)
		return err
	}

	return nil
}

// Close 关闭缓存并释放资源
func (s *Store) Close() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.closed {
		return nil
	}

	err := s.cache.Close()
	if err == nil {
		s.closed = true
	}
	return err
}

package badger

import (
	"context"
	"testing"

	badgerconfig "github.com/luoshu/v1/internal/config/storage/badger"
	"github.com/luoshu/v1/pkg/interfaces/infrastructure/log"
	"github.com/luoshu/v1/pkg/interfaces/infrastructure/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// 模拟Logger接口
type mockLogger struct{}

func (m *mockLogger) Debug(msg string)                          {}
func (m *mockLogger) Debugf(format string, args ...interface{}) {}
func (m *mockLogger) Info(msg string)                           {}
func (m *mockLogger) Infof(format string, args ...interface{})  {}
func (m *mockLogger) Warn(msg string)                           {}
func (m *mockLogger) Warnf(format string, args ...interface{})  {}
func (m *mockLogger) Error(msg string)                          {}
func (m *mockLogger) Errorf(format string, args ...interface{}) {}
func (m *mockLogger) Fatal(msg string)                          {}
func (m *mockLogger) Fatalf(format string, args ...interface{}) {}
func (m *mockLogger) With(args ...interface{}) log.Logger       { return m }
func (m *mockLogger) Sync() error                               { return nil }
func (m *mockLogger) GetZapLogger() *zap.Logger                 { return nil }

// setupStore 创建基于临时目录的存储实例
func setupStore(t *testing.T) storage.BadgerStore {
	cfg := badgerconfig.NewFromOptions(&badgerconfig.BadgerOptions{
		Path:         t.TempDir(),
		SyncWrites:   false,
		MemTableSize: 64 << 20, // 64MB
	})

	store, err := New(cfg, &mockLogger{})
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}

// 测试小内存表配置可正常打开（值阈值按批大小上限收紧）
func TestSmallMemTableOpen(t *testing.T) {
	cfg := badgerconfig.NewFromOptions(&badgerconfig.BadgerOptions{
		Path:         t.TempDir(),
		SyncWrites:   false,
		MemTableSize: 1 << 20, // 1MB，低于默认值阈值的15倍
	})

	store, err := New(cfg, &mockLogger{})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = store.Close()
	})

	ctx := context.Background()
	require.NoError(t, store.Set(ctx, []byte("k"), []byte("v")))

	got, err := store.Get(ctx, []byte("k"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)
}

// 测试基础读写删
func TestStoreBasicOperations(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	key := []byte("test-key")
	value := []byte("test-value")

	// 不存在的键返回(nil, nil)
	got, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, got)

	exists, err := store.Exists(ctx, key)
	require.NoError(t, err)
	assert.False(t, exists)

	// 写入后可读
	require.NoError(t, store.Set(ctx, key, value))

	got, err = store.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, value, got)

	exists, err = store.Exists(ctx, key)
	require.NoError(t, err)
	assert.True(t, exists)

	// 删除后消失
	require.NoError(t, store.Delete(ctx, key))

	got, err = store.Get(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, got)
}

// 测试事务提交
func TestTransactionCommit(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	txn, err := store.NewTransaction(true)
	require.NoError(t, err)
	assert.True(t, txn.IsActive())

	require.NoError(t, txn.Set([]byte("k1"), []byte("v1")))
	require.NoError(t, txn.Set([]byte("k2"), []byte("v2")))

	// 事务内可见
	got, err := txn.Get([]byte("k1"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), got)

	require.NoError(t, txn.Commit())
	assert.False(t, txn.IsActive())

	// 提交后对存储可见
	got, err = store.Get(ctx, []byte("k1"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), got)

	got, err = store.Get(ctx, []byte("k2"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), got)
}

// 测试事务丢弃
func TestTransactionDiscard(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	txn, err := store.NewTransaction(true)
	require.NoError(t, err)

	require.NoError(t, txn.Set([]byte("k"), []byte("v")))
	txn.Discard()
	assert.False(t, txn.IsActive())

	// 丢弃后不落盘
	got, err := store.Get(ctx, []byte("k"))
	require.NoError(t, err)
	assert.Nil(t, got)

	// 丢弃后的事务拒绝继续操作
	err = txn.Set([]byte("k2"), []byte("v2"))
	assert.Error(t, err)

	err = txn.Commit()
	assert.Error(t, err)
}

// 测试重复提交被拒绝
func TestTransactionDoubleCommit(t *testing.T) {
	store := setupStore(t)

	txn, err := store.NewTransaction(true)
	require.NoError(t, err)

	require.NoError(t, txn.Set([]byte("k"), []byte("v")))
	require.NoError(t, txn.Commit())

	err = txn.Commit()
	assert.Error(t, err)
}

// 测试关闭后拒绝创建事务
func TestClosedStoreRejectsTransaction(t *testing.T) {
	cfg := badgerconfig.NewFromOptions(&badgerconfig.BadgerOptions{
		Path:         t.TempDir(),
		SyncWrites:   false,
		MemTableSize: 1 << 20,
	})

	store, err := New(cfg, &mockLogger{})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	_, err = store.NewTransaction(true)
	assert.Error(t, err)
}

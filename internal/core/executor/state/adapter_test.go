package state

import (
	"context"
	"testing"

	badgerconfig "github.com/luoshu/v1/internal/config/storage/badger"
	badgerstore "github.com/luoshu/v1/internal/core/infrastructure/storage/badger"
	"github.com/luoshu/v1/pkg/interfaces/execution"
	"github.com/luoshu/v1/pkg/interfaces/infrastructure/log"
	storageInterface "github.com/luoshu/v1/pkg/interfaces/infrastructure/storage"
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

// setupTestStore 创建基于临时目录的BadgerDB存储
func setupTestStore(t *testing.T) storageInterface.BadgerStore {
	cfg := badgerconfig.NewFromOptions(&badgerconfig.BadgerOptions{
		Path:         t.TempDir(),
		SyncWrites:   false,
		MemTableSize: 64 << 20, // 64MB
	})

	store, err := badgerstore.New(cfg, &mockLogger{})
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}

// 测试暂存写入对同一适配器可见、对存储不可见
func TestStagedWriteVisibility(t *testing.T) {
	store := setupTestStore(t)
	adapter := NewGeneralStateAdapter(store, nil, &mockLogger{})

	key := []byte("asset-1")
	value := []byte("record-1")

	// 写入前不存在
	exists, err := adapter.Contains(execution.SchemaAsset, key)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, adapter.InsertCache(execution.SchemaAsset, key, value))

	// 同一适配器内可见
	exists, err = adapter.Contains(execution.SchemaAsset, key)
	require.NoError(t, err)
	assert.True(t, exists)

	got, err := adapter.Get(execution.SchemaAsset, key)
	require.NoError(t, err)
	assert.Equal(t, value, got)

	// 底层存储尚未落盘
	committed, err := store.Get(context.Background(), []byte("s/asset/asset-1"))
	require.NoError(t, err)
	assert.Nil(t, committed)
}

// 测试会话隔离：未提交的写入对独立会话不可见
func TestSessionIsolation(t *testing.T) {
	store := setupTestStore(t)
	first := NewGeneralStateAdapter(store, nil, &mockLogger{})
	second := NewGeneralStateAdapter(store, nil, &mockLogger{})

	key := []byte("asset-2")
	require.NoError(t, first.InsertCache(execution.SchemaAsset, key, []byte("v")))

	// 独立会话看不到暂存写入
	exists, err := second.Contains(execution.SchemaAsset, key)
	require.NoError(t, err)
	assert.False(t, exists)

	got, err := second.Get(execution.SchemaAsset, key)
	require.NoError(t, err)
	assert.Nil(t, got)
}

// 测试提交：全部暂存写入落盘并清空暂存层
func TestCommit(t *testing.T) {
	store := setupTestStore(t)
	adapter := NewGeneralStateAdapter(store, nil, &mockLogger{})

	require.NoError(t, adapter.InsertCache(execution.SchemaAsset, []byte("k1"), []byte("v1")))
	require.NoError(t, adapter.InsertCache(execution.SchemaAsset, []byte("k2"), []byte("v2")))
	assert.Equal(t, 2, adapter.StagedCount())

	require.NoError(t, adapter.Commit())
	assert.Equal(t, 0, adapter.StagedCount())

	// 提交后对独立会话可见
	other := NewGeneralStateAdapter(store, nil, &mockLogger{})
	got, err := other.Get(execution.SchemaAsset, []byte("k1"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), got)

	got, err = other.Get(execution.SchemaAsset, []byte("k2"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), got)

	// 空暂存层提交是无操作
	require.NoError(t, adapter.Commit())
}

// 测试丢弃：暂存写入整体消失
func TestDiscard(t *testing.T) {
	store := setupTestStore(t)
	adapter := NewGeneralStateAdapter(store, nil, &mockLogger{})

	require.NoError(t, adapter.InsertCache(execution.SchemaAsset, []byte("k"), []byte("v")))
	adapter.Discard()

	assert.Equal(t, 0, adapter.StagedCount())

	exists, err := adapter.Contains(execution.SchemaAsset, []byte("k"))
	require.NoError(t, err)
	assert.False(t, exists)

	// 丢弃后提交不落盘任何数据
	require.NoError(t, adapter.Commit())
	got, err := store.Get(context.Background(), []byte("s/asset/k"))
	require.NoError(t, err)
	assert.Nil(t, got)
}

// 测试暂存层覆盖写：同键后写覆盖前写，提交只落最终值
func TestStagedOverwrite(t *testing.T) {
	store := setupTestStore(t)
	adapter := NewGeneralStateAdapter(store, nil, &mockLogger{})

	key := []byte("k")
	require.NoError(t, adapter.InsertCache(execution.SchemaAsset, key, []byte("old")))
	require.NoError(t, adapter.InsertCache(execution.SchemaAsset, key, []byte("new")))
	assert.Equal(t, 1, adapter.StagedCount())

	got, err := adapter.Get(execution.SchemaAsset, key)
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), got)

	require.NoError(t, adapter.Commit())

	committed, err := store.Get(context.Background(), []byte("s/asset/k"))
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), committed)
}

// 测试模式隔离：不同模式下的同名键互不干扰
func TestSchemaIsolation(t *testing.T) {
	store := setupTestStore(t)
	adapter := NewGeneralStateAdapter(store, nil, &mockLogger{})

	key := []byte("same-key")
	require.NoError(t, adapter.InsertCache(execution.SchemaAsset, key, []byte("asset-value")))

	exists, err := adapter.Contains(execution.Schema("other"), key)
	require.NoError(t, err)
	assert.False(t, exists)
}

// 测试返回值是副本：修改返回的切片不影响暂存层
func TestGetReturnsCopy(t *testing.T) {
	store := setupTestStore(t)
	adapter := NewGeneralStateAdapter(store, nil, &mockLogger{})

	key := []byte("k")
	require.NoError(t, adapter.InsertCache(execution.SchemaAsset, key, []byte("value")))

	got, err := adapter.Get(execution.SchemaAsset, key)
	require.NoError(t, err)
	got[0] = 'X'

	again, err := adapter.Get(execution.SchemaAsset, key)
	require.NoError(t, err)
	assert.Equal(t, []byte("value"), again)
}

package collection

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/SmartDriveSchool/SmartDriveSchool/internal/common/latency"
	"github.com/SmartDriveSchool/SmartDriveSchool/internal/common/logger"
	"github.com/SmartDriveSchool/SmartDriveSchool/internal/common/store"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
)

// ErrNotFound 按 id 更新但记录不存在。
// Get / Remove 对缺失 id 不报错：缺失是合法的空结果 / 空操作。
var ErrNotFound = errors.New("not found")

// opDelay 每个操作的模拟网络时延（固定，不可配置）。
const opDelay = 200 * time.Millisecond

// Entity 约束：实体指针必须能读写自己的 id 字段。
type Entity[T any] interface {
	*T
	EntityID() string
	SetEntityID(id string)
}

// Patch 单实体的补丁：全部字段可选，Apply 按"补丁覆盖、其余保留"合并。
type Patch[T any] interface {
	Apply(*T)
}

// Collection 某个实体集合的通用仓储。
// 每次变更都整体重写集合值（最后写者胜出），与单写者模型配套使用。
type Collection[T any, PT Entity[T]] struct {
	st  *store.Store
	key string
	log logger.Logger
}

// New 在 store 的 key 之上构造一个集合仓储。
func New[T any, PT Entity[T]](st *store.Store, key string, log logger.Logger) *Collection[T, PT] {
	return &Collection[T, PT]{st: st, key: key, log: log}
}

// Key 集合的存储 key。
func (c *Collection[T, PT]) Key() string {
	return c.key
}

// List 返回完整集合，保持插入顺序。
func (c *Collection[T, PT]) List(ctx context.Context) ([]T, error) {
	span, ctx := c.startSpan(ctx, "collection.List")
	defer span.Finish()

	if err := latency.Wait(ctx, opDelay); err != nil {
		return nil, err
	}
	return c.load(ctx)
}

// Get 按 id 查找；缺失时返回 nil（不是错误）。
func (c *Collection[T, PT]) Get(ctx context.Context, id string) (*T, error) {
	span, ctx := c.startSpan(ctx, "collection.Get")
	defer span.Finish()

	if err := latency.Wait(ctx, opDelay); err != nil {
		return nil, err
	}
	items, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if PT(&items[i]).EntityID() == id {
			item := items[i]
			return &item, nil
		}
	}
	return nil, nil
}

// Create 分配新 id，追加到集合末尾并持久化，返回新记录。
func (c *Collection[T, PT]) Create(ctx context.Context, item T) (*T, error) {
	span, ctx := c.startSpan(ctx, "collection.Create")
	defer span.Finish()

	if err := latency.Wait(ctx, opDelay); err != nil {
		return nil, err
	}
	PT(&item).SetEntityID(uuid.NewString())

	items, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	items = append(items, item)
	if err := c.save(ctx, items); err != nil {
		return nil, err
	}
	if c.log != nil {
		c.log.WithFields(map[string]interface{}{
			"collection": c.key,
			"id":         PT(&item).EntityID(),
		}).Debug("record created")
	}
	return &item, nil
}

// Update 按 id 定位记录并应用补丁；记录不存在时返回 ErrNotFound。
func (c *Collection[T, PT]) Update(ctx context.Context, id string, patch Patch[T]) (*T, error) {
	span, ctx := c.startSpan(ctx, "collection.Update")
	defer span.Finish()

	if err := latency.Wait(ctx, opDelay); err != nil {
		return nil, err
	}
	items, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if PT(&items[i]).EntityID() != id {
			continue
		}
		if patch != nil {
			patch.Apply(&items[i])
		}
		if err := c.save(ctx, items); err != nil {
			return nil, err
		}
		updated := items[i]
		return &updated, nil
	}
	return nil, ErrNotFound
}

// Remove 过滤掉匹配 id 的记录并持久化；id 不存在时为静默空操作。
func (c *Collection[T, PT]) Remove(ctx context.Context, id string) error {
	span, ctx := c.startSpan(ctx, "collection.Remove")
	defer span.Finish()

	if err := latency.Wait(ctx, opDelay); err != nil {
		return err
	}
	items, err := c.load(ctx)
	if err != nil {
		return err
	}
	kept := make([]T, 0, len(items))
	for i := range items {
		if PT(&items[i]).EntityID() == id {
			continue
		}
		kept = append(kept, items[i])
	}
	return c.save(ctx, kept)
}

// load 反序列化整个集合；key 从未写入时按空集合处理。
func (c *Collection[T, PT]) load(ctx context.Context) ([]T, error) {
	if c == nil || c.st == nil {
		return nil, fmt.Errorf("collection store is nil")
	}
	raw, err := c.st.Read(ctx, c.key)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return []T{}, nil
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("failed to decode collection %s: %w", c.key, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// save 序列化并整体替换集合值。
func (c *Collection[T, PT]) save(ctx context.Context, items []T) error {
	if c == nil || c.st == nil {
		return fmt.Errorf("collection store is nil")
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode collection %s: %w", c.key, err)
	}
	return c.st.Write(ctx, c.key, raw)
}

func (c *Collection[T, PT]) startSpan(ctx context.Context, operation string) (opentracing.Span, context.Context) {
	span, ctx := opentracing.StartSpanFromContext(ctx, operation)
	ext.Component.Set(span, "localstore")
	span.SetTag("collection", c.key)
	return span, ctx
}

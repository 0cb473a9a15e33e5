package ecs

// EntityID 是实体的唯一标识符
type EntityID uint64

// Store 按创建顺序保存同一类实体
//
// 删除分两步完成：DestroyEntity 只做标记，RemoveMarkedEntities 统一压缩。
// 标记后的实体在遍历中被跳过，也不计入 Len，
// 因此系统可以在遍历过程中安全地"删除"成员。
type Store[T any] struct {
	nextID uint64
	// 按创建顺序排列的实体ID
	order []EntityID
	// 实体数据: EntityID -> 实体记录
	items map[EntityID]*T
	// 待删除的实体ID列表
	entitiesToDestroy []EntityID
	marked            map[EntityID]struct{}
}

// NewStore 创建一个新的 Store 实例
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		nextID:            1, // ID从1开始,0保留为无效ID
		order:             make([]EntityID, 0),
		items:             make(map[EntityID]*T),
		entitiesToDestroy: make([]EntityID, 0),
		marked:            make(map[EntityID]struct{}),
	}
}

// CreateEntity 创建新实体并返回唯一ID和存储中的记录指针
func (s *Store[T]) CreateEntity(item T) (EntityID, *T) {
	id := EntityID(s.nextID)
	s.nextID++
	ptr := &item
	s.items[id] = ptr
	s.order = append(s.order, id)
	return id, ptr
}

// DestroyEntity 标记实体待删除(不立即删除)
// 重复标记或未知ID会被忽略
func (s *Store[T]) DestroyEntity(id EntityID) {
	if _, exists := s.items[id]; !exists {
		return
	}
	if _, done := s.marked[id]; done {
		return
	}
	s.marked[id] = struct{}{}
	s.entitiesToDestroy = append(s.entitiesToDestroy, id)
}

// IsAlive 实体存在且未被标记删除
func (s *Store[T]) IsAlive(id EntityID) bool {
	if _, exists := s.items[id]; !exists {
		return false
	}
	_, done := s.marked[id]
	return !done
}

// Get 获取实体记录，已标记删除的实体仍可读取直到压缩
func (s *Store[T]) Get(id EntityID) (*T, bool) {
	item, ok := s.items[id]
	return item, ok
}

// Len 返回存活（未标记）实体数量
func (s *Store[T]) Len() int {
	return len(s.items) - len(s.marked)
}

// IDs 返回存活实体ID的快照（按创建顺序）
func (s *Store[T]) IDs() []EntityID {
	result := make([]EntityID, 0, s.Len())
	for _, id := range s.order {
		if s.IsAlive(id) {
			result = append(result, id)
		}
	}
	return result
}

// Each 按创建顺序遍历存活实体
// 遍历基于ID快照：回调中新建的实体不会在本轮出现，回调中标记的实体会被立即跳过
func (s *Store[T]) Each(fn func(id EntityID, item *T)) {
	for _, id := range s.IDs() {
		if !s.IsAlive(id) {
			continue
		}
		fn(id, s.items[id])
	}
}

// RemoveMarkedEntities 清理所有标记删除的实体
func (s *Store[T]) RemoveMarkedEntities() {
	if len(s.entitiesToDestroy) == 0 {
		return
	}
	for _, id := range s.entitiesToDestroy {
		delete(s.items, id)
		delete(s.marked, id)
	}
	s.entitiesToDestroy = s.entitiesToDestroy[:0] // 清空切片

	kept := s.order[:0]
	for _, id := range s.order {
		if _, exists := s.items[id]; exists {
			kept = append(kept, id)
		}
	}
	s.order = kept
}

// Clear 立即移除所有实体（ID 计数不重置）
func (s *Store[T]) Clear() {
	s.order = s.order[:0]
	s.items = make(map[EntityID]*T)
	s.entitiesToDestroy = s.entitiesToDestroy[:0]
	s.marked = make(map[EntityID]struct{})
}

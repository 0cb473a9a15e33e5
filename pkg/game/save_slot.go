package game

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
)

// GdataSlot 基于 gdata 的跨平台存档槽
//
// 每个键保存为同一个 gdata 对象下的一个属性，
// Clear 删除整个对象。
type GdataSlot struct {
	gdataManager *gdata.Manager
	object       string
}

// NewGdataSlot 使用已打开的 gdata Manager 创建存档槽
//
// 参数：
//   - manager: gdata 存储管理器，不能为 nil
//   - object: 存档对象名，如 "progress"
func NewGdataSlot(manager *gdata.Manager, object string) *GdataSlot {
	return &GdataSlot{
		gdataManager: manager,
		object:       object,
	}
}

// OpenGdataSlot 打开应用的 gdata 存储并创建存档槽
func OpenGdataSlot(appName, object string) (*GdataSlot, error) {
	manager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open gdata storage for %s: %w", appName, err)
	}
	return NewGdataSlot(manager, object), nil
}

// Load 读取键值，不存在或读取失败时返回 ok=false
func (s *GdataSlot) Load(key string) (string, bool) {
	if !s.gdataManager.ObjectPropExists(s.object, key) {
		return "", false
	}
	data, err := s.gdataManager.LoadObjectProp(s.object, key)
	if err != nil {
		return "", false
	}
	return string(data), true
}

// Save 写入键值
func (s *GdataSlot) Save(key, value string) error {
	if err := s.gdataManager.SaveObjectProp(s.object, key, []byte(value)); err != nil {
		return fmt.Errorf("failed to save %s/%s: %w", s.object, key, err)
	}
	return nil
}

// Clear 删除存档对象下的全部键
func (s *GdataSlot) Clear() error {
	if !s.gdataManager.ObjectExists(s.object) {
		return nil
	}
	if err := s.gdataManager.DeleteObject(s.object); err != nil {
		return fmt.Errorf("failed to clear %s: %w", s.object, err)
	}
	return nil
}

// MemorySlot 纯内存存档槽
// 用于测试，以及 gdata 不可用时的降级模式（进度不会跨进程保留）
type MemorySlot struct {
	values map[string]string
}

// NewMemorySlot 创建空的内存存档槽
func NewMemorySlot() *MemorySlot {
	return &MemorySlot{values: make(map[string]string)}
}

// Load 读取键值
func (s *MemorySlot) Load(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Save 写入键值
func (s *MemorySlot) Save(key, value string) error {
	s.values[key] = value
	return nil
}

// Clear 清空全部键
func (s *MemorySlot) Clear() error {
	s.values = make(map[string]string)
	return nil
}

// Len 返回已保存的键数量
func (s *MemorySlot) Len() int {
	return len(s.values)
}

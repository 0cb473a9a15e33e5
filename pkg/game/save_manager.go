package game

import (
	"fmt"
	"log"
	"strconv"
	"strings"
)

// 存档键
const (
	levelKey  = "level"
	pointsKey = "points"
)

// 存档缺失或损坏时的默认值
const (
	DefaultLevel  = 1
	DefaultPoints = 0
)

// SaveManager 保存管理器
//
// 职责：
//   - 启动时读取关卡与分数
//   - 升级时保存关卡与分数
//   - 游戏结束时清空存档
//
// 存档值为十进制字符串。缺失、无法解析或越界的值一律视为"不存在"，
// 使用默认值，不向上返回错误。
type SaveManager struct {
	slot SaveSlot
}

// NewSaveManager 创建保存管理器
func NewSaveManager(slot SaveSlot) *SaveManager {
	return &SaveManager{slot: slot}
}

// LoadProgress 读取存档进度
//
// 返回：
//   - level: 关卡，缺失或非法（< 1）时为 1
//   - points: 分数，缺失或非法（< 0）时为 0
func (sm *SaveManager) LoadProgress() (level, points int) {
	level = sm.loadInt(levelKey, DefaultLevel, 1)
	points = sm.loadInt(pointsKey, DefaultPoints, 0)
	log.Printf("[SaveManager] Loaded progress: level=%d, points=%d", level, points)
	return level, points
}

// loadInt 读取整数键，低于 min 的值视为非法
func (sm *SaveManager) loadInt(key string, def, min int) int {
	raw, ok := sm.slot.Load(key)
	if !ok {
		return def
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || v < min {
		log.Printf("[SaveManager] Warning: ignoring invalid %s value %q", key, raw)
		return def
	}
	return v
}

// SaveProgress 保存关卡与分数
func (sm *SaveManager) SaveProgress(level, points int) error {
	if err := sm.slot.Save(levelKey, strconv.Itoa(level)); err != nil {
		return fmt.Errorf("failed to save level: %w", err)
	}
	if err := sm.slot.Save(pointsKey, strconv.Itoa(points)); err != nil {
		return fmt.Errorf("failed to save points: %w", err)
	}
	log.Printf("[SaveManager] Saved progress: level=%d, points=%d", level, points)
	return nil
}

// Clear 清空存档
func (sm *SaveManager) Clear() error {
	if err := sm.slot.Clear(); err != nil {
		return fmt.Errorf("failed to clear save slot: %w", err)
	}
	log.Printf("[SaveManager] Save slot cleared")
	return nil
}

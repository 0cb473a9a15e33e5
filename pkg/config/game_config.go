package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/decker502/skyshooter/pkg/embedded"
)

// GameConfig 游戏玩法配置
// 所有长度单位为逻辑像素，速度单位为"每帧移动的逻辑像素"
type GameConfig struct {
	Playfield PlayfieldConfig `yaml:"playfield"` // 场地尺寸
	Player    PlayerConfig    `yaml:"player"`    // 玩家飞船
	Bullet    BulletConfig    `yaml:"bullet"`    // 子弹
	Enemy     EnemyConfig     `yaml:"enemy"`     // 普通敌人
	Boss      BossConfig      `yaml:"boss"`      // 首领
	PowerUp   PowerUpConfig   `yaml:"powerUp"`   // 道具
	Waves     WaveConfig      `yaml:"waves"`     // 波次与关卡
	Scoring   ScoringConfig   `yaml:"scoring"`   // 计分
	Timing    TimingConfig    `yaml:"timing"`    // 实时定时器
	Terminal  TerminalConfig  `yaml:"terminal"`  // 终端前端
}

// PlayfieldConfig 场地配置
type PlayfieldConfig struct {
	Width       float64 `yaml:"width"`       // 场地宽度，默认 800
	Height      float64 `yaml:"height"`      // 场地高度，默认 800
	AggroMargin float64 `yaml:"aggroMargin"` // 追踪线距底部的距离，默认 150
	HomingStep  float64 `yaml:"homingStep"`  // 越过追踪线后每帧水平逼近玩家的距离，默认 1
}

// AggroLine 返回追踪线的Y坐标
func (p PlayfieldConfig) AggroLine() float64 {
	return p.Height - p.AggroMargin
}

// PlayerConfig 玩家配置
type PlayerConfig struct {
	Width         float64 `yaml:"width"`         // 默认 20
	Height        float64 `yaml:"height"`        // 默认 20
	Speed         float64 `yaml:"speed"`         // 默认 3
	BottomOffset  float64 `yaml:"bottomOffset"`  // 初始Y = 场地高度 - BottomOffset，默认 50
	Spacing       float64 `yaml:"spacing"`       // 副本间距，默认 30
	StartingCount int     `yaml:"startingCount"` // 初始副本数量，默认 1
}

// BulletConfig 子弹配置
type BulletConfig struct {
	Width  float64 `yaml:"width"`  // 默认 5
	Height float64 `yaml:"height"` // 默认 10
	Speed  float64 `yaml:"speed"`  // 默认 5
}

// EnemyConfig 敌人配置
type EnemyConfig struct {
	Width  float64 `yaml:"width"`  // 默认 10
	Height float64 `yaml:"height"` // 默认 10
	Speed  float64 `yaml:"speed"`  // 默认 0.5
	// SpeedPerLevel 每关额外速度，默认 0（不随关卡加速）
	SpeedPerLevel float64 `yaml:"speedPerLevel"`
	StartX        float64 `yaml:"startX"`  // 第一个敌人的X，默认 5
	StartY        float64 `yaml:"startY"`  // 默认 -50
	Spacing       float64 `yaml:"spacing"` // 水平间距，默认 20
}

// BossConfig 首领配置
type BossConfig struct {
	Width          float64 `yaml:"width"`          // 默认 100
	Height         float64 `yaml:"height"`         // 默认 50
	Speed          float64 `yaml:"speed"`          // 默认 0.5
	StartY         float64 `yaml:"startY"`         // 默认 -100
	BaseHealth     int     `yaml:"baseHealth"`     // 默认 10
	HealthPerLevel int     `yaml:"healthPerLevel"` // 默认 25
}

// PowerUpConfig 道具配置
type PowerUpConfig struct {
	Width  float64 `yaml:"width"`  // 默认 400
	Height float64 `yaml:"height"` // 默认 20
	Speed  float64 `yaml:"speed"`  // 默认 2
	StartY float64 `yaml:"startY"` // 默认 -50
	// EachLevel 升级时是否再投放一对道具，默认 false（仅开局投放）
	EachLevel bool `yaml:"eachLevel"`
}

// WaveConfig 波次配置
type WaveConfig struct {
	MaxWavesPerLevel int `yaml:"maxWavesPerLevel"` // 每关普通波次数，默认 3
	BaseSize         int `yaml:"baseSize"`         // 波次基础敌人数，默认 6
	GrowthPerWave    int `yaml:"growthPerWave"`    // 每波增加的敌人数，默认 2
	OpeningWaveSize  int `yaml:"openingWaveSize"`  // 开局第一批敌人数，默认 25
}

// ScoringConfig 计分配置
type ScoringConfig struct {
	EnemyPoints   int `yaml:"enemyPoints"`   // 击毁敌人，默认 100
	BossPoints    int `yaml:"bossPoints"`    // 击败首领，默认 1000
	LevelUpPoints int `yaml:"levelUpPoints"` // 升级奖励，默认 1000
}

// TimingConfig 实时定时器配置
type TimingConfig struct {
	ShootingIntervalMs int `yaml:"shootingIntervalMs"` // 自动射击周期，默认 100
	CountdownSeconds   int `yaml:"countdownSeconds"`   // 升级倒计时，默认 3
	TickRate           int `yaml:"tickRate"`           // 终端前端每秒帧数，默认 60
}

// ShootingInterval 返回射击周期
func (t TimingConfig) ShootingInterval() time.Duration {
	return time.Duration(t.ShootingIntervalMs) * time.Millisecond
}

// TickInterval 返回帧间隔
func (t TimingConfig) TickInterval() time.Duration {
	return time.Second / time.Duration(t.TickRate)
}

// TerminalConfig 终端前端配置
type TerminalConfig struct {
	// KeyHoldMs 终端没有按键抬起事件，方向键在最后一次按下后保持的毫秒数，默认 150
	KeyHoldMs int `yaml:"keyHoldMs"`
}

// KeyHold 返回方向键保持时长
func (t TerminalConfig) KeyHold() time.Duration {
	return time.Duration(t.KeyHoldMs) * time.Millisecond
}

// DefaultGameConfig 返回默认配置
func DefaultGameConfig() *GameConfig {
	cfg := &GameConfig{}
	applyGameDefaults(cfg)
	return cfg
}

// LoadGameConfig 从YAML文件加载游戏配置
// 参数：
//
//	path - 配置文件路径（相对或绝对路径）
//
// 返回：
//
//	*GameConfig - 解析后的配置对象
//	error - 如果文件读取或解析失败，返回错误信息
func LoadGameConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config file %s: %w", path, err)
	}

	cfg, err := ParseGameConfig(data)
	if err != nil {
		return nil, fmt.Errorf("invalid game config in %s: %w", path, err)
	}
	return cfg, nil
}

// DefaultGameConfigPath 随程序嵌入的默认配置路径
const DefaultGameConfigPath = "data/config/game.yaml"

// LoadEmbeddedGameConfig 从嵌入资源加载游戏配置
// 调用前必须先调用 embedded.Init()
func LoadEmbeddedGameConfig(path string) (*GameConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded game config %s: %w", path, err)
	}

	cfg, err := ParseGameConfig(data)
	if err != nil {
		return nil, fmt.Errorf("invalid embedded game config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseGameConfig 解析YAML格式的游戏配置
// 缺失字段使用默认值，解析后进行合法性校验
func ParseGameConfig(data []byte) (*GameConfig, error) {
	var cfg GameConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config YAML: %w", err)
	}

	// 应用默认值（允许配置文件只覆盖部分字段）
	applyGameDefaults(&cfg)

	if err := validateGameConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyGameDefaults 为缺失（零值）的字段设置默认值
// 注意：SpeedPerLevel、EachLevel 的零值即默认值，无需处理
func applyGameDefaults(cfg *GameConfig) {
	setFloat(&cfg.Playfield.Width, 800)
	setFloat(&cfg.Playfield.Height, 800)
	setFloat(&cfg.Playfield.AggroMargin, 150)
	setFloat(&cfg.Playfield.HomingStep, 1)

	setFloat(&cfg.Player.Width, 20)
	setFloat(&cfg.Player.Height, 20)
	setFloat(&cfg.Player.Speed, 3)
	setFloat(&cfg.Player.BottomOffset, 50)
	setFloat(&cfg.Player.Spacing, 30)
	setInt(&cfg.Player.StartingCount, 1)

	setFloat(&cfg.Bullet.Width, 5)
	setFloat(&cfg.Bullet.Height, 10)
	setFloat(&cfg.Bullet.Speed, 5)

	setFloat(&cfg.Enemy.Width, 10)
	setFloat(&cfg.Enemy.Height, 10)
	setFloat(&cfg.Enemy.Speed, 0.5)
	setFloat(&cfg.Enemy.StartX, 5)
	setFloat(&cfg.Enemy.StartY, -50)
	setFloat(&cfg.Enemy.Spacing, 20)

	setFloat(&cfg.Boss.Width, 100)
	setFloat(&cfg.Boss.Height, 50)
	setFloat(&cfg.Boss.Speed, 0.5)
	setFloat(&cfg.Boss.StartY, -100)
	setInt(&cfg.Boss.BaseHealth, 10)
	setInt(&cfg.Boss.HealthPerLevel, 25)

	setFloat(&cfg.PowerUp.Width, 400)
	setFloat(&cfg.PowerUp.Height, 20)
	setFloat(&cfg.PowerUp.Speed, 2)
	setFloat(&cfg.PowerUp.StartY, -50)

	setInt(&cfg.Waves.MaxWavesPerLevel, 3)
	setInt(&cfg.Waves.BaseSize, 6)
	setInt(&cfg.Waves.GrowthPerWave, 2)
	setInt(&cfg.Waves.OpeningWaveSize, 25)

	setInt(&cfg.Scoring.EnemyPoints, 100)
	setInt(&cfg.Scoring.BossPoints, 1000)
	setInt(&cfg.Scoring.LevelUpPoints, 1000)

	setInt(&cfg.Timing.ShootingIntervalMs, 100)
	setInt(&cfg.Timing.CountdownSeconds, 3)
	setInt(&cfg.Timing.TickRate, 60)

	setInt(&cfg.Terminal.KeyHoldMs, 150)
}

func setFloat(v *float64, def float64) {
	if *v == 0 {
		*v = def
	}
}

func setInt(v *int, def int) {
	if *v == 0 {
		*v = def
	}
}

// validateGameConfig 验证配置的合法性
func validateGameConfig(cfg *GameConfig) error {
	if cfg.Playfield.Width <= 0 || cfg.Playfield.Height <= 0 {
		return fmt.Errorf("playfield size must be positive, got %vx%v", cfg.Playfield.Width, cfg.Playfield.Height)
	}
	if cfg.Playfield.AggroMargin < 0 || cfg.Playfield.AggroMargin > cfg.Playfield.Height {
		return fmt.Errorf("aggroMargin %v out of range [0, %v]", cfg.Playfield.AggroMargin, cfg.Playfield.Height)
	}
	if cfg.Player.Width <= 0 || cfg.Player.Height <= 0 || cfg.Player.Speed <= 0 {
		return fmt.Errorf("player size and speed must be positive")
	}
	if cfg.Player.StartingCount < 1 {
		return fmt.Errorf("player startingCount must be >= 1, got %d", cfg.Player.StartingCount)
	}
	if cfg.Bullet.Speed <= 0 {
		return fmt.Errorf("bullet speed must be positive, got %v", cfg.Bullet.Speed)
	}
	if cfg.Enemy.Speed < 0 || cfg.Enemy.SpeedPerLevel < 0 {
		return fmt.Errorf("enemy speed must not be negative")
	}
	if cfg.Boss.BaseHealth < 1 || cfg.Boss.HealthPerLevel < 0 {
		return fmt.Errorf("boss health must be positive")
	}
	if cfg.Waves.MaxWavesPerLevel < 1 {
		return fmt.Errorf("maxWavesPerLevel must be >= 1, got %d", cfg.Waves.MaxWavesPerLevel)
	}
	if cfg.Waves.BaseSize < 0 || cfg.Waves.GrowthPerWave < 0 || cfg.Waves.OpeningWaveSize < 0 {
		return fmt.Errorf("wave sizes must not be negative")
	}
	if cfg.Scoring.EnemyPoints < 0 || cfg.Scoring.BossPoints < 0 || cfg.Scoring.LevelUpPoints < 0 {
		return fmt.Errorf("points must not be negative")
	}
	if cfg.Timing.ShootingIntervalMs < 0 || cfg.Timing.CountdownSeconds < 0 || cfg.Timing.TickRate < 0 {
		return fmt.Errorf("timing values must not be negative")
	}
	if cfg.Terminal.KeyHoldMs < 0 {
		return fmt.Errorf("keyHoldMs must not be negative, got %d", cfg.Terminal.KeyHoldMs)
	}
	return nil
}

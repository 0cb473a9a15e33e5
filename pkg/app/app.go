// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端、移动端和终端版共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用，
// 终端版只使用 LoadGameConfig、OpenSaveSlot 等共用的初始化函数。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/skyshooter/pkg/config"
	"github.com/decker502/skyshooter/pkg/game"
	"github.com/decker502/skyshooter/pkg/render"
	"github.com/decker502/skyshooter/pkg/scenes"
	"github.com/decker502/skyshooter/pkg/utils"
)

const (
	// AppName 存档使用的应用名
	AppName = "skyshooter"
	// saveObject 存档对象名
	saveObject = "progress"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 游戏配置文件路径，为空则使用嵌入的默认配置
	ConfigPath string
	// Reset 启动前清空存档
	Reset bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	scene     *scenes.GameScene
	renderer  *render.EbitenRenderer
	score     *game.TextLabel
	countdown *game.TextLabel

	width, height int
	verbose       bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	SetupLogging(cfg.Verbose)

	gameConfig, err := LoadGameConfig(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}

	slot := OpenSaveSlot()
	if cfg.Reset {
		ResetSave(slot)
	}

	width := int(gameConfig.Playfield.Width)
	height := int(gameConfig.Playfield.Height)
	renderer, err := render.NewEbitenRenderer(width, height)
	if err != nil {
		return nil, fmt.Errorf("渲染器初始化失败: %w", err)
	}

	a := &App{
		renderer:  renderer,
		score:     &game.TextLabel{},
		countdown: &game.TextLabel{},
		width:     width,
		height:    height,
		verbose:   cfg.Verbose,
	}
	a.scene = scenes.NewGameScene(scenes.Dependencies{
		Config:        gameConfig,
		Renderer:      renderer,
		Input:         utils.NewEbitenInput(width),
		Slot:          slot,
		ScoreSink:     a.score,
		CountdownSink: a.countdown,
		Start:         time.Now(),
	})

	if utils.IsMobile() {
		log.Printf("[App] Mobile mode: touch the left or right half of the screen to move")
	}
	return a, nil
}

// SetupLogging 配置日志输出，非 verbose 模式下丢弃所有日志
func SetupLogging(verbose bool) {
	if !verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}
}

// LoadGameConfig 加载游戏配置
// path 为空时使用嵌入的默认配置，否则从文件加载
func LoadGameConfig(path string) (*config.GameConfig, error) {
	if path == "" {
		cfg, err := config.LoadEmbeddedGameConfig(config.DefaultGameConfigPath)
		if err != nil {
			return nil, fmt.Errorf("默认配置加载失败: %w", err)
		}
		return cfg, nil
	}

	cfg, err := config.LoadGameConfig(path)
	if err != nil {
		return nil, fmt.Errorf("配置加载失败: %w", err)
	}
	log.Printf("[Config] 加载游戏配置: %s", path)
	return cfg, nil
}

// OpenSaveSlot 打开持久化存档
// 存储不可用时降级为内存存档，游戏照常进行但进度不会保存
func OpenSaveSlot() game.SaveSlot {
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[App] Warning: failed to prepare storage dir: %v", err)
	}

	slot, err := game.OpenGdataSlot(AppName, saveObject)
	if err != nil {
		log.Printf("[App] Warning: %v, progress will not be saved", err)
		return game.NewMemorySlot()
	}
	return slot
}

// ResetSave 清空存档
func ResetSave(slot game.SaveSlot) {
	if err := slot.Clear(); err != nil {
		log.Printf("[App] Warning: failed to reset save: %v", err)
		return
	}
	log.Printf("[App] Save reset")
}

// Update 推进一帧游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次），绘图也在此时写入离屏图像
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.width, a.height)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.width, a.height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	a.scene.Tick(time.Now())
	return nil
}

// Draw 把离屏图像贴到屏幕上，再绘制 HUD
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	screen.DrawImage(a.renderer.Image(), nil)
	render.DrawHUD(screen, a.score.Text(), a.countdown.Text())
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸（场地尺寸）
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

// Size 返回场地的逻辑尺寸
func (a *App) Size() (int, int) {
	return a.width, a.height
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}

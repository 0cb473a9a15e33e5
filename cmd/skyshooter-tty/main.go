// skyshooter-tty 终端版
//
// 场地缩放到终端字符网格上，第一行显示分数与倒计时。
// 方向键（或 a/d、h/l）移动，Esc / Ctrl-C / q 退出。
//
// 用法：
//
//	go run ./cmd/skyshooter-tty [-verbose] [-config game.yaml] [-reset]
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/skyshooter/pkg/app"
	"github.com/decker502/skyshooter/pkg/config"
	"github.com/decker502/skyshooter/pkg/game"
	"github.com/decker502/skyshooter/pkg/render"
	"github.com/decker502/skyshooter/pkg/scenes"
	"github.com/decker502/skyshooter/pkg/utils"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息（日志会覆盖终端画面，建议重定向 stderr）")
	configPath = flag.String("config", "", "游戏配置文件路径（为空则使用内置配置）")
	reset      = flag.Bool("reset", false, "启动前清空存档")
)

func main() {
	flag.Parse()
	app.SetupLogging(*verbose)

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "skyshooter-tty: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.DefaultGameConfig()
	if *configPath != "" {
		loaded, err := app.LoadGameConfig(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	slot := app.OpenSaveSlot()
	if *reset {
		app.ResetSave(slot)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()
	screen.Clear()

	renderer := render.NewTerminalRenderer(screen, cfg.Playfield.Width, cfg.Playfield.Height)
	input := utils.NewTerminalInput(cfg.Terminal.KeyHold())
	score := &game.TextLabel{}
	countdown := &game.TextLabel{}

	scene := scenes.NewGameScene(scenes.Dependencies{
		Config:        cfg,
		Renderer:      renderer,
		Input:         input,
		Slot:          slot,
		ScoreSink:     score,
		CountdownSink: countdown,
		Start:         time.Now(),
	})

	// 事件在独立 goroutine 上读取，与帧在同一个 select 中串行处理
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(cfg.Timing.TickInterval())
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if utils.IsQuitKey(ev) {
					return nil
				}
				input.HandleKey(ev)
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			input.Update(now)
			scene.Tick(now)
			renderer.DrawHUD(score.Text(), countdown.Text())
			renderer.Show()
		}
	}
}

package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/skyshooter/pkg/app"
	"github.com/decker502/skyshooter/pkg/embedded"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	configPath = flag.String("config", "", "游戏配置文件路径（为空则使用内置配置）")
	reset      = flag.Bool("reset", false, "启动前清空存档")
	scale      = flag.Float64("scale", 1.0, "窗口缩放比例")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源
	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		Reset:      *reset,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	width, height := gameApp.Size()
	s := *scale
	if s <= 0 {
		s = 1
	}
	ebiten.SetWindowSize(int(float64(width)*s), int(float64(height)*s))
	ebiten.SetWindowTitle("Sky Shooter")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}

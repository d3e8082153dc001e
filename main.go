// Command sparks 在窗口中运行交互式粒子效果
//
// 用法：
//
//	go run . [flags]
//
// 参数：
//
//	--config <path>   从 YAML 文件加载粒子配置
//	--max <n>         覆盖粒子上限
//	--seed <n>        固定随机数种子
//	--no-panel        隐藏参数面板
//	--verbose         输出详细日志
//
// 操作：
//
//	按住鼠标拖动      在指针处生成粒子
//	Space            在屏幕中心生成一批粒子
//	R                清除所有粒子
//	C                将当前参数以 YAML 复制到剪贴板
//	H / Tab          显示/隐藏参数面板
//	F11              切换全屏
//	Q / Escape       退出
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/sparks/pkg/app"
	"github.com/decker502/sparks/pkg/config"
)

var (
	configFlag  = flag.String("config", "", "Path to particle config YAML")
	maxFlag     = flag.Int("max", 0, "Override maximum live particles")
	seedFlag    = flag.Int64("seed", 0, "Random seed (0 = time based)")
	noPanelFlag = flag.Bool("no-panel", false, "Hide the parameter panel")
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging")
)

func main() {
	flag.Parse()

	particleConfig := config.DefaultParticleConfig()
	if *configFlag != "" {
		loaded, err := config.LoadParticleConfig(*configFlag)
		if err != nil {
			log.Fatalf("配置加载失败: %v", err)
		}
		particleConfig = loaded
	}
	if *maxFlag > 0 {
		particleConfig.MaxParticles = *maxFlag
	}

	gameApp, err := app.NewApp(app.Config{
		Verbose:   *verboseFlag,
		Particles: particleConfig,
		Seed:      *seedFlag,
		HidePanel: *noPanelFlag,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("Sparks")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil && !app.IsTermination(err) {
		log.Fatal(err)
	}
}

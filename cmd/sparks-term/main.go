// Command sparks-term 在终端中运行交互式粒子效果
//
// 用法：
//
//	go run ./cmd/sparks-term [flags]
//
// 参数：
//
//	--config <path>   从 YAML 文件加载粒子配置
//	--max <n>         覆盖粒子上限
//	--seed <n>        固定随机数种子
//	--fps <n>         帧率（默认 60）
//	--sound           生成粒子时播放提示音
//	--log <path>      日志写入文件（终端被 tcell 占用，日志不能写到 stderr）
//
// 操作：
//
//	按住鼠标拖动      在指针处生成粒子
//	g/G w/W a/A      减小/增大 重力/风力/吸引强度
//	Space            在屏幕中心生成一批粒子
//	r                清除所有粒子
//	c                将当前参数以 YAML 复制到剪贴板
//	q / Escape       退出
package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/sparks/pkg/config"
	"github.com/decker502/sparks/pkg/term"
)

var (
	configFlag = flag.String("config", "", "Path to particle config YAML")
	maxFlag    = flag.Int("max", 0, "Override maximum live particles")
	seedFlag   = flag.Int64("seed", 0, "Random seed (0 = time based)")
	fpsFlag    = flag.Int("fps", term.DefaultFPS, "Frames per second")
	soundFlag  = flag.Bool("sound", false, "Play a tick while emitting")
	logFlag    = flag.String("log", "", "Write logs to this file")
)

func main() {
	flag.Parse()

	if *logFlag != "" {
		f, err := os.OpenFile(*logFlag, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("打开日志文件失败: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

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

	var sound *term.Sound
	if *soundFlag {
		s, err := term.NewSound()
		if err != nil {
			// 非致命，没有声音也可以运行
			log.Printf("[Main] sound disabled: %v", err)
		} else {
			sound = s
			defer sound.Close()
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("终端不可用: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("终端初始化失败: %v", err)
	}
	// tcell 接管终端后，未指定日志文件时丢弃日志
	if *logFlag == "" {
		log.SetOutput(io.Discard)
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.EnableFocus()
	screen.HideCursor()

	runner, err := term.NewRunner(screen, term.Options{
		Particles: particleConfig,
		Seed:      *seedFlag,
		FPS:       *fpsFlag,
		Sound:     sound,
	})
	if err != nil {
		screen.Fini()
		log.SetOutput(os.Stderr)
		log.Fatalf("初始化失败: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = runner.Run(ctx)
	screen.Fini()
	if err != nil && !errors.Is(err, context.Canceled) {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
}

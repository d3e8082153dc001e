// Command validate-config 校验粒子配置文件
//
// 用法：
//
//	go run ./cmd/validate-config [path ...]
//
// 不指定路径时校验 config/particles.yaml。任意文件无效时以状态码 1 退出。
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/decker502/sparks/pkg/config"
)

func main() {
	flag.Parse()

	paths := flag.Args()
	if len(paths) == 0 {
		paths = []string{"config/particles.yaml"}
	}

	failed := 0
	for _, path := range paths {
		if err := validate(path); err != nil {
			fmt.Printf("❌ %s: %v\n", path, err)
			failed++
		}
	}

	if failed > 0 {
		fmt.Printf("❌ %d/%d 个文件无效\n", failed, len(paths))
		os.Exit(1)
	}
}

func validate(path string) error {
	// LoadParticleConfig 已经执行 Validate
	cfg, err := config.LoadParticleConfig(path)
	if err != nil {
		return err
	}

	fmt.Printf("✅ %s\n", path)
	fmt.Printf("   粒子上限: %d, 每次生成: %d, 轨迹长度: %d\n", cfg.MaxParticles, cfg.EmitPerMove, cfg.TrailLength)
	fmt.Printf("   调色板: %d 色, 背景: %s\n", len(cfg.Palette), cfg.Background)
	fmt.Printf("   参数: gravity=%v wind=%v attractStrength=%v\n",
		cfg.Parameters.Gravity, cfg.Parameters.Wind, cfg.Parameters.AttractStrength)
	return nil
}

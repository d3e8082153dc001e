package term

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate       = beep.SampleRate(44100)
	tickFrequency    = 1320.0
	tickDuration     = 15 * time.Millisecond
	minTickInterval  = 60 * time.Millisecond
	speakerBufferDur = 50 * time.Millisecond
)

// Sound 粒子生成时的短促提示音
// nil *Sound 是合法的空实现
type Sound struct {
	lastTick time.Time
}

// NewSound 初始化扬声器
// 失败不是致命错误，调用方可以在没有声音的情况下继续运行
func NewSound() (*Sound, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(speakerBufferDur)); err != nil {
		return nil, fmt.Errorf("speaker init: %w", err)
	}
	return &Sound{}, nil
}

// Tick 播放一次提示音，间隔过短时忽略
func (s *Sound) Tick(now time.Time) {
	if s == nil || now.Sub(s.lastTick) < minTickInterval {
		return
	}
	s.lastTick = now

	sine, err := generators.SineTone(sampleRate, tickFrequency)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(tickDuration), sine))
}

// Close 关闭扬声器
func (s *Sound) Close() {
	if s == nil {
		return
	}
	speaker.Close()
}

package assets

import (
	"bytes"
	"embed"
	"encoding/binary"
	"fmt"
	"image"
	_ "image/png"
	"math"
	"path/filepath"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

const SampleRate = 44100

//go:embed *.png *.wav
var assetsFS embed.FS

var (
	audioOnce    sync.Once
	audioContext *audio.Context
)

// AudioContext returns the process-wide audio context, created on first use.
func AudioContext() *audio.Context {
	audioOnce.Do(func() {
		audioContext = audio.CurrentContext()
		if audioContext == nil {
			audioContext = audio.NewContext(SampleRate)
		}
	})
	return audioContext
}

// LoadImage loads an embedded asset by assets-relative path.
func LoadImage(path string) (*ebiten.Image, error) {
	clean := cleanAssetPath(path)
	b, err := assetsFS.ReadFile(clean)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("decode image %q: %w", path, err)
	}
	return ebiten.NewImageFromImage(img), nil
}

// LoadFile loads an embedded asset by assets-relative path.
func LoadFile(path string) ([]byte, error) {
	clean := cleanAssetPath(path)
	return assetsFS.ReadFile(clean)
}

// LoadAudioPlayer loads an embedded audio asset and creates an audio player.
// Looping players repeat the whole clip.
func LoadAudioPlayer(path string, loop bool) (*audio.Player, error) {
	b, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	ctx := AudioContext()
	clean := strings.ToLower(cleanAssetPath(path))
	if !strings.HasSuffix(clean, ".wav") {
		// Already-decoded PCM in Ebiten's native format.
		if loop {
			return ctx.NewPlayer(audio.NewInfiniteLoop(bytes.NewReader(b), int64(len(b))))
		}
		return ctx.NewPlayerFromBytes(b), nil
	}

	stream, err := wav.DecodeWithSampleRate(ctx.SampleRate(), bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("decode wav %q: %w", path, err)
	}
	if loop {
		return ctx.NewPlayer(audio.NewInfiniteLoop(stream, stream.Length()))
	}
	return ctx.NewPlayer(stream)
}

// TonePCM renders a sine wave as 16-bit little-endian stereo PCM at
// SampleRate.
func TonePCM(freq, seconds float64) []byte {
	if seconds <= 0 {
		seconds = 1
	}
	n := int(seconds * SampleRate)
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		s := int16(math.Sin(2*math.Pi*freq*float64(i)/SampleRate) * 0.3 * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(s))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(s))
	}
	return buf
}

// TonePlayer creates a player for a generated sine tone.
func TonePlayer(freq, seconds float64, loop bool) (*audio.Player, error) {
	pcm := TonePCM(freq, seconds)
	ctx := AudioContext()
	if loop {
		return ctx.NewPlayer(audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm))))
	}
	return ctx.NewPlayerFromBytes(pcm), nil
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	if filepath.IsAbs(path) {
		s := filepath.ToSlash(path)
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return filepath.Base(path)
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "assets/"); ok {
		return after
	}
	return s
}

package processor

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// convertAudio converts an audio or video file to mono MP3, compressed
// toward the configured target size. Whisper needs neither stereo nor high
// bitrates, so this trades quality for speed and disk.
func (p *implProcessor) convertAudio(ctx context.Context, inputPath string) (string, error) {
	base := filepath.Base(inputPath)
	outputPath := filepath.Join(p.cfg.Paths.Temp,
		strings.TrimSuffix(base, filepath.Ext(base))+"_mono.mp3")

	bitrate := p.targetBitrate(ctx, inputPath)

	p.logger.Info(ctx, "Converting audio to mono MP3 (%d bps): %s", bitrate, inputPath)

	// -vn: drop any video stream
	// -ac 1: mono
	args := []string{
		"-i", inputPath,
		"-vn",
		"-ac", "1",
		"-b:a", strconv.Itoa(bitrate),
		"-y",
		outputPath,
	}

	if _, err := p.executor.Execute(ctx, "ffmpeg", args...); err != nil {
		return "", fmt.Errorf("ffmpeg convert: %w", err)
	}

	p.logger.Info(ctx, "Audio converted: %s", outputPath)
	return outputPath, nil
}

// targetBitrate computes the bitrate that lands the output near the
// configured target size, clamped to the configured floor so quality never
// collapses entirely. Probe failures fall back to the floor.
func (p *implProcessor) targetBitrate(ctx context.Context, inputPath string) int {
	seconds := p.probeDuration(ctx, inputPath)
	if seconds <= 0 {
		return p.cfg.Audio.MinBitrateBPS
	}

	bitrate := int(float64(p.cfg.Audio.TargetSizeMB*1024*1024*8) / seconds)
	if bitrate < p.cfg.Audio.MinBitrateBPS {
		bitrate = p.cfg.Audio.MinBitrateBPS
	}
	return bitrate
}

func (p *implProcessor) probeDuration(ctx context.Context, inputPath string) float64 {
	out, err := p.executor.Execute(ctx, "ffprobe",
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		inputPath,
	)
	if err != nil {
		p.logger.Warn(ctx, "Failed to probe duration for %s: %v", inputPath, err)
		return 0
	}

	seconds, err := strconv.ParseFloat(strings.TrimSpace(out), 64)
	if err != nil {
		return 0
	}
	return seconds
}

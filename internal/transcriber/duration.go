package transcriber

import (
	"context"
	"strconv"
	"strings"
)

// durationSeconds probes the audio length with ffprobe. It only feeds the
// progress heuristic, so failures return 0 rather than an error and the
// estimator falls back to its minimum time floor.
func (t *implTranscriber) durationSeconds(ctx context.Context, audioPath string) float64 {
	out, err := t.executor.Execute(ctx, "ffprobe",
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		audioPath,
	)
	if err != nil {
		t.logger.Warn(ctx, "Failed to probe audio duration for %s: %v", audioPath, err)
		return 0
	}

	seconds, err := strconv.ParseFloat(strings.TrimSpace(out), 64)
	if err != nil {
		t.logger.Warn(ctx, "Unparseable ffprobe duration for %s: %q", audioPath, out)
		return 0
	}

	return seconds
}

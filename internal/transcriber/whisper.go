package transcriber

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/haglundm/taltext/internal/config"
	"github.com/haglundm/taltext/internal/logger"
	"github.com/haglundm/taltext/pkg/executor"
)

type whisperEngine struct {
	cfg      *config.Config
	executor executor.Executor
	logger   logger.Logger
}

// NewWhisperEngine returns an Engine backed by the whisper.cpp CLI.
func NewWhisperEngine(cfg *config.Config, exec executor.Executor, log logger.Logger) Engine {
	return &whisperEngine{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}

// Infer runs the whisper binary against the audio file and returns the
// plain-text transcript. Blocks for the full duration of the inference.
func (w *whisperEngine) Infer(ctx context.Context, audioPath, language string) (string, error) {
	tmpDir, err := os.MkdirTemp(w.cfg.Paths.Temp, "whisper-*")
	if err != nil {
		return "", fmt.Errorf("create whisper temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	outputPrefix := filepath.Join(tmpDir, "transcript")
	modelPath := filepath.Join(w.cfg.Whisper.ModelDir, w.cfg.Whisper.Model+".bin")

	// -otxt: plain text output
	// -l: force language (prevents hallucination)
	// -ml/-mc 0: no segment length or context limit, better for long audio
	args := []string{
		"-m", modelPath,
		"-f", audioPath,
		"-otxt",
		"-l", language,
		"-t", strconv.Itoa(w.cfg.Whisper.Threads),
		"-ml", "0",
		"-mc", "0",
		"--output-file", outputPrefix,
	}

	w.logger.Info(ctx, "Starting transcription with %s (%d threads): %s",
		w.cfg.Whisper.Model, w.cfg.Whisper.Threads, audioPath)

	if _, err := w.executor.Execute(ctx, w.cfg.Whisper.BinaryPath, args...); err != nil {
		return "", fmt.Errorf("whisper inference: %w", err)
	}

	content, err := os.ReadFile(outputPrefix + ".txt")
	if err != nil {
		return "", fmt.Errorf("read whisper output: %w", err)
	}

	w.logger.Info(ctx, "Transcription completed: %s", audioPath)
	return strings.TrimSpace(string(content)), nil
}

package transcriber

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/haglundm/taltext/internal/progress"
)

// Transcribe runs the blocking inference call with a paced progress signal
// alongside it. The reporter, when supplied, receives estimated values
// capped at 0.95 while the call runs and exactly 1.0 once the outcome is
// known, on both the success and the failure path, so a progress bar never
// hangs below 100%.
func (t *implTranscriber) Transcribe(ctx context.Context, req Request, report progress.Reporter) (string, error) {
	if _, err := os.Stat(req.AudioPath); err != nil {
		return "", fmt.Errorf("audio file not readable: %w", err)
	}

	if report != nil {
		estimator := progress.Estimator{
			AudioSeconds: t.durationSeconds(ctx, req.AudioPath),
			SpeedFactor:  progress.FactorFor(t.cfg.Whisper.SpeedFactors, req.Model),
			MinSeconds:   t.cfg.Whisper.MinSeconds,
			Steps:        t.cfg.Whisper.ProgressSteps,
		}

		estimatorCtx, stopEstimator := context.WithCancel(ctx)
		estimatorDone := make(chan struct{})

		t.logger.Debug(ctx, "Estimated transcription time: %.0fs (model %s)",
			estimator.EstimatedSeconds(), req.Model)

		go func() {
			defer close(estimatorDone)
			estimator.Run(estimatorCtx, report)
		}()

		// The terminal signal fires after the real outcome is known,
		// regardless of which it is, and strictly after the estimator has
		// stopped so 1.0 is always the last value seen.
		defer func() {
			stopEstimator()
			<-estimatorDone
			report(1.0)
		}()
	}

	text, err := t.engine.Infer(ctx, req.AudioPath, req.Language)
	if err != nil {
		return "", fmt.Errorf("transcription failed: %w", err)
	}

	if err := t.persist(req, text); err != nil {
		return "", err
	}

	return text, nil
}

// persist writes the transcript to {OutputDir}/{OutputBase}.txt, replacing
// invalid UTF-8 sequences rather than failing on them.
func (t *implTranscriber) persist(req Request, text string) error {
	if err := os.MkdirAll(req.OutputDir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	clean := strings.ToValidUTF8(text, "�")
	outPath := filepath.Join(req.OutputDir, req.OutputBase+".txt")

	if err := os.WriteFile(outPath, []byte(clean), 0644); err != nil {
		return fmt.Errorf("write transcript: %w", err)
	}

	return nil
}

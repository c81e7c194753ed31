package transcriber

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/haglundm/taltext/internal/config"
	"github.com/haglundm/taltext/internal/logger"
)

type fakeEngine struct {
	text string
	err  error
}

func (f *fakeEngine) Infer(ctx context.Context, audioPath, language string) (string, error) {
	return f.text, f.err
}

type fakeExecutor struct {
	output string
	err    error
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	return f.output, f.err
}

func (f *fakeExecutor) ExecuteInDir(ctx context.Context, dir, name string, args ...string) (string, error) {
	return f.output, f.err
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{
		Whisper: config.WhisperConfig{
			BinaryPath: "./whisper-cli",
			ModelDir:   "models",
		},
		Paths: config.PathsConfig{
			Input:  t.TempDir(),
			Output: t.TempDir(),
		},
	}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	// Keep the estimator fast in tests.
	cfg.Whisper.MinSeconds = 0.01
	cfg.Whisper.ProgressSteps = 10
	return cfg
}

func writeTestAudio(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.mp3")
	if err := os.WriteFile(path, []byte("not really audio"), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestTranscribeSuccess(t *testing.T) {
	cfg := testConfig(t)
	outDir := filepath.Join(t.TempDir(), "text")

	tr := New(cfg, &fakeEngine{text: "hej världen"}, &fakeExecutor{output: "120.5\n"}, logger.New("error"))

	var values []float64
	req := Request{
		AudioPath:  writeTestAudio(t),
		OutputBase: "input.mp3",
		Model:      "kb-whisper-tiny",
		Language:   "sv",
		OutputDir:  outDir,
	}

	text, err := tr.Transcribe(context.Background(), req, func(v float64) {
		values = append(values, v)
	})
	if err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}
	if text != "hej världen" {
		t.Errorf("Transcribe() = %q, want %q", text, "hej världen")
	}

	data, err := os.ReadFile(filepath.Join(outDir, "input.mp3.txt"))
	if err != nil {
		t.Fatalf("transcript file not written: %v", err)
	}
	if string(data) != "hej världen" {
		t.Errorf("transcript file = %q, want %q", data, "hej världen")
	}

	checkProgressSignal(t, values)
}

func TestTranscribeFailure(t *testing.T) {
	cfg := testConfig(t)
	outDir := filepath.Join(t.TempDir(), "text")

	tr := New(cfg, &fakeEngine{err: errors.New("model load failed")}, &fakeExecutor{output: "60\n"}, logger.New("error"))

	var values []float64
	req := Request{
		AudioPath:  writeTestAudio(t),
		OutputBase: "input.mp3",
		Model:      "kb-whisper-large",
		Language:   "sv",
		OutputDir:  outDir,
	}

	_, err := tr.Transcribe(context.Background(), req, func(v float64) {
		values = append(values, v)
	})
	if err == nil {
		t.Fatal("Transcribe() expected error")
	}

	// No partial transcript file on failure.
	if _, statErr := os.Stat(filepath.Join(outDir, "input.mp3.txt")); !os.IsNotExist(statErr) {
		t.Errorf("transcript file exists after failed transcription")
	}

	// The terminal signal still fires so a progress bar never hangs.
	checkProgressSignal(t, values)
}

func TestTranscribeMissingAudio(t *testing.T) {
	cfg := testConfig(t)

	tr := New(cfg, &fakeEngine{text: "x"}, &fakeExecutor{}, logger.New("error"))

	reported := false
	req := Request{
		AudioPath:  filepath.Join(t.TempDir(), "missing.mp3"),
		OutputBase: "missing.mp3",
		OutputDir:  t.TempDir(),
	}

	_, err := tr.Transcribe(context.Background(), req, func(v float64) { reported = true })
	if err == nil {
		t.Fatal("Transcribe() expected error for missing file")
	}
	if reported {
		t.Error("progress reported for input that failed precondition checks")
	}
}

func TestTranscribeNilReporter(t *testing.T) {
	cfg := testConfig(t)

	tr := New(cfg, &fakeEngine{text: "text"}, &fakeExecutor{output: "30\n"}, logger.New("error"))

	req := Request{
		AudioPath:  writeTestAudio(t),
		OutputBase: "input.mp3",
		OutputDir:  t.TempDir(),
	}

	if _, err := tr.Transcribe(context.Background(), req, nil); err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}
}

// checkProgressSignal asserts the contract shared by success and failure:
// non-decreasing, every value before the last is at most 0.95, and the last
// value is exactly 1.0.
func checkProgressSignal(t *testing.T, values []float64) {
	t.Helper()

	if len(values) == 0 {
		t.Fatal("no progress values emitted")
	}

	prev := 0.0
	for i, v := range values {
		if v < prev {
			t.Errorf("progress value %d = %v decreased from %v", i, v, prev)
		}
		if i < len(values)-1 && v > 0.95 {
			t.Errorf("pre-terminal progress value %d = %v exceeds 0.95", i, v)
		}
		prev = v
	}

	if last := values[len(values)-1]; last != 1.0 {
		t.Errorf("terminal progress value = %v, want exactly 1.0", last)
	}
}

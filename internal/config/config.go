package config

import "fmt"

type Config struct {
	Whisper     WhisperConfig     `yaml:"whisper"`
	Audio       AudioConfig       `yaml:"audio"`
	Summary     SummaryConfig     `yaml:"summary"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
}

type WhisperConfig struct {
	BinaryPath string `yaml:"binary_path"`
	ModelDir   string `yaml:"model_dir"`
	Model      string `yaml:"model"`
	Language   string `yaml:"language"`
	Threads    int    `yaml:"threads"`

	// SpeedFactors maps a model identifier to how many seconds of audio the
	// model transcribes per wall-clock second. Rough empirical values, kept
	// in config so they can be tuned per machine without a rebuild.
	SpeedFactors  map[string]float64 `yaml:"speed_factors"`
	ProgressSteps int                `yaml:"progress_steps"`
	MinSeconds    float64            `yaml:"min_seconds"`
}

type AudioConfig struct {
	TargetSizeMB  int `yaml:"target_size_mb"`
	MinBitrateBPS int `yaml:"min_bitrate_bps"`
}

type SummaryConfig struct {
	Provider    string  `yaml:"provider"` // "openai" or "gemini"
	OpenAIModel string  `yaml:"openai_model"`
	GeminiModel string  `yaml:"gemini_model"`
	Length      string  `yaml:"length"`
	Temperature float32 `yaml:"temperature"`
	MaxTokens   int     `yaml:"max_tokens"`
}

type PathsConfig struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Archived string `yaml:"archived"`
	Temp     string `yaml:"temp"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

func (c *Config) Validate() error {
	if c.Whisper.BinaryPath == "" {
		return fmt.Errorf("whisper.binary_path is required")
	}
	if c.Whisper.ModelDir == "" {
		return fmt.Errorf("whisper.model_dir is required")
	}
	if c.Paths.Input == "" {
		return fmt.Errorf("paths.input is required")
	}
	if c.Paths.Output == "" {
		return fmt.Errorf("paths.output is required")
	}
	if c.Summary.Provider != "" && c.Summary.Provider != "openai" && c.Summary.Provider != "gemini" {
		return fmt.Errorf("summary.provider must be \"openai\" or \"gemini\", got %q", c.Summary.Provider)
	}

	if c.Whisper.Model == "" {
		c.Whisper.Model = "kb-whisper-small"
	}
	if c.Whisper.Language == "" {
		c.Whisper.Language = "sv"
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 4
	}
	if len(c.Whisper.SpeedFactors) == 0 {
		c.Whisper.SpeedFactors = DefaultSpeedFactors()
	}
	if c.Whisper.ProgressSteps == 0 {
		c.Whisper.ProgressSteps = 100
	}
	if c.Whisper.MinSeconds == 0 {
		c.Whisper.MinSeconds = 10
	}
	if c.Audio.TargetSizeMB == 0 {
		c.Audio.TargetSizeMB = 22
	}
	if c.Audio.MinBitrateBPS == 0 {
		c.Audio.MinBitrateBPS = 16000
	}
	if c.Summary.Provider == "" {
		c.Summary.Provider = "openai"
	}
	if c.Summary.OpenAIModel == "" {
		c.Summary.OpenAIModel = "gpt-3.5-turbo"
	}
	if c.Summary.GeminiModel == "" {
		c.Summary.GeminiModel = "gemini-2.5-flash"
	}
	if c.Summary.Length == "" {
		c.Summary.Length = "Medium"
	}
	if c.Summary.Temperature == 0 {
		c.Summary.Temperature = 0.5
	}
	if c.Summary.MaxTokens == 0 {
		c.Summary.MaxTokens = 500
	}
	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 1
	}

	return nil
}

// DefaultSpeedFactors returns the built-in model-speed table: seconds of
// audio transcribed per wall-clock second. Larger models are slower.
func DefaultSpeedFactors() map[string]float64 {
	return map[string]float64{
		"kb-whisper-tiny":   8.0,
		"kb-whisper-base":   6.0,
		"kb-whisper-small":  4.0,
		"kb-whisper-medium": 2.0,
		"kb-whisper-large":  1.0,
	}
}

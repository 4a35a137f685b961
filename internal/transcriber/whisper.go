package transcriber

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/nguyentantai21042004/meeting-report/internal/logger"
	"github.com/nguyentantai21042004/meeting-report/pkg/executor"
)

// WhisperOptions configures the whisper.cpp backend.
type WhisperOptions struct {
	BinaryPath string
	FFmpegPath string
	ModelsDir  string
	Threads    int
}

type whisperModel struct {
	opts      WhisperOptions
	binary    string
	ffmpeg    string
	modelPath string
	executor  executor.Executor
	logger    logger.Logger
}

// whisperOutput is the subset of whisper.cpp's -oj output we read.
type whisperOutput struct {
	Result struct {
		Language string `json:"language"`
	} `json:"result"`
	Transcription []struct {
		Offsets struct {
			From int64 `json:"from"`
			To   int64 `json:"to"`
		} `json:"offsets"`
		Text string `json:"text"`
	} `json:"transcription"`
}

// NewWhisperLoader returns a Loader for whisper.cpp ggml models stored as
// <models_dir>/ggml-<size>.bin.
func NewWhisperLoader(opts WhisperOptions, exec executor.Executor, log logger.Logger) Loader {
	return func(ctx context.Context, size string) (Model, error) {
		binary, err := exec.LookPath(opts.BinaryPath)
		if err != nil {
			return nil, fmt.Errorf("whisper binary: %w", err)
		}
		ffmpeg, err := exec.LookPath(opts.FFmpegPath)
		if err != nil {
			return nil, fmt.Errorf("ffmpeg binary: %w", err)
		}

		modelPath := filepath.Join(opts.ModelsDir, "ggml-"+size+".bin")
		if _, err := os.Stat(modelPath); err != nil {
			return nil, fmt.Errorf("whisper model: %w", err)
		}

		log.Debug(ctx, "whisper.cpp model ready: %s", modelPath)
		return &whisperModel{
			opts:      opts,
			binary:    binary,
			ffmpeg:    ffmpeg,
			modelPath: modelPath,
			executor:  exec,
			logger:    log,
		}, nil
	}
}

// Transcribe converts the upload to 16 kHz mono WAV, runs whisper.cpp with
// language auto-detection and reads back its JSON output.
func (w *whisperModel) Transcribe(ctx context.Context, audioPath string) (Result, error) {
	workDir, err := os.MkdirTemp("", "transcribe-*")
	if err != nil {
		return Result{}, fmt.Errorf("create work dir: %w", err)
	}
	defer os.RemoveAll(workDir)

	wavPath, err := w.toWAV(ctx, audioPath, workDir)
	if err != nil {
		return Result{}, err
	}

	outputPrefix := filepath.Join(workDir, "transcript")

	w.logger.Info(ctx, "Starting transcription with %d threads: %s", w.opts.Threads, audioPath)

	// -l auto: detect the spoken language
	// -oj: JSON output (contains result.language)
	// -np: no progress prints
	args := []string{
		"-m", w.modelPath,
		"-f", wavPath,
		"-l", "auto",
		"-oj",
		"-np",
		"-t", strconv.Itoa(w.opts.Threads),
		"--output-file", outputPrefix,
	}

	if _, err := w.executor.Execute(ctx, w.binary, args...); err != nil {
		return Result{}, fmt.Errorf("whisper transcribe: %w", err)
	}

	data, err := os.ReadFile(outputPrefix + ".json")
	if err != nil {
		return Result{}, fmt.Errorf("read whisper output: %w", err)
	}

	return parseWhisperOutput(data)
}

// toWAV extracts audio as 16 kHz mono PCM, the only input whisper.cpp takes.
func (w *whisperModel) toWAV(ctx context.Context, audioPath, workDir string) (string, error) {
	wavPath := filepath.Join(workDir, "audio.wav")

	args := []string{
		"-i", audioPath,
		"-vn",
		"-ar", "16000",
		"-ac", "1",
		"-c:a", "pcm_s16le",
		"-threads", "0",
		"-y",
		wavPath,
	}

	if _, err := w.executor.Execute(ctx, w.ffmpeg, args...); err != nil {
		return "", fmt.Errorf("ffmpeg extract audio: %w", err)
	}

	return wavPath, nil
}

func parseWhisperOutput(data []byte) (Result, error) {
	var out whisperOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return Result{}, fmt.Errorf("decode whisper output: %w", err)
	}

	res := Result{Language: out.Result.Language}
	var text strings.Builder
	for _, seg := range out.Transcription {
		text.WriteString(seg.Text)
		res.Segments = append(res.Segments, Segment{
			Start: time.Duration(seg.Offsets.From) * time.Millisecond,
			End:   time.Duration(seg.Offsets.To) * time.Millisecond,
			Text:  strings.TrimSpace(seg.Text),
		})
	}
	res.Text = strings.TrimSpace(text.String())

	return res, nil
}

package watcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/nguyentantai21042004/meeting-report/internal/logger"
)

func TestIsAudioFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"meeting.wav", true},
		{"MEETING.MP3", true},
		{"a/b/c.m4a", true},
		{"notes.txt", false},
		{"video.mp4", false},
		{".hidden.wav", false},
		{"noext", false},
	}
	for _, tt := range tests {
		if got := IsAudioFile(tt.path); got != tt.want {
			t.Errorf("IsAudioFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestWatcherDispatchesAudio(t *testing.T) {
	dir := t.TempDir()

	var mu sync.Mutex
	var handled []string
	done := make(chan struct{}, 4)
	handler := func(ctx context.Context, path string) error {
		mu.Lock()
		handled = append(handled, filepath.Base(path))
		mu.Unlock()
		done <- struct{}{}
		return errors.New("logged, not fatal")
	}

	w, err := New(dir, handler, logger.Nop(), 1)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer w.Stop()
	w.(*implWatcher).settle = 0

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- w.Start(ctx) }()

	// give the event loop a moment to start
	time.Sleep(50 * time.Millisecond)
	for _, name := range []string{"notes.txt", "standup.wav"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("handler was not called")
	}

	cancel()
	if err := <-errCh; !errors.Is(err, context.Canceled) {
		t.Errorf("Start() error = %v, want context.Canceled", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(handled) != 1 || handled[0] != "standup.wav" {
		t.Errorf("handled = %v, want [standup.wav]", handled)
	}
}

func TestNewMissingDir(t *testing.T) {
	if _, err := New(filepath.Join(t.TempDir(), "missing"), nil, logger.Nop(), 1); err == nil {
		t.Error("New() should fail for a missing directory")
	}
}

package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nguyentantai21042004/meeting-report/internal/report"
)

// writeOutput writes the markdown report into the output folder
func (p *implProcessor) writeOutput(ctx context.Context, name string, body []byte) (string, error) {
	if err := os.MkdirAll(p.opts.OutputDir, 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	destPath := filepath.Join(p.opts.OutputDir, name)
	p.logger.Info(ctx, "Writing report: %s", destPath)

	if err := os.WriteFile(destPath, body, 0644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}

	return destPath, nil
}

func (p *implProcessor) writeDocx(ctx context.Context, markdown, destPath string) error {
	p.logger.Info(ctx, "Writing DOCX report: %s", destPath)
	if err := report.WriteDocx(markdown, destPath); err != nil {
		// a half-written document is worse than none
		p.cleanupTempFile(ctx, destPath)
		return err
	}
	return nil
}

// moveToArchived moves the processed recording out of the input folder
func (p *implProcessor) moveToArchived(ctx context.Context, audioPath string) error {
	if p.opts.ArchivedDir == "" {
		return nil
	}
	if err := os.MkdirAll(p.opts.ArchivedDir, 0755); err != nil {
		return fmt.Errorf("create archived dir: %w", err)
	}

	destPath := filepath.Join(p.opts.ArchivedDir, filepath.Base(audioPath))
	p.logger.Info(ctx, "Archiving recording: %s -> %s", audioPath, destPath)

	if err := os.Rename(audioPath, destPath); err != nil {
		return fmt.Errorf("move to archived: %w", err)
	}

	return nil
}

// cleanupTempFile removes a file, logs warning if fails
func (p *implProcessor) cleanupTempFile(ctx context.Context, filePath string) {
	if err := os.Remove(filePath); err != nil && !os.IsNotExist(err) {
		p.logger.Warn(ctx, "Failed to cleanup file %s: %v", filePath, err)
	}
}

package processor

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"time"

	"github.com/nguyentantai21042004/meeting-report/internal/pipeline"
)

// Process runs one recording through the pipeline and writes the report
// to the output folder. The recording is archived only on success, so a
// failed file stays in the input folder for inspection.
func (p *implProcessor) Process(ctx context.Context, audioPath string) error {
	startTime := time.Now()
	filename := filepath.Base(audioPath)

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting report generation: %s", audioPath)
	p.logger.Info(ctx, "========================================")

	f, err := os.Open(audioPath)
	if err != nil {
		return fmt.Errorf("open recording: %w", err)
	}

	contentType := mime.TypeByExtension(filepath.Ext(filename))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	artifact, err := p.pipeline.Run(ctx, pipeline.Request{
		Filename:    filename,
		ContentType: contentType,
		Audio:       f,
	})
	f.Close()
	if err != nil {
		return err
	}

	body, err := p.store.Take(ctx, artifact.ID)
	if err != nil {
		return fmt.Errorf("read report: %w", err)
	}

	reportPath, err := p.writeOutput(ctx, artifact.Filename, body)
	if err != nil {
		return err
	}

	if p.opts.Docx {
		docxPath := reportPath[:len(reportPath)-len(filepath.Ext(reportPath))] + ".docx"
		if err := p.writeDocx(ctx, string(body), docxPath); err != nil {
			p.logger.Warn(ctx, "Failed to write DOCX report: %v", err)
		}
	}

	if err := p.moveToArchived(ctx, audioPath); err != nil {
		p.logger.Warn(ctx, "Failed to move original to archived folder: %v", err)
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Report generated successfully!")
	p.logger.Info(ctx, "Output report: %s", reportPath)
	p.logger.Info(ctx, "Processing time: %s", time.Since(startTime))
	p.logger.Info(ctx, "========================================")

	return nil
}

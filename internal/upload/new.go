package upload

import (
	"github.com/nguyentantai21042004/meeting-report/internal/logger"
)

type implIntake struct {
	dir    string
	logger logger.Logger
}

// New creates an Intake that stores files under dir.
func New(dir string, log logger.Logger) Intake {
	return &implIntake{
		dir:    dir,
		logger: log,
	}
}

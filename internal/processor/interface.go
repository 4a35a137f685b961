package processor

import "context"

// Processor turns a recording dropped into the input folder into a report
// in the output folder.
type Processor interface {
	Process(ctx context.Context, audioPath string) error
}

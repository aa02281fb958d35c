package sink

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/wambiru/forge/internal/report"
)

// FileSink saves report documents into a directory. The zero directory
// defaults to the per-device temp dir, matching where the reference
// writes its exports before sharing.
type FileSink struct {
	dir string
}

func NewFileSink(dir string) *FileSink {
	if dir == "" {
		dir = os.TempDir()
	}
	return &FileSink{dir: dir}
}

// Deliver writes the document under its candidate filename.
func (s *FileSink) Deliver(ctx context.Context, doc report.Document) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return &DeliveryError{Sink: FileType.String(), Err: err}
	}

	path := filepath.Join(s.dir, doc.Filename)
	if err := os.WriteFile(path, doc.Content, 0644); err != nil {
		return &DeliveryError{Sink: FileType.String(), Err: err}
	}

	slog.InfoContext(ctx, "Report saved", "path", path, "bytes", len(doc.Content))
	return nil
}

// Path returns where a document with the given filename would land.
func (s *FileSink) Path(filename string) string {
	return filepath.Join(s.dir, filename)
}

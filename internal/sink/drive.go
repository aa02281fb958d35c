package sink

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"google.golang.org/api/drive/v3"
	goption "google.golang.org/api/option"

	"github.com/wambiru/forge/internal/report"
)

// DriveSink uploads report documents to Google Drive, the cloud flavor
// of the share sink.
type DriveSink struct {
	svc      *drive.Service
	folderID string
}

// Ensure interface conformance
var _ report.DeliverySink = (*DriveSink)(nil)

// NewDriveSinkFromEnv creates a Drive sink with credentials resolved
// from the environment: GOOGLE_SERVICE_ACCOUNT_JSON,
// GOOGLE_SERVICE_ACCOUNT_FILE, or GOOGLE_APPLICATION_CREDENTIALS.
// folderID is the optional target folder; empty means the Drive root.
func NewDriveSinkFromEnv(ctx context.Context, folderID string) (*DriveSink, error) {
	svc, err := newDriveService(ctx)
	if err != nil {
		return nil, fmt.Errorf("drive service: %w", err)
	}

	return &DriveSink{
		svc:      svc,
		folderID: strings.TrimSpace(folderID),
	}, nil
}

// newDriveService initializes a Drive Service using Service Account
// credentials resolved from the environment.
func newDriveService(ctx context.Context) (*drive.Service, error) {
	serviceAccountJSON := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON"))
	serviceAccountFile := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_FILE"))

	if serviceAccountJSON == "" && serviceAccountFile == "" {
		serviceAccountFile = strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
	}

	var credentialsJSON []byte
	var err error

	switch {
	case serviceAccountJSON != "":
		credentialsJSON = []byte(serviceAccountJSON)
	case serviceAccountFile != "":
		credentialsJSON, err = os.ReadFile(serviceAccountFile)
		if err != nil {
			return nil, fmt.Errorf("read service account file: %w", err)
		}
	default:
		return nil, errors.New("missing service account credentials (set GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE, or GOOGLE_APPLICATION_CREDENTIALS)")
	}

	service, err := drive.NewService(ctx,
		goption.WithCredentialsJSON(credentialsJSON),
		goption.WithScopes(drive.DriveFileScope))
	if err != nil {
		return nil, fmt.Errorf("create drive service: %w", err)
	}

	return service, nil
}

// fileMetadata builds the Drive file entry for a document, parenting
// it under the configured folder when one is set.
func (s *DriveSink) fileMetadata(doc report.Document) *drive.File {
	f := &drive.File{
		Name:     doc.Filename,
		MimeType: "text/plain",
	}
	if s.folderID != "" {
		f.Parents = []string{s.folderID}
	}
	return f
}

// Deliver uploads the document under its candidate filename.
func (s *DriveSink) Deliver(ctx context.Context, doc report.Document) error {
	uploaded, err := s.svc.Files.Create(s.fileMetadata(doc)).
		Media(bytes.NewReader(doc.Content)).
		Context(ctx).
		Do()
	if err != nil {
		return &DeliveryError{Sink: DriveType.String(), Err: err}
	}

	slog.InfoContext(ctx, "Report uploaded to Drive",
		"filename", doc.Filename,
		"file_id", uploaded.Id,
		"folder_id", s.folderID)

	return nil
}

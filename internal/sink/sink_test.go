package sink

import (
	"bytes"
	"context"
	"os"
	"testing"
	"time"

	"github.com/wambiru/forge/internal/report"
)

func TestFileSinkDeliver(t *testing.T) {
	dir := t.TempDir()
	s := NewFileSink(dir)

	doc := report.Document{
		Filename:    "sales_report_1706779800000.txt",
		Content:     []byte("Sales Report\n"),
		GeneratedAt: time.Now(),
	}
	if err := s.Deliver(context.Background(), doc); err != nil {
		t.Fatalf("Deliver: %v", err)
	}

	got, err := os.ReadFile(s.Path(doc.Filename))
	if err != nil {
		t.Fatalf("read delivered file: %v", err)
	}
	if !bytes.Equal(got, doc.Content) {
		t.Fatalf("delivered content differs: %q", got)
	}
}

func TestFileSinkDefaultsToTempDir(t *testing.T) {
	s := NewFileSink("")
	if s.dir != os.TempDir() {
		t.Fatalf("dir = %q, want temp dir", s.dir)
	}
}

func TestReportMessageRoundTrip(t *testing.T) {
	msg := &ReportMessage{
		Filename:    "sales_report_1.txt",
		GeneratedAt: time.Date(2024, 2, 1, 9, 30, 0, 0, time.UTC),
		Content:     []byte("Totals\nPaid:   Ksh 0.00\n"),
	}
	body, err := msg.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}
	got, err := ReportMessageFromJSON(body)
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}
	if got.Filename != msg.Filename || !got.GeneratedAt.Equal(msg.GeneratedAt) || !bytes.Equal(got.Content, msg.Content) {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
		ok   bool
	}{
		{"file", Config{Type: FileType}, true},
		{"amqp with url", Config{Type: AMQPType, AMQPURL: "amqp://localhost"}, true},
		{"amqp without url", Config{Type: AMQPType}, false},
		{"unknown", Config{Type: "carrier-pigeon"}, false},
		{"empty", Config{}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.ok && err != nil {
				t.Fatalf("expected ok, got %v", err)
			}
			if !tc.ok && err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestFactoryCreateFileSink(t *testing.T) {
	f := NewFactory(nil)
	res, err := f.Create(context.Background(), Config{Type: FileType, ReportDir: t.TempDir()})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if res.Sink == nil {
		t.Fatal("factory returned nil sink")
	}
	if res.Cleanup != nil {
		t.Fatal("file sink needs no cleanup")
	}
}

func TestFactoryRejectsInvalidType(t *testing.T) {
	f := NewFactory(nil)
	if _, err := f.Create(context.Background(), Config{Type: "fax"}); err == nil {
		t.Fatal("expected error for invalid sink type")
	}
}

func TestDriveFileMetadataUsesConfiguredFolder(t *testing.T) {
	doc := report.Document{Filename: "sales_report_1.txt", Content: []byte("x")}

	s := &DriveSink{folderID: "folder-123"}
	f := s.fileMetadata(doc)
	if f.Name != doc.Filename {
		t.Fatalf("name = %q, want %q", f.Name, doc.Filename)
	}
	if len(f.Parents) != 1 || f.Parents[0] != "folder-123" {
		t.Fatalf("parents = %v, want [folder-123]", f.Parents)
	}

	root := &DriveSink{}
	if got := root.fileMetadata(doc).Parents; got != nil {
		t.Fatalf("parents = %v, want none for root delivery", got)
	}
}

func TestNewDriveSinkFromEnvMissingCredentials(t *testing.T) {
	for _, key := range []string{
		"GOOGLE_SERVICE_ACCOUNT_JSON",
		"GOOGLE_SERVICE_ACCOUNT_FILE",
		"GOOGLE_APPLICATION_CREDENTIALS",
	} {
		t.Setenv(key, "")
	}

	if _, err := NewDriveSinkFromEnv(context.Background(), "folder-123"); err == nil {
		t.Fatal("expected error when no credentials are configured")
	}
}

func TestTypeIsValid(t *testing.T) {
	for _, typ := range Types() {
		if !typ.IsValid() {
			t.Fatalf("%s should be valid", typ)
		}
	}
	if Type("").IsValid() {
		t.Fatal("empty type should not be valid")
	}
}

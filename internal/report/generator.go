package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/wambiru/forge/internal/core"
)

// Lister is the slice of the ledger store the generator needs.
type Lister interface {
	ReadAll(ctx context.Context, from, to time.Time) ([]core.Sale, error)
}

// DeliverySink receives a rendered document for save, share or print.
// The generator only produces content; transport belongs to the sink.
type DeliverySink interface {
	Deliver(ctx context.Context, doc Document) error
}

// Generator retrieves sales for a date range, aggregates them and
// renders the report document.
type Generator struct {
	store Lister
	now   func() time.Time
}

func NewGenerator(store Lister) *Generator {
	return &Generator{store: store, now: time.Now}
}

// Generate renders the report for the inclusive range [from, to]. A
// zero from means the earliest representable date; a zero to means the
// render instant.
func (g *Generator) Generate(ctx context.Context, from, to time.Time) (Document, error) {
	renderedAt := g.now()

	if from.IsZero() {
		from = time.Unix(0, 0).UTC()
	}
	if to.IsZero() {
		to = renderedAt
	}

	sales, err := g.store.ReadAll(ctx, from, to)
	if err != nil {
		return Document{}, fmt.Errorf("read sales for report: %w", err)
	}

	sum := core.Summarize(sales)
	doc := Document{
		Filename:    Filename(renderedAt),
		Content:     Render(sales, sum, from, to),
		GeneratedAt: renderedAt,
	}

	slog.InfoContext(ctx, "Report generated",
		"filename", doc.Filename,
		"sales", len(sales),
		"total", sum.Total)

	return doc, nil
}

// GenerateAndDeliver renders the report and hands it to the sink. On
// delivery failure the already-rendered document is returned together
// with the error, so delivery can be retried without recomputation.
func (g *Generator) GenerateAndDeliver(ctx context.Context, from, to time.Time, sink DeliverySink) (Document, error) {
	doc, err := g.Generate(ctx, from, to)
	if err != nil {
		return Document{}, err
	}

	if err := sink.Deliver(ctx, doc); err != nil {
		return doc, fmt.Errorf("deliver report %s: %w", doc.Filename, err)
	}

	return doc, nil
}

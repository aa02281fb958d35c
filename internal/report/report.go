// Package report renders a filtered, aggregated set of sales into a
// fixed-layout document and hands it to a delivery sink.
package report

import (
	"bytes"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/wambiru/forge/internal/core"
)

const (
	// currencyPrefix is the fixed monetary prefix used throughout the
	// document.
	currencyPrefix = "Ksh"

	rowDateLayout   = "2006-01-02 15:04"
	rangeDateLayout = "2006-01-02 15:04:05"
)

// Document is a rendered report: the byte-for-byte content plus a
// candidate filename. Delivery transport is the sink's concern.
type Document struct {
	Filename    string
	Content     []byte
	GeneratedAt time.Time
}

// FormatMoney renders a monetary value with the fixed currency prefix
// and exactly two decimal places.
func FormatMoney(v float64) string {
	return fmt.Sprintf("%s %.2f", currencyPrefix, v)
}

// Filename builds the report filename from the render timestamp. The
// epoch-millis component keeps repeated exports unique.
func Filename(t time.Time) string {
	return fmt.Sprintf("sales_report_%d.txt", t.UnixMilli())
}

// Render produces the document content: title, echoed date range, one
// table row per sale, then the three aggregate totals. An empty sale
// set renders a valid document with zero rows and Ksh 0.00 totals.
func Render(sales []core.Sale, sum core.Summary, from, to time.Time) []byte {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, "Sales Report")
	fmt.Fprintf(&buf, "Period: %s to %s\n\n",
		from.UTC().Format(rangeDateLayout), to.UTC().Format(rangeDateLayout))

	w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Date\tClient\tQuantity\tPaid\tUnpaid\tTotal\tType\tLocation")
	for _, s := range sales {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t%s\t%s\t%s\n",
			s.Date.UTC().Format(rowDateLayout),
			s.Client,
			s.Quantity,
			FormatMoney(s.Paid),
			FormatMoney(s.Unpaid),
			FormatMoney(s.Total()),
			s.TransactionType,
			s.Location)
	}
	w.Flush()

	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "Totals")
	fmt.Fprintf(&buf, "Paid:   %s\n", FormatMoney(sum.Paid))
	fmt.Fprintf(&buf, "Unpaid: %s\n", FormatMoney(sum.Unpaid))
	fmt.Fprintf(&buf, "Total:  %s\n", FormatMoney(sum.Total))

	return buf.Bytes()
}

package domain

// ReportDocument is the tabular payload handed to a document renderer.
type ReportDocument struct {
	Title    string
	Filename string
	Header   []string
	Rows     [][]string
}

// ReportSettings configures the exported document.
type ReportSettings struct {
	Title    string
	Filename string
}

// DefaultReportSettings matches the payment details download.
func DefaultReportSettings() ReportSettings {
	return ReportSettings{
		Title:    "Payment Details Report",
		Filename: "payment_report.pdf",
	}
}

// NewReportDocument lays records out in report column order.
func NewReportDocument(settings ReportSettings, records []Record) ReportDocument {
	header := make([]string, len(Columns))
	for i, c := range Columns {
		header[i] = c.Label()
	}
	rows := make([][]string, len(records))
	for i, r := range records {
		rows[i] = r.Row()
	}
	return ReportDocument{
		Title:    settings.Title,
		Filename: settings.Filename,
		Header:   header,
		Rows:     rows,
	}
}

package pdf

import (
	"context"
	"fmt"

	"github.com/SscSPs/hr_dashboard/internal/core/domain"
	"github.com/SscSPs/hr_dashboard/internal/core/ports"
	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

const gridSize = 12

// ReportRenderer renders report documents as PDF tables.
type ReportRenderer struct {
	titleSize float64
	cellSize  float64
	rowHeight float64
}

// NewReportRenderer creates a PDF renderer with the default layout.
func NewReportRenderer() *ReportRenderer {
	return &ReportRenderer{
		titleSize: 14,
		cellSize:  8,
		rowHeight: 8,
	}
}

// Ensure ReportRenderer implements the DocumentRenderer interface
var _ ports.DocumentRenderer = (*ReportRenderer)(nil)

// Render lays the title out above a header row and one row per record.
func (r *ReportRenderer) Render(ctx context.Context, doc domain.ReportDocument) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(doc.Header) == 0 || len(doc.Header) > gridSize {
		return nil, fmt.Errorf("report needs between 1 and %d columns, got %d", gridSize, len(doc.Header))
	}

	cfg := config.NewBuilder().
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		Build()
	m := maroto.New(cfg)

	m.AddRow(12, text.NewCol(gridSize, doc.Title, props.Text{
		Size:  r.titleSize,
		Style: fontstyle.Bold,
		Align: align.Left,
	}))

	width := gridSize / len(doc.Header)
	m.AddRows(r.tableRow(doc.Header, width, fontstyle.Bold))
	for _, cells := range doc.Rows {
		m.AddRows(r.tableRow(cells, width, fontstyle.Normal))
	}

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate pdf: %w", err)
	}
	return out.GetBytes(), nil
}

func (r *ReportRenderer) tableRow(cells []string, width int, style fontstyle.Type) core.Row {
	cols := make([]core.Col, len(cells))
	for i, cell := range cells {
		cols[i] = text.NewCol(width, cell, props.Text{
			Size:  r.cellSize,
			Style: style,
			Align: align.Center,
			Top:   1,
		})
	}
	return row.New(r.rowHeight).Add(cols...)
}

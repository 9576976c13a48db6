package ports

import (
	"context"

	"github.com/SscSPs/hr_dashboard/internal/core/domain"
)

// DocumentRenderer turns a tabular report into a downloadable document.
// Implementations must not retain the document after Render returns.
type DocumentRenderer interface {
	Render(ctx context.Context, doc domain.ReportDocument) ([]byte, error)
}

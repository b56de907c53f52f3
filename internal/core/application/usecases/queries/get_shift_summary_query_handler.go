package queries

import (
	"context"

	"shift/internal/core/domain/services"
)

// GetShiftSummaryQueryHandler rolls the committed sessions up with
// services.ShiftReporter.
type GetShiftSummaryQueryHandler struct {
	reader   SessionReader
	reporter services.ShiftReporter
}

func NewGetShiftSummaryQueryHandler(reader SessionReader) GetShiftSummaryQueryHandler {
	return GetShiftSummaryQueryHandler{
		reader:   reader,
		reporter: services.NewShiftReporter(),
	}
}

func (h GetShiftSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetShiftSummaryQuery,
) (services.ShiftReport, error) {
	if err := query.Validate(); err != nil {
		return services.ShiftReport{}, err
	}

	sessions, err := h.reader.GetAll(ctx)
	if err != nil {
		return services.ShiftReport{}, err
	}

	return h.reporter.Report(sessions)
}

package queries

import (
	"context"
)

type GetDriverStatusQueryHandler struct {
	reader SessionReader
}

func NewGetDriverStatusQueryHandler(reader SessionReader) GetDriverStatusQueryHandler {
	return GetDriverStatusQueryHandler{reader: reader}
}

// Handle returns errs.ErrObjectNotFound for unknown names.
func (h GetDriverStatusQueryHandler) Handle(
	ctx context.Context,
	query GetDriverStatusQuery,
) (GetDriverStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDriverStatusQueryResponse{}, err
	}

	session, err := h.reader.GetByName(ctx, query.Name())
	if err != nil {
		return GetDriverStatusQueryResponse{}, err
	}

	return GetDriverStatusQueryResponse{
		ID:         session.ID(),
		Name:       session.Name(),
		State:      session.State(),
		Status:     session.Status(),
		OnDelivery: session.IsOnDelivery(),
		Summary:    session.Summary(),
	}, nil
}

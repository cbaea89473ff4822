package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/query"
)

type ListTicketsQuery struct {
	Search   string
	Status   string
	Priority string
	Sort     string
	Page     int
	Limit    int
}

type ListTicketsResult struct {
	Tickets []dto.TicketDTO
	Total   int64
	Page    int
	Limit   int
}

type ListTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

// Execute lists one page of tickets. Invalid status or priority values fail
// fast, malformed sort fields are dropped during parsing and malformed page
// numbers coerce to defaults before this layer.
func (uc *ListTicketsUseCase) Execute(ctx context.Context, q ListTicketsQuery) (*ListTicketsResult, error) {
	filter := ticket.TicketFilter{
		Sort: query.ParseSort(q.Sort, ticket.SortableFields, ticket.DefaultSort),
		Page: query.NewPage(q.Page, q.Limit),
	}

	if q.Search != "" {
		search := q.Search
		filter.Search = &search
	}
	if q.Status != "" {
		status, err := vo.NewStatus(q.Status)
		if err != nil {
			return nil, errors.NewValidationError(fmt.Sprintf("invalid status filter: %s", q.Status))
		}
		filter.Status = &status
	}
	if q.Priority != "" {
		priority, err := vo.NewPriority(q.Priority)
		if err != nil {
			return nil, errors.NewValidationError(fmt.Sprintf("invalid priority filter: %s", q.Priority))
		}
		filter.Priority = &priority
	}

	tickets, total, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, err
	}

	return &ListTicketsResult{
		Tickets: dto.ToTicketDTOs(tickets),
		Total:   total,
		Page:    filter.Page.Page,
		Limit:   filter.Page.Limit,
	}, nil
}

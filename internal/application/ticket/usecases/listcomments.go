package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/query"
)

type ListCommentsQuery struct {
	TicketID uint
	Page     int
	Limit    int
}

type ListCommentsResult struct {
	Comments []dto.CommentDTO
	Total    int64
	Page     int
	Limit    int
}

type ListCommentsUseCase struct {
	ticketRepo  ticket.TicketRepository
	commentRepo ticket.CommentRepository
	logger      logger.Interface
}

func NewListCommentsUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	logger logger.Interface,
) *ListCommentsUseCase {
	return &ListCommentsUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		logger:      logger,
	}
}

// Execute lists one page of a ticket's comments, newest first. A missing
// ticket is a not found error, never an empty page.
func (uc *ListCommentsUseCase) Execute(ctx context.Context, q ListCommentsQuery) (*ListCommentsResult, error) {
	if _, err := uc.ticketRepo.GetByID(ctx, q.TicketID); err != nil {
		return nil, err
	}

	page := query.NewPage(q.Page, q.Limit)
	comments, total, err := uc.commentRepo.ListByTicketID(ctx, q.TicketID, page)
	if err != nil {
		uc.logger.Errorw("failed to list comments", "ticket_id", q.TicketID, "error", err)
		return nil, err
	}

	return &ListCommentsResult{
		Comments: dto.ToCommentDTOs(comments),
		Total:    total,
		Page:     page.Page,
		Limit:    page.Limit,
	}, nil
}

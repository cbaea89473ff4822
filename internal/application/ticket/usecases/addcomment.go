package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/db"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type AddCommentCommand struct {
	TicketID   uint
	AuthorName string
	Message    string
}

// AddCommentUseCase attaches a comment to an existing ticket. The existence
// check and the insert run in one transaction so a concurrent ticket delete
// cannot slip a comment onto a ticket that no longer exists.
type AddCommentUseCase struct {
	ticketRepo  ticket.TicketRepository
	commentRepo ticket.CommentRepository
	txManager   *db.TransactionManager
	logger      logger.Interface
}

func NewAddCommentUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	txManager *db.TransactionManager,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*dto.CommentDTO, error) {
	var comment *ticket.Comment

	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if _, err := uc.ticketRepo.GetByID(txCtx, cmd.TicketID); err != nil {
			return err
		}

		c, err := ticket.NewComment(cmd.TicketID, cmd.AuthorName, cmd.Message)
		if err != nil {
			return apperror(err)
		}

		if err := uc.commentRepo.Save(txCtx, c); err != nil {
			return err
		}

		comment = c
		return nil
	})
	if err != nil {
		uc.logger.Debugw("failed to add comment", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Infow("comment added", "ticket_id", cmd.TicketID, "comment_id", comment.ID())
	return dto.ToCommentDTO(comment), nil
}

// apperror wraps domain validation failures in the shared error taxonomy.
func apperror(err error) error {
	if errors.IsAppError(err) {
		return err
	}
	return errors.NewValidationError(err.Error())
}

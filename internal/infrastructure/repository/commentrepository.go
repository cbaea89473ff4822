package repository

import (
	"context"

	"gorm.io/gorm"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/db"
	apperrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/query"
)

type CommentRepository struct {
	db     *gorm.DB
	mapper *mappers.CommentMapper
}

func NewCommentRepository(database *gorm.DB) *CommentRepository {
	return &CommentRepository{
		db:     database,
		mapper: mappers.NewCommentMapper(),
	}
}

func (r *CommentRepository) Save(ctx context.Context, comment *ticket.Comment) error {
	model := r.mapper.ToModel(comment)

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		return apperrors.NewStoreError("failed to save comment", err.Error())
	}

	if comment.ID() == 0 {
		if err := comment.SetID(model.ID); err != nil {
			return apperrors.NewInternalError("failed to assign comment ID", err.Error())
		}
	}
	return nil
}

// ListByTicketID returns one page of a ticket's comments, newest first,
// plus the ticket's total comment count.
func (r *CommentRepository) ListByTicketID(ctx context.Context, ticketID uint, page query.Page) ([]*ticket.Comment, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	q := tx.Model(&models.CommentModel{}).Where("ticket_id = ?", ticketID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, apperrors.NewStoreError("failed to count comments", err.Error())
	}

	var modelList []*models.CommentModel
	err := q.Order("created_at DESC, id DESC").
		Limit(page.Limit).
		Offset(page.Offset()).
		Find(&modelList).Error
	if err != nil {
		return nil, 0, apperrors.NewStoreError("failed to list comments", err.Error())
	}

	comments, err := r.mapper.ToDomainList(modelList)
	if err != nil {
		return nil, 0, apperrors.NewInternalError("failed to map comments", err.Error())
	}
	return comments, total, nil
}

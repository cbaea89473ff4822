package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/db"
	apperrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/query"
)

// allowedTicketOrderByFields is the final allow-list before a column name
// is interpolated into an ORDER BY clause. Sort parsing already resolves
// API names to columns, this is the second gate.
var allowedTicketOrderByFields = map[string]bool{
	"id":         true,
	"title":      true,
	"status":     true,
	"priority":   true,
	"created_at": true,
	"updated_at": true,
}

type TicketRepository struct {
	db     *gorm.DB
	mapper *mappers.TicketMapper
}

func NewTicketRepository(database *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     database,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		return apperrors.NewStoreError("failed to save ticket", err.Error())
	}

	if t.ID() == 0 {
		if err := t.SetID(model.ID); err != nil {
			return apperrors.NewInternalError("failed to assign ticket ID", err.Error())
		}
	}
	return nil
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)

	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"title":       model.Title,
			"description": model.Description,
			"status":      model.Status,
			"priority":    model.Priority,
			"updated_at":  model.UpdatedAt,
		})
	if result.Error != nil {
		return apperrors.NewStoreError("failed to update ticket", result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("ticket not found")
	}
	return nil
}

func (r *TicketRepository) Delete(ctx context.Context, ticketID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.TicketModel{}, ticketID)
	if result.Error != nil {
		return apperrors.NewStoreError("failed to delete ticket", result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("ticket not found")
	}
	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	var model models.TicketModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.First(&model, ticketID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("ticket not found")
		}
		return nil, apperrors.NewStoreError("failed to get ticket", err.Error())
	}

	return r.mapper.ToDomain(&model)
}

// List returns one page of tickets matching the filter plus the total match
// count before paging. Count and fetch run against the same filtered query.
func (r *TicketRepository) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	q := tx.Model(&models.TicketModel{})

	if filter.Search != nil && *filter.Search != "" {
		pattern := "%" + strings.ToLower(*filter.Search) + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}
	if filter.Status != nil {
		q = q.Where("status = ?", filter.Status.String())
	}
	if filter.Priority != nil {
		q = q.Where("priority = ?", filter.Priority.String())
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, apperrors.NewStoreError("failed to count tickets", err.Error())
	}

	sort := filter.Sort
	if len(sort) == 0 {
		sort = []query.SortField{ticket.DefaultSort}
	}
	for _, f := range sort {
		if !allowedTicketOrderByFields[f.Column] {
			return nil, 0, apperrors.NewBadRequestError(fmt.Sprintf("invalid sort field: %s", f.Column))
		}
	}

	var modelList []*models.TicketModel
	err := q.Order(query.OrderClause(sort)).
		Limit(filter.Page.Limit).
		Offset(filter.Page.Offset()).
		Find(&modelList).Error
	if err != nil {
		return nil, 0, apperrors.NewStoreError("failed to list tickets", err.Error())
	}

	tickets, err := r.mapper.ToDomainList(modelList)
	if err != nil {
		return nil, 0, apperrors.NewInternalError("failed to map tickets", err.Error())
	}
	return tickets, total, nil
}

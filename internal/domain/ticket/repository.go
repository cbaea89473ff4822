package ticket

import (
	"context"

	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/query"
)

// SortableFields maps API-facing sort field names to store columns.
// Names outside this allow-list never reach the store.
var SortableFields = map[string]string{
	"id":        "id",
	"title":     "title",
	"status":    "status",
	"priority":  "priority",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

// DefaultSort orders tickets newest first.
var DefaultSort = query.SortField{Column: "created_at", Desc: true}

// TicketFilter is the filter/sort/page triple applied to a ticket listing.
// Nil fields impose no constraint; active constraints combine with AND.
type TicketFilter struct {
	Search   *string
	Status   *vo.Status
	Priority *vo.Priority
	Sort     []query.SortField
	Page     query.Page
}

type TicketRepository interface {
	Save(ctx context.Context, ticket *Ticket) error
	Update(ctx context.Context, ticket *Ticket) error
	Delete(ctx context.Context, ticketID uint) error
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	List(ctx context.Context, filter TicketFilter) ([]*Ticket, int64, error)
}

type CommentRepository interface {
	Save(ctx context.Context, comment *Comment) error
	ListByTicketID(ctx context.Context, ticketID uint, page query.Page) ([]*Comment, int64, error)
}

package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/ticket"
	apperrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/query"
)

func reconstructTestComment(t *testing.T, id, ticketID uint, message string) *ticket.Comment {
	t.Helper()
	c, err := ticket.ReconstructComment(id, ticketID, "sam", message, time.Now().Add(-time.Minute))
	require.NoError(t, err)
	return c
}

func TestListCommentsUseCase_Execute_Success(t *testing.T) {
	existing := reconstructTestTicket(t, 7)
	mockTicketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return existing, nil
		},
	}

	var capturedPage query.Page
	mockCommentRepo := &mockCommentRepository{
		ListByTicketIDFunc: func(ctx context.Context, ticketID uint, page query.Page) ([]*ticket.Comment, int64, error) {
			assert.Equal(t, uint(7), ticketID)
			capturedPage = page
			return []*ticket.Comment{
				reconstructTestComment(t, 2, 7, "newer comment"),
				reconstructTestComment(t, 1, 7, "older comment"),
			}, 12, nil
		},
	}

	useCase := NewListCommentsUseCase(mockTicketRepo, mockCommentRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), ListCommentsQuery{
		TicketID: 7,
		Page:     2,
		Limit:    5,
	})

	require.NoError(t, err)
	assert.Len(t, result.Comments, 2)
	assert.Equal(t, int64(12), result.Total)
	assert.Equal(t, 2, result.Page)
	assert.Equal(t, 5, result.Limit)
	assert.Equal(t, "newer comment", result.Comments[0].Message)
	assert.Equal(t, query.Page{Page: 2, Limit: 5}, capturedPage)
}

func TestListCommentsUseCase_Execute_TicketNotFound(t *testing.T) {
	mockTicketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return nil, apperrors.NewNotFoundError("ticket not found")
		},
	}

	listCalled := false
	mockCommentRepo := &mockCommentRepository{
		ListByTicketIDFunc: func(ctx context.Context, ticketID uint, page query.Page) ([]*ticket.Comment, int64, error) {
			listCalled = true
			return nil, 0, nil
		},
	}

	useCase := NewListCommentsUseCase(mockTicketRepo, mockCommentRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), ListCommentsQuery{TicketID: 404})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsNotFoundError(err))
	assert.False(t, listCalled)
}

func TestListCommentsUseCase_Execute_DefaultsApplied(t *testing.T) {
	existing := reconstructTestTicket(t, 7)
	mockTicketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return existing, nil
		},
	}

	var capturedPage query.Page
	mockCommentRepo := &mockCommentRepository{
		ListByTicketIDFunc: func(ctx context.Context, ticketID uint, page query.Page) ([]*ticket.Comment, int64, error) {
			capturedPage = page
			return nil, 0, nil
		},
	}

	useCase := NewListCommentsUseCase(mockTicketRepo, mockCommentRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), ListCommentsQuery{TicketID: 7})

	require.NoError(t, err)
	assert.Empty(t, result.Comments)
	assert.Equal(t, query.Page{Page: 1, Limit: 10}, capturedPage)
}

func TestListCommentsUseCase_Execute_RepositoryError(t *testing.T) {
	existing := reconstructTestTicket(t, 7)
	mockTicketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return existing, nil
		},
	}
	mockCommentRepo := &mockCommentRepository{
		ListByTicketIDFunc: func(ctx context.Context, ticketID uint, page query.Page) ([]*ticket.Comment, int64, error) {
			return nil, 0, apperrors.NewStoreError("failed to list comments")
		},
	}

	useCase := NewListCommentsUseCase(mockTicketRepo, mockCommentRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), ListCommentsQuery{TicketID: 7})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsStoreError(err))
}

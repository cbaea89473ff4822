package repository

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/db"
	apperrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/query"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, database.AutoMigrate(&models.TicketModel{}, &models.CommentModel{}))

	t.Cleanup(func() {
		sqlDB, err := database.DB()
		if err == nil {
			sqlDB.Close()
		}
	})
	return database
}

func mustTicket(t *testing.T, title, description string, status vo.Status, priority vo.Priority) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.NewTicket(title, description, status, priority)
	require.NoError(t, err)
	return tk
}

func seedTicket(t *testing.T, repo *TicketRepository, title, description string, status vo.Status, priority vo.Priority) *ticket.Ticket {
	t.Helper()
	tk := mustTicket(t, title, description, status, priority)
	require.NoError(t, repo.Save(context.Background(), tk))
	return tk
}

func TestTicketRepository_SaveAndGetByID(t *testing.T) {
	repo := NewTicketRepository(setupTestDB(t))
	ctx := context.Background()

	tk := seedTicket(t, repo, "Printer offline", "The third floor printer refuses every job since Monday.", vo.StatusOpen, vo.PriorityMedium)
	assert.NotZero(t, tk.ID())

	got, err := repo.GetByID(ctx, tk.ID())
	require.NoError(t, err)
	assert.Equal(t, tk.ID(), got.ID())
	assert.Equal(t, "Printer offline", got.Title())
	assert.Equal(t, vo.StatusOpen, got.Status())
	assert.Equal(t, vo.PriorityMedium, got.Priority())
	assert.WithinDuration(t, tk.CreatedAt(), got.CreatedAt(), time.Millisecond)
}

func TestTicketRepository_GetByID_NotFound(t *testing.T) {
	repo := NewTicketRepository(setupTestDB(t))

	_, err := repo.GetByID(context.Background(), 999)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestTicketRepository_Update(t *testing.T) {
	repo := NewTicketRepository(setupTestDB(t))
	ctx := context.Background()

	tk := seedTicket(t, repo, "Printer offline", "The third floor printer refuses every job since Monday.", vo.StatusOpen, vo.PriorityMedium)

	require.NoError(t, tk.ChangeStatus(vo.StatusInProgress))
	require.NoError(t, tk.ChangePriority(vo.PriorityHigh))
	require.NoError(t, repo.Update(ctx, tk))

	got, err := repo.GetByID(ctx, tk.ID())
	require.NoError(t, err)
	assert.Equal(t, vo.StatusInProgress, got.Status())
	assert.Equal(t, vo.PriorityHigh, got.Priority())
}

func TestTicketRepository_Update_NotFound(t *testing.T) {
	repo := NewTicketRepository(setupTestDB(t))

	tk, err := ticket.ReconstructTicket(
		404, "Printer offline", "The third floor printer refuses every job since Monday.",
		vo.StatusOpen, vo.PriorityLow, time.Now(), time.Now(),
	)
	require.NoError(t, err)

	err = repo.Update(context.Background(), tk)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestTicketRepository_Delete(t *testing.T) {
	repo := NewTicketRepository(setupTestDB(t))
	ctx := context.Background()

	tk := seedTicket(t, repo, "Printer offline", "The third floor printer refuses every job since Monday.", vo.StatusOpen, vo.PriorityMedium)

	require.NoError(t, repo.Delete(ctx, tk.ID()))

	_, err := repo.GetByID(ctx, tk.ID())
	assert.True(t, apperrors.IsNotFoundError(err))

	err = repo.Delete(ctx, tk.ID())
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestTicketRepository_Delete_LeavesCommentsOrphaned(t *testing.T) {
	database := setupTestDB(t)
	tickets := NewTicketRepository(database)
	comments := NewCommentRepository(database)
	ctx := context.Background()

	tk := seedTicket(t, tickets, "Printer offline", "The third floor printer refuses every job since Monday.", vo.StatusOpen, vo.PriorityMedium)

	c, err := ticket.NewComment(tk.ID(), "sam", "Tried power cycling, no luck.")
	require.NoError(t, err)
	require.NoError(t, comments.Save(ctx, c))

	require.NoError(t, tickets.Delete(ctx, tk.ID()))

	got, total, err := comments.ListByTicketID(ctx, tk.ID(), query.NewPage(1, 10))
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, got, 1)
}

func TestTicketRepository_List_Search(t *testing.T) {
	repo := NewTicketRepository(setupTestDB(t))
	ctx := context.Background()

	seedTicket(t, repo, "Printer offline", "The third floor printer refuses every job since Monday.", vo.StatusOpen, vo.PriorityMedium)
	seedTicket(t, repo, "VPN keeps dropping", "Connection drops every ten minutes on the corporate VPN.", vo.StatusOpen, vo.PriorityHigh)
	seedTicket(t, repo, "Password reset", "User cannot reset a forgotten password via the printer portal.", vo.StatusResolved, vo.PriorityLow)

	search := "PRINTER"
	got, total, err := repo.List(ctx, ticket.TicketFilter{
		Search: &search,
		Page:   query.NewPage(1, 10),
	})
	require.NoError(t, err)
	// matches title of one and description of another, case-insensitive
	assert.Equal(t, int64(2), total)
	assert.Len(t, got, 2)
}

func TestTicketRepository_List_StatusAndPriorityFilters(t *testing.T) {
	repo := NewTicketRepository(setupTestDB(t))
	ctx := context.Background()

	seedTicket(t, repo, "Printer offline", "The third floor printer refuses every job since Monday.", vo.StatusOpen, vo.PriorityMedium)
	seedTicket(t, repo, "VPN keeps dropping", "Connection drops every ten minutes on the corporate VPN.", vo.StatusOpen, vo.PriorityHigh)
	seedTicket(t, repo, "Password reset", "User cannot reset a forgotten password via the portal.", vo.StatusResolved, vo.PriorityHigh)

	status := vo.StatusOpen
	priority := vo.PriorityHigh
	got, total, err := repo.List(ctx, ticket.TicketFilter{
		Status:   &status,
		Priority: &priority,
		Page:     query.NewPage(1, 10),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, got, 1)
	assert.Equal(t, "VPN keeps dropping", got[0].Title())
}

func TestTicketRepository_List_SortAndPaging(t *testing.T) {
	repo := NewTicketRepository(setupTestDB(t))
	ctx := context.Background()

	seedTicket(t, repo, "Alpha issue report", "First ticket description with enough characters.", vo.StatusOpen, vo.PriorityLow)
	seedTicket(t, repo, "Charlie issue report", "Second ticket description with enough characters.", vo.StatusOpen, vo.PriorityLow)
	seedTicket(t, repo, "Bravo issue report", "Third ticket description with enough characters.", vo.StatusOpen, vo.PriorityLow)

	got, total, err := repo.List(ctx, ticket.TicketFilter{
		Sort: []query.SortField{{Column: "title"}},
		Page: query.NewPage(1, 2),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, got, 2)
	assert.Equal(t, "Alpha issue report", got[0].Title())
	assert.Equal(t, "Bravo issue report", got[1].Title())

	got, total, err = repo.List(ctx, ticket.TicketFilter{
		Sort: []query.SortField{{Column: "title"}},
		Page: query.NewPage(2, 2),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, got, 1)
	assert.Equal(t, "Charlie issue report", got[0].Title())
}

func TestTicketRepository_List_RejectsUnknownSortColumn(t *testing.T) {
	repo := NewTicketRepository(setupTestDB(t))

	_, _, err := repo.List(context.Background(), ticket.TicketFilter{
		Sort: []query.SortField{{Column: "title; DROP TABLE tickets"}},
		Page: query.NewPage(1, 10),
	})
	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeBadRequest, appErr.Type)
}

func TestTicketRepository_List_EmptyResult(t *testing.T) {
	repo := NewTicketRepository(setupTestDB(t))

	got, total, err := repo.List(context.Background(), ticket.TicketFilter{
		Page: query.NewPage(1, 10),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
	assert.Empty(t, got)
}

func TestCommentRepository_ListByTicketID_OrderingAndPaging(t *testing.T) {
	database := setupTestDB(t)
	tickets := NewTicketRepository(database)
	comments := NewCommentRepository(database)
	ctx := context.Background()

	tk := seedTicket(t, tickets, "Printer offline", "The third floor printer refuses every job since Monday.", vo.StatusOpen, vo.PriorityMedium)

	for _, msg := range []string{"first reply", "second reply", "third reply"} {
		c, err := ticket.NewComment(tk.ID(), "sam", msg)
		require.NoError(t, err)
		require.NoError(t, comments.Save(ctx, c))
		time.Sleep(2 * time.Millisecond)
	}

	got, total, err := comments.ListByTicketID(ctx, tk.ID(), query.NewPage(1, 2))
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, got, 2)
	assert.Equal(t, "third reply", got[0].Message())
	assert.Equal(t, "second reply", got[1].Message())

	got, _, err = comments.ListByTicketID(ctx, tk.ID(), query.NewPage(2, 2))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "first reply", got[0].Message())
}

func TestCommentRepository_ListByTicketID_ScopedToTicket(t *testing.T) {
	database := setupTestDB(t)
	tickets := NewTicketRepository(database)
	comments := NewCommentRepository(database)
	ctx := context.Background()

	a := seedTicket(t, tickets, "Printer offline", "The third floor printer refuses every job since Monday.", vo.StatusOpen, vo.PriorityMedium)
	b := seedTicket(t, tickets, "VPN keeps dropping", "Connection drops every ten minutes on the corporate VPN.", vo.StatusOpen, vo.PriorityHigh)

	c1, err := ticket.NewComment(a.ID(), "", "comment on a")
	require.NoError(t, err)
	require.NoError(t, comments.Save(ctx, c1))

	c2, err := ticket.NewComment(b.ID(), "", "comment on b")
	require.NoError(t, err)
	require.NoError(t, comments.Save(ctx, c2))

	got, total, err := comments.ListByTicketID(ctx, a.ID(), query.NewPage(1, 10))
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, got, 1)
	assert.Equal(t, "comment on a", got[0].Message())
}

func TestRepositories_ShareTransaction(t *testing.T) {
	database := setupTestDB(t)
	tickets := NewTicketRepository(database)
	comments := NewCommentRepository(database)
	tm := db.NewTransactionManager(database)
	ctx := context.Background()

	tk := seedTicket(t, tickets, "Printer offline", "The third floor printer refuses every job since Monday.", vo.StatusOpen, vo.PriorityMedium)

	err := tm.RunInTransaction(ctx, func(txCtx context.Context) error {
		if _, err := tickets.GetByID(txCtx, tk.ID()); err != nil {
			return err
		}
		c, err := ticket.NewComment(tk.ID(), "sam", "created inside the transaction")
		if err != nil {
			return err
		}
		return comments.Save(txCtx, c)
	})
	require.NoError(t, err)

	_, total, err := comments.ListByTicketID(ctx, tk.ID(), query.NewPage(1, 10))
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestRepositories_TransactionRollsBackOnError(t *testing.T) {
	database := setupTestDB(t)
	tickets := NewTicketRepository(database)
	comments := NewCommentRepository(database)
	tm := db.NewTransactionManager(database)
	ctx := context.Background()

	tk := seedTicket(t, tickets, "Printer offline", "The third floor printer refuses every job since Monday.", vo.StatusOpen, vo.PriorityMedium)

	err := tm.RunInTransaction(ctx, func(txCtx context.Context) error {
		c, err := ticket.NewComment(tk.ID(), "sam", "should be rolled back")
		if err != nil {
			return err
		}
		if err := comments.Save(txCtx, c); err != nil {
			return err
		}
		return apperrors.NewInternalError("forced failure")
	})
	require.Error(t, err)

	_, total, err := comments.ListByTicketID(ctx, tk.ID(), query.NewPage(1, 10))
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
}

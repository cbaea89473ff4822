package models

// TicketModel is the database representation of a support ticket.
// Timestamps are stored as unix milliseconds.
type TicketModel struct {
	ID          uint   `gorm:"primaryKey;autoIncrement"`
	Title       string `gorm:"type:varchar(80);not null"`
	Description string `gorm:"type:text;not null"`
	Status      string `gorm:"type:varchar(20);not null;index"`
	Priority    string `gorm:"type:varchar(20);not null;index"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;index"`
	UpdatedAt   int64  `gorm:"autoUpdateTime:milli"`
}

func (TicketModel) TableName() string {
	return "tickets"
}

// CommentModel is the database representation of a ticket comment.
// TicketID is a plain column, no foreign key constraint, so deleting
// a ticket leaves its comments orphaned.
type CommentModel struct {
	ID         uint   `gorm:"primaryKey;autoIncrement"`
	TicketID   uint   `gorm:"not null;index:idx_ticket_created,priority:1"`
	AuthorName string `gorm:"type:varchar(100)"`
	Message    string `gorm:"type:varchar(500);not null"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;index:idx_ticket_created,priority:2"`
}

func (CommentModel) TableName() string {
	return "ticket_comments"
}

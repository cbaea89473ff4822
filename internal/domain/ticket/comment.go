package ticket

import (
	"fmt"
	"time"
	"unicode/utf8"
)

const MessageMaxLength = 500

// Comment is a timestamped message attached to exactly one ticket.
// Comments are immutable after creation.
type Comment struct {
	id         uint
	ticketID   uint
	authorName string
	message    string
	createdAt  time.Time
}

func NewComment(
	ticketID uint,
	authorName string,
	message string,
) (*Comment, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if err := validateMessage(message); err != nil {
		return nil, err
	}

	return &Comment{
		ticketID:   ticketID,
		authorName: authorName,
		message:    message,
		createdAt:  time.Now().UTC(),
	}, nil
}

func ReconstructComment(
	id uint,
	ticketID uint,
	authorName string,
	message string,
	createdAt time.Time,
) (*Comment, error) {
	if id == 0 {
		return nil, fmt.Errorf("comment ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}

	return &Comment{
		id:         id,
		ticketID:   ticketID,
		authorName: authorName,
		message:    message,
		createdAt:  createdAt,
	}, nil
}

func (c *Comment) ID() uint {
	return c.id
}

func (c *Comment) TicketID() uint {
	return c.ticketID
}

func (c *Comment) AuthorName() string {
	return c.authorName
}

func (c *Comment) Message() string {
	return c.message
}

func (c *Comment) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Comment) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("comment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("comment ID cannot be zero")
	}
	c.id = id
	return nil
}

func validateMessage(message string) error {
	n := utf8.RuneCountInString(message)
	if n == 0 {
		return fmt.Errorf("message is required")
	}
	if n > MessageMaxLength {
		return fmt.Errorf("message exceeds maximum length of %d characters", MessageMaxLength)
	}
	return nil
}

package ticket

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"helpdesk/internal/application/ticket/usecases"
	"helpdesk/internal/shared/errors"
)

type CreateTicketRequest struct {
	Title       string `json:"title" binding:"required,min=5,max=80"`
	Description string `json:"description" binding:"required,min=20,max=2000"`
	Status      string `json:"status" binding:"omitempty,oneof=OPEN IN_PROGRESS RESOLVED"`
	Priority    string `json:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH"`
}

func (r *CreateTicketRequest) ToCommand() usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		Title:       r.Title,
		Description: r.Description,
		Status:      r.Status,
		Priority:    r.Priority,
	}
}

type UpdateTicketRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=5,max=80"`
	Description *string `json:"description" binding:"omitempty,min=20,max=2000"`
	Status      *string `json:"status" binding:"omitempty,oneof=OPEN IN_PROGRESS RESOLVED"`
	Priority    *string `json:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH"`
}

func (r *UpdateTicketRequest) ToCommand(ticketID uint) usecases.UpdateTicketCommand {
	return usecases.UpdateTicketCommand{
		TicketID:    ticketID,
		Title:       r.Title,
		Description: r.Description,
		Status:      r.Status,
		Priority:    r.Priority,
	}
}

// parseListTicketsQuery reads the list parameters off the query string.
// Numeric coercion and sort validation happen further down, nothing here
// can fail.
func parseListTicketsQuery(c *gin.Context) usecases.ListTicketsQuery {
	return usecases.ListTicketsQuery{
		Search:   c.Query("q"),
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
		Sort:     c.Query("sort"),
		Page:     atoiOrZero(c.Query("page")),
		Limit:    atoiOrZero(c.Query("limit")),
	}
}

func atoiOrZero(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}

func parseTicketID(c *gin.Context) (uint, error) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid ticket ID")
	}
	return uint(id), nil
}

// bindingError turns gin binding failures into validation errors so they
// surface as 400 instead of opaque 500.
func bindingError(err error) error {
	if validationErrs, ok := err.(validator.ValidationErrors); ok && len(validationErrs) > 0 {
		fe := validationErrs[0]
		return errors.NewValidationError("invalid field: "+fe.Field(), fe.Error())
	}
	return errors.NewBadRequestError("invalid request body", err.Error())
}

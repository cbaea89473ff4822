package comment

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"helpdesk/internal/application/ticket/usecases"
	"helpdesk/internal/shared/errors"
)

type CreateCommentRequest struct {
	AuthorName string `json:"authorName" binding:"omitempty,max=100"`
	Message    string `json:"message" binding:"required,min=1,max=500"`
}

func (r *CreateCommentRequest) ToCommand(ticketID uint) usecases.AddCommentCommand {
	return usecases.AddCommentCommand{
		TicketID:   ticketID,
		AuthorName: r.AuthorName,
		Message:    r.Message,
	}
}

func parseListCommentsQuery(c *gin.Context, ticketID uint) usecases.ListCommentsQuery {
	return usecases.ListCommentsQuery{
		TicketID: ticketID,
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

package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"chatsettings/internal/audit"
	"chatsettings/internal/entities"
)

// AuditController exposes the settings-change history.
type AuditController struct {
	service *audit.Service
}

func NewAuditController(service *audit.Service) *AuditController {
	return &AuditController{service: service}
}

// ListEvents returns paginated audit events, optionally filtered by user id
// and event type.
// GET /api/audit/events?user_id=&type=&limit=&offset=
func (ac *AuditController) ListEvents(c *gin.Context) {
	limit, offset := parsePagination(c)
	userID := c.Query("user_id")

	var events []entities.AuditEvent
	var total int64
	var err error

	if eventType := c.Query("type"); eventType != "" {
		events, total, err = ac.service.GetEventsByType(entities.AuditEventType(eventType), userID, limit, offset)
	} else {
		events, total, err = ac.service.GetEvents(userID, limit, offset)
	}
	if err != nil {
		respondInternalError(c, err, "list audit events")
		return
	}

	c.JSON(http.StatusOK, PaginatedResponse{
		Data:    events,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
		HasMore: int64(offset+len(events)) < total,
	})
}

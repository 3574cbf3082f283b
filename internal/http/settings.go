package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"chatsettings/internal/settings"
)

// SettingsController serves the per-user feature-flag settings consumed by
// the chat webapp's settings dialog.
type SettingsController struct {
	service *settings.Service
}

func NewSettingsController(service *settings.Service) *SettingsController {
	return &SettingsController{service: service}
}

// UpdateSettingsRequest carries values for all eleven flags. Every field is
// required; the binding rejects sparse bodies before the core is invoked,
// which is why the fields are pointers.
type UpdateSettingsRequest struct {
	DarkMode                 *bool `json:"darkMode" binding:"required"`
	Planners                 *bool `json:"planners" binding:"required"`
	Personas                 *bool `json:"personas" binding:"required"`
	SimplifiedChatExperience *bool `json:"simplifiedChatExperience" binding:"required"`
	AzureContentSafety       *bool `json:"azureContentSafety" binding:"required"`
	AzureAISearch            *bool `json:"azureAISearch" binding:"required"`
	ExportChatSessions       *bool `json:"exportChatSessions" binding:"required"`
	LiveChatSessionSharing   *bool `json:"liveChatSessionSharing" binding:"required"`
	FeedbackFromUser         *bool `json:"feedbackFromUser" binding:"required"`
	DeploymentGPT35          *bool `json:"deploymentGPT35" binding:"required"`
	DeploymentGPT4           *bool `json:"deploymentGPT4" binding:"required"`
}

func (r *UpdateSettingsRequest) toParams() settings.UpdateParams {
	return settings.UpdateParams{
		DarkMode:                 *r.DarkMode,
		Planners:                 *r.Planners,
		Personas:                 *r.Personas,
		SimplifiedChatExperience: *r.SimplifiedChatExperience,
		AzureContentSafety:       *r.AzureContentSafety,
		AzureAISearch:            *r.AzureAISearch,
		ExportChatSessions:       *r.ExportChatSessions,
		LiveChatSessionSharing:   *r.LiveChatSessionSharing,
		FeedbackFromUser:         *r.FeedbackFromUser,
		DeploymentGPT35:          *r.DeploymentGPT35,
		DeploymentGPT4:           *r.DeploymentGPT4,
	}
}

// GetSettings returns the settings record for a user, creating the default
// record on first access.
// GET /settings/:userId
func (sc *SettingsController) GetSettings(c *gin.Context) {
	userID, ok := parseUserIDParam(c)
	if !ok {
		return
	}

	record, err := sc.service.Get(userID)
	if err != nil {
		// Presented the way the settings dialog expects: a retrieval fault
		// reads as "no settings for this user".
		respondNotFound(c, "did not find any user specific settings for: "+userID)
		return
	}

	c.JSON(http.StatusOK, record)
}

// UpdateSettings overwrites the user's settings record with the request body.
// POST /settings/:userId
func (sc *SettingsController) UpdateSettings(c *gin.Context) {
	userID, ok := parseUserIDParam(c)
	if !ok {
		return
	}

	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "all settings flags are required: "+err.Error())
		return
	}

	record, err := sc.service.Update(userID, req.toParams())
	if err != nil {
		if errors.Is(err, settings.ErrPersist) {
			respondInternalError(c, err, "update settings")
			return
		}
		respondNotFound(c, "unable to update user settings for: "+userID)
		return
	}

	c.JSON(http.StatusOK, record)
}

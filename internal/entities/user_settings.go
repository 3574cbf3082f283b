package entities

import (
	"time"
)

// UserSettings holds all feature flags for a single user. Exactly one record
// exists per user id; the string primary key enforces that at the store layer.
type UserSettings struct {
	UserID string `gorm:"primaryKey;size:255" json:"userId"`

	DarkMode                 bool `json:"darkMode"`
	Planners                 bool `json:"planners"`
	Personas                 bool `json:"personas"`
	SimplifiedChatExperience bool `json:"simplifiedChatExperience"`
	AzureContentSafety       bool `json:"azureContentSafety"`
	AzureAISearch            bool `json:"azureAISearch"`
	ExportChatSessions       bool `json:"exportChatSessions"`
	LiveChatSessionSharing   bool `json:"liveChatSessionSharing"`
	FeedbackFromUser         bool `json:"feedbackFromUser"`
	DeploymentGPT35          bool `json:"deploymentGPT35"`
	DeploymentGPT4           bool `json:"deploymentGPT4"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (UserSettings) TableName() string {
	return "user_settings"
}

// DefaultUserSettings builds the record created on a user's first access.
// The default set enables at least one model deployment, so it satisfies the
// deployment invariant without normalization.
func DefaultUserSettings(userID string) *UserSettings {
	return &UserSettings{
		UserID:                   userID,
		DarkMode:                 false,
		Planners:                 false,
		Personas:                 false,
		SimplifiedChatExperience: true,
		AzureContentSafety:       true,
		AzureAISearch:            false,
		ExportChatSessions:       false,
		LiveChatSessionSharing:   false,
		FeedbackFromUser:         true,
		DeploymentGPT35:          true,
		DeploymentGPT4:           false,
	}
}

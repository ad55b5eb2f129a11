package models

import (
	"context"
	"strings"
	"time"

	"bitbucket.org/candorwt/fieldforce_backend/config"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LeadComment struct {
	ID        string        `gorm:"primary_key;size:36" json:"id"`
	LeadId    string        `gorm:"size:36;index;not null" json:"lead_id"`
	Message   string        `gorm:"type:text;not null" json:"message"`
	Source    CommentSource `gorm:"size:20;not null" json:"source"`
	AgentName string        `gorm:"size:255" json:"agent_name"`
	CreatedAt time.Time     `gorm:"autoCreateTime" json:"created_at"`
}

type NewLeadComment struct {
	Message   string `json:"message" binding:"required"`
	Source    string `json:"source"`
	AgentName string `json:"agent_name"`
}

func (c *LeadComment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

func GetLeadComments(ctx context.Context, leadId string) ([]LeadComment, error) {

	db := config.GetDB()
	var comments []LeadComment
	if err := db.WithContext(ctx).
		Where("lead_id = ?", leadId).
		Order("created_at ASC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func CreateLeadComment(ctx context.Context, leadId string, input *NewLeadComment) (*LeadComment, error) {

	db := config.GetDB()

	// If an explicit source is provided, trust it; otherwise infer from the
	// presence of an agent name.
	source := CommentSource(strings.ToUpper(strings.TrimSpace(input.Source)))
	if source != CommentSourceAgent && source != CommentSourceAdmin {
		if strings.TrimSpace(input.AgentName) != "" {
			source = CommentSourceAgent
		} else {
			source = CommentSourceAdmin
		}
	}

	comment := LeadComment{
		LeadId:    leadId,
		Message:   input.Message,
		Source:    source,
		AgentName: input.AgentName,
	}

	if err := db.WithContext(ctx).Create(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

package models

import (
	"context"
	"errors"
	"strings"
	"time"

	"bitbucket.org/candorwt/fieldforce_backend/config"
	"bitbucket.org/candorwt/fieldforce_backend/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Activity struct {
	ID           string         `gorm:"primary_key;size:36" json:"id"`
	AgentId      int64          `gorm:"index;not null" json:"agent_id"`
	AgentName    string         `gorm:"size:128" json:"agent_name"`
	CustomerName string         `gorm:"size:256" json:"customer_name"`
	Activity     string         `gorm:"type:text" json:"activity"`
	Status       ActivityStatus `gorm:"size:20;not null" json:"status"`
	OccurredAt   time.Time      `gorm:"not null;index" json:"occurred_at"`
}

type NewActivity struct {
	AgentId      int64  `json:"agent_id" binding:"required"`
	CustomerName string `json:"customer_name"`
	Activity     string `json:"activity" binding:"required"`
	Status       string `json:"status"`
}

func (a *Activity) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.OccurredAt.IsZero() {
		a.OccurredAt = time.Now()
	}
	if a.Status == "" {
		a.Status = ActivityStatusInProgress
	}
	return nil
}

// ParseActivityStatus normalizes free-form status input ("In Progress",
// "completed") to the enum, falling back to IN_PROGRESS.
func ParseActivityStatus(s string) ActivityStatus {
	status := ActivityStatus(strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(s)), " ", "_"))
	if status.Validate() != nil {
		return ActivityStatusInProgress
	}
	return status
}

func CreateActivity(ctx context.Context, input *NewActivity) (*Activity, error) {

	db := config.GetDB()

	agentName := "Agent"
	if user, err := GetUser(ctx, input.AgentId); err == nil {
		if user.Name != "" {
			agentName = user.Name
		} else if user.Email != "" {
			agentName = user.Email
		}
	}

	activity := Activity{
		AgentId:      input.AgentId,
		AgentName:    agentName,
		CustomerName: input.CustomerName,
		Activity:     input.Activity,
		Status:       ParseActivityStatus(input.Status),
		OccurredAt:   time.Now(),
	}

	if err := db.WithContext(ctx).Create(&activity).Error; err != nil {
		return nil, err
	}
	return &activity, nil
}

// GetActivities lists activities newest first, optionally filtered by agent,
// with offset/limit paging.
func GetActivities(ctx context.Context, agentId string, page int, size int) ([]Activity, int64, error) {

	db := config.GetDB()

	query := db.WithContext(ctx).Model(&Activity{})
	if strings.TrimSpace(agentId) != "" {
		query = query.Where("agent_id = ?", agentId)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var activities []Activity
	if err := query.
		Order("occurred_at DESC").
		Offset(page * size).
		Limit(size).
		Find(&activities).Error; err != nil {
		return nil, 0, err
	}
	return activities, total, nil
}

// GetLatestActivities returns the most recent activities for the dashboard.
func GetLatestActivities(ctx context.Context, limit int) ([]Activity, error) {

	db := config.GetDB()
	var activities []Activity
	if err := db.WithContext(ctx).
		Order("occurred_at DESC").
		Limit(limit).
		Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

func UpdateActivity(ctx context.Context, id string, input *NewActivity) (*Activity, error) {

	db := config.GetDB()

	var activity Activity
	if err := db.WithContext(ctx).First(&activity, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrorRecordNotFound
		}
		return nil, err
	}

	if strings.TrimSpace(input.Activity) != "" {
		activity.Activity = input.Activity
	}
	if input.CustomerName != "" {
		activity.CustomerName = input.CustomerName
	}
	if input.Status != "" {
		status := ActivityStatus(strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(input.Status)), " ", "_"))
		if status.Validate() == nil {
			activity.Status = status
		}
	}

	if err := db.WithContext(ctx).Save(&activity).Error; err != nil {
		return nil, err
	}
	return &activity, nil
}

func DeleteActivity(ctx context.Context, id string) error {

	db := config.GetDB()

	var activity Activity
	if err := db.WithContext(ctx).First(&activity, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorRecordNotFound
		}
		return err
	}
	return db.WithContext(ctx).Delete(&activity).Error
}

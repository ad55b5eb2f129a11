package models

import (
	"context"
	"errors"
	"time"

	"bitbucket.org/candorwt/fieldforce_backend/config"
	"bitbucket.org/candorwt/fieldforce_backend/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AttendanceRecord struct {
	ID           string     `gorm:"primary_key;size:36" json:"id"`
	AgentId      string     `gorm:"size:36;index;not null" json:"agent_id"`
	AgentName    string     `gorm:"size:255;not null" json:"agent_name"`
	CheckInTime  time.Time  `gorm:"not null;index" json:"check_in_time"`
	CheckOutTime *time.Time `json:"check_out_time"`
	Status       string     `gorm:"size:50;not null" json:"status"`
	WorkType     WorkType   `gorm:"size:20" json:"work_type"`
	Reason       string     `gorm:"size:100" json:"reason"`
	Latitude     *float64   `json:"latitude"`
	Longitude    *float64   `json:"longitude"`
	ImageUrl     string     `gorm:"size:500" json:"image_url"`
}

type NewAttendanceCheckIn struct {
	AgentId   string   `json:"agent_id" binding:"required"`
	AgentName string   `json:"agent_name" binding:"required"`
	Status    string   `json:"status"`
	WorkType  WorkType `json:"work_type"`
	Reason    string   `json:"reason"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	ImageUrl  string   `json:"image_url"`
}

func (r *AttendanceRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CheckInTime.IsZero() {
		r.CheckInTime = time.Now()
	}
	return nil
}

// CheckIn opens a new attendance record for the agent.
// An agent with an open record (no checkout yet) cannot check in again.
func CheckIn(ctx context.Context, input *NewAttendanceCheckIn) (*AttendanceRecord, error) {

	db := config.GetDB()

	var open int64
	if err := db.WithContext(ctx).Model(&AttendanceRecord{}).
		Where("agent_id = ? AND check_out_time IS NULL", input.AgentId).
		Count(&open).Error; err != nil {
		return nil, err
	}
	if open > 0 {
		return nil, errors.New("agent is already checked in")
	}

	status := input.Status
	if status == "" {
		status = "PRESENT"
	}

	record := AttendanceRecord{
		AgentId:   input.AgentId,
		AgentName: input.AgentName,
		Status:    status,
		WorkType:  input.WorkType,
		Reason:    input.Reason,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		ImageUrl:  input.ImageUrl,
	}

	if err := db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// CheckOut closes the agent's open attendance record.
func CheckOut(ctx context.Context, agentId string) (*AttendanceRecord, error) {

	db := config.GetDB()

	var record AttendanceRecord
	if err := db.WithContext(ctx).
		Where("agent_id = ? AND check_out_time IS NULL", agentId).
		Order("check_in_time DESC").
		First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrorRecordNotFound
		}
		return nil, err
	}

	now := time.Now()
	record.CheckOutTime = &now
	if err := db.WithContext(ctx).Save(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// GetAllAttendance returns the full attendance snapshot, unordered.
func GetAllAttendance(ctx context.Context) ([]AttendanceRecord, error) {

	db := config.GetDB()
	var records []AttendanceRecord
	if err := db.WithContext(ctx).Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

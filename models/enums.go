package models

import "errors"

type UserRole string

const (
	UserRoleAdmin   UserRole = "ADMIN"
	UserRoleManager UserRole = "MANAGER"
	UserRoleAgent   UserRole = "AGENT"
)

func (r UserRole) Validate() error {
	switch r {
	case UserRoleAdmin, UserRoleManager, UserRoleAgent:
		return nil
	}
	return errors.New("invalid user role")
}

type ActivityStatus string

const (
	ActivityStatusInProgress ActivityStatus = "IN_PROGRESS"
	ActivityStatusCompleted  ActivityStatus = "COMPLETED"
	ActivityStatusCancelled  ActivityStatus = "CANCELLED"
)

func (s ActivityStatus) Validate() error {
	switch s {
	case ActivityStatusInProgress, ActivityStatusCompleted, ActivityStatusCancelled:
		return nil
	}
	return errors.New("invalid activity status")
}

type CommentSource string

const (
	CommentSourceAgent CommentSource = "AGENT"
	CommentSourceAdmin CommentSource = "ADMIN"
)

// Work context for an attendance record: e.g. OFFICE, HOME, FIELD.
type WorkType string

const (
	WorkTypeOffice WorkType = "OFFICE"
	WorkTypeHome   WorkType = "HOME"
	WorkTypeField  WorkType = "FIELD"
)

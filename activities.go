package main

import (
	"net/http"
	"strconv"

	"bitbucket.org/candorwt/fieldforce_backend/models"
	"bitbucket.org/candorwt/fieldforce_backend/utils"
	"github.com/gin-gonic/gin"
)

func createActivityHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.NewActivity
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"errors": utils.ProcessValidationErrors(err)})
			return
		}
		activity, err := models.CreateActivity(c.Request.Context(), &input)
		if err != nil {
			logError(c, "activities.go", "createActivityHandler", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create activity"})
			return
		}
		c.JSON(http.StatusCreated, activity)
	}
}

func listActivitiesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
		size, _ := strconv.Atoi(c.DefaultQuery("size", "50"))
		if page < 0 {
			page = 0
		}
		if size <= 0 {
			size = 50
		}
		if size > 200 {
			size = 200
		}

		activities, total, err := models.GetActivities(c.Request.Context(), c.Query("agentId"), page, size)
		if err != nil {
			logError(c, "activities.go", "listActivitiesHandler", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list activities"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"content": activities,
			"page":    page,
			"size":    size,
			"total":   total,
		})
	}
}

func latestActivitiesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
		if limit <= 0 {
			limit = 10
		}
		if limit > 100 {
			limit = 100
		}

		activities, err := models.GetLatestActivities(c.Request.Context(), limit)
		if err != nil {
			logError(c, "activities.go", "latestActivitiesHandler", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list activities"})
			return
		}
		c.JSON(http.StatusOK, activities)
	}
}

func updateActivityHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.NewActivity
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"errors": utils.ProcessValidationErrors(err)})
			return
		}
		activity, err := models.UpdateActivity(c.Request.Context(), c.Param("id"), &input)
		if err != nil {
			if err == utils.ErrorRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "activity not found"})
				return
			}
			logError(c, "activities.go", "updateActivityHandler", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update activity"})
			return
		}
		c.JSON(http.StatusOK, activity)
	}
}

func deleteActivityHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := models.DeleteActivity(c.Request.Context(), c.Param("id")); err != nil {
			if err == utils.ErrorRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "activity not found"})
				return
			}
			logError(c, "activities.go", "deleteActivityHandler", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete activity"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func listLeadCommentsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		comments, err := models.GetLeadComments(c.Request.Context(), c.Param("leadId"))
		if err != nil {
			logError(c, "activities.go", "listLeadCommentsHandler", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list comments"})
			return
		}
		c.JSON(http.StatusOK, comments)
	}
}

func createLeadCommentHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.NewLeadComment
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"errors": utils.ProcessValidationErrors(err)})
			return
		}
		if input.AgentName == "" {
			if name, ok := utils.GetUserNameFromContext(c.Request.Context()); ok {
				input.AgentName = name
			}
		}
		comment, err := models.CreateLeadComment(c.Request.Context(), c.Param("leadId"), &input)
		if err != nil {
			logError(c, "activities.go", "createLeadCommentHandler", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add comment"})
			return
		}
		c.JSON(http.StatusCreated, comment)
	}
}

func checkInHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.NewAttendanceCheckIn
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"errors": utils.ProcessValidationErrors(err)})
			return
		}
		record, err := models.CheckIn(c.Request.Context(), &input)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, record)
	}
}

type checkOutRequest struct {
	AgentId string `json:"agent_id" binding:"required"`
}

func checkOutHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req checkOutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"errors": utils.ProcessValidationErrors(err)})
			return
		}
		record, err := models.CheckOut(c.Request.Context(), req.AgentId)
		if err != nil {
			if err == utils.ErrorRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "no open attendance record for agent"})
				return
			}
			logError(c, "activities.go", "checkOutHandler", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to check out"})
			return
		}
		c.JSON(http.StatusOK, record)
	}
}

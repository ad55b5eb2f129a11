package main

import (
	"errors"
	"net/http"
	"time"

	"bitbucket.org/candorwt/fieldforce_backend/config"
	"bitbucket.org/candorwt/fieldforce_backend/models/reports"
	"bitbucket.org/candorwt/fieldforce_backend/utils"
	"github.com/gin-gonic/gin"
)

// reportSource is the record source the report handlers read from.
var reportSource reports.Source = reports.DBSource{}

type reportRequest struct {
	FromDate string `json:"fromDate"`
	ToDate   string `json:"toDate"`
	AgentId  string `json:"agentId"`
	Status   string `json:"status"`
}

type exportRequest struct {
	Type     string `json:"type"`
	FromDate string `json:"fromDate"`
	ToDate   string `json:"toDate"`
	AgentId  string `json:"agentId"`
	Status   string `json:"status"`
}

// parseDateRange enforces the presence of both dates; a from after to is
// accepted and simply yields an empty report.
func parseDateRange(fromDate string, toDate string) (time.Time, time.Time, error) {
	if fromDate == "" || toDate == "" {
		return time.Time{}, time.Time{}, utils.ErrorInvalidDateRange
	}
	from, err := time.Parse("2006-01-02", fromDate)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("fromDate must be YYYY-MM-DD")
	}
	to, err := time.Parse("2006-01-02", toDate)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("toDate must be YYYY-MM-DD")
	}
	return from, to, nil
}

func salesReportHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req reportRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		from, to, err := parseDateRange(req.FromDate, req.ToDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		rows, err := reports.SalesReport(c.Request.Context(), reportSource, config.GetReportLocation(), from, to, req.AgentId)
		if err != nil {
			logError(c, "reports.go", "salesReportHandler", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build sales report"})
			return
		}
		c.JSON(http.StatusOK, rows)
	}
}

func attendanceReportHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req reportRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		from, to, err := parseDateRange(req.FromDate, req.ToDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		rows, err := reports.AttendanceReport(c.Request.Context(), reportSource, config.GetReportLocation(), from, to, req.AgentId)
		if err != nil {
			logError(c, "reports.go", "attendanceReportHandler", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build attendance report"})
			return
		}
		c.JSON(http.StatusOK, rows)
	}
}

func ordersReportHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req reportRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		from, to, err := parseDateRange(req.FromDate, req.ToDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		rows, err := reports.OrdersReport(c.Request.Context(), reportSource, config.GetReportLocation(), from, to, req.Status)
		if err != nil {
			logError(c, "reports.go", "ordersReportHandler", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build orders report"})
			return
		}
		c.JSON(http.StatusOK, rows)
	}
}

func exportHandler(format reports.Format) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req exportRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		typ, err := reports.ParseReportType(req.Type)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		from, to, err := parseDateRange(req.FromDate, req.ToDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		export, err := reports.ExportReport(
			c.Request.Context(),
			reportSource,
			config.GetReportLocation(),
			config.GetOrgName(),
			typ,
			format,
			reports.ExportParams{From: from, To: to, AgentId: req.AgentId, Status: req.Status},
		)
		if err != nil {
			logError(c, "reports.go", "exportHandler", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to export report"})
			return
		}

		c.Header("Content-Disposition", "attachment; filename="+export.Filename)
		c.Data(http.StatusOK, export.ContentType, export.Data)
	}
}

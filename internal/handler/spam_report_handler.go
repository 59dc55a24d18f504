package handler

import (
	"errors"
	"log"
	"net/http"

	"spam_detector/internal/model"
	"spam_detector/internal/service"

	"github.com/gin-gonic/gin"
)

// SpamReportHandler handles spam report requests
type SpamReportHandler struct {
	service service.SpamReportService
}

// NewSpamReportHandler creates a new SpamReportHandler
func NewSpamReportHandler(s service.SpamReportService) *SpamReportHandler {
	return &SpamReportHandler{service: s}
}

func (h *SpamReportHandler) ListReports(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	reports, err := h.service.ListReports(c.Request.Context(), userID)
	if err != nil {
		log.Printf("Error listing spam reports: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve spam reports"})
		return
	}
	c.JSON(http.StatusOK, reports)
}

func (h *SpamReportHandler) ReportNumber(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req model.CreateSpamReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	report, err := h.service.ReportNumber(c.Request.Context(), userID, req)
	if err != nil {
		var vErr *service.ValidationError
		switch {
		case errors.As(err, &vErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Message, "field": vErr.Field})
		case errors.Is(err, service.ErrDuplicateReport):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			log.Printf("Error creating spam report: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create spam report"})
		}
		return
	}
	c.JSON(http.StatusCreated, report)
}

// RegisterSpamReportRoutes registers spam report routes, all behind auth
func (h *SpamReportHandler) RegisterSpamReportRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	reportGroup := rg.Group("/spam-reports")
	reportGroup.Use(authMW)
	{
		reportGroup.GET("", h.ListReports)
		reportGroup.POST("", h.ReportNumber)
	}
}

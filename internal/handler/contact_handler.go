package handler

import (
	"errors"
	"log"
	"net/http"

	"spam_detector/internal/middleware"
	"spam_detector/internal/model"
	"spam_detector/internal/service"

	"github.com/gin-gonic/gin"
)

// ContactHandler handles contact book requests
type ContactHandler struct {
	service service.ContactService
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(s service.ContactService) *ContactHandler {
	return &ContactHandler{service: s}
}

// Helper to get authenticated user ID from context
func getAuthUserID(c *gin.Context) (int, error) {
	userIDVal, exists := c.Get(middleware.AuthUserKey)
	if !exists {
		return 0, errors.New("user ID not found in context")
	}
	userID, ok := userIDVal.(int)
	if !ok {
		return 0, errors.New("invalid user ID type in context")
	}
	return userID, nil
}

// Helper to get the authenticated user's phone number from context
func getAuthUserPhone(c *gin.Context) (string, error) {
	phoneVal, exists := c.Get(middleware.AuthPhoneKey)
	if !exists {
		return "", errors.New("phone number not found in context")
	}
	phone, ok := phoneVal.(string)
	if !ok {
		return "", errors.New("invalid phone number type in context")
	}
	return phone, nil
}

func (h *ContactHandler) ListContacts(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	contacts, err := h.service.ListContacts(c.Request.Context(), userID)
	if err != nil {
		log.Printf("Error listing contacts: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve contacts"})
		return
	}
	c.JSON(http.StatusOK, contacts)
}

func (h *ContactHandler) CreateContact(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req model.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	contact, err := h.service.CreateContact(c.Request.Context(), userID, req)
	if err != nil {
		var vErr *service.ValidationError
		switch {
		case errors.As(err, &vErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Message, "field": vErr.Field})
		case errors.Is(err, service.ErrDuplicateContact):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			log.Printf("Error creating contact: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create contact"})
		}
		return
	}
	c.JSON(http.StatusCreated, contact)
}

func (h *ContactHandler) BulkCreateContacts(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req model.BulkCreateContactsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	result, err := h.service.BulkCreateContacts(c.Request.Context(), userID, req)
	if err != nil {
		var vErr *service.ValidationError
		switch {
		case errors.As(err, &vErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Message, "field": vErr.Field})
		case errors.Is(err, service.ErrDuplicateContact):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			log.Printf("Error bulk creating contacts: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create contacts"})
		}
		return
	}
	c.JSON(http.StatusCreated, result)
}

// RegisterContactRoutes registers contact routes, all behind auth
func (h *ContactHandler) RegisterContactRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	contactGroup := rg.Group("/contacts")
	contactGroup.Use(authMW)
	{
		contactGroup.GET("", h.ListContacts)
		contactGroup.POST("", h.CreateContact)
		contactGroup.POST("/bulk", h.BulkCreateContacts)
	}
}

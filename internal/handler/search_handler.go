package handler

import (
	"log"
	"net/http"

	"spam_detector/internal/model"
	"spam_detector/internal/service"

	"github.com/gin-gonic/gin"
)

// SearchHandler handles search requests
type SearchHandler struct {
	service service.SearchService
}

// NewSearchHandler creates a new SearchHandler
func NewSearchHandler(s service.SearchService) *SearchHandler {
	return &SearchHandler{service: s}
}

func (h *SearchHandler) requester(c *gin.Context) (model.Requester, bool) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return model.Requester{}, false
	}
	phone, err := getAuthUserPhone(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return model.Requester{}, false
	}
	return model.Requester{ID: userID, PhoneNumber: phone}, true
}

func (h *SearchHandler) SearchByName(c *gin.Context) {
	requester, ok := h.requester(c)
	if !ok {
		return
	}

	results, err := h.service.SearchByName(c.Request.Context(), c.Query("q"), requester)
	if err != nil {
		log.Printf("Error searching by name: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search"})
		return
	}
	c.JSON(http.StatusOK, results)
}

func (h *SearchHandler) SearchByPhone(c *gin.Context) {
	requester, ok := h.requester(c)
	if !ok {
		return
	}

	results, err := h.service.SearchByPhone(c.Request.Context(), c.Query("q"), requester)
	if err != nil {
		log.Printf("Error searching by phone: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search"})
		return
	}
	c.JSON(http.StatusOK, results)
}

// RegisterSearchRoutes registers search routes, all behind auth
func (h *SearchHandler) RegisterSearchRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	searchGroup := rg.Group("/search")
	searchGroup.Use(authMW)
	{
		searchGroup.GET("", h.SearchByName)
		searchGroup.GET("/phone", h.SearchByPhone)
	}
}

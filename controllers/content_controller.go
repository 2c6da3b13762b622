package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"waniyilo/middlewares"
	"waniyilo/models"
	"waniyilo/stores"
)

// ContentController serves news, courses, vocabulary, partners and
// comments. Reads are public behind auth; mutations are admin-gated in
// the routes.
type ContentController struct {
	content stores.ContentStore
}

// NewContentController builds the controller.
func NewContentController(content stores.ContentStore) *ContentController {
	return &ContentController{content: content}
}

// GetNews lists published news.
func (cc *ContentController) GetNews(c *gin.Context) {
	c.JSON(http.StatusOK, cc.content.FetchNews(c.Request.Context()))
}

// GetCourses lists the course catalogue.
func (cc *ContentController) GetCourses(c *gin.Context) {
	c.JSON(http.StatusOK, cc.content.FetchCourses(c.Request.Context()))
}

// GetVocabulary lists quiz words for a level (default 1).
func (cc *ContentController) GetVocabulary(c *gin.Context) {
	level := 1
	if raw := c.Query("level"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid level"})
			return
		}
		level = parsed
	}
	c.JSON(http.StatusOK, cc.content.FetchVocabulary(c.Request.Context(), level))
}

// GetPartners lists partner organisations.
func (cc *ContentController) GetPartners(c *gin.Context) {
	c.JSON(http.StatusOK, cc.content.FetchPartners(c.Request.Context()))
}

// GetComments lists comments for one news item.
func (cc *ContentController) GetComments(c *gin.Context) {
	newsID := c.Param("id")
	c.JSON(http.StatusOK, cc.content.FetchComments(c.Request.Context(), newsID))
}

type commentRequest struct {
	Content string `json:"content" binding:"required"`
}

// PostComment attaches a comment to a news item.
func (cc *ContentController) PostComment(c *gin.Context) {
	profile, ok := middlewares.ProfileFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Comment content is required"})
		return
	}

	comment := models.Comment{
		NewsID:    c.Param("id"),
		UserName:  profile.Name,
		Content:   req.Content,
		CreatedAt: time.Now(),
	}
	if err := cc.content.AddComment(c.Request.Context(), comment); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to save comment"})
		return
	}
	c.JSON(http.StatusCreated, comment)
}

type newsRequest struct {
	Title    string `json:"title" binding:"required"`
	Category string `json:"category" binding:"required"`
	Excerpt  string `json:"excerpt" binding:"required"`
}

// CreateNews publishes a news item.
func (cc *ContentController) CreateNews(c *gin.Context) {
	var req newsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title, category and excerpt are required"})
		return
	}
	item := models.NewsItem{
		Title:     req.Title,
		Category:  req.Category,
		Excerpt:   req.Excerpt,
		Date:      "Direct",
		CreatedAt: time.Now(),
	}
	if err := cc.content.CreateNews(c.Request.Context(), item); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to publish news"})
		return
	}
	c.JSON(http.StatusCreated, item)
}

// DeleteNews removes a news item.
func (cc *ContentController) DeleteNews(c *gin.Context) {
	if err := cc.content.DeleteNews(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to delete news"})
		return
	}
	c.Status(http.StatusNoContent)
}

type vocabularyRequest struct {
	Fr      string   `json:"fr" binding:"required"`
	Fon     string   `json:"fon" binding:"required"`
	Options []string `json:"options" binding:"required"`
	Level   int      `json:"level"`
}

// AddVocabulary adds a quiz word.
func (cc *ContentController) AddVocabulary(c *gin.Context) {
	var req vocabularyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fr, fon and options are required"})
		return
	}
	if req.Level < 1 {
		req.Level = 1
	}
	item := models.VocabularyItem{Level: req.Level, Fr: req.Fr, Fon: req.Fon, Options: req.Options}
	if err := cc.content.AddVocabulary(c.Request.Context(), item); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to add vocabulary"})
		return
	}
	c.JSON(http.StatusCreated, item)
}

// DeleteVocabulary removes a quiz word.
func (cc *ContentController) DeleteVocabulary(c *gin.Context) {
	if err := cc.content.DeleteVocabulary(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to delete vocabulary"})
		return
	}
	c.Status(http.StatusNoContent)
}

type partnerRequest struct {
	Name string `json:"name" binding:"required"`
	Type string `json:"type" binding:"required"`
}

// AddPartner registers a partner organisation.
func (cc *ContentController) AddPartner(c *gin.Context) {
	var req partnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name and type are required"})
		return
	}
	partner := models.Partner{Name: req.Name, Type: req.Type}
	if err := cc.content.AddPartner(c.Request.Context(), partner); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to add partner"})
		return
	}
	c.JSON(http.StatusCreated, partner)
}

// DeletePartner removes a partner.
func (cc *ContentController) DeletePartner(c *gin.Context) {
	if err := cc.content.DeletePartner(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to delete partner"})
		return
	}
	c.Status(http.StatusNoContent)
}

package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"waniyilo/middlewares"
	"waniyilo/models"
	"waniyilo/stores"
	"waniyilo/websocket"
)

// MessagingController serves the Nexus community channel and private
// matricule-to-matricule messages.
type MessagingController struct {
	messaging stores.MessagingStore
	hub       *websocket.Hub
}

// NewMessagingController builds the controller.
func NewMessagingController(messaging stores.MessagingStore, hub *websocket.Hub) *MessagingController {
	return &MessagingController{messaging: messaging, hub: hub}
}

// GetNexus returns the recent community messages.
func (mc *MessagingController) GetNexus(c *gin.Context) {
	c.JSON(http.StatusOK, mc.messaging.FetchRecent(c.Request.Context(), 50))
}

type nexusSendRequest struct {
	Content string `json:"content" binding:"required"`
}

// PostNexus publishes a community message under the caller's identity.
func (mc *MessagingController) PostNexus(c *gin.Context) {
	profile, ok := middlewares.ProfileFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}
	var req nexusSendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message content is required"})
		return
	}
	content := strings.TrimSpace(req.Content)
	if content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message content is required"})
		return
	}

	msg := models.NexusMessage{
		ID:        uuid.NewString(),
		UserName:  profile.Name,
		UserPhone: profile.Phone,
		Archetype: string(profile.Archetype),
		Content:   content,
		CreatedAt: time.Now(),
	}
	if err := mc.messaging.SendGlobal(c.Request.Context(), msg); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to send message"})
		return
	}

	mc.hub.Broadcast(models.AcademyEvent{
		Type: "nexus_message", Matricule: profile.Matricule, Timestamp: msg.CreatedAt,
	})
	c.JSON(http.StatusCreated, msg)
}

// DeleteNexus removes a community message. Admin only via routes.
func (mc *MessagingController) DeleteNexus(c *gin.Context) {
	if err := mc.messaging.DeleteGlobal(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to delete message"})
		return
	}
	c.Status(http.StatusNoContent)
}

// GetPrivate returns the caller's private conversations.
func (mc *MessagingController) GetPrivate(c *gin.Context) {
	profile, ok := middlewares.ProfileFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}
	c.JSON(http.StatusOK, mc.messaging.FetchPrivate(c.Request.Context(), profile.Matricule))
}

type privateSendRequest struct {
	To      string `json:"to" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// PostPrivate sends a private message to another matricule.
func (mc *MessagingController) PostPrivate(c *gin.Context) {
	profile, ok := middlewares.ProfileFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}
	var req privateSendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Recipient and content are required"})
		return
	}
	to := strings.ToUpper(strings.TrimSpace(req.To))
	content := strings.TrimSpace(req.Content)
	if to == "" || content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Recipient and content are required"})
		return
	}
	if to == profile.Matricule {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot message yourself"})
		return
	}

	msg := models.PrivateMessage{
		ID:        uuid.NewString(),
		Sender:    profile.Matricule,
		Receiver:  to,
		Content:   content,
		CreatedAt: time.Now(),
	}
	if err := mc.messaging.SendPrivate(c.Request.Context(), msg); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to send message"})
		return
	}

	mc.hub.Broadcast(models.AcademyEvent{
		Type: "private_message", Matricule: to, Timestamp: msg.CreatedAt,
	})
	c.JSON(http.StatusCreated, msg)
}

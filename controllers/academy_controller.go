// Package controllers exposes the academy over HTTP. Controllers hold
// their stores; nothing reaches for a global client.
package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"waniyilo/middlewares"
	"waniyilo/models"
	"waniyilo/onboarding"
	"waniyilo/rewards"
	"waniyilo/stores"
	"waniyilo/utils"
	"waniyilo/websocket"
)

// AcademyController serves registration, login and profile operations.
type AcademyController struct {
	profiles    stores.ProfileStore
	hub         *websocket.Hub
	countryCode string
}

// NewAcademyController builds the controller.
func NewAcademyController(profiles stores.ProfileStore, hub *websocket.Hub, countryCode string) *AcademyController {
	return &AcademyController{profiles: profiles, hub: hub, countryCode: countryCode}
}

type registerRequest struct {
	Answers []models.Archetype `json:"answers" binding:"required"`
	Name    string             `json:"name" binding:"required"`
	Phone   string             `json:"phone" binding:"required"`
}

// Register completes the initiation: quiz answers resolve the
// archetype, the profile is written and the matricule returned.
func (ac *AcademyController) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if len(req.Answers) != len(onboarding.Questions) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All ritual questions must be answered"})
		return
	}

	machine := onboarding.NewMachine(ac.profiles, nil, onboarding.WithCountryCode(ac.countryCode))
	if err := machine.Start(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Initiation could not start"})
		return
	}
	for _, answer := range req.Answers {
		if err := machine.Answer(answer); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ritual answer"})
			return
		}
	}

	if err := machine.Register(c.Request.Context(), req.Name, req.Phone); err != nil {
		switch {
		case errors.Is(err, onboarding.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name and phone are required"})
		case errors.Is(err, stores.ErrDuplicate):
			c.JSON(http.StatusConflict, gin.H{"error": "Phone already registered"})
		default:
			c.JSON(http.StatusBadGateway, gin.H{"error": "Registration failed, try again"})
		}
		return
	}

	profile := machine.Profile()
	c.JSON(http.StatusCreated, gin.H{
		"matricule": profile.Matricule,
		"profile":   profile,
		"badges":    rewards.DisplayBadges(profile),
	})
}

type loginRequest struct {
	Matricule string `json:"matricule" binding:"required"`
}

// Login resolves a matricule for a returning user.
func (ac *AcademyController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	machine := onboarding.NewMachine(ac.profiles, nil)
	if err := machine.GoToLogin(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login unavailable"})
		return
	}
	profile, err := machine.Login(c.Request.Context(), req.Matricule)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": machine.LastError()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "Login failed, try again"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"profile": profile,
		"badges":  rewards.DisplayBadges(profile),
	})
}

// Me returns the authenticated profile with display badges and the
// proverb of the day.
func (ac *AcademyController) Me(c *gin.Context) {
	profile, ok := middlewares.ProfileFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"profile": profile,
		"badges":  rewards.DisplayBadges(profile),
		"proverb": utils.DailyProverb(time.Now()),
	})
}

type addXPRequest struct {
	Amount int    `json:"amount"`
	Reason string `json:"reason"`
}

// AddXP mirrors a local WP gain to the store and broadcasts it.
func (ac *AcademyController) AddXP(c *gin.Context) {
	profile, ok := middlewares.ProfileFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}
	var req addXPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Amount must be positive"})
		return
	}

	if err := ac.profiles.IncrementXP(c.Request.Context(), profile.Matricule, req.Amount); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Could not record the gain"})
		return
	}

	updated, err := rewards.ApplyXP(profile, req.Amount, req.Reason)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid amount"})
		return
	}
	ac.hub.Broadcast(models.AcademyEvent{
		Type: "xp_gained", Matricule: profile.Matricule, Amount: req.Amount,
		Reason: req.Reason, NewXP: updated.XP, NewLevel: updated.Level,
		Timestamp: time.Now(),
	})
	c.JSON(http.StatusOK, gin.H{"xp": updated.XP, "level": updated.Level})
}

// CycleAvatar advances the avatar rotation.
func (ac *AcademyController) CycleAvatar(c *gin.Context) {
	profile, ok := middlewares.ProfileFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}
	next := rewards.NextAvatarStyle(profile.AvatarStyle)
	if err := ac.profiles.UpdateAvatar(c.Request.Context(), profile.Matricule, next); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Could not update avatar"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"avatar_style": next})
}

// Leaderboard returns the public top ranking.
func (ac *AcademyController) Leaderboard(c *gin.Context) {
	entries, err := ac.profiles.GetLeaderboard(c.Request.Context(), 10)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch leaderboard"})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// Users returns the admin directory.
func (ac *AcademyController) Users(c *gin.Context) {
	users, err := ac.profiles.FetchAllUsers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch users"})
		return
	}
	c.JSON(http.StatusOK, users)
}

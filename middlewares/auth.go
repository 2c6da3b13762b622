// Package middlewares guards the authenticated API surface. Identity is
// the matricule: possession of the code is the credential.
package middlewares

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"waniyilo/models"
	"waniyilo/stores"
)

// ProfileKey is the gin context key holding the authenticated profile.
const ProfileKey = "profile"

// Auth resolves the X-Matricule header to a profile and stores it in
// the request context.
func Auth(profiles stores.ProfileStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		matricule := strings.ToUpper(strings.TrimSpace(c.GetHeader("X-Matricule")))
		if matricule == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing X-Matricule header"})
			c.Abort()
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()
		profile, err := profiles.GetByMatricule(ctx, matricule)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unknown matricule"})
			c.Abort()
			return
		}

		c.Set(ProfileKey, profile)
		c.Next()
	}
}

// AdminOnly allows only ADMIN archetypes past. Must run after Auth.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		profile, ok := ProfileFrom(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			c.Abort()
			return
		}
		if profile.Archetype != models.ArchetypeAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// ProfileFrom extracts the authenticated profile set by Auth.
func ProfileFrom(c *gin.Context) (models.Profile, bool) {
	v, exists := c.Get(ProfileKey)
	if !exists {
		return models.Profile{}, false
	}
	profile, ok := v.(models.Profile)
	return profile, ok
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"waniyilo/stores"
)

// OracleController exposes the Waniyilo Spirit. Every endpoint answers
// 200 with text: the Oracle contract has no failure mode.
type OracleController struct {
	oracle stores.Oracle
}

// NewOracleController builds the controller.
func NewOracleController(oracle stores.Oracle) *OracleController {
	return &OracleController{oracle: oracle}
}

type askRequest struct {
	Message string   `json:"message" binding:"required"`
	History []string `json:"history"`
}

// Ask forwards a chat message to the Spirit.
func (oc *OracleController) Ask(c *gin.Context) {
	var req askRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message is required"})
		return
	}
	answer := oc.oracle.Ask(c.Request.Context(), req.Message, req.History)
	c.JSON(http.StatusOK, gin.H{"answer": answer})
}

type labRequest struct {
	Problem string `json:"problem" binding:"required"`
}

// Lab produces the three-part oracle reading.
func (oc *OracleController) Lab(c *gin.Context) {
	var req labRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Problem is required"})
		return
	}
	reading := oc.oracle.LabReading(c.Request.Context(), req.Problem)
	c.JSON(http.StatusOK, gin.H{"reading": reading})
}

type translateRequest struct {
	Text       string `json:"text" binding:"required"`
	TargetLang string `json:"targetLang"`
}

// Translate renders text into the target language (default English).
func (oc *OracleController) Translate(c *gin.Context) {
	var req translateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Text is required"})
		return
	}
	if req.TargetLang == "" {
		req.TargetLang = "English"
	}
	translated := oc.oracle.Translate(c.Request.Context(), req.Text, req.TargetLang)
	c.JSON(http.StatusOK, gin.H{"translation": translated})
}

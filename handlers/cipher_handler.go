// Package handlers is made to handle requests
package handlers

import (
	"fmt"
	"net/http"
	"playfair-backend/crypto"
	"playfair-backend/models"

	"github.com/gin-gonic/gin"
)

type CipherHandler struct{}

func NewCipherHandler() *CipherHandler {
	return &CipherHandler{}
}

func (h *CipherHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "Playfair cipher API is running",
		"version": "1.0.0",
	})
}

func (h *CipherHandler) Encrypt(c *gin.Context) {
	var req models.EncryptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.CipherResponse{
			Success: false,
			Message: fmt.Sprintf("Invalid request: %v", err),
		})
		return
	}

	config := &models.CipherConfig{Key: req.Key, Filler: req.Filler}
	cipher, err := crypto.NewPlayfairFromConfig(config)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.CipherResponse{
			Success: false,
			Message: fmt.Sprintf("Invalid filler: %v", err),
		})
		return
	}

	c.JSON(http.StatusOK, models.CipherResponse{
		Success: true,
		Message: "Plaintext successfully encrypted",
		Result:  cipher.Encrypt(req.Plaintext),
	})
}

func (h *CipherHandler) Decrypt(c *gin.Context) {
	var req models.DecryptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.CipherResponse{
			Success: false,
			Message: fmt.Sprintf("Invalid request: %v", err),
		})
		return
	}

	config := &models.CipherConfig{Key: req.Key, Filler: req.Filler}
	cipher, err := crypto.NewPlayfairFromConfig(config)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.CipherResponse{
			Success: false,
			Message: fmt.Sprintf("Invalid filler: %v", err),
		})
		return
	}

	plaintext, err := cipher.Decrypt(req.Ciphertext)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.CipherResponse{
			Success: false,
			Message: fmt.Sprintf("Invalid ciphertext: %v", err),
		})
		return
	}

	c.JSON(http.StatusOK, models.CipherResponse{
		Success: true,
		Message: "Ciphertext successfully decrypted",
		Result:  plaintext,
	})
}

func (h *CipherHandler) Table(c *gin.Context) {
	var req models.TableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.TableResponse{
			Success: false,
			Message: fmt.Sprintf("Invalid request: %v", err),
		})
		return
	}

	cipher := crypto.NewPlayfair(req.Key)
	rows := cipher.TableRows()

	c.JSON(http.StatusOK, models.TableResponse{
		Success: true,
		Message: "Table successfully generated",
		Key:     cipher.Key(),
		Rows:    rows[:],
	})
}

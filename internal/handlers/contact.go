package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/karoo-dev/karoo/db"
	"github.com/karoo-dev/karoo/internal/models"
)

type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"required"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}

type ContactResponse struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// DefaultContactSubject is used when an inquiry arrives without a subject.
const DefaultContactSubject = "General Inquiry"

// CreateContact validates and stores an inquiry. Rows are append-only; no
// email is dispatched.
func CreateContact(ctx *gin.Context) {
	var body ContactRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	subject := body.Subject
	if subject == "" {
		subject = DefaultContactSubject
	}

	contact := models.Contact{
		Name:    body.Name,
		Email:   body.Email,
		Phone:   body.Phone,
		Subject: subject,
		Message: body.Message,
	}

	if err := db.DB.Create(&contact).Error; err != nil {
		zap.S().Errorw("failed to save contact", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save contact information"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"contact": ContactResponse{
			ID:      contact.ID,
			Name:    contact.Name,
			Email:   contact.Email,
			Phone:   contact.Phone,
			Subject: contact.Subject,
			Message: contact.Message,
		},
	})
}

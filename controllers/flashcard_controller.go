package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetFlashcards trả về flashcard của tài liệu theo thứ tự
func GetFlashcards(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	docID, ok := docIDParam(c)
	if !ok {
		return
	}

	cards, err := engine.GetFlashcards(docID, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"flashcards": cards})
}

// RegenerateFlashcards sinh lại bộ flashcard mới thay thế hoàn toàn bộ cũ
func RegenerateFlashcards(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	docID, ok := docIDParam(c)
	if !ok {
		return
	}

	cards, err := engine.RegenerateFlashcards(docID, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":    "Đã tạo lại bộ flashcard",
		"flashcards": cards,
	})
}

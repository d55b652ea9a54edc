package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetQuizzes trả về quiz của tài liệu kèm câu hỏi theo thứ tự
func GetQuizzes(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	docID, ok := docIDParam(c)
	if !ok {
		return
	}

	quizzes, err := engine.GetQuizzes(docID, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"quizzes": quizzes})
}

// RegenerateQuiz sinh lại bộ quiz mới thay thế hoàn toàn bộ cũ
func RegenerateQuiz(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	docID, ok := docIDParam(c)
	if !ok {
		return
	}

	quiz, err := engine.RegenerateQuiz(docID, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Đã tạo lại bộ câu hỏi",
		"quiz":    quiz,
	})
}

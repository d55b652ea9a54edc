package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type ChatInput struct {
	Message string `json:"message" binding:"required"`
}

// Chat gửi câu hỏi về tài liệu, AI trả lời dựa trên ngữ cảnh
func Chat(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	docID, ok := docIDParam(c)
	if !ok {
		return
	}

	var input ChatInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reply, err := engine.Chat(docID, userID, input.Message)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": reply})
}

// GetChatHistory trả về toàn bộ hội thoại của tài liệu, cũ nhất trước
func GetChatHistory(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	docID, ok := docIDParam(c)
	if !ok {
		return
	}

	messages, err := engine.ChatHistory(docID, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

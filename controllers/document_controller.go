package controllers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vnkhanh/ai-study-backend/config"
	"github.com/vnkhanh/ai-study-backend/models"
)

// Giới hạn kích thước file upload: 20MB
const maxUploadSize = 20 << 20

// UploadDocument nhận file multipart, tạo tài liệu và đưa vào pipeline xử lý.
// Trả về 202 kèm bản ghi PENDING, client theo dõi tiến trình qua /status.
func UploadDocument(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Thiếu file upload"})
		return
	}
	if fileHeader.Size > maxUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File vượt quá giới hạn 20MB"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không đọc được file"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không đọc được file"})
		return
	}

	title := c.PostForm("title")
	description := c.PostForm("description")

	doc, err := engine.SubmitDocument(data, fileHeader.Filename, title, description, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"message":  "Đã nhận tài liệu, hệ thống đang xử lý",
		"document": doc,
	})
}

// ListDocuments trả về tài liệu của người dùng hiện tại, mới nhất trước
func ListDocuments(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	docs, err := engine.ListDocuments(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"documents": docs})
}

// GetDocument trả về chi tiết một tài liệu
func GetDocument(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	docID, ok := docIDParam(c)
	if !ok {
		return
	}

	doc, err := engine.GetDocument(docID, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// GetDocumentStatus cho client poll trạng thái pipeline
func GetDocumentStatus(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	docID, ok := docIDParam(c)
	if !ok {
		return
	}

	status, err := engine.GetStatus(docID, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// AdminListDocuments cho admin xem toàn bộ tài liệu trong hệ thống
func AdminListDocuments(c *gin.Context) {
	var docs []models.Document
	if err := config.DB.Order("created_at DESC").Find(&docs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Lỗi khi truy vấn tài liệu"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"documents": docs})
}

// DeleteDocument xóa tài liệu cùng toàn bộ quiz, flashcard, hội thoại và file
func DeleteDocument(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	docID, ok := docIDParam(c)
	if !ok {
		return
	}

	if err := engine.DeleteDocument(docID, userID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Đã xóa tài liệu"})
}

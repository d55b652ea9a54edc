package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/vnkhanh/ai-study-backend/models"
	"gorm.io/gorm"
)

// ownedDocument tải tài liệu và kiểm tra quyền sở hữu
func (s *StudyEngine) ownedDocument(docID, userID uuid.UUID) (*models.Document, error) {
	var doc models.Document
	if err := s.DB.First(&doc, "id = ?", docID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: tài liệu %s", ErrNotFound, docID)
		}
		return nil, err
	}
	if doc.UserID != userID {
		return nil, ErrAccessDenied
	}
	return &doc, nil
}

// ListDocuments trả về tài liệu của người dùng, mới nhất trước
func (s *StudyEngine) ListDocuments(userID uuid.UUID) ([]models.Document, error) {
	var docs []models.Document
	if err := s.DB.Where("user_id = ?", userID).
		Order("created_at DESC").Find(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}

// GetDocument trả về chi tiết tài liệu và ghi nhận lượt xem
func (s *StudyEngine) GetDocument(docID, userID uuid.UUID) (*models.Document, error) {
	doc, err := s.ownedDocument(docID, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if err := s.DB.Model(&models.Document{}).Where("id = ?", doc.ID).
		Updates(map[string]interface{}{
			"view_count":    gorm.Expr("view_count + 1"),
			"last_accessed": now,
		}).Error; err != nil {
		log.Printf("không ghi được lượt xem tài liệu %s: %v", doc.ID, err)
	} else {
		doc.ViewCount++
		doc.LastAccessed = &now
	}
	return doc, nil
}

// DocumentStatus là payload cho endpoint theo dõi tiến trình xử lý
type DocumentStatus struct {
	ID       uuid.UUID               `json:"id"`
	Status   models.ProcessingStatus `json:"status"`
	Progress int                     `json:"progress"`
	Error    string                  `json:"error,omitempty"`
}

// GetStatus trả về trạng thái pipeline hiện tại của tài liệu
func (s *StudyEngine) GetStatus(docID, userID uuid.UUID) (*DocumentStatus, error) {
	doc, err := s.ownedDocument(docID, userID)
	if err != nil {
		return nil, err
	}
	return &DocumentStatus{
		ID:       doc.ID,
		Status:   doc.Status,
		Progress: doc.Progress,
		Error:    doc.ProcessError,
	}, nil
}

// GetQuizzes trả về các quiz của tài liệu kèm câu hỏi theo thứ tự
func (s *StudyEngine) GetQuizzes(docID, userID uuid.UUID) ([]models.Quiz, error) {
	doc, err := s.ownedDocument(docID, userID)
	if err != nil {
		return nil, err
	}

	var quizzes []models.Quiz
	if err := s.DB.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("order_index ASC")
	}).Where("document_id = ?", doc.ID).
		Order("created_at DESC").Find(&quizzes).Error; err != nil {
		return nil, err
	}
	return quizzes, nil
}

// GetFlashcards trả về flashcard của tài liệu theo thứ tự
func (s *StudyEngine) GetFlashcards(docID, userID uuid.UUID) ([]models.Flashcard, error) {
	doc, err := s.ownedDocument(docID, userID)
	if err != nil {
		return nil, err
	}

	var cards []models.Flashcard
	if err := s.DB.Where("document_id = ?", doc.ID).
		Order("order_index ASC").Find(&cards).Error; err != nil {
		return nil, err
	}
	return cards, nil
}

// DeleteDocument xóa tài liệu cùng toàn bộ dữ liệu con trong một
// transaction, sau đó xóa các file trên storage (best effort).
func (s *StudyEngine) DeleteDocument(docID, userID uuid.UUID) error {
	doc, err := s.ownedDocument(docID, userID)
	if err != nil {
		return err
	}

	if err := s.DB.Transaction(func(tx *gorm.DB) error {
		var quizIDs []uuid.UUID
		if err := tx.Model(&models.Quiz{}).Where("document_id = ?", doc.ID).
			Pluck("id", &quizIDs).Error; err != nil {
			return err
		}
		if len(quizIDs) > 0 {
			if err := tx.Where("quiz_id IN ?", quizIDs).
				Delete(&models.QuizQuestion{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("document_id = ?", doc.ID).Delete(&models.Quiz{}).Error; err != nil {
			return err
		}
		if err := tx.Where("document_id = ?", doc.ID).Delete(&models.Flashcard{}).Error; err != nil {
			return err
		}
		if err := tx.Where("document_id = ?", doc.ID).Delete(&models.ChatMessage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Document{}, "id = ?", doc.ID).Error
	}); err != nil {
		return err
	}

	// File trên storage xóa sau khi DB đã commit, lỗi chỉ ghi log
	for _, url := range []string{doc.FilePath, doc.MindmapURL, doc.SummaryPdfURL} {
		if url == "" {
			continue
		}
		if err := s.Storage.Delete(url); err != nil {
			log.Printf("không xóa được file %s: %v", url, err)
		}
	}
	return nil
}

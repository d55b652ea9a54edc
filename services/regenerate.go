package services

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/vnkhanh/ai-study-backend/models"
	"gorm.io/gorm"
)

// RegenerateQuiz xóa toàn bộ quiz cũ của tài liệu và sinh lại bộ mới.
// Không đụng đến status/progress của tài liệu, yêu cầu tài liệu đã có
// văn bản trích xuất.
func (s *StudyEngine) RegenerateQuiz(docID, userID uuid.UUID) (*models.Quiz, error) {
	doc, err := s.ownedDocument(docID, userID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(doc.ExtractedText) == "" {
		return nil, fmt.Errorf("%w: tài liệu chưa trích xuất văn bản", ErrNotReady)
	}

	ctx, cancel := s.stageContext()
	questions, err := s.AI.GenerateQuiz(ctx, doc.ExtractedText, QuizQuestionCount)
	cancel()
	if err != nil {
		return nil, err
	}

	// Xóa bộ cũ và ghi bộ mới trong cùng một transaction, thất bại thì
	// bộ cũ vẫn còn nguyên
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
			if err := tx.Where("document_id = ?", doc.ID).
				Delete(&models.Quiz{}).Error; err != nil {
				return err
			}
		}
		return createQuiz(tx, doc, questions)
	}); err != nil {
		return nil, err
	}

	var quiz models.Quiz
	if err := s.DB.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("order_index ASC")
	}).First(&quiz, "document_id = ?", doc.ID).Error; err != nil {
		return nil, err
	}
	return &quiz, nil
}

// RegenerateFlashcards xóa toàn bộ flashcard cũ và sinh lại bộ mới,
// cùng quy tắc với RegenerateQuiz.
func (s *StudyEngine) RegenerateFlashcards(docID, userID uuid.UUID) ([]models.Flashcard, error) {
	doc, err := s.ownedDocument(docID, userID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(doc.ExtractedText) == "" {
		return nil, fmt.Errorf("%w: tài liệu chưa trích xuất văn bản", ErrNotReady)
	}

	ctx, cancel := s.stageContext()
	cards, err := s.AI.GenerateFlashcards(ctx, doc.ExtractedText, FlashcardCount)
	cancel()
	if err != nil {
		return nil, err
	}

	if err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("document_id = ?", doc.ID).
			Delete(&models.Flashcard{}).Error; err != nil {
			return err
		}
		return createFlashcards(tx, doc.ID, cards)
	}); err != nil {
		return nil, err
	}

	var saved []models.Flashcard
	if err := s.DB.Where("document_id = ?", doc.ID).
		Order("order_index ASC").Find(&saved).Error; err != nil {
		return nil, err
	}
	return saved, nil
}

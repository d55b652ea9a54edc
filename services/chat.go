package services

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/vnkhanh/ai-study-backend/models"
)

// ChatHistoryLimit giới hạn số tin nhắn gần nhất đưa vào ngữ cảnh AI
const ChatHistoryLimit = 10

// Chat lưu câu hỏi của người dùng, gọi AI trả lời dựa trên tài liệu và
// lịch sử gần nhất, rồi lưu và trả về tin nhắn của trợ lý. Câu hỏi của
// người dùng vẫn được giữ lại kể cả khi AI trả lời thất bại.
func (s *StudyEngine) Chat(docID, userID uuid.UUID, message string) (*models.ChatMessage, error) {
	if strings.TrimSpace(message) == "" {
		return nil, fmt.Errorf("%w: tin nhắn rỗng", ErrInvalidInput)
	}

	doc, err := s.ownedDocument(docID, userID)
	if err != nil {
		return nil, err
	}

	userMsg := models.ChatMessage{
		ID:         uuid.New(),
		DocumentID: doc.ID,
		UserID:     userID,
		Role:       models.RoleMessageUser,
		Content:    message,
	}
	if err := s.DB.Create(&userMsg).Error; err != nil {
		return nil, err
	}

	var history []models.ChatMessage
	if err := s.DB.Where("document_id = ? AND user_id = ?", doc.ID, userID).
		Order("created_at ASC").Find(&history).Error; err != nil {
		return nil, err
	}
	if len(history) > ChatHistoryLimit {
		history = history[len(history)-ChatHistoryLimit:]
	}

	ctx, cancel := s.stageContext()
	reply, err := s.AI.ChatReply(ctx, doc, history, message)
	cancel()
	if err != nil {
		return nil, err
	}

	assistantMsg := models.ChatMessage{
		ID:         uuid.New(),
		DocumentID: doc.ID,
		UserID:     userID,
		Role:       models.RoleMessageAssistant,
		Content:    reply,
	}
	if err := s.DB.Create(&assistantMsg).Error; err != nil {
		return nil, err
	}
	return &assistantMsg, nil
}

// ChatHistory trả về toàn bộ hội thoại của tài liệu, cũ nhất trước
func (s *StudyEngine) ChatHistory(docID, userID uuid.UUID) ([]models.ChatMessage, error) {
	doc, err := s.ownedDocument(docID, userID)
	if err != nil {
		return nil, err
	}

	var messages []models.ChatMessage
	if err := s.DB.Where("document_id = ?", doc.ID).
		Order("created_at ASC").Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/vnkhanh/ai-study-backend/models"
)

func TestChatPersistsBothMessages(t *testing.T) {
	s, _, _ := newTestEngine(t)
	userID := createTestUser(t, s.DB)
	doc := submitTxt(t, s, userID, "nội dung")
	s.Process(doc.ID)

	reply, err := s.Chat(doc.ID, userID, "tài liệu nói về gì?")
	if err != nil {
		t.Fatalf("Chat lỗi: %v", err)
	}
	if reply.Role != models.RoleMessageAssistant || reply.Content == "" {
		t.Fatalf("tin nhắn trả lời sai: %+v", reply)
	}

	history, err := s.ChatHistory(doc.ID, userID)
	if err != nil {
		t.Fatalf("ChatHistory lỗi: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("muốn 2 tin nhắn, có %d", len(history))
	}
	if history[0].Role != models.RoleMessageUser || history[1].Role != models.RoleMessageAssistant {
		t.Fatalf("thứ tự hội thoại sai: %s, %s", history[0].Role, history[1].Role)
	}
}

func TestChatBlankMessage(t *testing.T) {
	s, _, _ := newTestEngine(t)
	userID := createTestUser(t, s.DB)
	doc := submitTxt(t, s, userID, "nội dung")

	if _, err := s.Chat(doc.ID, userID, "   "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("muốn ErrInvalidInput, có %v", err)
	}

	var count int64
	s.DB.Model(&models.ChatMessage{}).Count(&count)
	if count != 0 {
		t.Fatalf("không được lưu tin nhắn nào, có %d", count)
	}
}

func TestChatKeepsUserMessageOnFailure(t *testing.T) {
	s, ai, _ := newTestEngine(t)
	userID := createTestUser(t, s.DB)
	doc := submitTxt(t, s, userID, "nội dung")
	ai.failChat = true

	if _, err := s.Chat(doc.ID, userID, "câu hỏi"); err == nil {
		t.Fatal("muốn lỗi khi AI thất bại")
	}

	// Câu hỏi của người dùng vẫn được giữ lại
	var messages []models.ChatMessage
	s.DB.Find(&messages)
	if len(messages) != 1 || messages[0].Role != models.RoleMessageUser {
		t.Fatalf("phải còn đúng tin nhắn người dùng, có %d tin", len(messages))
	}
}

func TestChatTruncatesHistoryContext(t *testing.T) {
	s, _, _ := newTestEngine(t)
	userID := createTestUser(t, s.DB)
	doc := submitTxt(t, s, userID, "nội dung")

	// Tạo sẵn 14 tin nhắn cũ
	for i := 0; i < 14; i++ {
		msg := models.ChatMessage{
			ID:         uuid.New(),
			DocumentID: doc.ID,
			UserID:     userID,
			Role:       models.RoleMessageUser,
			Content:    fmt.Sprintf("tin %d", i),
		}
		if err := s.DB.Create(&msg).Error; err != nil {
			t.Fatalf("tạo tin nhắn lỗi: %v", err)
		}
	}

	reply, err := s.Chat(doc.ID, userID, "câu hỏi mới")
	if err != nil {
		t.Fatalf("Chat lỗi: %v", err)
	}

	// fakeAI nhúng số tin trong ngữ cảnh vào câu trả lời
	want := fmt.Sprintf("trả lời (%d tin trong ngữ cảnh)", ChatHistoryLimit)
	if reply.Content != want {
		t.Fatalf("ngữ cảnh không bị cắt còn %d tin: %q", ChatHistoryLimit, reply.Content)
	}
}

package models

import (
	"time"

	"github.com/google/uuid"
)

type MessageRole string

const (
	RoleMessageUser      MessageRole = "USER"
	RoleMessageAssistant MessageRole = "ASSISTANT"
	RoleMessageSystem    MessageRole = "SYSTEM"
)

// ChatMessage là một lượt hội thoại gắn với tài liệu, chỉ thêm không sửa
type ChatMessage struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	DocumentID uuid.UUID `gorm:"type:uuid;not null" json:"document_id"`
	Document   Document  `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	UserID     uuid.UUID `gorm:"type:uuid;not null" json:"user_id"`
	User       User      `gorm:"constraint:OnDelete:CASCADE;" json:"-"`

	Role    MessageRole `gorm:"size:20;not null" json:"role"`
	Content string      `gorm:"type:text;not null" json:"content"`

	TokenCount *int `json:"token_count"` // phục vụ thống kê chi phí, có thể null

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

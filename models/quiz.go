package models

import (
	"time"

	"github.com/google/uuid"
)

type DifficultyLevel string

const (
	DifficultyEasy   DifficultyLevel = "EASY"
	DifficultyMedium DifficultyLevel = "MEDIUM"
	DifficultyHard   DifficultyLevel = "HARD"
)

type Quiz struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	DocumentID uuid.UUID `gorm:"type:uuid;not null" json:"document_id"`
	Document   Document  `gorm:"constraint:OnDelete:CASCADE;" json:"-"`

	Title          string          `gorm:"size:255;not null" json:"title"`
	Description    string          `gorm:"size:1000" json:"description"`
	Difficulty     DifficultyLevel `gorm:"size:20;not null;default:'MEDIUM'" json:"difficulty"`
	TotalQuestions int             `gorm:"default:0" json:"total_questions"`
	CreatedAt      time.Time       `gorm:"autoCreateTime" json:"created_at"`

	Questions []QuizQuestion `gorm:"foreignKey:QuizID" json:"questions"`
}

type QuizQuestion struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	QuizID uuid.UUID `gorm:"type:uuid;not null" json:"quiz_id"`
	Quiz   Quiz      `gorm:"foreignKey:QuizID;references:ID;constraint:OnDelete:CASCADE;" json:"-"`

	Question      string `gorm:"type:text;not null" json:"question"`
	OptionA       string `gorm:"type:text;not null" json:"option_a"`
	OptionB       string `gorm:"type:text;not null" json:"option_b"`
	OptionC       string `gorm:"type:text;not null" json:"option_c"`
	OptionD       string `gorm:"type:text;not null" json:"option_d"`
	CorrectAnswer string `gorm:"size:1;not null" json:"correct_answer"` // A, B, C hoặc D
	Explanation   string `gorm:"type:text" json:"explanation"`
	OrderIndex    int    `gorm:"default:0" json:"order_index"`
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// FlashcardCategory là nhóm nội dung của flashcard (tập đóng)
type FlashcardCategory string

const (
	CategoryGeneral    FlashcardCategory = "GENERAL"
	CategoryDefinition FlashcardCategory = "DEFINITION"
	CategoryFormula    FlashcardCategory = "FORMULA"
	CategoryConcept    FlashcardCategory = "CONCEPT"
	CategoryFact       FlashcardCategory = "FACT"
	CategoryDate       FlashcardCategory = "DATE"
)

// ValidFlashcardCategory kiểm tra category có thuộc tập đóng hay không
func ValidFlashcardCategory(c FlashcardCategory) bool {
	switch c {
	case CategoryGeneral, CategoryDefinition, CategoryFormula, CategoryConcept, CategoryFact, CategoryDate:
		return true
	}
	return false
}

type Flashcard struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	DocumentID uuid.UUID `gorm:"type:uuid;not null" json:"document_id"`
	Document   Document  `gorm:"constraint:OnDelete:CASCADE;" json:"-"`

	Front      string            `gorm:"type:text;not null" json:"front"`
	Back       string            `gorm:"type:text;not null" json:"back"`
	Hint       string            `gorm:"type:text" json:"hint"`
	Category   FlashcardCategory `gorm:"size:20;not null;default:'GENERAL'" json:"category"`
	OrderIndex int               `gorm:"default:0" json:"order_index"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

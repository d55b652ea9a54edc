package models

import (
	"time"

	"github.com/google/uuid"
)

// ProcessingStatus là trạng thái xử lý của tài liệu trong pipeline
type ProcessingStatus string

const (
	StatusPending              ProcessingStatus = "PENDING"
	StatusExtractingText       ProcessingStatus = "EXTRACTING_TEXT"
	StatusGeneratingSummary    ProcessingStatus = "GENERATING_SUMMARY"
	StatusGeneratingQuiz       ProcessingStatus = "GENERATING_QUIZ"
	StatusGeneratingFlashcards ProcessingStatus = "GENERATING_FLASHCARDS"
	StatusGeneratingMindmap    ProcessingStatus = "GENERATING_MINDMAP"
	StatusCompleted            ProcessingStatus = "COMPLETED"
	StatusFailed               ProcessingStatus = "FAILED"
)

// StageProgress ánh xạ trạng thái sang % tiến trình cố định
var StageProgress = map[ProcessingStatus]int{
	StatusPending:              0,
	StatusExtractingText:       10,
	StatusGeneratingSummary:    30,
	StatusGeneratingQuiz:       50,
	StatusGeneratingFlashcards: 70,
	StatusGeneratingMindmap:    90,
	StatusCompleted:            100,
}

// IsTerminal cho biết trạng thái đã kết thúc hay chưa
func (s ProcessingStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

type Document struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null" json:"user_id"`
	User   User      `gorm:"constraint:OnDelete:CASCADE;" json:"user"`

	Title        string `gorm:"size:255;not null" json:"title"`
	Description  string `gorm:"size:2000" json:"description"`
	OriginalName string `gorm:"size:255;not null" json:"original_name"`
	StoredName   string `gorm:"size:255;not null" json:"stored_name"`
	FilePath     string `gorm:"type:text;not null" json:"file_path"`
	FileType     string `gorm:"size:50" json:"file_type"`
	FileSize     int64  `json:"file_size"` // bytes

	// Nội dung do AI sinh ra
	ExtractedText string `gorm:"type:text" json:"extracted_text"`
	Summary       string `gorm:"type:text" json:"summary"`
	KeyPoints     string `gorm:"type:text" json:"key_points"`

	// Trạng thái pipeline
	Status       ProcessingStatus `gorm:"size:30;not null;default:'PENDING'" json:"status"`
	Progress     int              `gorm:"default:0" json:"progress"` // 0-100
	ProcessError string           `gorm:"size:1000" json:"process_error"`

	MindmapURL    string `gorm:"type:text" json:"mindmap_url"`
	SummaryPdfURL string `gorm:"type:text" json:"summary_pdf_url"`

	Tags         string     `gorm:"size:500" json:"tags"` // phân cách bằng dấu phẩy
	ViewCount    int        `gorm:"default:0" json:"view_count"`
	LastAccessed *time.Time `json:"last_accessed"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	Quizzes      []Quiz        `json:"quizzes"`
	Flashcards   []Flashcard   `json:"flashcards"`
	ChatMessages []ChatMessage `json:"chat_messages"`
}

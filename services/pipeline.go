package services

import (
	"context"
	"fmt"
	"log"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/vnkhanh/ai-study-backend/models"
	"gorm.io/gorm"
)

const (
	QuizQuestionCount = 10 // số câu hỏi mỗi lần sinh quiz
	FlashcardCount    = 15 // số flashcard mỗi lần sinh

	DefaultStageTimeout = 2 * time.Minute
	defaultQueueSize    = 256
)

// StudyEngine điều phối pipeline xử lý tài liệu:
// trích xuất văn bản → tóm tắt → quiz → flashcards → mindmap (+ PDF tóm tắt).
// Mỗi tài liệu chạy tuần tự qua các giai đoạn trên một worker của pool,
// trạng thái và tiến trình được ghi xuống DB sau từng bước.
type StudyEngine struct {
	DB      *gorm.DB
	AI      AIGenerator
	Storage FileStorage

	// Deadline cho mỗi lời gọi generator, hết hạn thì tài liệu chuyển FAILED
	StageTimeout time.Duration

	jobs chan uuid.UUID
}

func NewStudyEngine(db *gorm.DB, ai AIGenerator, storage FileStorage) *StudyEngine {
	return &StudyEngine{
		DB:           db,
		AI:           ai,
		Storage:      storage,
		StageTimeout: DefaultStageTimeout,
		jobs:         make(chan uuid.UUID, defaultQueueSize),
	}
}

// SubmitDocument nhận bytes của file, lưu file + tạo bản ghi PENDING rồi đưa
// vào hàng đợi xử lý. Hàm trả về ngay khi bản ghi tồn tại, không chờ pipeline.
func (s *StudyEngine) SubmitDocument(data []byte, originalName, title, description string, userID uuid.UUID) (*models.Document, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: file rỗng", ErrInvalidInput)
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	fileType := strings.TrimPrefix(ext, ".")

	docID := uuid.New()
	base := strings.TrimSuffix(originalName, filepath.Ext(originalName))
	storedName := fmt.Sprintf("%s-%s%s", docID.String(), slug.Make(base), ext)

	contentType := mime.TypeByExtension(ext)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	publicURL, err := s.Storage.Upload(data, "documents/"+storedName, contentType)
	if err != nil {
		return nil, fmt.Errorf("không lưu được file: %w", err)
	}

	if strings.TrimSpace(title) == "" {
		title = originalName
	}

	doc := models.Document{
		ID:           docID,
		UserID:       userID,
		Title:        title,
		Description:  description,
		OriginalName: originalName,
		StoredName:   storedName,
		FilePath:     publicURL,
		FileType:     fileType,
		FileSize:     int64(len(data)),
		Status:       models.StatusPending,
		Progress:     0,
	}
	if err := s.DB.Create(&doc).Error; err != nil {
		return nil, fmt.Errorf("không lưu được tài liệu: %w", err)
	}

	// Không block caller khi hàng đợi đầy: gỡ bản ghi và file vừa tạo,
	// báo caller thử lại sau
	select {
	case s.jobs <- doc.ID:
	default:
		if err := s.DB.Delete(&models.Document{}, "id = ?", doc.ID).Error; err != nil {
			log.Printf("không gỡ được bản ghi %s sau khi hàng đợi đầy: %v", doc.ID, err)
		}
		if err := s.Storage.Delete(publicURL); err != nil {
			log.Printf("không xóa được file %s sau khi hàng đợi đầy: %v", publicURL, err)
		}
		return nil, fmt.Errorf("%w: hàng đợi xử lý đã đầy", ErrBusy)
	}
	return &doc, nil
}

// Process chạy toàn bộ pipeline cho một tài liệu. Lỗi ở bất kỳ giai đoạn nào
// đều ghi FAILED + thông báo lỗi, giữ nguyên progress của giai đoạn trước.
func (s *StudyEngine) Process(docID uuid.UUID) {
	var doc models.Document
	if err := s.DB.First(&doc, "id = ?", docID).Error; err != nil {
		log.Printf("pipeline: không tìm thấy tài liệu %s: %v", docID, err)
		return
	}

	// Giai đoạn 1: trích xuất văn bản
	if err := s.setStage(doc.ID, models.StatusExtractingText); err != nil {
		log.Printf("pipeline: không cập nhật được trạng thái %s: %v", docID, err)
		return
	}
	data, err := s.Storage.Download(doc.FilePath)
	if err != nil {
		s.fail(doc.ID, fmt.Errorf("không đọc được file: %w", err))
		return
	}
	text, err := ExtractText(data, doc.FileType)
	if err != nil {
		s.fail(doc.ID, err)
		return
	}
	if err := s.DB.Model(&models.Document{}).Where("id = ?", doc.ID).
		Update("extracted_text", text).Error; err != nil {
		s.fail(doc.ID, err)
		return
	}
	doc.ExtractedText = text

	// Giai đoạn 2: tóm tắt + ý chính
	if err := s.setStage(doc.ID, models.StatusGeneratingSummary); err != nil {
		s.fail(doc.ID, err)
		return
	}
	summary, err := s.withStageTimeout(func(ctx context.Context) (string, error) {
		return s.AI.Summarize(ctx, text)
	})
	if err != nil {
		s.fail(doc.ID, err)
		return
	}
	keyPoints, err := s.withStageTimeout(func(ctx context.Context) (string, error) {
		return s.AI.KeyPoints(ctx, text)
	})
	if err != nil {
		s.fail(doc.ID, err)
		return
	}
	if err := s.DB.Model(&models.Document{}).Where("id = ?", doc.ID).
		Updates(map[string]interface{}{"summary": summary, "key_points": keyPoints}).Error; err != nil {
		s.fail(doc.ID, err)
		return
	}
	doc.Summary = summary
	doc.KeyPoints = keyPoints

	// Giai đoạn 3: sinh quiz
	if err := s.setStage(doc.ID, models.StatusGeneratingQuiz); err != nil {
		s.fail(doc.ID, err)
		return
	}
	ctx, cancel := s.stageContext()
	questions, err := s.AI.GenerateQuiz(ctx, text, QuizQuestionCount)
	cancel()
	if err != nil {
		s.fail(doc.ID, err)
		return
	}
	if err := s.DB.Transaction(func(tx *gorm.DB) error {
		return createQuiz(tx, &doc, questions)
	}); err != nil {
		s.fail(doc.ID, err)
		return
	}

	// Giai đoạn 4: sinh flashcards
	if err := s.setStage(doc.ID, models.StatusGeneratingFlashcards); err != nil {
		s.fail(doc.ID, err)
		return
	}
	ctx, cancel = s.stageContext()
	cards, err := s.AI.GenerateFlashcards(ctx, text, FlashcardCount)
	cancel()
	if err != nil {
		s.fail(doc.ID, err)
		return
	}
	if err := s.DB.Transaction(func(tx *gorm.DB) error {
		return createFlashcards(tx, doc.ID, cards)
	}); err != nil {
		s.fail(doc.ID, err)
		return
	}

	// Giai đoạn 5: mindmap + PDF tóm tắt (PDF không có trạng thái riêng,
	// lỗi ở bước PDF vẫn chuyển FAILED chứ không kẹt ở GENERATING_MINDMAP)
	if err := s.setStage(doc.ID, models.StatusGeneratingMindmap); err != nil {
		s.fail(doc.ID, err)
		return
	}
	mindmapJSON, err := s.withStageTimeout(func(ctx context.Context) (string, error) {
		return s.AI.GenerateMindmap(ctx, doc.Title, text)
	})
	if err != nil {
		s.fail(doc.ID, err)
		return
	}
	mindmapURL, err := s.Storage.Upload([]byte(mindmapJSON),
		fmt.Sprintf("mindmaps/%s.json", doc.ID), "application/json")
	if err != nil {
		s.fail(doc.ID, fmt.Errorf("không lưu được mindmap: %w", err))
		return
	}
	if err := s.DB.Model(&models.Document{}).Where("id = ?", doc.ID).
		Update("mindmap_url", mindmapURL).Error; err != nil {
		s.fail(doc.ID, err)
		return
	}

	pdfBytes, err := RenderSummaryPDF(&doc)
	if err != nil {
		s.fail(doc.ID, fmt.Errorf("không tạo được PDF tóm tắt: %w", err))
		return
	}
	pdfURL, err := s.Storage.Upload(pdfBytes,
		fmt.Sprintf("summaries/summary_%s.pdf", doc.ID), "application/pdf")
	if err != nil {
		s.fail(doc.ID, fmt.Errorf("không lưu được PDF tóm tắt: %w", err))
		return
	}
	if err := s.DB.Model(&models.Document{}).Where("id = ?", doc.ID).
		Update("summary_pdf_url", pdfURL).Error; err != nil {
		s.fail(doc.ID, err)
		return
	}

	// Hoàn thành
	if err := s.setStage(doc.ID, models.StatusCompleted); err != nil {
		log.Printf("pipeline: không ghi được trạng thái hoàn thành %s: %v", docID, err)
		return
	}
	log.Printf("pipeline: xử lý xong tài liệu %s", doc.ID)
}

// setStage ghi trạng thái + % tiến trình cố định của giai đoạn
func (s *StudyEngine) setStage(docID uuid.UUID, status models.ProcessingStatus) error {
	return s.DB.Model(&models.Document{}).Where("id = ?", docID).
		Updates(map[string]interface{}{
			"status":   status,
			"progress": models.StageProgress[status],
		}).Error
}

// fail chuyển tài liệu sang FAILED, giữ nguyên progress của giai đoạn trước
func (s *StudyEngine) fail(docID uuid.UUID, cause error) {
	msg := cause.Error()
	// Cắt theo rune để không vỡ ký tự UTF-8 giữa chừng
	if runes := []rune(msg); len(runes) > 1000 {
		msg = string(runes[:1000])
	}
	log.Printf("pipeline: tài liệu %s thất bại: %v", docID, cause)
	if err := s.DB.Model(&models.Document{}).Where("id = ?", docID).
		Updates(map[string]interface{}{
			"status":        models.StatusFailed,
			"process_error": msg,
		}).Error; err != nil {
		log.Printf("pipeline: không ghi được trạng thái FAILED cho %s: %v", docID, err)
	}
}

func (s *StudyEngine) stageContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), s.StageTimeout)
}

func (s *StudyEngine) withStageTimeout(fn func(ctx context.Context) (string, error)) (string, error) {
	ctx, cancel := s.stageContext()
	defer cancel()
	return fn(ctx)
}

// createQuiz ghi quiz + toàn bộ câu hỏi trong một transaction, câu hỏi đánh
// số thứ tự từ 1. Lỗi giữa chừng thì không còn lại bản ghi nào.
func createQuiz(tx *gorm.DB, doc *models.Document, questions []models.QuizQuestion) error {
	quiz := models.Quiz{
		ID:             uuid.New(),
		DocumentID:     doc.ID,
		Title:          "Trắc nghiệm: " + doc.Title,
		Description:    "Bộ câu hỏi trắc nghiệm sinh tự động từ nội dung tài liệu",
		Difficulty:     models.DifficultyMedium,
		TotalQuestions: len(questions),
	}
	if err := tx.Create(&quiz).Error; err != nil {
		return err
	}

	for i := range questions {
		questions[i].ID = uuid.New()
		questions[i].QuizID = quiz.ID
		questions[i].OrderIndex = i + 1
		if err := tx.Create(&questions[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

// createFlashcards ghi toàn bộ flashcard trong một transaction, đánh số từ 1
func createFlashcards(tx *gorm.DB, docID uuid.UUID, cards []models.Flashcard) error {
	for i := range cards {
		cards[i].ID = uuid.New()
		cards[i].DocumentID = docID
		cards[i].OrderIndex = i + 1
		if err := tx.Create(&cards[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

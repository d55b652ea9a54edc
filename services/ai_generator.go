package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/vnkhanh/ai-study-backend/models"
)

// AIGenerator gom các lời gọi sinh nội dung bằng AI mà pipeline cần.
// Mỗi lời gọi hoặc trả về kết quả đầy đủ hoặc lỗi, không có kết quả dở dang.
type AIGenerator interface {
	Summarize(ctx context.Context, text string) (string, error)
	KeyPoints(ctx context.Context, text string) (string, error)
	GenerateQuiz(ctx context.Context, text string, count int) ([]models.QuizQuestion, error)
	GenerateFlashcards(ctx context.Context, text string, count int) ([]models.Flashcard, error)
	GenerateMindmap(ctx context.Context, title, text string) (string, error)
	ChatReply(ctx context.Context, doc *models.Document, history []models.ChatMessage, message string) (string, error)
}

// GeminiAI sinh toàn bộ nội dung học tập qua Gemini
type GeminiAI struct{}

func NewGeminiAI() GeminiAI { return GeminiAI{} }

// giới hạn văn bản đưa vào prompt để tránh vượt token limit
const maxPromptChars = 12000

func truncateText(text string, maxLen int) string {
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	return string(runes[:maxLen]) + "..."
}

// Làm sạch output JSON của Gemini (loại bỏ markdown fence)
func cleanGeminiJSON(raw string) string {
	clean := strings.TrimSpace(raw)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimPrefix(clean, "```")
	clean = strings.TrimSuffix(clean, "```")
	return strings.TrimSpace(clean)
}

func (GeminiAI) Summarize(ctx context.Context, text string) (string, error) {
	prompt := `Bạn là công cụ tóm tắt tài liệu học tập, hãy tóm tắt nội dung sau thành một đoạn văn rõ ràng và ngắn gọn.
	Yêu cầu:
	1. Không lược bỏ nội dung chính, không tự ý thêm thông tin không có trong văn bản
	2. Ngôn ngữ tự nhiên, gần gũi, phù hợp cho sinh viên ôn tập
	3. KHÔNG sử dụng markdown, KHÔNG in đậm, KHÔNG in nghiêng, chỉ trả về văn bản thuần tuý
	4. Không bình luận, không giải thích, chỉ trả về nội dung tóm tắt.
	Văn bản cần tóm tắt:`

	return GeminiGenerateText(ctx, prompt+"\n\n"+truncateText(text, maxPromptChars))
}

func (GeminiAI) KeyPoints(ctx context.Context, text string) (string, error) {
	prompt := `Bạn là trợ lý học tập. Hãy rút ra các ý chính của văn bản sau dưới dạng danh sách gạch đầu dòng.
	Yêu cầu:
	1. Mỗi dòng một ý, bắt đầu bằng "• "
	2. Tối đa 8 ý, mỗi ý ngắn gọn một câu
	3. KHÔNG sử dụng markdown, không bình luận gì thêm.
	Văn bản:`

	return GeminiGenerateText(ctx, prompt+"\n\n"+truncateText(text, maxPromptChars))
}

func (GeminiAI) GenerateQuiz(ctx context.Context, text string, count int) ([]models.QuizQuestion, error) {
	prompt := fmt.Sprintf(`Bạn là AI tạo câu hỏi trắc nghiệm giáo dục.
Hãy tạo đúng %d câu hỏi trắc nghiệm từ tài liệu sau.

Yêu cầu:
- Mỗi câu hỏi có 4 lựa chọn (A, B, C, D), ngẫu nhiên vị trí đáp án đúng.
- Trường "correct_answer" chỉ nhận một trong các giá trị "A", "B", "C", "D".
- Mỗi câu có trường "explanation" giải thích ngắn gọn vì sao đáp án đúng.

Trả về JSON hợp lệ đúng cấu trúc:
[
  {
    "question": "Câu hỏi là gì?",
    "option_a": "Phương án A",
    "option_b": "Phương án B",
    "option_c": "Phương án C",
    "option_d": "Phương án D",
    "correct_answer": "A",
    "explanation": "Giải thích ngắn gọn."
  }
]

Chỉ trả về JSON hợp lệ, không thêm bất kỳ văn bản nào khác.

Tài liệu:
%s`, count, truncateText(text, maxPromptChars))

	raw, err := GeminiGenerateText(ctx, prompt)
	if err != nil {
		return nil, err
	}

	type qa struct {
		Question      string `json:"question"`
		OptionA       string `json:"option_a"`
		OptionB       string `json:"option_b"`
		OptionC       string `json:"option_c"`
		OptionD       string `json:"option_d"`
		CorrectAnswer string `json:"correct_answer"`
		Explanation   string `json:"explanation"`
	}

	var arr []qa
	if err := json.Unmarshal([]byte(cleanGeminiJSON(raw)), &arr); err != nil {
		return nil, fmt.Errorf("parse JSON quiz lỗi: %w", err)
	}
	if len(arr) == 0 {
		return nil, fmt.Errorf("gemini không tạo được câu hỏi nào")
	}

	questions := make([]models.QuizQuestion, 0, len(arr))
	for i, q := range arr {
		answer := strings.ToUpper(strings.TrimSpace(q.CorrectAnswer))
		// Mọi câu hỏi phải đầy đủ, có câu thiếu coi như cả lô thất bại
		if q.Question == "" || q.OptionA == "" || q.OptionB == "" || q.OptionC == "" || q.OptionD == "" {
			return nil, fmt.Errorf("câu hỏi số %d thiếu nội dung", i+1)
		}
		if answer != "A" && answer != "B" && answer != "C" && answer != "D" {
			return nil, fmt.Errorf("câu hỏi số %d có đáp án không hợp lệ: %q", i+1, q.CorrectAnswer)
		}
		questions = append(questions, models.QuizQuestion{
			Question:      q.Question,
			OptionA:       q.OptionA,
			OptionB:       q.OptionB,
			OptionC:       q.OptionC,
			OptionD:       q.OptionD,
			CorrectAnswer: answer,
			Explanation:   q.Explanation,
		})
		if len(questions) >= count {
			break
		}
	}

	return questions, nil
}

func (GeminiAI) GenerateFlashcards(ctx context.Context, text string, count int) ([]models.Flashcard, error) {
	prompt := fmt.Sprintf(`Bạn là AI hỗ trợ học tập.
Từ tài liệu sau, hãy tạo ra đúng %d flashcard.
Mỗi flashcard gồm:
- "front": câu hỏi, thuật ngữ hoặc khái niệm
- "back": câu trả lời hoặc giải thích ngắn gọn
- "hint": gợi ý ngắn (có thể để trống)
- "category": một trong GENERAL, DEFINITION, FORMULA, CONCEPT, FACT, DATE

Trả kết quả đúng định dạng JSON như ví dụ:
[
  {"front": "Câu hỏi 1?", "back": "Trả lời 1", "hint": "Gợi ý", "category": "DEFINITION"}
]

Chỉ trả về JSON hợp lệ, không thêm bất kỳ văn bản nào khác.

Tài liệu:
%s`, count, truncateText(text, maxPromptChars))

	raw, err := GeminiGenerateText(ctx, prompt)
	if err != nil {
		return nil, err
	}

	type card struct {
		Front    string `json:"front"`
		Back     string `json:"back"`
		Hint     string `json:"hint"`
		Category string `json:"category"`
	}

	var arr []card
	if err := json.Unmarshal([]byte(cleanGeminiJSON(raw)), &arr); err != nil {
		return nil, fmt.Errorf("parse JSON flashcard lỗi: %w", err)
	}
	if len(arr) == 0 {
		return nil, fmt.Errorf("gemini không tạo được flashcard nào")
	}

	cards := make([]models.Flashcard, 0, len(arr))
	for i, fc := range arr {
		if fc.Front == "" || fc.Back == "" {
			return nil, fmt.Errorf("flashcard số %d thiếu nội dung", i+1)
		}
		category := models.FlashcardCategory(strings.ToUpper(strings.TrimSpace(fc.Category)))
		if !models.ValidFlashcardCategory(category) {
			category = models.CategoryGeneral
		}
		cards = append(cards, models.Flashcard{
			Front:    fc.Front,
			Back:     fc.Back,
			Hint:     fc.Hint,
			Category: category,
		})
		if len(cards) >= count {
			break
		}
	}

	return cards, nil
}

func (GeminiAI) GenerateMindmap(ctx context.Context, title, text string) (string, error) {
	prompt := fmt.Sprintf(`Bạn là AI tạo sơ đồ tư duy cho tài liệu học tập "%s".
Hãy phân tích tài liệu và trả về cấu trúc sơ đồ tư duy dưới dạng JSON:
{
  "title": "Chủ đề chính",
  "nodes": [
    {"id": 1, "text": "Chủ đề chính", "parent_id": 0},
    {"id": 2, "text": "Nhánh 1", "parent_id": 1}
  ]
}
- "parent_id" bằng 0 nghĩa là nút gốc, chỉ có duy nhất một nút gốc.
- Tối đa 20 nút.
Chỉ trả về JSON hợp lệ, không thêm bất kỳ văn bản nào khác.

Tài liệu:
%s`, title, truncateText(text, maxPromptChars))

	raw, err := GeminiGenerateText(ctx, prompt)
	if err != nil {
		return "", err
	}

	clean := cleanGeminiJSON(raw)
	if !json.Valid([]byte(clean)) {
		return "", fmt.Errorf("gemini trả về mindmap không phải JSON hợp lệ")
	}
	return clean, nil
}

func (GeminiAI) ChatReply(ctx context.Context, doc *models.Document, history []models.ChatMessage, message string) (string, error) {
	var conversation strings.Builder
	for _, msg := range history {
		conversation.WriteString(string(msg.Role))
		conversation.WriteString(": ")
		conversation.WriteString(msg.Content)
		conversation.WriteString("\n")
	}

	prompt := fmt.Sprintf(`Bạn là trợ lý học tập AI, trả lời câu hỏi của sinh viên dựa trên ngữ cảnh tài liệu.

Tài liệu: %s
Tóm tắt: %s
Ý chính: %s

Lịch sử hội thoại:
%s
Câu hỏi của sinh viên: %s

Yêu cầu: trả lời ngắn gọn, bám sát nội dung tài liệu, KHÔNG sử dụng markdown.`,
		doc.Title, doc.Summary, doc.KeyPoints, conversation.String(), message)

	return GeminiGenerateText(ctx, prompt)
}

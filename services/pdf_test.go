package services

import (
	"bytes"
	"testing"

	"github.com/vnkhanh/ai-study-backend/models"
)

func TestRenderSummaryPDF(t *testing.T) {
	doc := &models.Document{
		Title:     "Bài giảng mẫu",
		Summary:   "Đây là phần tóm tắt nội dung bài giảng.",
		KeyPoints: "• ý thứ nhất\n• ý thứ hai\n\n• ý thứ ba",
	}

	data, err := RenderSummaryPDF(doc)
	if err != nil {
		t.Fatalf("RenderSummaryPDF lỗi: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatal("output không phải file PDF")
	}
}

func TestRenderSummaryPDFEmptySections(t *testing.T) {
	// Tài liệu chưa có tóm tắt vẫn phải render được
	data, err := RenderSummaryPDF(&models.Document{Title: "Trống"})
	if err != nil {
		t.Fatalf("RenderSummaryPDF lỗi: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("output rỗng")
	}
}

package services

import (
	"archive/zip"
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestExtractTextFromTxt(t *testing.T) {
	got, err := ExtractText([]byte("xin chào"), "txt")
	if err != nil {
		t.Fatalf("ExtractText lỗi: %v", err)
	}
	if got != "xin chào" {
		t.Fatalf("muốn %q, có %q", "xin chào", got)
	}
}

func TestExtractTextUnsupported(t *testing.T) {
	_, err := ExtractText([]byte("x"), "png")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("muốn ErrUnsupportedFormat, có %v", err)
	}
}

func TestExtractTextLegacyDocUnsupported(t *testing.T) {
	// .doc nhị phân không phải zip, phải báo không hỗ trợ thay vì lỗi đọc zip
	_, err := ExtractText([]byte{0xd0, 0xcf, 0x11, 0xe0}, "doc")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("muốn ErrUnsupportedFormat, có %v", err)
	}
}

// buildDocx dựng file docx tối giản (zip chứa word/document.xml)
func buildDocx(t *testing.T, body string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, err := w.Create("word/document.xml")
	if err != nil {
		t.Fatalf("tạo zip lỗi: %v", err)
	}
	if _, err := f.Write([]byte(body)); err != nil {
		t.Fatalf("ghi zip lỗi: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("đóng zip lỗi: %v", err)
	}
	return buf.Bytes()
}

func TestExtractTextFromDOCX(t *testing.T) {
	docx := buildDocx(t, `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Chương 1.</w:t></w:r></w:p>
    <w:p><w:r><w:t>Nội dung chính.</w:t></w:r></w:p>
  </w:body>
</w:document>`)

	got, err := ExtractText(docx, "docx")
	if err != nil {
		t.Fatalf("ExtractText lỗi: %v", err)
	}
	if !strings.Contains(got, "Chương 1.") || !strings.Contains(got, "Nội dung chính.") {
		t.Fatalf("thiếu nội dung: %q", got)
	}
}

func TestExtractTextFromDOCXMissingDocumentXML(t *testing.T) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, _ := w.Create("word/khac.xml")
	f.Write([]byte("<x/>"))
	w.Close()

	if _, err := ExtractText(buf.Bytes(), "docx"); err == nil {
		t.Fatal("muốn lỗi khi thiếu word/document.xml")
	}
}

func TestExtractTextFromDOCXCorrupt(t *testing.T) {
	if _, err := ExtractText([]byte("không phải zip"), "docx"); err == nil {
		t.Fatal("muốn lỗi khi file docx hỏng")
	}
}

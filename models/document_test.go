package models

import "testing"

func TestIsTerminal(t *testing.T) {
	cases := map[ProcessingStatus]bool{
		StatusPending:              false,
		StatusExtractingText:       false,
		StatusGeneratingSummary:    false,
		StatusGeneratingQuiz:       false,
		StatusGeneratingFlashcards: false,
		StatusGeneratingMindmap:    false,
		StatusCompleted:            true,
		StatusFailed:               true,
	}
	for status, want := range cases {
		if got := status.IsTerminal(); got != want {
			t.Errorf("%s.IsTerminal() = %v, muốn %v", status, got, want)
		}
	}
}

func TestStageProgressMonotonic(t *testing.T) {
	order := []ProcessingStatus{
		StatusPending,
		StatusExtractingText,
		StatusGeneratingSummary,
		StatusGeneratingQuiz,
		StatusGeneratingFlashcards,
		StatusGeneratingMindmap,
		StatusCompleted,
	}
	prev := -1
	for _, status := range order {
		p, ok := StageProgress[status]
		if !ok {
			t.Fatalf("thiếu progress cho %s", status)
		}
		if p <= prev {
			t.Fatalf("progress của %s (%d) không tăng so với %d", status, p, prev)
		}
		prev = p
	}
	// FAILED không có progress cố định, giữ giá trị của giai đoạn trước
	if _, ok := StageProgress[StatusFailed]; ok {
		t.Fatal("FAILED không được có progress cố định")
	}
}

func TestValidFlashcardCategory(t *testing.T) {
	for _, c := range []FlashcardCategory{
		CategoryGeneral, CategoryDefinition, CategoryFormula,
		CategoryConcept, CategoryFact, CategoryDate,
	} {
		if !ValidFlashcardCategory(c) {
			t.Errorf("%s phải hợp lệ", c)
		}
	}
	if ValidFlashcardCategory("KHAC") {
		t.Error("category lạ không được chấp nhận")
	}
}

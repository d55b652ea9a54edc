package services

import (
	"strings"
	"testing"
)

func TestCleanGeminiJSON(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"```json\n[{\"a\":1}]\n```", `[{"a":1}]`},
		{"```\n{}\n```", "{}"},
		{"  {\"b\":2}  ", `{"b":2}`},
	}
	for _, tc := range cases {
		if got := cleanGeminiJSON(tc.in); got != tc.want {
			t.Errorf("cleanGeminiJSON(%q) = %q, muốn %q", tc.in, got, tc.want)
		}
	}
}

func TestTruncateText(t *testing.T) {
	if got := truncateText("ngắn", 100); got != "ngắn" {
		t.Fatalf("văn bản ngắn không được cắt: %q", got)
	}

	long := strings.Repeat("ớ", 50)
	got := truncateText(long, 10)
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("văn bản cắt phải kết thúc bằng ...: %q", got)
	}
	// Cắt theo rune, không vỡ ký tự UTF-8
	if strings.Contains(got, "�") {
		t.Fatalf("ký tự UTF-8 bị vỡ: %q", got)
	}
	if len([]rune(got)) != 13 {
		t.Fatalf("muốn 10 rune + ..., có %d rune", len([]rune(got)))
	}
}

package utils

import (
	"testing"

	"github.com/google/uuid"
)

func TestGenerateAndVerifyToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	userID := uuid.New().String()
	token, err := GenerateToken(userID, "student")
	if err != nil {
		t.Fatalf("GenerateToken lỗi: %v", err)
	}

	claims, err := VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken lỗi: %v", err)
	}
	if claims.UserID != userID || claims.Role != "student" {
		t.Fatalf("claims sai: %+v", claims)
	}
}

func TestVerifyTokenInvalid(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	if _, err := VerifyToken("không-phải-token"); err == nil {
		t.Fatal("muốn lỗi với token không hợp lệ")
	}
}

func TestGenerateTokenMissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	if _, err := GenerateToken(uuid.New().String(), "student"); err == nil {
		t.Fatal("muốn lỗi khi thiếu JWT_SECRET")
	}
}

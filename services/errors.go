package services

import "errors"

// Các lỗi chuẩn của service, controller dùng errors.Is để map sang HTTP status
var (
	ErrInvalidInput      = errors.New("dữ liệu đầu vào không hợp lệ")
	ErrNotFound          = errors.New("không tìm thấy tài nguyên")
	ErrAccessDenied      = errors.New("không có quyền truy cập tài nguyên này")
	ErrNotReady          = errors.New("tài liệu chưa có nội dung trích xuất")
	ErrUnsupportedFormat = errors.New("định dạng file không được hỗ trợ")
	ErrBusy              = errors.New("hệ thống đang quá tải, thử lại sau")
)

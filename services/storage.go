package services

import "github.com/vnkhanh/ai-study-backend/utils"

// FileStorage trừu tượng hoá nơi lưu file: ghi bytes trả về URL, đọc và xóa theo URL
type FileStorage interface {
	Upload(data []byte, objectPath string, contentType string) (string, error)
	Download(publicURL string) ([]byte, error)
	Delete(publicURL string) error
}

// SupabaseStorage lưu file lên Supabase Storage (bucket "uploads")
type SupabaseStorage struct{}

func (SupabaseStorage) Upload(data []byte, objectPath string, contentType string) (string, error) {
	return utils.UploadBytesToSupabase(data, objectPath, contentType)
}

func (SupabaseStorage) Download(publicURL string) ([]byte, error) {
	return utils.DownloadFileFromSupabase(publicURL)
}

func (SupabaseStorage) Delete(publicURL string) error {
	return utils.DeleteFileFromSupabase(publicURL)
}

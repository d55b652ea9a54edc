package services

import "log"

// StartWorkers khởi chạy n goroutine lấy tài liệu từ hàng đợi và xử lý.
// Gọi một lần lúc khởi động server.
func (s *StudyEngine) StartWorkers(n int) {
	if n <= 0 {
		n = 1
	}
	for i := 0; i < n; i++ {
		go s.workerLoop(i)
	}
	log.Printf("pipeline: đã khởi chạy %d worker", n)
}

func (s *StudyEngine) workerLoop(id int) {
	for docID := range s.jobs {
		log.Printf("worker %d: bắt đầu xử lý tài liệu %s", id, docID)
		s.Process(docID)
	}
}

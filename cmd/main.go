package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/vnkhanh/ai-study-backend/config"
	"github.com/vnkhanh/ai-study-backend/controllers"
	"github.com/vnkhanh/ai-study-backend/routes"
	"github.com/vnkhanh/ai-study-backend/services"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("Không tìm thấy file .env")
	}

	config.InitDB()

	// Khởi tạo engine xử lý tài liệu + worker pool
	engine := services.NewStudyEngine(config.DB, services.NewGeminiAI(), services.SupabaseStorage{})
	if v := os.Getenv("STAGE_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			engine.StageTimeout = d
		} else {
			log.Printf("STAGE_TIMEOUT không hợp lệ (%q), dùng mặc định", v)
		}
	}
	workers := 4
	if v := os.Getenv("PIPELINE_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			workers = n
		}
	}
	engine.StartWorkers(workers)
	controllers.SetStudyEngine(engine)

	r := gin.Default()

	//Bật CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))
	// Gọi SetupRouter để đăng ký route
	r = routes.SetupRouter(r)

	// Route test server
	r.GET("/", func(c *gin.Context) {
		c.String(200, "AI Study server is running")
	})

	// Lấy PORT từ env
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080" // mặc định nếu không có PORT
	}

	log.Println("Server running at Port:" + port)
	r.Run(":" + port)
}

package server

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/moodeary/flow-backend/internal/controller"
	"github.com/moodeary/flow-backend/internal/middleware"

	// Load env
	_ "github.com/joho/godotenv/autoload"

	// Init swagger doc
	_ "github.com/moodeary/flow-backend/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes will register each http endpoint routes to bound Server instance
func (s *MyServer) RegisterRoutes() http.Handler {
	r := gin.Default()

	allowOrginsStr := os.Getenv("ALLOW_ORIGIN")
	allowOrgins := strings.Split(allowOrginsStr, ",")

	extensions := controller.NewExtensionController(s.Extensions)
	files := controller.NewFileController(s.Files)

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrgins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))
	r.Use(middleware.SafeHeader())

	r.GET("/", s.HelloWorldHandler)
	r.GET("/health", s.healthHandler)

	api := r.Group("/api")
	{
		extensionRoute := api.Group("/extensions")
		{
			extensionRoute.GET("fixed", extensions.GetFixedExtensions)
			extensionRoute.POST("fixed", extensions.AddFixedExtension)
			extensionRoute.PUT("fixed", extensions.UpdateFixedExtension)
			extensionRoute.PUT("fixed/:extension", extensions.UpdateFixedExtensionStatus)
			extensionRoute.DELETE("fixed/:id", extensions.DeleteFixedExtension)

			extensionRoute.GET("custom", extensions.GetCustomExtensions)
			extensionRoute.POST("custom", extensions.AddCustomExtension)
			extensionRoute.PUT("custom/:extension", extensions.UpdateCustomExtensionStatus)
			extensionRoute.DELETE("custom/:id", extensions.DeleteCustomExtension)
			extensionRoute.DELETE("custom/extension/:extension", extensions.DeleteCustomExtensionByValue)

			extensionRoute.GET("check/:extension", extensions.CheckExtension)
			extensionRoute.GET("type/:extension", extensions.GetExtensionType)
			extensionRoute.GET("blocked", extensions.GetBlockedExtensions)
			extensionRoute.POST("initialize", extensions.InitializeFixedExtensions)
		}

		fileRoute := api.Group("/files")
		{
			fileRoute.POST("upload", middleware.SizeLimit(10<<20), files.UploadFile)
			fileRoute.GET("", files.GetAllFiles)
			fileRoute.GET(":id", files.GetFileByID)
			fileRoute.GET(":id/download", files.DownloadFile)
			fileRoute.DELETE(":id", files.DeleteFile)
		}
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// HelloWorldHandler handle request by return message "Hello World"
func (s *MyServer) HelloWorldHandler(c *gin.Context) {
	resp := make(map[string]string)
	resp["message"] = "Hello World"

	c.JSON(http.StatusOK, resp)
}

func (s *MyServer) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, s.DB.Health())
}

package controller

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/moodeary/flow-backend/internal/database"
	"github.com/moodeary/flow-backend/internal/middleware"
	"github.com/moodeary/flow-backend/internal/service"
	"github.com/moodeary/flow-backend/internal/storage"
)

var testDB *database.DBinstanceStruct

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	teardown, db, err := database.GetTestDB()
	if err != nil {
		log.Printf("could not start postgres container: %v", err)
		os.Exit(1)
	}
	testDB = db

	code := m.Run()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if teardown != nil {
		_ = teardown(ctx)
	}
	os.Exit(code)
}

// newTestRouter wires the full extension and file route set over a fresh
// database state and a temporary upload directory.
func newTestRouter(t *testing.T) (*gin.Engine, *service.FileService) {
	t.Helper()
	require.NoError(t, database.ResetTestData(testDB))

	extensions := service.NewExtensionService(testDB)
	files := service.NewFileService(testDB, storage.NewFileSystemStore(t.TempDir()), extensions)

	ec := NewExtensionController(extensions)
	fc := NewFileController(files)

	r := gin.New()
	api := r.Group("/api")

	extensionRoute := api.Group("/extensions")
	extensionRoute.GET("fixed", ec.GetFixedExtensions)
	extensionRoute.POST("fixed", ec.AddFixedExtension)
	extensionRoute.PUT("fixed", ec.UpdateFixedExtension)
	extensionRoute.PUT("fixed/:extension", ec.UpdateFixedExtensionStatus)
	extensionRoute.DELETE("fixed/:id", ec.DeleteFixedExtension)
	extensionRoute.GET("custom", ec.GetCustomExtensions)
	extensionRoute.POST("custom", ec.AddCustomExtension)
	extensionRoute.PUT("custom/:extension", ec.UpdateCustomExtensionStatus)
	extensionRoute.DELETE("custom/:id", ec.DeleteCustomExtension)
	extensionRoute.DELETE("custom/extension/:extension", ec.DeleteCustomExtensionByValue)
	extensionRoute.GET("check/:extension", ec.CheckExtension)
	extensionRoute.GET("type/:extension", ec.GetExtensionType)
	extensionRoute.GET("blocked", ec.GetBlockedExtensions)
	extensionRoute.POST("initialize", ec.InitializeFixedExtensions)

	fileRoute := api.Group("/files")
	fileRoute.POST("upload", middleware.SizeLimit(10<<20), fc.UploadFile)
	fileRoute.GET("", fc.GetAllFiles)
	fileRoute.GET(":id", fc.GetFileByID)
	fileRoute.GET(":id/download", fc.DownloadFile)
	fileRoute.DELETE(":id", fc.DeleteFile)

	return r, files
}

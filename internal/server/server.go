// Package server contain implementation of go-gin-server and each route handlers
package server

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	// Load env file into environments.
	_ "github.com/joho/godotenv/autoload"

	"github.com/moodeary/flow-backend/internal/database"
	"github.com/moodeary/flow-backend/internal/service"
	"github.com/moodeary/flow-backend/internal/storage"
)

// DefaultUploadPath is used when UPLOAD_PATH is not configured.
const DefaultUploadPath = "/flow/data"

// MyServer holds the database handle and the services the routes dispatch to.
type MyServer struct {
	DB         *database.DBinstanceStruct
	Extensions *service.ExtensionService
	Files      *service.FileService
}

// NewServer connects the database, prepares the upload directory, seeds the
// default fixed extensions and returns a configured http.Server.
func NewServer() *http.Server {
	port, _ := strconv.Atoi(os.Getenv("PORT"))
	if port == 0 {
		port = 8080
	}

	db, err := database.GetMainDB()
	if err != nil {
		log.Fatalf("Database failed to initialized: %s", err)
	}

	uploadPath := os.Getenv("UPLOAD_PATH")
	if uploadPath == "" {
		uploadPath = DefaultUploadPath
	}

	extensions := service.NewExtensionService(db)
	files := service.NewFileService(db, storage.NewFileSystemStore(uploadPath), extensions)

	if err := files.InitializeUploadDirectory(); err != nil {
		log.Fatalf("Upload directory failed to initialized: %s", err)
	}
	log.Printf("업로드 디렉토리 초기화 완료: %s", uploadPath)

	if err := extensions.InitializeDefaults(); err != nil {
		log.Fatalf("Fixed extensions failed to initialized: %s", err)
	}

	s := &MyServer{
		DB:         db,
		Extensions: extensions,
		Files:      files,
	}

	// Declare Server config
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      s.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return server
}

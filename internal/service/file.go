package service

import (
	"bytes"
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/moodeary/flow-backend/internal/apperror"
	"github.com/moodeary/flow-backend/internal/database"
	"github.com/moodeary/flow-backend/internal/model"
	"github.com/moodeary/flow-backend/internal/storage"
)

// MaxFileSize is the upload cap in bytes.
const MaxFileSize = 10 * 1024 * 1024

// FileService validates uploads against the extension blocklist, writes the
// bytes through the storage backend and keeps metadata rows in the database.
type FileService struct {
	DB         *database.DBinstanceStruct
	Store      storage.Store
	Extensions *ExtensionService
}

// NewFileService creates a FileService over db, store and the blocklist.
func NewFileService(db *database.DBinstanceStruct, store storage.Store, extensions *ExtensionService) *FileService {
	return &FileService{
		DB:         db,
		Store:      store,
		Extensions: extensions,
	}
}

// Upload validates and stores one file. The disk write happens before the
// metadata insert; a failed insert removes the just-written file best-effort
// so the two stores do not diverge.
func (s *FileService) Upload(data []byte, originalFilename, contentType string, declaredSize int64) (*model.UploadedFile, error) {
	if len(data) == 0 {
		return nil, apperror.Validation("파일이 비어있습니다.")
	}

	if declaredSize > MaxFileSize {
		return nil, apperror.Validation("파일 크기는 10MB를 초과할 수 없습니다.")
	}

	if strings.TrimSpace(originalFilename) == "" {
		return nil, apperror.Validation("유효하지 않은 파일명입니다.")
	}

	extension := fileExtension(originalFilename)
	if extension == "" {
		return nil, apperror.Validation("확장자가 없는 파일은 업로드할 수 없습니다.")
	}

	blocked, err := s.Extensions.IsBlocked(extension)
	if err != nil {
		return nil, err
	}
	if blocked {
		return nil, apperror.Validation("차단된 확장자입니다: %s", extension)
	}

	storedFilename := generateStoredFilename(originalFilename)

	if err := s.Store.EnsureDir(); err != nil {
		log.Printf("파일 저장 실패: %v", err)
		return nil, apperror.Storage("파일 저장에 실패했습니다.")
	}

	if _, err := s.Store.Save(storedFilename, bytes.NewReader(data)); err != nil {
		log.Printf("파일 저장 실패: %v", err)
		return nil, apperror.Storage("파일 저장에 실패했습니다.")
	}

	file := &model.UploadedFile{
		OriginalFilename: originalFilename,
		StoredFilename:   storedFilename,
		FileSize:         declaredSize,
		ContentType:      contentType,
		FilePath:         s.Store.Path(storedFilename),
	}
	if err := s.DB.Create(file).Error; err != nil {
		// keep disk and database from diverging permanently
		_ = s.Store.Delete(storedFilename)
		log.Printf("파일 정보 저장 실패: %v", err)
		return nil, apperror.Storage("파일 정보 저장에 실패했습니다.")
	}

	return file, nil
}

// List returns every uploaded file, newest first.
func (s *FileService) List() ([]model.UploadedFile, error) {
	var files []model.UploadedFile
	if err := s.DB.Order("created_at DESC").Find(&files).Error; err != nil {
		return nil, err
	}
	return files, nil
}

// Get returns one file's metadata by identifier.
func (s *FileService) Get(id uint) (*model.UploadedFile, error) {
	var file model.UploadedFile
	if err := s.DB.First(&file, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("파일을 찾을 수 없습니다.")
		}
		return nil, err
	}
	return &file, nil
}

// Download returns the metadata and a reader over the stored bytes. A
// metadata row whose disk file is missing or unreadable yields not-found.
func (s *FileService) Download(id uint) (*model.UploadedFile, io.ReadCloser, error) {
	file, err := s.Get(id)
	if err != nil {
		return nil, nil, err
	}

	reader, _, err := s.Store.Open(file.StoredFilename)
	if err != nil {
		if os.IsNotExist(err) || os.IsPermission(err) {
			return nil, nil, apperror.NotFound("파일을 찾을 수 없거나 읽을 수 없습니다.")
		}
		log.Printf("파일 다운로드 실패: %v", err)
		return nil, nil, apperror.Storage("파일 다운로드에 실패했습니다.")
	}

	return file, reader, nil
}

// Delete removes the on-disk file first, then the metadata row. A disk
// deletion error keeps the row so the pointer to the file is not lost; a
// file that is already gone is fine.
func (s *FileService) Delete(id uint) error {
	file, err := s.Get(id)
	if err != nil {
		return err
	}

	if err := s.Store.Delete(file.StoredFilename); err != nil {
		log.Printf("파일 삭제 실패: %v", err)
		return apperror.Storage("파일 삭제에 실패했습니다.")
	}

	return s.DB.Delete(file).Error
}

// InitializeUploadDirectory idempotently creates the upload root.
func (s *FileService) InitializeUploadDirectory() error {
	if err := s.Store.EnsureDir(); err != nil {
		log.Printf("업로드 디렉토리 생성 실패: %v", err)
		return apperror.Storage("업로드 디렉토리 생성에 실패했습니다.")
	}
	return nil
}

// fileExtension extracts the lower-cased extension after the last dot, or ""
// when the filename has none.
func fileExtension(filename string) string {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 || idx == len(filename)-1 {
		return ""
	}
	return strings.ToLower(filename[idx+1:])
}

// generateStoredFilename builds "<uuid>_<sanitizedOriginal>"; the original's
// extension stays on the end of the stored name.
func generateStoredFilename(originalFilename string) string {
	clean := sanitizeFilename(originalFilename)

	ext := ""
	if idx := strings.LastIndex(clean, "."); idx > 0 {
		ext = clean[idx:]
		clean = clean[:idx]
	}

	return uuid.NewString() + "_" + clean + ext
}

// sanitizeFilename strips path components and traversal sequences from a
// client-supplied name.
func sanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(filepath.Clean(name))
	name = strings.ReplaceAll(name, "..", "")
	if name == "." || name == "/" || name == "" {
		return "file"
	}
	return name
}

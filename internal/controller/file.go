package controller

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/moodeary/flow-backend/internal/apperror"
	"github.com/moodeary/flow-backend/internal/response"
	"github.com/moodeary/flow-backend/internal/service"
)

// FileController handles file upload, download and metadata endpoints.
type FileController struct {
	Service *service.FileService
}

// NewFileController creates a new instance of FileController.
func NewFileController(svc *service.FileService) *FileController {
	return &FileController{Service: svc}
}

// UploadFile accepts a multipart upload in the "file" field.
// @Summary Upload a file
// @Description Files larger than 10 MB or with a blocked extension are rejected
// @Tags File
// @Accept mpfd
// @Produce json
// @Param file formData file true "File to upload"
// @Success 200 {object} response.Body "Uploaded file metadata"
// @Failure 400 {object} response.Body "Empty file, missing extension or blocked extension"
// @Failure 413 {object} response.Body "File size is larger than 10 MB"
// @Failure 500 {object} response.Body "Disk or database error"
// @Router /files/upload [post]
func (fc *FileController) UploadFile(c *gin.Context) {
	rawFile, err := c.FormFile("file")
	var maxBytesError *http.MaxBytesError
	if errors.As(err, &maxBytesError) {
		c.JSON(http.StatusRequestEntityTooLarge, response.Body{
			Success:   false,
			Message:   "파일 크기는 10MB를 초과할 수 없습니다.",
			ErrorCode: apperror.CodeValidation,
		})
		return
	}
	if err != nil {
		response.Error(c, apperror.Validation("파일이 비어있습니다."))
		return
	}

	f, err := rawFile.Open()
	if err != nil {
		response.Error(c, apperror.Storage("파일을 열 수 없습니다."))
		return
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("failed to close uploaded file: %v", err)
		}
	}()

	fileBytes, err := io.ReadAll(f)
	if err != nil {
		response.Error(c, apperror.Storage("파일을 읽을 수 없습니다."))
		return
	}

	contentType := rawFile.Header.Get("Content-Type")
	uploaded, err := fc.Service.Upload(fileBytes, rawFile.Filename, contentType, rawFile.Size)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OKMessage(c, uploaded, "파일이 성공적으로 업로드되었습니다.")
}

// GetAllFiles lists uploaded files, newest first.
// @Summary List uploaded files
// @Tags File
// @Produce json
// @Success 200 {object} response.Body "Uploaded files sorted by creation time descending"
// @Failure 500 {object} response.Body "Database error"
// @Router /files [get]
func (fc *FileController) GetAllFiles(c *gin.Context) {
	files, err := fc.Service.List()
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OKMessage(c, files, fmt.Sprintf("파일 %d개", len(files)))
}

// GetFileByID returns one file's metadata.
// @Summary Get file metadata
// @Tags File
// @Produce json
// @Param id path int true "File id"
// @Success 200 {object} response.Body "File metadata"
// @Failure 404 {object} response.Body "File not found"
// @Router /files/{id} [get]
func (fc *FileController) GetFileByID(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	file, err := fc.Service.Get(id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, file)
}

// DownloadFile streams the stored bytes as an attachment under the original
// filename.
// @Summary Download a file
// @Tags File
// @Produce octet-stream
// @Param id path int true "File id"
// @Success 200 {string} binary "File content"
// @Failure 404 {object} response.Body "File or its bytes not found"
// @Router /files/{id}/download [get]
func (fc *FileController) DownloadFile(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	file, reader, err := fc.Service.Download(id)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer func() {
		if err := reader.Close(); err != nil {
			log.Printf("failed to close download reader: %v", err)
		}
	}()

	// RFC 5987 filename* keeps non-ASCII original names intact
	encodedFilename := strings.ReplaceAll(url.QueryEscape(file.OriginalFilename), "+", "%20")
	c.Writer.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="%s"; filename*=UTF-8''%s`, file.OriginalFilename, encodedFilename))
	c.Writer.Header().Set("Content-Type", "application/octet-stream")
	c.Writer.Header().Set("Content-Length", fmt.Sprint(file.FileSize))

	if _, err := io.Copy(c.Writer, reader); err != nil {
		if !c.Writer.Written() {
			response.Error(c, apperror.Storage("파일 전송에 실패했습니다."))
		} else {
			c.Abort()
		}
	}
}

// DeleteFile removes a file's bytes and metadata.
// @Summary Delete a file
// @Tags File
// @Produce json
// @Param id path int true "File id"
// @Success 200 {object} response.Body "Deleted"
// @Failure 404 {object} response.Body "File not found"
// @Failure 500 {object} response.Body "Disk deletion error"
// @Router /files/{id} [delete]
func (fc *FileController) DeleteFile(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := fc.Service.Delete(id); err != nil {
		response.Error(c, err)
		return
	}
	response.OKMessage(c, nil, "파일이 삭제되었습니다.")
}

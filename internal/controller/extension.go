// Package controller contain HTTP handlers mapping requests to the service
// layer and serializing results into the response envelope.
package controller

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/moodeary/flow-backend/internal/apperror"
	"github.com/moodeary/flow-backend/internal/response"
	"github.com/moodeary/flow-backend/internal/service"
)

// FixedExtensionRequest is the body for adding or updating a fixed extension.
type FixedExtensionRequest struct {
	Extension   string `json:"extension" binding:"required"`
	IsBlocked   bool   `json:"is_blocked"`
	Description string `json:"description"`
}

// CustomExtensionRequest is the body for adding a custom extension.
type CustomExtensionRequest struct {
	Extension string `json:"extension" binding:"required"`
}

// ExtensionController handles blocklist endpoints.
type ExtensionController struct {
	Service *service.ExtensionService
}

// NewExtensionController creates a new instance of ExtensionController.
func NewExtensionController(svc *service.ExtensionService) *ExtensionController {
	return &ExtensionController{Service: svc}
}

// GetFixedExtensions lists the fixed extension set.
// @Summary List fixed extensions
// @Tags Extension
// @Produce json
// @Success 200 {object} response.Body "Fixed extensions sorted by value"
// @Failure 500 {object} response.Body "Database error"
// @Router /extensions/fixed [get]
func (ec *ExtensionController) GetFixedExtensions(c *gin.Context) {
	extensions, err := ec.Service.ListFixed()
	if err != nil {
		response.Error(c, err)
		return
	}
	message := fmt.Sprintf("고정 확장자 %d/%d", len(extensions), service.MaxFixedExtensions)
	response.OKMessage(c, extensions, message)
}

// GetCustomExtensions lists the custom extension set.
// @Summary List custom extensions
// @Tags Extension
// @Produce json
// @Success 200 {object} response.Body "Custom extensions sorted by creation time"
// @Failure 500 {object} response.Body "Database error"
// @Router /extensions/custom [get]
func (ec *ExtensionController) GetCustomExtensions(c *gin.Context) {
	extensions, err := ec.Service.ListCustom()
	if err != nil {
		response.Error(c, err)
		return
	}
	message := fmt.Sprintf("커스텀 확장자 %d/%d", len(extensions), service.MaxCustomExtensions)
	response.OKMessage(c, extensions, message)
}

// AddFixedExtension adds a fixed extension.
// @Summary Add fixed extension
// @Tags Extension
// @Accept json
// @Produce json
// @Param request body FixedExtensionRequest true "Extension to add"
// @Success 200 {object} response.Body "Created fixed extension"
// @Failure 400 {object} response.Body "Invalid extension or capacity reached"
// @Failure 409 {object} response.Body "Extension already exists"
// @Router /extensions/fixed [post]
func (ec *ExtensionController) AddFixedExtension(c *gin.Context) {
	var req FixedExtensionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation("입력값이 올바르지 않습니다."))
		return
	}

	fixed, err := ec.Service.AddFixed(req.Extension, req.Description, req.IsBlocked)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, fixed)
}

// UpdateFixedExtensionStatus toggles the block flag of a fixed extension by
// path value, with the flag in the is_blocked query parameter.
// @Summary Update fixed extension block status
// @Tags Extension
// @Produce json
// @Param extension path string true "Extension value"
// @Param is_blocked query bool true "New block status"
// @Success 200 {object} response.Body "Updated fixed extension"
// @Failure 400 {object} response.Body "Invalid is_blocked value"
// @Failure 404 {object} response.Body "Extension not found"
// @Router /extensions/fixed/{extension} [put]
func (ec *ExtensionController) UpdateFixedExtensionStatus(c *gin.Context) {
	blocked, err := strconv.ParseBool(c.Query("is_blocked"))
	if err != nil {
		response.Error(c, apperror.Validation("is_blocked 값이 올바르지 않습니다."))
		return
	}

	fixed, err := ec.Service.UpdateFixedStatus(c.Param("extension"), blocked)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, fixed)
}

// UpdateFixedExtension toggles the block flag of a fixed extension with the
// value and flag both in the request body.
// @Summary Update fixed extension block status (body form)
// @Tags Extension
// @Accept json
// @Produce json
// @Param request body FixedExtensionRequest true "Extension and new status"
// @Success 200 {object} response.Body "Updated fixed extension"
// @Failure 404 {object} response.Body "Extension not found"
// @Router /extensions/fixed [put]
func (ec *ExtensionController) UpdateFixedExtension(c *gin.Context) {
	var req FixedExtensionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation("입력값이 올바르지 않습니다."))
		return
	}

	fixed, err := ec.Service.UpdateFixedStatus(req.Extension, req.IsBlocked)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, fixed)
}

// DeleteFixedExtension removes a fixed extension by id.
// @Summary Delete fixed extension
// @Tags Extension
// @Produce json
// @Param id path int true "Fixed extension id"
// @Success 200 {object} response.Body "Deleted"
// @Failure 404 {object} response.Body "Extension not found"
// @Router /extensions/fixed/{id} [delete]
func (ec *ExtensionController) DeleteFixedExtension(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := ec.Service.DeleteFixed(id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, nil)
}

// AddCustomExtension adds a custom extension, blocked from creation.
// @Summary Add custom extension
// @Tags Extension
// @Accept json
// @Produce json
// @Param request body CustomExtensionRequest true "Extension to add"
// @Success 200 {object} response.Body "Created custom extension"
// @Failure 400 {object} response.Body "Invalid extension or capacity reached"
// @Failure 409 {object} response.Body "Extension already exists"
// @Router /extensions/custom [post]
func (ec *ExtensionController) AddCustomExtension(c *gin.Context) {
	var req CustomExtensionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation("입력값이 올바르지 않습니다."))
		return
	}

	custom, err := ec.Service.AddCustom(req.Extension)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, custom)
}

// UpdateCustomExtensionStatus toggles the block flag of a custom extension.
// @Summary Update custom extension block status
// @Tags Extension
// @Produce json
// @Param extension path string true "Extension value"
// @Param is_blocked query bool true "New block status"
// @Success 200 {object} response.Body "Updated custom extension"
// @Failure 400 {object} response.Body "Invalid is_blocked value"
// @Failure 404 {object} response.Body "Extension not found"
// @Router /extensions/custom/{extension} [put]
func (ec *ExtensionController) UpdateCustomExtensionStatus(c *gin.Context) {
	blocked, err := strconv.ParseBool(c.Query("is_blocked"))
	if err != nil {
		response.Error(c, apperror.Validation("is_blocked 값이 올바르지 않습니다."))
		return
	}

	custom, err := ec.Service.UpdateCustomStatus(c.Param("extension"), blocked)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, custom)
}

// DeleteCustomExtension removes a custom extension by id.
// @Summary Delete custom extension
// @Tags Extension
// @Produce json
// @Param id path int true "Custom extension id"
// @Success 200 {object} response.Body "Deleted"
// @Failure 404 {object} response.Body "Extension not found"
// @Router /extensions/custom/{id} [delete]
func (ec *ExtensionController) DeleteCustomExtension(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := ec.Service.DeleteCustom(id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, nil)
}

// DeleteCustomExtensionByValue removes a custom extension by its value.
// @Summary Delete custom extension by value
// @Tags Extension
// @Produce json
// @Param extension path string true "Extension value"
// @Success 200 {object} response.Body "Deleted"
// @Failure 404 {object} response.Body "Extension not found"
// @Router /extensions/custom/extension/{extension} [delete]
func (ec *ExtensionController) DeleteCustomExtensionByValue(c *gin.Context) {
	extension := c.Param("extension")
	if err := ec.Service.DeleteCustomByValue(extension); err != nil {
		response.Error(c, err)
		return
	}
	response.OKMessage(c, nil, extension+" 커스텀 확장자가 삭제되었습니다.")
}

// CheckExtension reports whether an extension is blocked.
// @Summary Check whether an extension is blocked
// @Tags Extension
// @Produce json
// @Param extension path string true "Extension value"
// @Success 200 {object} response.Body "Block status with explanation"
// @Router /extensions/check/{extension} [get]
func (ec *ExtensionController) CheckExtension(c *gin.Context) {
	extension := c.Param("extension")

	blockType, err := ec.Service.BlockType(extension)
	if err != nil {
		response.Error(c, err)
		return
	}
	blocked := blockType != service.BlockTypeNone

	var message string
	if blocked {
		switch blockType {
		case service.BlockTypeFixed:
			message = extension + "는 고정 확장자에 있습니다."
		case service.BlockTypeCustom:
			message = extension + "는 커스텀 확장자에 있습니다."
		default:
			message = extension + "는 차단된 확장자입니다."
		}
	} else {
		message = extension + "는 허용된 확장자입니다."
	}

	response.OKMessage(c, blocked, message)
}

// GetExtensionType returns which list blocks an extension, if any.
// @Summary Classify an extension
// @Tags Extension
// @Produce json
// @Param extension path string true "Extension value"
// @Success 200 {object} response.Body "fixed, custom or none"
// @Router /extensions/type/{extension} [get]
func (ec *ExtensionController) GetExtensionType(c *gin.Context) {
	extension := c.Param("extension")

	blockType, err := ec.Service.BlockType(extension)
	if err != nil {
		response.Error(c, err)
		return
	}

	var message string
	switch blockType {
	case service.BlockTypeFixed:
		message = extension + "는 고정 확장자입니다."
	case service.BlockTypeCustom:
		message = extension + "는 커스텀 확장자입니다."
	default:
		message = extension + "는 등록되지 않은 확장자입니다."
	}

	response.OKMessage(c, blockType, message)
}

// GetBlockedExtensions lists every currently blocked extension value.
// @Summary List blocked extensions
// @Tags Extension
// @Produce json
// @Success 200 {object} response.Body "Deduplicated, sorted blocked values"
// @Router /extensions/blocked [get]
func (ec *ExtensionController) GetBlockedExtensions(c *gin.Context) {
	blocked, err := ec.Service.AllBlocked()
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, blocked)
}

// InitializeFixedExtensions seeds the default fixed extensions.
// @Summary Initialize default fixed extensions
// @Tags Extension
// @Produce json
// @Success 200 {object} response.Body "Defaults ensured"
// @Router /extensions/initialize [post]
func (ec *ExtensionController) InitializeFixedExtensions(c *gin.Context) {
	if err := ec.Service.InitializeDefaults(); err != nil {
		response.Error(c, err)
		return
	}
	response.OKMessage(c, nil, "고정 확장자가 초기화되었습니다.")
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, apperror.Validation("유효하지 않은 식별자입니다: %s", raw)
	}
	return uint(id), nil
}

// Package service contains the business rules of the extension blocklist and
// the file upload pipeline, independent of any HTTP framework type.
package service

import (
	"errors"
	"log"
	"regexp"
	"sort"
	"strings"

	"gorm.io/gorm"

	"github.com/moodeary/flow-backend/internal/apperror"
	"github.com/moodeary/flow-backend/internal/database"
	"github.com/moodeary/flow-backend/internal/model"
)

// Capacity and validation limits for the two extension sets.
const (
	MaxFixedExtensions  = 10
	MaxCustomExtensions = 200
	MaxExtensionLength  = 20
)

// Block type classification returned by BlockType.
const (
	BlockTypeFixed  = "fixed"
	BlockTypeCustom = "custom"
	BlockTypeNone   = "none"
)

// defaultFixedExtensions are seeded by InitializeDefaults, unblocked.
var defaultFixedExtensions = []string{"bat", "cmd", "com", "cpl", "exe", "scr", "js"}

var extensionPattern = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

// ExtensionService implements the blocklist rules over the fixed and custom
// extension tables.
type ExtensionService struct {
	DB *database.DBinstanceStruct
}

// NewExtensionService creates a new ExtensionService bound to db.
func NewExtensionService(db *database.DBinstanceStruct) *ExtensionService {
	return &ExtensionService{DB: db}
}

// ListFixed returns every fixed extension sorted by extension value.
func (s *ExtensionService) ListFixed() ([]model.FixedExtension, error) {
	var extensions []model.FixedExtension
	if err := s.DB.Order("extension ASC").Find(&extensions).Error; err != nil {
		return nil, err
	}
	return extensions, nil
}

// ListCustom returns every custom extension sorted by creation time.
func (s *ExtensionService) ListCustom() ([]model.CustomExtension, error) {
	var extensions []model.CustomExtension
	if err := s.DB.Order("created_at ASC").Find(&extensions).Error; err != nil {
		return nil, err
	}
	return extensions, nil
}

// AddFixed adds a fixed extension. The value is trimmed and lower-cased
// before validation; description falls back to a built-in text when empty.
func (s *ExtensionService) AddFixed(extension, description string, blocked bool) (*model.FixedExtension, error) {
	normalized := strings.ToLower(strings.TrimSpace(extension))

	if !s.ValidateExtension(normalized) {
		return nil, apperror.Validation("유효하지 않은 확장자입니다: %s", extension)
	}

	count, err := s.countRows(&model.FixedExtension{})
	if err != nil {
		return nil, err
	}
	if count >= MaxFixedExtensions {
		return nil, apperror.Capacity("고정 확장자는 최대 %d개까지 추가할 수 있습니다.", MaxFixedExtensions)
	}

	if exists, err := s.fixedExists(normalized); err != nil {
		return nil, err
	} else if exists {
		return nil, apperror.Conflict("이미 존재하는 고정 확장자입니다: %s", extension)
	}

	if exists, err := s.customExists(normalized); err != nil {
		return nil, err
	} else if exists {
		return nil, apperror.Conflict("이미 커스텀 확장자에 존재합니다: %s", extension)
	}

	if description == "" {
		description = extensionDescription(normalized)
	}

	fixed := &model.FixedExtension{
		Extension:   normalized,
		IsBlocked:   blocked,
		Description: description,
	}
	if err := s.DB.Create(fixed).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.Conflict("이미 존재하는 고정 확장자입니다: %s", extension)
		}
		return nil, err
	}
	return fixed, nil
}

// UpdateFixedStatus sets the block flag of a fixed extension, matched by
// value case-insensitively.
func (s *ExtensionService) UpdateFixedStatus(extension string, blocked bool) (*model.FixedExtension, error) {
	normalized := strings.ToLower(strings.TrimSpace(extension))

	var fixed model.FixedExtension
	if err := s.DB.Where("extension = ?", normalized).First(&fixed).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("고정 확장자를 찾을 수 없습니다: %s", extension)
		}
		return nil, err
	}

	fixed.IsBlocked = blocked
	if err := s.DB.Save(&fixed).Error; err != nil {
		return nil, err
	}
	return &fixed, nil
}

// DeleteFixed removes a fixed extension by identifier.
func (s *ExtensionService) DeleteFixed(id uint) error {
	var fixed model.FixedExtension
	if err := s.DB.First(&fixed, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("고정 확장자를 찾을 수 없습니다.")
		}
		return err
	}
	return s.DB.Delete(&fixed).Error
}

// AddCustom adds a custom extension, blocked from creation.
func (s *ExtensionService) AddCustom(extension string) (*model.CustomExtension, error) {
	normalized := strings.ToLower(strings.TrimSpace(extension))

	if !s.ValidateExtension(normalized) {
		return nil, apperror.Validation("유효하지 않은 확장자입니다: %s", extension)
	}

	count, err := s.countRows(&model.CustomExtension{})
	if err != nil {
		return nil, err
	}
	if count >= MaxCustomExtensions {
		return nil, apperror.Capacity("커스텀 확장자는 최대 %d개까지 추가할 수 있습니다.", MaxCustomExtensions)
	}

	if exists, err := s.fixedExists(normalized); err != nil {
		return nil, err
	} else if exists {
		return nil, apperror.Conflict("이미 고정 확장자에 존재합니다: %s", extension)
	}

	if exists, err := s.customExists(normalized); err != nil {
		return nil, err
	} else if exists {
		return nil, apperror.Conflict("이미 추가된 커스텀 확장자입니다: %s", extension)
	}

	custom := &model.CustomExtension{
		Extension: normalized,
		IsBlocked: true,
	}
	if err := s.DB.Create(custom).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.Conflict("이미 추가된 커스텀 확장자입니다: %s", extension)
		}
		return nil, err
	}
	return custom, nil
}

// UpdateCustomStatus sets the block flag of a custom extension, matched by
// value case-insensitively.
func (s *ExtensionService) UpdateCustomStatus(extension string, blocked bool) (*model.CustomExtension, error) {
	normalized := strings.ToLower(strings.TrimSpace(extension))

	var custom model.CustomExtension
	if err := s.DB.Where("extension = ?", normalized).First(&custom).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("커스텀 확장자를 찾을 수 없습니다: %s", extension)
		}
		return nil, err
	}

	custom.IsBlocked = blocked
	if err := s.DB.Save(&custom).Error; err != nil {
		return nil, err
	}
	return &custom, nil
}

// DeleteCustom removes a custom extension by identifier.
func (s *ExtensionService) DeleteCustom(id uint) error {
	var custom model.CustomExtension
	if err := s.DB.First(&custom, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("커스텀 확장자를 찾을 수 없습니다.")
		}
		return err
	}
	return s.DB.Delete(&custom).Error
}

// DeleteCustomByValue removes a custom extension by its value.
func (s *ExtensionService) DeleteCustomByValue(extension string) error {
	normalized := strings.ToLower(strings.TrimSpace(extension))

	var custom model.CustomExtension
	if err := s.DB.Where("extension = ?", normalized).First(&custom).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("커스텀 확장자를 찾을 수 없습니다: %s", extension)
		}
		return err
	}
	return s.DB.Delete(&custom).Error
}

// IsBlocked reports whether the extension is blocked in either set.
func (s *ExtensionService) IsBlocked(extension string) (bool, error) {
	blockType, err := s.BlockType(extension)
	if err != nil {
		return false, err
	}
	return blockType != BlockTypeNone, nil
}

// BlockType classifies which list blocks the extension: "fixed" wins over
// "custom"; an extension that exists but is unblocked yields "none".
func (s *ExtensionService) BlockType(extension string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(extension))

	var count int64
	if err := s.DB.Model(&model.FixedExtension{}).
		Where("extension = ? AND is_blocked = ?", normalized, true).
		Count(&count).Error; err != nil {
		return "", err
	}
	if count > 0 {
		return BlockTypeFixed, nil
	}

	if err := s.DB.Model(&model.CustomExtension{}).
		Where("extension = ? AND is_blocked = ?", normalized, true).
		Count(&count).Error; err != nil {
		return "", err
	}
	if count > 0 {
		return BlockTypeCustom, nil
	}

	return BlockTypeNone, nil
}

// AllBlocked returns every blocked extension value across both sets,
// deduplicated and sorted ascending.
func (s *ExtensionService) AllBlocked() ([]string, error) {
	var fixedBlocked []string
	if err := s.DB.Model(&model.FixedExtension{}).
		Where("is_blocked = ?", true).
		Pluck("extension", &fixedBlocked).Error; err != nil {
		return nil, err
	}

	var customBlocked []string
	if err := s.DB.Model(&model.CustomExtension{}).
		Where("is_blocked = ?", true).
		Pluck("extension", &customBlocked).Error; err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(fixedBlocked)+len(customBlocked))
	blocked := make([]string, 0, len(fixedBlocked)+len(customBlocked))
	for _, ext := range append(fixedBlocked, customBlocked...) {
		if !seen[ext] {
			seen[ext] = true
			blocked = append(blocked, ext)
		}
	}
	sort.Strings(blocked)
	return blocked, nil
}

// InitializeDefaults idempotently seeds the seven well-known fixed
// extensions, unblocked. Existing rows with the same value are left alone.
func (s *ExtensionService) InitializeDefaults() error {
	for _, ext := range defaultFixedExtensions {
		exists, err := s.fixedExists(ext)
		if err != nil {
			return err
		}
		if exists {
			continue
		}

		fixed := &model.FixedExtension{
			Extension:   ext,
			IsBlocked:   false,
			Description: extensionDescription(ext),
		}
		if err := s.DB.Create(fixed).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				continue
			}
			return err
		}
		log.Printf("고정 확장자 초기화: %s", ext)
	}
	return nil
}

// ValidateExtension reports whether the value is usable as an extension:
// non-empty after trimming, at most 20 characters, alphanumeric only.
func (s *ExtensionService) ValidateExtension(extension string) bool {
	trimmed := strings.TrimSpace(extension)
	if trimmed == "" {
		return false
	}
	if len(trimmed) > MaxExtensionLength {
		return false
	}
	return extensionPattern.MatchString(trimmed)
}

func (s *ExtensionService) countRows(m interface{}) (int64, error) {
	var count int64
	err := s.DB.Model(m).Count(&count).Error
	return count, err
}

func (s *ExtensionService) fixedExists(extension string) (bool, error) {
	var count int64
	err := s.DB.Model(&model.FixedExtension{}).
		Where("extension = ?", extension).
		Count(&count).Error
	return count > 0, err
}

func (s *ExtensionService) customExists(extension string) (bool, error) {
	var count int64
	err := s.DB.Model(&model.CustomExtension{}).
		Where("extension = ?", extension).
		Count(&count).Error
	return count > 0, err
}

func extensionDescription(extension string) string {
	switch extension {
	case "bat":
		return "배치 파일"
	case "cmd":
		return "명령 파일"
	case "com":
		return "실행 파일"
	case "cpl":
		return "제어판 파일"
	case "exe":
		return "실행 파일"
	case "scr":
		return "화면보호기 파일"
	case "js":
		return "자바스크립트 파일"
	default:
		return "실행 가능한 파일"
	}
}

package presets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"depot-planner/core/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned for an index with no preset.
	ErrNotFound = errors.New("presets: preset not found")
	// ErrInvalid is returned for an empty name or malformed payload.
	ErrInvalid = errors.New("presets: invalid preset")
)

// Service stores presets per user.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a preset service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// Migrate creates or updates the presets table.
func (s *Service) Migrate() error {
	return s.db.AutoMigrate(&Row{})
}

func validate(name string, payload json.RawMessage) (string, string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", "", fmt.Errorf("%w: name is required", ErrInvalid)
	}
	if len(payload) == 0 {
		payload = json.RawMessage("{}")
	}
	if !json.Valid(payload) {
		return "", "", fmt.Errorf("%w: payload is not JSON", ErrInvalid)
	}
	return name, string(payload), nil
}

// List returns the presets of a user ordered by index.
func (s *Service) List(ctx context.Context, userID string) ([]Preset, error) {
	var rows []Row
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("idx").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]Preset, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toPreset())
	}
	return out, nil
}

// Add appends a preset; its index is the number of existing presets.
func (s *Service) Add(ctx context.Context, userID, name string, payload json.RawMessage) (Preset, error) {
	name, body, err := validate(name, payload)
	if err != nil {
		return Preset{}, err
	}

	var row Row
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&Row{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
			return err
		}
		row = Row{UserID: userID, Index: int(count), Name: name, Payload: body}
		return tx.Create(&row).Error
	})
	if err != nil {
		return Preset{}, err
	}

	logger.WithUser(s.logger, userID).Info("Preset added", zap.Int("index", row.Index), zap.String("name", name))
	return row.toPreset(), nil
}

// Change replaces the preset at index.
func (s *Service) Change(ctx context.Context, userID string, index int, name string, payload json.RawMessage) (Preset, error) {
	name, body, err := validate(name, payload)
	if err != nil {
		return Preset{}, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row Row
		if err := tx.Where("user_id = ? AND idx = ?", userID, index).First(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		return tx.Model(&row).
			Where("user_id = ? AND idx = ?", userID, index).
			Updates(map[string]interface{}{"name": name, "payload": body}).Error
	})
	if err != nil {
		return Preset{}, err
	}
	return Preset{Index: index, Name: name, Payload: json.RawMessage(body)}, nil
}

// Delete removes the preset at index and shifts later presets down by one.
func (s *Service) Delete(ctx context.Context, userID string, index int) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND idx = ?", userID, index).Delete(&Row{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}

		var later []Row
		if err := tx.Where("user_id = ? AND idx > ?", userID, index).Order("idx").Find(&later).Error; err != nil {
			return err
		}
		// one row at a time, ascending, so the key never collides
		for _, r := range later {
			if err := tx.Model(&Row{}).
				Where("user_id = ? AND idx = ?", userID, r.Index).
				Update("idx", r.Index-1).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.WithUser(s.logger, userID).Info("Preset deleted", zap.Int("index", index))
	return nil
}

package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/UJJWAL-7777/Diet-Manager/config"
	"github.com/UJJWAL-7777/Diet-Manager/models"
	"github.com/UJJWAL-7777/Diet-Manager/utils"
)

type Measurements struct {
	Chest  float64 `json:"chest"`
	Waist  float64 `json:"waist"`
	Hips   float64 `json:"hips"`
	Arms   float64 `json:"arms"`
	Thighs float64 `json:"thighs"`
}

type ProgressInput struct {
	Date         *time.Time   `json:"date"`
	Weight       float64      `json:"weight"`
	Measurements Measurements `json:"measurements"`
	Mood         string       `json:"mood"`
	EnergyLevel  int          `json:"energyLevel"`
	Notes        string       `json:"notes"`
	// base64 data URIs; uploaded and stored as URLs
	Photos []string `json:"photos"`
}

func (in ProgressInput) validate() error {
	if in.Weight != 0 && (in.Weight < 30 || in.Weight > 300) {
		return fmt.Errorf("weight must be between 30 and 300 kg")
	}
	if in.Mood != "" && !models.IsValidMood(in.Mood) {
		return fmt.Errorf("invalid mood %q", in.Mood)
	}
	if in.EnergyLevel != 0 && (in.EnergyLevel < 1 || in.EnergyLevel > 10) {
		return fmt.Errorf("energy level must be between 1 and 10")
	}
	return nil
}

type ProgressService struct{}

func NewProgressService() *ProgressService { return &ProgressService{} }

// Record appends one entry. Photos arrive as base64 data URIs and are
// uploaded to S3 first; only their URLs are stored.
func (s *ProgressService) Record(userID uint, in ProgressInput) (*models.Progress, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	var urls []string
	for _, photo := range in.Photos {
		url, err := utils.UploadBase64Image(photo, "progress-photos")
		if err != nil {
			return nil, fmt.Errorf("failed to upload photo: %w", err)
		}
		urls = append(urls, url)
	}

	date := time.Now()
	if in.Date != nil {
		date = *in.Date
	}

	entry := models.Progress{
		UserID:      userID,
		Date:        date,
		Weight:      in.Weight,
		Chest:       in.Measurements.Chest,
		Waist:       in.Measurements.Waist,
		Hips:        in.Measurements.Hips,
		Arms:        in.Measurements.Arms,
		Thighs:      in.Measurements.Thighs,
		Mood:        in.Mood,
		EnergyLevel: in.EnergyLevel,
		Notes:       in.Notes,
		Photos:      strings.Join(urls, ","),
	}
	if err := config.DB.Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// List returns entries newest first, capped at limit (default 30).
func (s *ProgressService) List(userID uint, limit int) ([]models.Progress, error) {
	if limit <= 0 {
		limit = 30
	}
	var entries []models.Progress
	err := config.DB.
		Where("user_id = ?", userID).
		Order("date desc").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}

// Latest returns the most recent entry, or nil when the log is empty.
func (s *ProgressService) Latest(userID uint) (*models.Progress, error) {
	entries, err := s.List(userID, 1)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}
	return &entries[0], nil
}

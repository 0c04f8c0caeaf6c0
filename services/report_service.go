package services

import (
	"gorm.io/gorm"

	"dropu-backend/models"
)

// RegionCount is one row of the top-regions report.
type RegionCount struct {
	Region string `json:"region"`
	Count  int64  `json:"count"`
}

// ReportService serves feedback, issue tracking, and simple aggregates.
type ReportService struct {
	DB *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{DB: db}
}

func (s *ReportService) SubmitFeedback(fb *models.Feedback) error {
	if fb.Status == "" {
		fb.Status = "new"
	}
	return s.DB.Create(fb).Error
}

func (s *ReportService) GetFeedback() ([]models.Feedback, error) {
	var feedback []models.Feedback
	err := s.DB.Order("timestamp DESC").Find(&feedback).Error
	return feedback, err
}

// TopRegions groups feedback by region, most active first.
func (s *ReportService) TopRegions(limit int) ([]RegionCount, error) {
	if limit <= 0 {
		limit = 5
	}
	var rows []RegionCount
	err := s.DB.Model(&models.Feedback{}).
		Select("region, COUNT(*) AS count").
		Group("region").
		Order("count DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (s *ReportService) ReportIssue(description string, urgency bool) (*models.Issue, error) {
	issue := models.Issue{
		Description: description,
		Urgency:     urgency,
		Status:      "open",
	}
	if err := s.DB.Create(&issue).Error; err != nil {
		return nil, err
	}
	return &issue, nil
}

func (s *ReportService) GetIssues() ([]models.Issue, error) {
	var issues []models.Issue
	err := s.DB.Order("timestamp DESC").Find(&issues).Error
	return issues, err
}

func (s *ReportService) UpdateIssueStatus(id uint, status string) error {
	res := s.DB.Model(&models.Issue{}).Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

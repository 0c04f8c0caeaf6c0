package services

import (
	"gorm.io/gorm"

	"dropu-backend/models"
	"dropu-backend/utils"
)

type AgentService struct {
	DB   *gorm.DB
	Auth *AuthService
}

func NewAgentService(db *gorm.DB, auth *AuthService) *AgentService {
	return &AgentService{DB: db, Auth: auth}
}

// Create registers a station agent; agents cannot self-register.
func (s *AgentService) Create(name, email, password string, stationLocation *string) (*models.Agent, error) {
	taken, err := s.Auth.EmailTaken(email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrDuplicateEmail
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	agent := models.Agent{
		Name:            name,
		Email:           email,
		Password:        hash,
		StationLocation: stationLocation,
	}
	if err := s.DB.Create(&agent).Error; err != nil {
		return nil, err
	}
	return &agent, nil
}

func (s *AgentService) GetAll() ([]models.Agent, error) {
	var agents []models.Agent
	err := s.DB.Find(&agents).Error
	return agents, err
}

func (s *AgentService) GetByID(id uint) (*models.Agent, error) {
	var agent models.Agent
	if err := s.DB.First(&agent, id).Error; err != nil {
		return nil, err
	}
	return &agent, nil
}

func (s *AgentService) Delete(id uint) error {
	return s.DB.Delete(&models.Agent{}, id).Error
}

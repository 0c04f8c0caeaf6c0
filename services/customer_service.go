package services

import (
	"gorm.io/gorm"

	"dropu-backend/models"
)

type CustomerService struct {
	DB *gorm.DB
}

func NewCustomerService(db *gorm.DB) *CustomerService {
	return &CustomerService{DB: db}
}

func (s *CustomerService) GetAll() ([]models.Customer, error) {
	var customers []models.Customer
	err := s.DB.Find(&customers).Error
	return customers, err
}

func (s *CustomerService) GetByID(id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := s.DB.First(&customer, id).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (s *CustomerService) UpdateAddress(id uint, address string) error {
	res := s.DB.Model(&models.Customer{}).Where("id = ?", id).
		Update("address", address)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *CustomerService) Delete(id uint) error {
	return s.DB.Delete(&models.Customer{}, id).Error
}

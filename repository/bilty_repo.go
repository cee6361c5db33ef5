package repository

import (
	"biltyledger/models"
)

type BiltyRepository interface {
	ListBilty() ([]*models.Bilty, error)
	GetBiltyByID(id int64) (*models.Bilty, error)
	CreateBilty(bilty *models.Bilty) error
	UpdateBilty(bilty *models.Bilty) error
	DeleteBilty(id int64) error
}

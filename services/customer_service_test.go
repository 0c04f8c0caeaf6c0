package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"dropu-backend/models"
)

func TestUpdateAddress(t *testing.T) {
	db := newTestDB(t)
	svc := NewCustomerService(db)

	customer := models.Customer{Name: "C", Email: "c@x.com", Password: mustHash(t, "pw")}
	require.NoError(t, db.Create(&customer).Error)

	require.NoError(t, svc.UpdateAddress(customer.ID, "12 Depot Road"))

	reloaded, err := svc.GetByID(customer.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded.Address)
	assert.Equal(t, "12 Depot Road", *reloaded.Address)
}

func TestUpdateAddressUnknownID(t *testing.T) {
	db := newTestDB(t)
	svc := NewCustomerService(db)

	err := svc.UpdateAddress(999, "nowhere")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

package auth

import (
	"gorm.io/gorm"

	entity "supplysense/model/entity"
)

type AuthRepository struct {
	db *gorm.DB
}

func NewAuthRepository(db *gorm.DB) *AuthRepository {
	return &AuthRepository{db: db}
}

// FindActiveToken returns a non-revoked API token by its token string.
func (r *AuthRepository) FindActiveToken(token string) (*entity.APIToken, error) {
	var t entity.APIToken
	err := r.db.Where("token = ? AND revoked = 0", token).First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Create stores a new token.
func (r *AuthRepository) Create(t *entity.APIToken) error {
	return r.db.Create(t).Error
}

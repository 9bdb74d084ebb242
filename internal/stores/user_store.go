package stores

import (
	"github.com/1mdc/discourse-follow/internal/models"

	"gorm.io/gorm"
)

var ErrNotFound = gorm.ErrRecordNotFound

// UserStore abstracts user persistence.
type UserStore interface {
	// FindByUsername returns a user if it exists, or ErrNotFound.
	FindByUsername(username string) (*models.User, error)
	// FindByUsernameInsensitive matches the username case-insensitively.
	FindByUsernameInsensitive(username string) (*models.User, error)
	// CreateUser persists a new user.
	CreateUser(u *models.User) error
	GetByID(id uint) (*models.User, error)
	// GetByIDs resolves ids to users, preserving the input order. Ids with
	// no matching row are skipped silently; the follow lists are not
	// cascade-cleaned when a user is deleted, so orphaned members can occur.
	GetByIDs(ids []uint) ([]*models.User, error)
}

// GormUserStore implements UserStore using GORM.
type GormUserStore struct{ DB *gorm.DB }

func (s *GormUserStore) FindByUsername(username string) (*models.User, error) {
	var u models.User
	if err := s.DB.Where("username = ?", username).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *GormUserStore) FindByUsernameInsensitive(username string) (*models.User, error) {
	var u models.User
	if err := s.DB.Where("lower(username) = lower(?)", username).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *GormUserStore) CreateUser(u *models.User) error {
	return s.DB.Create(u).Error
}

func (s *GormUserStore) GetByID(id uint) (*models.User, error) {
	var u models.User
	if err := s.DB.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *GormUserStore) GetByIDs(ids []uint) ([]*models.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var rows []models.User
	if err := s.DB.Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	byID := make(map[uint]*models.User, len(rows))
	for i := range rows {
		byID[rows[i].ID] = &rows[i]
	}
	users := make([]*models.User, 0, len(ids))
	for _, id := range ids {
		if u, ok := byID[id]; ok {
			users = append(users, u)
		}
	}
	return users, nil
}

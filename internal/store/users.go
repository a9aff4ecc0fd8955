package store

import (
	"fmt"

	"salestrack/internal/models"
)

// CreateUser persists a new user. The unique index on name closes the race
// between concurrent registrations with the same name.
func (s *Store) CreateUser(user *models.User) error {
	if !models.ValidRole(user.Role) {
		return fmt.Errorf("%w: role must be admin or merchandiser", ErrValidation)
	}
	if err := translate(s.db.Create(user).Error); err != nil {
		return err
	}
	s.audit(&user.ID, "create", "users", user.ID, "user "+user.Name+" registered")
	return nil
}

// GetUserByName looks a user up by its unique display name.
func (s *Store) GetUserByName(name string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("name = ?", name).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// GetUserByIDAndName re-resolves a user from token claims. Both fields must
// match so tokens for renamed or deleted users fail closed.
func (s *Store) GetUserByIDAndName(id uint, name string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("id = ? AND name = ?", id, name).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// ListUsers returns all users.
func (s *Store) ListUsers() ([]models.User, error) {
	var users []models.User
	if err := s.db.Find(&users).Error; err != nil {
		return nil, translate(err)
	}
	return users, nil
}

package store

import (
	"context"
	"errors"
	"strconv"

	"messaging-api/internal/domain"
	"messaging-api/internal/wireclock"

	"gorm.io/gorm"
)

type UserStore struct{ db *gorm.DB }

func (s *Store) Users() *UserStore { return &UserStore{db: s.DB} }

// List returns a page of users restricted to the public attribute set.
// Callers are expected to have sanitized limit and page already.
func (u *UserStore) List(ctx context.Context, limit, page int) ([]domain.User, error) {
	offset := (page - 1) * limit
	var users []domain.User
	err := u.db.WithContext(ctx).
		Select(domain.PublicColumns).
		Order("id").
		Limit(limit).
		Offset(offset).
		Find(&users).Error
	return users, err
}

// GetByIDOrUsername resolves a path key that may be a numeric id or a
// username. Numeric keys match either column since usernames may themselves
// be digits.
func (u *UserStore) GetByIDOrUsername(ctx context.Context, key string) (*domain.User, error) {
	q := u.db.WithContext(ctx).Select(domain.PublicColumns)
	if id, err := strconv.ParseInt(key, 10, 64); err == nil {
		q = q.Where("id = ? OR username = ?", id, key)
	} else {
		q = q.Where("username = ?", key)
	}

	var user domain.User
	if err := q.First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetByUsername returns the full row, password hash included. Login only.
func (u *UserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var user domain.User
	if err := u.db.WithContext(ctx).First(&user, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (u *UserStore) Create(ctx context.Context, usr *domain.User) error {
	return u.db.WithContext(ctx).Create(usr).Error
}

// UsernameOrEmailTaken reports whether another user already holds either
// value. The excludeID carve-out lets updates keep their own values.
func (u *UserStore) UsernameOrEmailTaken(ctx context.Context, username, email string, excludeID int64) (bool, error) {
	var count int64
	err := u.db.WithContext(ctx).Model(&domain.User{}).
		Where("(username = ? OR email = ?) AND id <> ?", username, email, excludeID).
		Count(&count).Error
	return count > 0, err
}

// UpdateFields applies the already-whitelisted column changes to one user.
func (u *UserStore) UpdateFields(ctx context.Context, id int64, changes map[string]any) (*domain.User, error) {
	var user domain.User
	if err := u.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	if len(changes) > 0 {
		if err := u.db.WithContext(ctx).Model(&user).Updates(changes).Error; err != nil {
			return nil, err
		}
		// Reload so the caller sees exactly what was persisted.
		if err := u.db.WithContext(ctx).Select(domain.PublicColumns).First(&user, "id = ?", id).Error; err != nil {
			return nil, err
		}
	}
	user.PasswordHash = ""
	return &user, nil
}

func (u *UserStore) Delete(ctx context.Context, id int64) (*domain.User, error) {
	var user domain.User
	if err := u.db.WithContext(ctx).Select(domain.PublicColumns).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	if err := u.db.WithContext(ctx).Delete(&domain.User{}, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (u *UserStore) SetLastLogin(ctx context.Context, id int64, at wireclock.Time) error {
	return u.db.WithContext(ctx).Model(&domain.User{}).
		Where("id = ?", id).
		Update("last_login", at).Error
}

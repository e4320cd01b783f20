package impl

import (
	"context"
	"errors"
	"net/mail"
	"strconv"

	"messaging-api/internal/domain"
	"messaging-api/internal/dto"
	"messaging-api/internal/netutil"
	"messaging-api/internal/service"
	"messaging-api/internal/store"
	"messaging-api/internal/wireclock"

	"gorm.io/gorm"
)

const (
	defaultListLimit = 10
	defaultListPage  = 1
)

type UserServiceImpl struct {
	store     *store.Store
	passwords service.PasswordService
	now       func() wireclock.Time
}

func NewUserServiceImpl(st *store.Store, passwords service.PasswordService) *UserServiceImpl {
	return &UserServiceImpl{store: st, passwords: passwords, now: wireclock.Now}
}

func (s *UserServiceImpl) Register(ctx context.Context, r dto.RegisterUserRequest) (*domain.User, error) {
	ve := &domain.ValidationError{}
	if r.Username == "" {
		ve.Add("username", "username is required")
	}
	if r.Email == "" {
		ve.Add("email", "email is required")
	} else if !validEmail(r.Email) {
		ve.Add("email", "email is malformed")
	}
	if len(ve.Fields) > 0 {
		return nil, ve
	}

	user := &domain.User{
		Username:      r.Username,
		Email:         r.Email,
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		DeviceAddress: netutil.CanonicalAddr(r.DeviceAddress),
		DateCreated:   s.now(),
	}

	err := s.store.WithTx(ctx, func(tx *store.Store) error {
		taken, err := tx.Users().UsernameOrEmailTaken(ctx, r.Username, r.Email, 0)
		if err != nil {
			return err
		}
		if taken {
			return domain.NewValidationError("username", "username or email already in use")
		}

		if r.Password != "" {
			hash, err := s.passwords.Hash(r.Password)
			if err != nil {
				return err
			}
			user.PasswordHash = hash
		}

		return tx.Users().Create(ctx, user)
	})
	if err != nil {
		// Concurrent registrations can slip past the pre-check and land on
		// the unique index instead.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.NewValidationError("username", "username or email already in use")
		}
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

func (s *UserServiceImpl) List(ctx context.Context, limitRaw, pageRaw string) ([]domain.User, error) {
	limit := parsePositive(limitRaw, defaultListLimit)
	page := parsePositive(pageRaw, defaultListPage)
	return s.store.Users().List(ctx, limit, page)
}

func (s *UserServiceImpl) Get(ctx context.Context, key string) (*domain.User, error) {
	return s.store.Users().GetByIDOrUsername(ctx, key)
}

func (s *UserServiceImpl) Update(ctx context.Context, r dto.UpdateUserRequest) (*domain.User, error) {
	if r.ID <= 0 {
		return nil, domain.NewValidationError("id", "id is required")
	}

	patch := r.UserUpdate
	changes := map[string]any{}
	if patch.Username != nil {
		if *patch.Username == "" {
			return nil, domain.NewValidationError("username", "username cannot be empty")
		}
		changes["username"] = *patch.Username
	}
	if patch.Email != nil {
		if !validEmail(*patch.Email) {
			return nil, domain.NewValidationError("email", "email is malformed")
		}
		changes["email"] = *patch.Email
	}
	if patch.Password != nil {
		hash, err := s.passwords.Hash(*patch.Password)
		if err != nil {
			return nil, err
		}
		changes["password_hash"] = hash
	}
	if patch.FirstName != nil {
		changes["first_name"] = *patch.FirstName
	}
	if patch.LastName != nil {
		changes["last_name"] = *patch.LastName
	}
	if patch.DeviceAddress != nil {
		changes["device_address"] = netutil.CanonicalAddr(*patch.DeviceAddress)
	}

	var updated *domain.User
	err := s.store.WithTx(ctx, func(tx *store.Store) error {
		if patch.Username != nil || patch.Email != nil {
			username := valueOr(patch.Username, "")
			email := valueOr(patch.Email, "")
			taken, err := tx.Users().UsernameOrEmailTaken(ctx, username, email, r.ID)
			if err != nil {
				return err
			}
			if taken {
				return domain.NewValidationError("username", "username or email already in use")
			}
		}
		var err error
		updated, err = tx.Users().UpdateFields(ctx, r.ID, changes)
		return err
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.NewValidationError("username", "username or email already in use")
		}
		return nil, err
	}
	return updated, nil
}

func (s *UserServiceImpl) Delete(ctx context.Context, id int64) (*domain.User, error) {
	return s.store.Users().Delete(ctx, id)
}

func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

func parsePositive(raw string, def int) int {
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func valueOr(p *string, def string) string {
	if p != nil {
		return *p
	}
	return def
}

package dto

import "messaging-api/internal/domain"

type RegisterUserRequest struct {
	Username      string `json:"username"`
	Email         string `json:"email"`
	Password      string `json:"password,omitempty"`
	FirstName     string `json:"firstName,omitempty"`
	LastName      string `json:"lastName,omitempty"`
	DeviceAddress string `json:"deviceAddress,omitempty"`
}

// UserPatch is the typed update whitelist. Absent JSON keys stay nil, so a
// field is only applied when the caller actually sent it; unknown keys are
// dropped by decoding.
type UserPatch struct {
	Username      *string `json:"username"`
	Password      *string `json:"password"`
	Email         *string `json:"email"`
	FirstName     *string `json:"firstName"`
	LastName      *string `json:"lastName"`
	DeviceAddress *string `json:"deviceAddress"`
}

func (p UserPatch) Empty() bool {
	return p.Username == nil && p.Password == nil && p.Email == nil &&
		p.FirstName == nil && p.LastName == nil && p.DeviceAddress == nil
}

type UpdateUserRequest struct {
	ID         int64     `json:"id"`
	UserUpdate UserPatch `json:"userUpdate"`
}

type UpdateUserResponse struct {
	Status string       `json:"status"`
	User   *domain.User `json:"user"`
}

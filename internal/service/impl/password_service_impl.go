package impl

import "golang.org/x/crypto/bcrypt"

// PasswordServiceBcrypt wraps bcrypt, which salts internally and stores the
// salt inside the encoded hash.
type PasswordServiceBcrypt struct {
	cost int
}

func NewPasswordServiceBcrypt() *PasswordServiceBcrypt {
	return &PasswordServiceBcrypt{cost: bcrypt.DefaultCost}
}

func (p *PasswordServiceBcrypt) Hash(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), p.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (p *PasswordServiceBcrypt) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

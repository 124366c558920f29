package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed    = errors.New("password hashing failed")
	ErrComparisonFailed = errors.New("password comparison failed")
	ErrInvalidPassword  = errors.New("invalid password")
)

const DefaultCost = bcrypt.DefaultCost

// Hasher hashes account passwords. Tests use bcrypt.MinCost to stay fast.
type Hasher struct {
	cost int
}

func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &Hasher{cost: cost}
}

func NewDefaultHasher() *Hasher {
	return NewHasher(DefaultCost)
}

func (h *Hasher) Hash(password string) (string, error) {
	if password == "" {
		return "", ErrInvalidPassword
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", ErrHashingFailed
	}

	return string(hashedBytes), nil
}

func (h *Hasher) Compare(hashedPassword, password string) error {
	if hashedPassword == "" || password == "" {
		return ErrInvalidPassword
	}

	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrComparisonFailed
		}
		return err
	}

	return nil
}

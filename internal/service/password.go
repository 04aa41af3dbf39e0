package service

import "golang.org/x/crypto/bcrypt"

// PasswordHasher turns a submitted password into its stored form and checks
// a login attempt against it.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Matches(stored, password string) bool
}

// PlainHasher stores passwords as submitted and compares them with plain
// string equality.
type PlainHasher struct{}

func (PlainHasher) Hash(password string) (string, error) {
	return password, nil
}

func (PlainHasher) Matches(stored, password string) bool {
	return stored == password
}

type BcryptHasher struct {
	Cost int
}

func (h BcryptHasher) Hash(password string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (BcryptHasher) Matches(stored, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
}

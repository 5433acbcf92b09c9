package services

import (
	"crypto/rand"
	"math/big"

	"churchattendance/internal/domain"
)

// Confirmation codes are six digits.
const (
	MinConfirmationCode = 100000
	MaxConfirmationCode = 999999
)

type randomCodeGenerator struct{}

// NewCodeGenerator returns a CodeGenerator drawing uniformly from [100000, 999999].
func NewCodeGenerator() domain.CodeGenerator {
	return randomCodeGenerator{}
}

func (randomCodeGenerator) Generate() (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(MaxConfirmationCode-MinConfirmationCode+1))
	if err != nil {
		return 0, err
	}
	return MinConfirmationCode + int(n.Int64()), nil
}

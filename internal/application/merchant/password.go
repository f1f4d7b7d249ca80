package merchant

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

const (
	tempPasswordLength = 10
	tempPasswordChars  = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// generateTempPassword contraseña temporal de solo letras.
func generateTempPassword() (string, error) {
	max := big.NewInt(int64(len(tempPasswordChars)))
	out := make([]byte, tempPasswordLength)
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("generar contraseña: %w", err)
		}
		out[i] = tempPasswordChars[n.Int64()]
	}
	return string(out), nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash de contraseña: %w", err)
	}
	return string(hash), nil
}

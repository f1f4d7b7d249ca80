// Package usermanagement provisiona sub-administradores con su mapa de privilegios.
package usermanagement

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/evcharge-admin-api/internal/application/dto"
	"github.com/jhoicas/evcharge-admin-api/internal/domain"
	"github.com/jhoicas/evcharge-admin-api/internal/domain/entity"
	"github.com/jhoicas/evcharge-admin-api/internal/domain/repository"
)

// UseCase alta de sub-usuarios.
type UseCase struct {
	repo repository.UserManagementRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.UserManagementRepository) *UseCase {
	return &UseCase{repo: repo}
}

// AddSubUser guarda el sub-administrador con la contraseña hasheada.
// Un estado distinto de SUCCESS se devuelve como error de negocio.
func (uc *UseCase) AddSubUser(ctx context.Context, in dto.AddSubUserRequest) (string, error) {
	if !validRole(in.Role) {
		return "", domain.NewValidationError("role", "Valid roles are: ADMIN_ACCOUNTING, ADMIN_MARKETING, ADMIN_NOC")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash de contraseña: %w", err)
	}

	p := in.Privileges
	st, err := uc.repo.AddSubUser(ctx, entity.SubUser{
		Username:     in.Username,
		PasswordHash: string(hash),
		Role:         in.Role,
		Privileges: entity.Privileges{
			Reports:          p.Reports,
			CPOs:             p.CPOs,
			Locations:        p.Locations,
			EVSEs:            p.EVSEs,
			CustomerService:  p.CustomerService,
			UserManagement:   p.UserManagement,
			AccountSettings:  p.AccountSettings,
			RFIDUserAccounts: p.RFIDUserAccounts,
			Topups:           p.Topups,
		},
	})
	if err != nil {
		return "", err
	}
	if !st.IsSuccess() {
		return "", domain.NewStatusError(st.String())
	}
	return st.String(), nil
}

func validRole(role string) bool {
	for _, r := range entity.SubUserRoles {
		if r == role {
			return true
		}
	}
	return false
}

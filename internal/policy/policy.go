// Package policy is the single definition of the tenant access rule.
// Two invocation modes exist for the same rule: CanAccessEmpresa rejects a
// request aimed at a specific empresa, EmpresaScope narrows a listing query.
// Route-level role membership lives here too (Allowed), so that every
// authorization decision has one test surface.
package policy

import (
	"github.com/google/uuid"

	"github.com/mausoftSistemas/sistema-crt/internal/apierror"
	"github.com/mausoftSistemas/sistema-crt/internal/model"
)

// Allowed reports whether rol is a member of roles.
func Allowed(rol model.Rol, roles ...model.Rol) bool {
	for _, r := range roles {
		if r == rol {
			return true
		}
	}
	return false
}

// CanAccessEmpresa decides whether user may touch rows belonging to empresaID.
// ADMIN has full access; TECNICO and TECNICO_ADMIN act across all empresas
// (business rule: they upload documents for any client); LECTOR only within
// its own affiliation. The switch is exhaustive over model.Rol on purpose.
func CanAccessEmpresa(user *model.Usuario, empresaID uuid.UUID) error {
	switch user.Rol {
	case model.RolAdmin, model.RolTecnico, model.RolTecnicoAdmin:
		return nil
	case model.RolLector:
		if user.EmpresaID != nil && *user.EmpresaID == empresaID {
			return nil
		}
		return apierror.Forbidden("No tienes acceso a esta empresa")
	default:
		return apierror.Forbidden("No tienes acceso a esta empresa")
	}
}

// CanAccessEmpresaRef applies the same rule to rows whose empresa column is
// nullable. A row without an empresa is administration-wide: LECTOR never
// reaches it, the other roles always do.
func CanAccessEmpresaRef(user *model.Usuario, empresaID *uuid.UUID) error {
	if empresaID != nil {
		return CanAccessEmpresa(user, *empresaID)
	}
	switch user.Rol {
	case model.RolAdmin, model.RolTecnico, model.RolTecnicoAdmin:
		return nil
	default:
		return apierror.Forbidden("No tienes acceso a esta empresa")
	}
}

// EmpresaScope is the filter-mode counterpart of CanAccessEmpresa for list
// endpoints: it returns the empresa id the result set must be restricted to.
// limited=false means the caller sees every empresa. A LECTOR without an
// affiliation is limited to nothing (uuid.Nil scope — callers must return an
// empty result set, not an error).
func EmpresaScope(user *model.Usuario) (scope uuid.UUID, limited bool) {
	switch user.Rol {
	case model.RolAdmin, model.RolTecnico, model.RolTecnicoAdmin:
		return uuid.Nil, false
	case model.RolLector:
		if user.EmpresaID != nil {
			return *user.EmpresaID, true
		}
		return uuid.Nil, true
	default:
		return uuid.Nil, true
	}
}

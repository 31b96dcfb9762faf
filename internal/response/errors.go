package response

import "github.com/projetoguri/sgpg/internal/apperr"

// ErrCode is a typed error code enum for consistent error identification,
// shared by JSON responses and page notifications.
type ErrCode string

const (
	// ─── Authentication ────────────────────────────────────────────────
	ErrInvalidCredentials ErrCode = "INVALID_CREDENTIALS"
	ErrEmployeeDeleted    ErrCode = "EMPLOYEE_DELETED"

	// ─── Authorization ─────────────────────────────────────────────────
	ErrPermissionDenied ErrCode = "PERMISSION_DENIED"

	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation ErrCode = "VALIDATION_ERROR"
	ErrInvalidID  ErrCode = "INVALID_ID"
	ErrUnchanged  ErrCode = "UNCHANGED"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrNotFound        ErrCode = "NOT_FOUND"
	ErrAlreadyEnrolled ErrCode = "ALREADY_ENROLLED"

	// ─── Rate Limiting ─────────────────────────────────────────────────
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	// ─── Authentication ────────────────────────────────────────────────
	case ErrInvalidCredentials:
		return "E-mail ou senha inválidos."
	case ErrEmployeeDeleted:
		return "Usuário desativado. Contate um administrador."

	// ─── Authorization ─────────────────────────────────────────────────
	case ErrPermissionDenied:
		return "Usuário não possui permissão."

	// ─── Validation ────────────────────────────────────────────────────
	case ErrValidation:
		return "Verifique os campos destacados."
	case ErrInvalidID:
		return "Identificador inválido."
	case ErrUnchanged:
		return "Nenhuma alteração para salvar."

	// ─── Resources ─────────────────────────────────────────────────────
	case ErrNotFound:
		return "Registro não encontrado."
	case ErrAlreadyEnrolled:
		return "Aluno já matriculado nesta turma."

	// ─── Rate Limiting ─────────────────────────────────────────────────
	case ErrRateLimitExceeded:
		return "Muitas tentativas. Aguarde um minuto e tente novamente."

	default:
		return apperr.GenericMessage
	}
}

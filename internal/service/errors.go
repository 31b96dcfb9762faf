package service

import "github.com/projetoguri/sgpg/internal/apperr"

// Application errors raised deliberately by services. Handlers compare them
// with errors.Is and show their message as is.
var (
	ErrPermissionDenied = apperr.New("Usuário não possui permissão.")
	ErrNotFound         = apperr.New("Registro não encontrado.")
	ErrAlreadyEnrolled  = apperr.New("Aluno já matriculado nesta turma.")
)

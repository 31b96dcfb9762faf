package client

import (
	"context"
	"net/http"

	"github.com/projetoguri/sgpg/internal/apperr"
	"github.com/projetoguri/sgpg/internal/format"
	"github.com/projetoguri/sgpg/internal/model"
)

// EmployeeResource adds sign-in and phone/CPF normalization to the generic resource.
type EmployeeResource struct {
	*Resource[model.Employee, model.EmployeeDTO]
}

type loginBody struct {
	Email    string `json:"employee_email"`
	Password string `json:"employee_password"`
}

// Login checks the credentials against the backend and returns the employee.
func (r *EmployeeResource) Login(ctx context.Context, email, password string) (*model.Employee, error) {
	var env model.Envelope[*model.Employee]
	body := loginBody{Email: email, Password: password}
	if err := r.c.do(ctx, http.MethodPost, []string{r.path, "login"}, body, &env); err != nil {
		return nil, err
	}
	if env.Records == nil {
		return nil, apperr.WithStatus(http.StatusUnauthorized, env.Message)
	}
	return env.Records, nil
}

// Update stores phone and CPF digits-only, whatever the caller passed.
func (r *EmployeeResource) Update(ctx context.Context, id int, dto model.EmployeeDTO) (*model.Employee, error) {
	dto.EmployeePhone = format.Digits(dto.EmployeePhone)
	dto.EmployeeCPF = format.Digits(dto.EmployeeCPF)
	return r.Resource.Update(ctx, id, dto)
}

func normalizeEmployee(e *model.Employee) {
	e.EmployeeCPF = format.CPF(e.EmployeeCPF)
	e.EmployeePhone = format.Phone(e.EmployeePhone)
}

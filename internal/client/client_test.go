package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/projetoguri/sgpg/internal/apperr"
	"github.com/projetoguri/sgpg/internal/model"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, mux *http.ServeMux) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	c, err := New(srv.URL+"/", 5*time.Second, zerolog.Nop())
	require.NoError(t, err)
	return c, srv
}

func writeEnvelope(w http.ResponseWriter, status int, message string, records any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"message": message, "records": records})
}

func TestNewRejectsRelativeURL(t *testing.T) {
	_, err := New("localhost:5000", time.Second, zerolog.Nop())
	require.Error(t, err)
}

func TestGetAllSoftDeleteFiltering(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /students", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, "ok", []map[string]any{
			{"student_id": 1, "student_name": "Ana", "student_cpf": "52998224725", "is_deleted": false},
			{"student_id": 2, "student_name": "Bruno", "student_cpf": "11144477735", "is_deleted": true},
			{"student_id": 3, "student_name": "Carla", "student_cpf": "52998224725", "is_deleted": false},
		})
	})
	c, _ := newTestClient(t, mux)
	ctx := context.Background()

	t.Run("default drops deleted records", func(t *testing.T) {
		students, err := c.Students.GetAll(ctx, false)
		require.NoError(t, err)
		require.Len(t, students, 2)
		for _, s := range students {
			assert.False(t, s.IsDeleted)
		}
		assert.Equal(t, []int{1, 3}, []int{students[0].StudentID, students[1].StudentID})
	})

	t.Run("includeDeleted returns everything", func(t *testing.T) {
		students, err := c.Students.GetAll(ctx, true)
		require.NoError(t, err)
		require.Len(t, students, 3)
		assert.True(t, students[1].IsDeleted)
	})
}

func TestGetAllHandlesNullRecords(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /roles", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, "empty", nil)
	})
	c, _ := newTestClient(t, mux)

	roles, err := c.Roles.GetAll(context.Background(), false)
	require.NoError(t, err)
	assert.Empty(t, roles)
	assert.NotNil(t, roles)
}

func TestEmployeesAreNormalizedForDisplay(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /employees", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, "ok", []map[string]any{{
			"employee_id":     7,
			"employee_name":   "Maria",
			"employee_cpf":    "52998224725",
			"employee_phone":  "14991234567",
			"employee_salary": "2500.50",
			"employee_role":   4,
		}})
	})
	c, _ := newTestClient(t, mux)

	employees, err := c.Employees.GetAll(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, employees, 1)
	assert.Equal(t, "529.982.247-25", employees[0].EmployeeCPF)
	assert.Equal(t, "(14) 9 9123-4567", employees[0].EmployeePhone)
	assert.InDelta(t, 2500.50, float64(employees[0].EmployeeSalary), 0.001)
	assert.Equal(t, model.RoleAdmin, employees[0].EmployeeRole)
}

func TestEmployeeUpdateSendsDigitsOnly(t *testing.T) {
	var got model.EmployeeDTO
	mux := http.NewServeMux()
	mux.HandleFunc("PUT /employees/{id}", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "7", r.PathValue("id"))
		body, _ := io.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(body, &got))
		assert.NotContains(t, string(body), "employee_password")
		writeEnvelope(w, http.StatusOK, "updated", map[string]any{"employee_id": 7, "is_deleted": true})
	})
	c, _ := newTestClient(t, mux)

	updated, err := c.Employees.Update(context.Background(), 7, model.EmployeeDTO{
		EmployeeName:  "Maria",
		EmployeeCPF:   "529.982.247-25",
		EmployeePhone: "(14) 9 9123-4567",
		IsDeleted:     true,
	})
	require.NoError(t, err)
	assert.True(t, updated.IsDeleted)
	assert.Equal(t, "14991234567", got.EmployeePhone)
	assert.Equal(t, "52998224725", got.EmployeeCPF)
	assert.True(t, got.IsDeleted)
}

func TestGetByID(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /classes/{id}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("id") == "1" {
			writeEnvelope(w, http.StatusOK, "ok", map[string]any{"class_id": 1, "class_name": "Violino I"})
			return
		}
		writeEnvelope(w, http.StatusOK, "not found", nil)
	})
	c, _ := newTestClient(t, mux)
	ctx := context.Background()

	class, err := c.Classes.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Violino I", class.ClassName)

	_, err = c.Classes.GetByID(ctx, 2)
	require.Error(t, err)
	assert.True(t, apperr.IsStatus(err, http.StatusNotFound))
}

func TestErrorsAreWrapped(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /roles", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusBadRequest, "role_title is required", nil)
	})
	mux.HandleFunc("GET /instruments", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("<html>not json</html>"))
	})
	c, srv := newTestClient(t, mux)
	ctx := context.Background()

	t.Run("non-2xx carries status and backend message", func(t *testing.T) {
		_, err := c.Roles.Create(ctx, model.RoleDTO{})
		ae, ok := apperr.As(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, ae.Status)
		assert.Equal(t, "role_title is required", ae.Message)
	})

	t.Run("undecodable body", func(t *testing.T) {
		_, err := c.Instruments.GetAll(ctx, false)
		_, ok := apperr.As(err)
		assert.True(t, ok)
	})

	t.Run("transport failure", func(t *testing.T) {
		srv.Close()
		_, err := c.InstrumentTypes.GetAll(ctx, false)
		ae, ok := apperr.As(err)
		require.True(t, ok)
		assert.Zero(t, ae.Status)
		assert.NotEmpty(t, ae.Stack())
	})
}

func TestLogin(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /employees/login", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if body["employee_email"] == "maria@sgpg.com" && body["employee_password"] == "5299" {
			writeEnvelope(w, http.StatusOK, "ok", map[string]any{
				"employee_id": 7, "employee_name": "Maria", "employee_email": "maria@sgpg.com", "employee_role": 4,
			})
			return
		}
		writeEnvelope(w, http.StatusUnauthorized, "Credenciais inválidas", nil)
	})
	c, _ := newTestClient(t, mux)
	ctx := context.Background()

	emp, err := c.Employees.Login(ctx, "maria@sgpg.com", "5299")
	require.NoError(t, err)
	assert.Equal(t, 7, emp.EmployeeID)

	_, err = c.Employees.Login(ctx, "maria@sgpg.com", "wrong")
	require.Error(t, err)
	assert.True(t, apperr.IsStatus(err, http.StatusUnauthorized))
}

func TestClassRoster(t *testing.T) {
	var enrolled model.StudentOfClassDTO
	removed := ""
	mux := http.NewServeMux()
	mux.HandleFunc("GET /classes/{id}/students", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, "ok", []map[string]any{{
			"student_id": 1, "class_id": 3, "created_by": 7,
			"students": map[string]any{"student_id": 1, "student_name": "Ana"},
		}})
	})
	mux.HandleFunc("POST /classes/{id}/students", func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&enrolled))
		writeEnvelope(w, http.StatusCreated, "ok", enrolled)
	})
	mux.HandleFunc("DELETE /classes/{id}/students/{student}", func(w http.ResponseWriter, r *http.Request) {
		removed = r.PathValue("id") + "/" + r.PathValue("student")
		writeEnvelope(w, http.StatusOK, "ok", nil)
	})
	c, _ := newTestClient(t, mux)
	ctx := context.Background()

	roster, err := c.Classes.Roster(ctx, 3)
	require.NoError(t, err)
	require.Len(t, roster, 1)
	assert.Equal(t, "Ana", roster[0].Student.StudentName)

	_, err = c.Classes.Enroll(ctx, model.StudentOfClassDTO{StudentID: 2, ClassID: 3, CreatedBy: 7})
	require.NoError(t, err)
	assert.Equal(t, 2, enrolled.StudentID)

	require.NoError(t, c.Classes.Unenroll(ctx, 3, 2))
	assert.Equal(t, "3/2", removed)
}

func TestPing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	c, err := New(srv.URL, time.Second, zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, c.Ping(context.Background()))

	srv.Close()
	err = c.Ping(context.Background())
	require.Error(t, err)
	_, ok := apperr.As(err)
	assert.True(t, ok)
}

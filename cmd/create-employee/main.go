package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/projetoguri/sgpg/internal/client"
	"github.com/projetoguri/sgpg/internal/config"
	"github.com/projetoguri/sgpg/internal/form"
	"github.com/projetoguri/sgpg/internal/logger"
	"github.com/projetoguri/sgpg/internal/model"
	"github.com/projetoguri/sgpg/internal/policy"
	"github.com/projetoguri/sgpg/internal/service"
	"github.com/projetoguri/sgpg/internal/session"
	"github.com/projetoguri/sgpg/internal/validator"
	"golang.org/x/term"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	validator.Setup()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	api, err := client.New(cfg.BackendURL, cfg.BackendTimeout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid backend configuration")
	}

	authService := service.NewAuthService(api.Employees, session.NewStore(), cfg.SessionStaleAfter, log)
	employees := service.NewEntityService[model.Employee, model.EmployeeDTO](api.Employees, policy.Employees, log)

	reader := bufio.NewReader(os.Stdin)

	// ─── Sign In ───────────────────────────────────────────────────────
	fmt.Println("=== Sign in ===")
	email := prompt(reader, "Your email: ")
	password, err := promptPassword("Your password: ")
	if err != nil {
		fmt.Println("Error reading password")
		return
	}

	actor, err := authService.SignIn(ctx, session.NewMemoryStorage(), email, password)
	if err != nil {
		log.Fatal().Err(err).Msg("Sign-in failed")
	}
	fmt.Printf("Signed in as %s (%s)\n\n", actor.EmployeeName, actor.EmployeeRole)

	// ─── CLI Input ─────────────────────────────────────────────────────
	fmt.Println("=== Create New Employee ===")

	f := form.Employee{
		Name:  prompt(reader, "Name: "),
		CPF:   prompt(reader, "CPF: "),
		Email: prompt(reader, "Email: "),
		Phone: prompt(reader, "Phone: "),
		Addr:  prompt(reader, "Address: "),
	}

	if policy.Allowed(actor.EmployeeRole, policy.Employees, policy.AssignRole) {
		roles, err := api.Roles.GetAll(ctx, false)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load roles")
		}
		sort.Slice(roles, func(i, j int) bool { return roles[i].RoleID < roles[j].RoleID })
		for _, r := range roles {
			fmt.Printf("  %d) %s\n", r.RoleID, r.RoleTitle)
		}
		if raw := prompt(reader, fmt.Sprintf("Role ID (default %d): ", model.RoleStaff)); raw != "" {
			id, err := strconv.Atoi(raw)
			if err != nil {
				fmt.Println("Error: Role ID must be a number")
				return
			}
			f.Role = id
		}
	}

	if policy.Allowed(actor.EmployeeRole, policy.Employees, policy.SetSalary) {
		if raw := prompt(reader, "Salary (default 0): "); raw != "" {
			salary, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
			if err != nil {
				fmt.Println("Error: Salary must be a number")
				return
			}
			f.Salary = salary
		}
	}

	f.Password, err = promptPassword("Password (blank = first 4 CPF digits): ")
	if err != nil {
		fmt.Println("Error reading password")
		return
	}
	if f.Password != "" {
		f.ConfirmPassword, err = promptPassword("Confirm password: ")
		if err != nil {
			fmt.Println("Error reading password")
			return
		}
	}

	// ─── Logic ─────────────────────────────────────────────────────────
	if errs := validator.Struct(&f); errs != nil {
		fmt.Println("\nPlease fix the following fields:")
		for field, msg := range errs {
			fmt.Printf("  %s: %s\n", field, msg)
		}
		os.Exit(1)
	}

	created, err := employees.Create(ctx, actor, f.CreateDTO(actor))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create employee")
	}

	fmt.Printf("\nSuccess! Employee '%s' (%s) created with ID: %d\n", created.EmployeeName, created.EmployeeEmail, created.EmployeeID)
}

func prompt(reader *bufio.Reader, label string) string {
	fmt.Print(label)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

func promptPassword(label string) (string, error) {
	fmt.Print(label)
	b, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	return string(b), err
}

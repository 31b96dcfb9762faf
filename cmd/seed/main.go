package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"syscall"
	"time"

	"github.com/projetoguri/sgpg/internal/client"
	"github.com/projetoguri/sgpg/internal/config"
	"github.com/projetoguri/sgpg/internal/logger"
	"github.com/projetoguri/sgpg/internal/model"
	"github.com/projetoguri/sgpg/internal/policy"
	"github.com/projetoguri/sgpg/internal/service"
	"github.com/projetoguri/sgpg/internal/session"
	"golang.org/x/term"
)

func main() {
	var (
		email  string
		dryRun bool
	)
	flag.StringVar(&email, "email", os.Getenv("SEED_EMAIL"), "Email of the employee the records are created by")
	flag.BoolVar(&dryRun, "dry-run", false, "Only print what would be created")
	flag.Parse()

	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if email == "" {
		fmt.Println("Usage: seed -email admin@example.com [-dry-run]")
		os.Exit(2)
	}

	password := os.Getenv("SEED_PASSWORD")
	if password == "" {
		fmt.Print("Password: ")
		b, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Println()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to read password")
		}
		password = string(b)
	}

	api, err := client.New(cfg.BackendURL, cfg.BackendTimeout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid backend configuration")
	}

	authService := service.NewAuthService(api.Employees, session.NewStore(), cfg.SessionStaleAfter, log)
	actor, err := authService.SignIn(ctx, session.NewMemoryStorage(), email, password)
	if err != nil {
		log.Fatal().Err(err).Msg("Sign-in failed")
	}

	s := &seeder{actor: actor, dryRun: dryRun, log: log}

	fmt.Println("=== Seeding reference data ===")

	roles, err := seedAll(ctx, s,
		service.NewEntityService[model.Role, model.RoleDTO](api.Roles, policy.Roles, log),
		seedRoles,
		func(r model.Role) string { return r.RoleTitle },
		func(d model.RoleDTO) string { return d.RoleTitle },
		func(d model.RoleDTO, by int) model.RoleDTO { d.CreatedBy = by; return d },
	)
	report("roles", roles, err)

	types, err := seedAll(ctx, s,
		service.NewEntityService[model.InstrumentType, model.InstrumentTypeDTO](api.InstrumentTypes, policy.Instruments, log),
		seedInstrumentTypes,
		func(t model.InstrumentType) string { return t.InstrumentTypeName },
		func(d model.InstrumentTypeDTO) string { return d.InstrumentTypeName },
		func(d model.InstrumentTypeDTO, by int) model.InstrumentTypeDTO { d.CreatedBy = by; return d },
	)
	report("instrument types", types, err)

	brands, err := seedAll(ctx, s,
		service.NewEntityService[model.InstrumentBrand, model.InstrumentBrandDTO](api.InstrumentBrands, policy.Instruments, log),
		seedInstrumentBrands,
		func(b model.InstrumentBrand) string { return b.InstrumentBrandName },
		func(d model.InstrumentBrandDTO) string { return d.InstrumentBrandName },
		func(d model.InstrumentBrandDTO, by int) model.InstrumentBrandDTO { d.CreatedBy = by; return d },
	)
	report("instrument brands", brands, err)

	fmt.Println("\nSeed completed!")
}

func report(what string, res result, err error) {
	if err != nil {
		fmt.Printf("Error seeding %s after %d created: %v\n", what, res.Created, err)
		os.Exit(1)
	}
	fmt.Printf("%-18s created %d, already present %d\n", what+":", res.Created, res.Skipped)
}

package main

import (
	"context"
	"strings"

	"github.com/projetoguri/sgpg/internal/client"
	"github.com/projetoguri/sgpg/internal/model"
	"github.com/projetoguri/sgpg/internal/service"
	"github.com/rs/zerolog"
)

// seeder creates the records whose name is not taken yet.
type seeder struct {
	actor  *model.Session
	dryRun bool
	log    zerolog.Logger
}

// result counts what one seed run did for a resource.
type result struct {
	Created int
	Skipped int
}

func seedAll[T client.Record[D], D service.SoftDeletable[D]](
	ctx context.Context,
	s *seeder,
	svc *service.EntityService[T, D],
	items []D,
	storedName func(T) string,
	itemName func(D) string,
	withActor func(D, int) D,
) (result, error) {
	var res result

	existing, err := svc.List(ctx, true)
	if err != nil {
		return res, err
	}
	taken := make(map[string]bool, len(existing))
	for _, rec := range existing {
		taken[normalizeName(storedName(rec))] = true
	}

	for _, item := range items {
		name := itemName(item)
		if taken[normalizeName(name)] {
			res.Skipped++
			continue
		}
		if s.dryRun {
			s.log.Info().Str("resource", string(svc.Resource())).Str("name", name).Msg("Would create")
			res.Created++
			continue
		}
		if _, err := svc.Create(ctx, s.actor, withActor(item, s.actor.EmployeeID)); err != nil {
			return res, err
		}
		taken[normalizeName(name)] = true
		res.Created++
		s.log.Info().Str("resource", string(svc.Resource())).Str("name", name).Msg("Created")
	}
	return res, nil
}

func normalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

package service

import (
	"context"

	"github.com/projetoguri/sgpg/internal/client"
)

// DashboardData holds the home page counters.
type DashboardData struct {
	Students    int
	Instruments int
	Employees   int
	Classes     int
}

// DashboardService handles the home page metrics.
type DashboardService struct {
	api *client.Client
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(api *client.Client) *DashboardService {
	return &DashboardService{api: api}
}

// GetDashboardData counts the live records of each entity on the home page.
// The calls are made one at a time; the first failure stops the rest.
func (s *DashboardService) GetDashboardData(ctx context.Context) (*DashboardData, error) {
	var data DashboardData

	students, err := s.api.Students.GetAll(ctx, false)
	if err != nil {
		return nil, err
	}
	data.Students = len(students)

	instruments, err := s.api.Instruments.GetAll(ctx, false)
	if err != nil {
		return nil, err
	}
	data.Instruments = len(instruments)

	employees, err := s.api.Employees.GetAll(ctx, false)
	if err != nil {
		return nil, err
	}
	data.Employees = len(employees)

	classes, err := s.api.Classes.GetAll(ctx, false)
	if err != nil {
		return nil, err
	}
	data.Classes = len(classes)

	return &data, nil
}

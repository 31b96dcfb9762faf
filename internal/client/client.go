// Package client is the thin REST client for the external SGPG backend.
// Every failure it returns is an *apperr.Error.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/projetoguri/sgpg/internal/apperr"
	"github.com/projetoguri/sgpg/internal/model"
	"github.com/rs/zerolog"
)

// Client issues HTTP calls to the backend, one resource per entity type.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	log     zerolog.Logger

	Employees        *EmployeeResource
	Students         *Resource[model.Student, model.StudentDTO]
	Roles            *Resource[model.Role, model.RoleDTO]
	Instruments      *Resource[model.Instrument, model.InstrumentDTO]
	InstrumentTypes  *Resource[model.InstrumentType, model.InstrumentTypeDTO]
	InstrumentBrands *Resource[model.InstrumentBrand, model.InstrumentBrandDTO]
	Classes          *ClassResource
}

// New creates a Client for the backend at baseURL.
func New(baseURL string, timeout time.Duration, log zerolog.Logger) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse backend URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("backend URL %q must be absolute", baseURL)
	}

	c := &Client{
		baseURL: u,
		http:    &http.Client{Timeout: timeout},
		log:     log.With().Str("component", "rest_client").Logger(),
	}

	c.Employees = &EmployeeResource{Resource: newResource[model.Employee, model.EmployeeDTO](c, "employees")}
	c.Employees.normalize = normalizeEmployee
	c.Students = newResource[model.Student, model.StudentDTO](c, "students")
	c.Roles = newResource[model.Role, model.RoleDTO](c, "roles")
	c.Instruments = newResource[model.Instrument, model.InstrumentDTO](c, "instruments")
	c.InstrumentTypes = newResource[model.InstrumentType, model.InstrumentTypeDTO](c, "instrumenttypes")
	c.InstrumentBrands = newResource[model.InstrumentBrand, model.InstrumentBrandDTO](c, "instrumentbrands")
	c.Classes = &ClassResource{Resource: newResource[model.Class, model.ClassDTO](c, "classes")}

	return c, nil
}

// do sends one request and decodes the {message, records} envelope into out.
// out may be nil when the caller does not need the body.
func (c *Client) do(ctx context.Context, method string, path []string, body, out any) error {
	endpoint := c.baseURL.JoinPath(path...)

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return apperr.Wrap(fmt.Errorf("encode request: %w", err))
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), reader)
	if err != nil {
		return apperr.Wrap(err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("method", method).Str("url", endpoint.String()).Msg("Backend request failed")
		return apperr.Wrap(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperr.Wrap(fmt.Errorf("read response: %w", err))
	}

	c.log.Debug().
		Str("method", method).
		Str("url", endpoint.String()).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("Backend request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var env model.Envelope[json.RawMessage]
		_ = json.Unmarshal(raw, &env)
		return apperr.WithStatus(resp.StatusCode, env.Message)
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return apperr.Wrap(fmt.Errorf("decode response: %w", err))
	}
	return nil
}

// Ping checks that the backend answers HTTP at all. Any status counts.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL.String(), nil)
	if err != nil {
		return apperr.Wrap(err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return apperr.Wrap(err)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.Body.Close()
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-gym-keeper/internal/config"
	"github.com/MKhiriev/go-gym-keeper/internal/logger"
	"github.com/MKhiriev/go-gym-keeper/internal/utils"
	"github.com/MKhiriev/go-gym-keeper/models"
	"github.com/go-resty/resty/v2"
)

const adminKeyHeader = "X-Admin-Key"

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the REST implementation of [ServerAdapter].
// A base URL without a scheme is treated as plain http.
func NewHTTPServerAdapter(cfg config.Adapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyBaseURL
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Register(ctx context.Context, registration models.Registration) (models.Session, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(registration).
		Post("/api/account/register")
	if err != nil {
		return models.Session{}, fmt.Errorf("register request: %w", err)
	}

	session, err := h.acceptSession(resp)
	if err != nil {
		return models.Session{}, fmt.Errorf("register: %w", err)
	}

	h.logger.Debug().Int64("account_id", session.Account.ID).Msg("registered")
	return session, nil
}

func (h *httpServerAdapter) Login(ctx context.Context, credentials models.Credentials) (models.Session, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(credentials).
		Post("/api/account/login")
	if err != nil {
		return models.Session{}, fmt.Errorf("login request: %w", err)
	}

	session, err := h.acceptSession(resp)
	if err != nil {
		return models.Session{}, fmt.Errorf("login: %w", err)
	}

	h.logger.Debug().Int64("account_id", session.Account.ID).Msg("logged in")
	return session, nil
}

// acceptSession decodes a Register/Login answer and stores its token. The
// Authorization header wins over the token in the body.
func (h *httpServerAdapter) acceptSession(resp *resty.Response) (models.Session, error) {
	if err := mapHTTPError(resp); err != nil {
		return models.Session{}, err
	}

	session, err := decode[models.Session](resp)
	if err != nil {
		return models.Session{}, err
	}

	if header := resp.Header().Get("Authorization"); header != "" {
		token, err := utils.ParseBearerToken(header)
		if err != nil {
			return models.Session{}, fmt.Errorf("parse bearer token: %w", err)
		}
		session.Token = token
	}
	if session.Token == "" {
		return models.Session{}, errors.New("server issued no token")
	}

	h.SetToken(session.Token)
	return session, nil
}

func (h *httpServerAdapter) Logout(ctx context.Context) error {
	if h.Token() == "" {
		return nil
	}

	resp, err := h.authedRequest(ctx).Post("/api/account/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.SetToken("")
	return nil
}

func (h *httpServerAdapter) CurrentSession(ctx context.Context) (models.Session, error) {
	if h.Token() == "" {
		return models.Session{}, ErrNoSession
	}

	resp, err := h.authedRequest(ctx).Get("/api/account/session")
	if err != nil {
		return models.Session{}, fmt.Errorf("current session request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		if errors.Is(err, ErrNotFound) {
			return models.Session{}, ErrNoSession
		}
		return models.Session{}, err
	}

	return decode[models.Session](resp)
}

func (h *httpServerAdapter) ChangePassword(ctx context.Context, change models.PasswordChange) error {
	resp, err := h.authedRequest(ctx).
		SetBody(change).
		Put("/api/account/password")
	if err != nil {
		return fmt.Errorf("change password request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) ListAccounts(ctx context.Context, adminKey string) ([]models.Account, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader(adminKeyHeader, adminKey).
		Get("/api/admin/accounts")
	if err != nil {
		return nil, fmt.Errorf("list accounts request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return decode[[]models.Account](resp)
}

func (h *httpServerAdapter) CalculateBMI(ctx context.Context, input models.BiometricInput) (models.BMIResult, error) {
	return calculate[models.BMIResult](ctx, h, "/api/calculator/bmi", input)
}

func (h *httpServerAdapter) CalculateBodyFat(ctx context.Context, input models.BiometricInput) (models.BodyFatResult, error) {
	return calculate[models.BodyFatResult](ctx, h, "/api/calculator/body-fat", input)
}

func (h *httpServerAdapter) CalculateCalorieTargets(ctx context.Context, input models.BiometricInput) (models.CalorieResult, error) {
	return calculate[models.CalorieResult](ctx, h, "/api/calculator/calories", input)
}

func (h *httpServerAdapter) ProfileMetrics(ctx context.Context, level models.ActivityLevel) (models.MetricsReport, error) {
	req := h.authedRequest(ctx)
	if level != "" {
		req.SetQueryParam("activity_level", string(level))
	}

	resp, err := req.Get("/api/calculator/profile")
	if err != nil {
		return models.MetricsReport{}, fmt.Errorf("profile metrics request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MetricsReport{}, err
	}

	return decode[models.MetricsReport](resp)
}

func (h *httpServerAdapter) ServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(string(resp.Body())), nil
}

func calculate[T any](ctx context.Context, h *httpServerAdapter, path string, input models.BiometricInput) (T, error) {
	var zero T

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(input).
		Post(path)
	if err != nil {
		return zero, fmt.Errorf("calculate %s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return zero, err
	}

	return decode[T](resp)
}

func decode[T any](resp *resty.Response) (T, error) {
	var v T
	if err := json.Unmarshal(resp.Body(), &v); err != nil {
		return v, fmt.Errorf("decode response of %s: %w", resp.Request.URL, err)
	}
	return v, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

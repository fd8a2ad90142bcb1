// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/go-doc-archive/internal/config"
	"github.com/MKhiriev/go-doc-archive/internal/logger"
	"github.com/MKhiriev/go-doc-archive/internal/utils"
	"github.com/MKhiriev/go-doc-archive/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient().WithBase(baseURL, adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
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

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json")
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/v1/auth/login and stores the returned token.
func (h *httpServerAdapter) Login(ctx context.Context, creds models.Credentials) (models.LoginResult, error) {
	var envelope models.APIResponse[models.LoginResult]

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		SetResult(&envelope).
		Post("/api/v1/auth/login")
	if err != nil {
		return models.LoginResult{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResult{}, err
	}
	if !envelope.Success {
		return models.LoginResult{}, unsuccessful(envelope.Message)
	}
	if envelope.Data == nil || envelope.Data.Token == "" {
		return models.LoginResult{}, fmt.Errorf("%w: login response without token", ErrMalformedResponse)
	}

	h.SetToken(envelope.Data.Token)
	return *envelope.Data, nil
}

// ListUserDocuments implements [ServerAdapter]. It GETs
// /api/v1/documents/user/{userId} and validates the envelope before
// returning the documents.
func (h *httpServerAdapter) ListUserDocuments(ctx context.Context, userID int64) ([]models.BackendDocument, error) {
	resp, err := h.request(ctx).
		SetPathParam("userId", strconv.FormatInt(userID, 10)).
		Get("/api/v1/documents/user/{userId}")
	if err != nil {
		return nil, fmt.Errorf("list documents request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	docs, err := decodeDocumentsEnvelope(resp.Body())
	if err != nil {
		h.logger.Warn().Err(err).
			Str("func", "httpServerAdapter.ListUserDocuments").
			Int64("user_id", userID).
			Msg("rejected documents response")
		return nil, err
	}

	return docs, nil
}

// decodeDocumentsEnvelope validates {success, data: [...]} strictly.
func decodeDocumentsEnvelope(body []byte) ([]models.BackendDocument, error) {
	var envelope models.DocumentsEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	if envelope.Success == nil {
		return nil, fmt.Errorf("%w: missing success flag", ErrMalformedResponse)
	}
	if !*envelope.Success {
		return nil, unsuccessful(envelope.Message)
	}

	data := bytes.TrimSpace(envelope.Data)
	if len(data) == 0 || data[0] != '[' {
		return nil, fmt.Errorf("%w: data is not an array", ErrMalformedResponse)
	}

	var docs []models.BackendDocument
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	for i, d := range docs {
		if d.DocumentID <= 0 || strings.TrimSpace(d.FilePath) == "" {
			return nil, fmt.Errorf("%w: document #%d has no id or file path", ErrMalformedResponse, i)
		}
	}

	if docs == nil {
		docs = []models.BackendDocument{}
	}
	return docs, nil
}

// GetDocumentDetail implements [ServerAdapter]. It GETs /api/v1/documents/{id}.
func (h *httpServerAdapter) GetDocumentDetail(ctx context.Context, documentID int64) (*models.DocumentDetail, error) {
	var envelope models.APIResponse[models.DocumentDetail]

	resp, err := h.request(ctx).
		SetPathParam("id", strconv.FormatInt(documentID, 10)).
		SetResult(&envelope).
		Get("/api/v1/documents/{id}")
	if err != nil {
		return nil, fmt.Errorf("document detail request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return envelope.Data, nil
}

// RateDocument implements [ServerAdapter]. It POSTs the rating to
// /api/v1/documents/{id}/ratings.
func (h *httpServerAdapter) RateDocument(ctx context.Context, req models.RatingRequest) error {
	var envelope models.APIResponse[json.RawMessage]

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", strconv.FormatInt(req.DocumentID, 10)).
		SetBody(req).
		SetResult(&envelope).
		Post("/api/v1/documents/{id}/ratings")
	if err != nil {
		return fmt.Errorf("rate document request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}
	if !envelope.Success {
		return unsuccessful(envelope.Message)
	}

	return nil
}

// Download implements [ServerAdapter]. fileURL is used as is; relative URLs
// resolve against the base address.
func (h *httpServerAdapter) Download(ctx context.Context, fileURL, dst string) (int, error) {
	log := logger.FromContext(ctx)

	resp, err := h.client.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(fileURL)
	if err != nil {
		return 0, fmt.Errorf("download request: %w", err)
	}
	body := resp.RawBody()
	defer body.Close()

	if resp.StatusCode() != http.StatusOK {
		log.Warn().
			Str("func", "httpServerAdapter.Download").
			Str("url", fileURL).
			Int("status", resp.StatusCode()).
			Msg("download answered with non-200 status")
		_, _ = io.Copy(io.Discard, body)
		return resp.StatusCode(), nil
	}

	f, err := os.Create(dst)
	if err != nil {
		return resp.StatusCode(), fmt.Errorf("create download target: %w", err)
	}

	if _, err = io.Copy(f, body); err != nil {
		_ = f.Close()
		return resp.StatusCode(), fmt.Errorf("write download target: %w", err)
	}
	if err = f.Close(); err != nil {
		return resp.StatusCode(), fmt.Errorf("close download target: %w", err)
	}

	return resp.StatusCode(), nil
}

// UpdateProfile implements [ServerAdapter]. It PUTs to /api/v1/users/{id}.
func (h *httpServerAdapter) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.User, error) {
	var envelope models.APIResponse[models.User]

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", strconv.FormatInt(update.UserID, 10)).
		SetBody(update).
		SetResult(&envelope).
		Put("/api/v1/users/{id}")
	if err != nil {
		return models.User{}, fmt.Errorf("update profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}
	if !envelope.Success {
		return models.User{}, unsuccessful(envelope.Message)
	}

	if envelope.Data == nil {
		// some deployments answer with an empty data field
		return models.User{
			UserID:   update.UserID,
			Username: update.Username,
			FullName: update.FullName,
			Email:    update.Email,
			Role:     update.Role,
			IsActive: update.IsActive,
		}, nil
	}
	return *envelope.Data, nil
}

// UploadAvatar implements [ServerAdapter]. It POSTs a multipart form with
// the "avatar" file field to /api/v1/users/{id}/avatar.
func (h *httpServerAdapter) UploadAvatar(ctx context.Context, userID int64, path string) (string, error) {
	var envelope models.APIResponse[models.AvatarUpload]

	resp, err := h.request(ctx).
		SetPathParam("id", strconv.FormatInt(userID, 10)).
		SetFile("avatar", path).
		SetResult(&envelope).
		Post("/api/v1/users/{id}/avatar")
	if err != nil {
		return "", fmt.Errorf("upload avatar request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	if !envelope.Success {
		return "", unsuccessful(envelope.Message)
	}
	if envelope.Data == nil || envelope.Data.URL == "" {
		return "", fmt.Errorf("%w: avatar response without url", ErrMalformedResponse)
	}

	return envelope.Data.URL, nil
}

// ChangePassword implements [ServerAdapter]. It PUTs to
// /api/v1/users/{id}/password.
func (h *httpServerAdapter) ChangePassword(ctx context.Context, change models.PasswordChange) error {
	var envelope models.APIResponse[json.RawMessage]

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", strconv.FormatInt(change.UserID, 10)).
		SetBody(change).
		SetResult(&envelope).
		Put("/api/v1/users/{id}/password")
	if err != nil {
		return fmt.Errorf("change password request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}
	if !envelope.Success {
		return unsuccessful(envelope.Message)
	}

	return nil
}

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"funkdesk/backend/config"
	"funkdesk/backend/internal/dto"
)

// ── cloud business errors ──

var (
	ErrCloudDisabled    = errors.New("Der Cloud-Speicher ist nicht konfiguriert.")
	ErrCloudUnavailable = errors.New("Der Cloud-Speicher ist derzeit nicht erreichbar.")
	ErrCloudFileMissing = errors.New("Datei nicht gefunden.")
)

// CloudService is a thin client for the external file-storage service the
// dashboard's file browser talks to. It forwards the per-user scope and the
// station's API key; it holds no state of its own.
type CloudService interface {
	ListFiles(ctx context.Context, userID string) (*dto.CloudFileListResponse, error)
	DeleteFile(ctx context.Context, userID, fileID string) error
}

type cloudService struct {
	cfg    *config.CloudConfig
	client *http.Client
	logger *zap.Logger
}

// NewCloudService creates the CloudService.
func NewCloudService(cfg *config.CloudConfig, logger *zap.Logger) CloudService {
	return &cloudService{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

func (s *cloudService) ListFiles(ctx context.Context, userID string) (*dto.CloudFileListResponse, error) {
	if s.cfg.BaseURL == "" || s.cfg.APIKey == "" {
		return nil, ErrCloudDisabled
	}

	endpoint := fmt.Sprintf("%s/files?user_id=%s", s.cfg.BaseURL, url.QueryEscape(userID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Error("cloud list request failed", zap.Error(err))
		return nil, ErrCloudUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.logger.Warn("cloud list returned unexpected status", zap.Int("status", resp.StatusCode))
		return nil, ErrCloudUnavailable
	}

	var files []dto.CloudFile
	if err := json.NewDecoder(resp.Body).Decode(&files); err != nil {
		s.logger.Error("decoding cloud list failed", zap.Error(err))
		return nil, ErrCloudUnavailable
	}

	return &dto.CloudFileListResponse{Files: files}, nil
}

func (s *cloudService) DeleteFile(ctx context.Context, userID, fileID string) error {
	if s.cfg.BaseURL == "" || s.cfg.APIKey == "" {
		return ErrCloudDisabled
	}

	endpoint := fmt.Sprintf("%s/files/%s?user_id=%s",
		s.cfg.BaseURL, url.PathEscape(fileID), url.QueryEscape(userID))
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Error("cloud delete request failed", zap.Error(err))
		return ErrCloudUnavailable
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		return ErrCloudFileMissing
	default:
		s.logger.Warn("cloud delete returned unexpected status", zap.Int("status", resp.StatusCode))
		return ErrCloudUnavailable
	}
}

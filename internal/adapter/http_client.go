package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-vault-gate/models"
	"github.com/go-resty/resty/v2"
)

// HTTPClientConfig configures one outbound resty client.
type HTTPClientConfig struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

func newClient(cfg HTTPClientConfig) *resty.Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)
	if cfg.Token != "" {
		cli.SetAuthToken(cfg.Token)
	}

	return cli
}

type httpVaultAdapter struct {
	client *resty.Client
}

// NewHTTPVaultAdapter constructs a [VaultAdapter] speaking REST to the
// password-vault backend.
func NewHTTPVaultAdapter(cfg HTTPClientConfig) VaultAdapter {
	return &httpVaultAdapter{client: newClient(cfg)}
}

func (v *httpVaultAdapter) FetchSchema(ctx context.Context, typeID string) (*models.Schema, error) {
	resp, err := v.client.R().
		SetContext(ctx).
		SetPathParam("typeID", typeID).
		Get("/api/vault/templates/{typeID}")
	if err != nil {
		return nil, fmt.Errorf("fetch schema request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var schema models.Schema
	if err = json.Unmarshal(resp.Body(), &schema); err != nil {
		return nil, fmt.Errorf("decode schema response: %w", err)
	}

	return &schema, nil
}

func (v *httpVaultAdapter) FetchSecretDetails(ctx context.Context, uid string) (*models.StoredSecretValue, error) {
	return v.getRecord(ctx, "/api/vault/records/{uid}", uid, "fetch secret details")
}

func (v *httpVaultAdapter) ResolveReference(ctx context.Context, uid string) (*models.StoredSecretValue, error) {
	return v.getRecord(ctx, "/api/vault/references/{uid}", uid, "resolve reference")
}

func (v *httpVaultAdapter) getRecord(ctx context.Context, path, uid, op string) (*models.StoredSecretValue, error) {
	resp, err := v.client.R().
		SetContext(ctx).
		SetPathParam("uid", uid).
		Get(path)
	if err != nil {
		return nil, fmt.Errorf("%s request: %w", op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var record models.StoredSecretValue
	if err = json.Unmarshal(resp.Body(), &record); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", op, err)
	}

	return &record, nil
}

func (v *httpVaultAdapter) Execute(ctx context.Context, ticketID string, payload models.ExecutePayload) (models.ExecuteResult, error) {
	resp, err := v.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("ticketID", ticketID).
		SetBody(payload).
		Post("/api/vault/tickets/{ticketID}/execute")
	if err != nil {
		return models.ExecuteResult{}, fmt.Errorf("execute request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ExecuteResult{}, err
	}

	var result models.ExecuteResult
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return models.ExecuteResult{}, fmt.Errorf("decode execute response: %w", err)
	}

	return result, nil
}

type httpPlatformAdapter struct {
	client *resty.Client
}

// NewHTTPPlatformAdapter constructs a [PlatformAdapter] speaking REST to the
// ticketing platform.
func NewHTTPPlatformAdapter(cfg HTTPClientConfig) PlatformAdapter {
	return &httpPlatformAdapter{client: newClient(cfg)}
}

func (p *httpPlatformAdapter) FetchRole(ctx context.Context, ticketID string) (models.RoleLookupResult, error) {
	resp, err := p.client.R().
		SetContext(ctx).
		SetPathParam("ticketID", ticketID).
		Get("/api/platform/tickets/{ticketID}/role")
	if err != nil {
		return models.RoleLookupResult{}, fmt.Errorf("fetch role request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RoleLookupResult{}, err
	}

	var result models.RoleLookupResult
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return models.RoleLookupResult{}, fmt.Errorf("decode role response: %w", err)
	}

	return result, nil
}

func (p *httpPlatformAdapter) Reject(ctx context.Context, ticketID, reason string) (models.OperationResult, error) {
	resp, err := p.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("ticketID", ticketID).
		SetBody(models.RejectRequestBody{Reason: reason}).
		Post("/api/platform/tickets/{ticketID}/reject")
	if err != nil {
		return models.OperationResult{}, fmt.Errorf("reject request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.OperationResult{}, err
	}

	var result models.OperationResult
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return models.OperationResult{}, fmt.Errorf("decode reject response: %w", err)
	}

	return result, nil
}

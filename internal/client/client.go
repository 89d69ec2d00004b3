// Package client talks to the fundraiser API on behalf of the terminal dashboard.
// Reads retry with exponential backoff and can fall back to the built-in demo dataset
// when the API is unreachable.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"anoa.com/internfundraiser/internal/bootstrap"
	"anoa.com/internfundraiser/internal/config"
	authDto "anoa.com/internfundraiser/internal/modules/auth/dto"
	internDto "anoa.com/internfundraiser/internal/modules/intern/dto"
	internService "anoa.com/internfundraiser/internal/modules/intern/service"
	leaderboardDto "anoa.com/internfundraiser/internal/modules/leaderboard/dto"
	"anoa.com/internfundraiser/pkg/apperror"
	"anoa.com/internfundraiser/pkg/dto"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

const userAgent = "intern-fundraiser-dashboard/1.0"

type Client struct {
	httpClient    *http.Client
	baseURL       string
	demoFallback  bool
	maxRetries    uint64
	retryInterval time.Duration
	log           *zap.Logger

	mu    sync.RWMutex
	token string
}

// InternResult reports whether the intern came from the API or the demo dataset.
type InternResult struct {
	Intern   internDto.InternResponse
	Fallback bool
}

type LeaderboardResult struct {
	Entries  []leaderboardDto.LeaderboardEntry
	Fallback bool
}

func New(cfg *config.ClientConfig, log *zap.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	return &Client{
		httpClient:    &http.Client{Timeout: timeout},
		baseURL:       cfg.APIBaseURL,
		demoFallback:  cfg.DemoFallback,
		maxRetries:    cfg.MaxRetries,
		retryInterval: cfg.RetryInterval,
		log:           log,
	}
}

func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *Client) setToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *Client) FetchIntern(ctx context.Context) (*internDto.InternResponse, error) {
	var intern internDto.InternResponse
	if err := c.do(ctx, http.MethodGet, "/api/intern", nil, &intern); err != nil {
		return nil, fmt.Errorf("fetch intern: %w", err)
	}
	return &intern, nil
}

func (c *Client) FetchLeaderboard(ctx context.Context) ([]leaderboardDto.LeaderboardEntry, error) {
	var entries []leaderboardDto.LeaderboardEntry
	if err := c.do(ctx, http.MethodGet, "/api/leaderboard", nil, &entries); err != nil {
		return nil, fmt.Errorf("fetch leaderboard: %w", err)
	}
	return entries, nil
}

// Login exchanges credentials for a bearer token and keeps it for later calls.
func (c *Client) Login(ctx context.Context, email, password string) (*authDto.AuthResponse, error) {
	input := authDto.LoginInput{Email: email, Password: password}

	var auth authDto.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", input, &auth); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	c.setToken(auth.AccessToken)
	return &auth, nil
}

func (c *Client) Session(ctx context.Context) (*authDto.SessionResponse, error) {
	var session authDto.SessionResponse
	if err := c.do(ctx, http.MethodGet, "/api/auth/session", nil, &session); err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	return &session, nil
}

// SignInResult is the confirmed session, or a local one when the API could not be used.
type SignInResult struct {
	Email     string
	ExpiresAt time.Time
	Local     bool
}

// SignIn logs in and confirms the token against the session endpoint. With demo
// fallback on, an unreachable or failing API yields a local sign-in instead.
func (c *Client) SignIn(ctx context.Context, email, password string) (*SignInResult, error) {
	_, err := c.Login(ctx, email, password)
	if err == nil {
		session, err := c.Session(ctx)
		if err != nil {
			return nil, err
		}
		return &SignInResult{Email: session.Email, ExpiresAt: session.ExpiresAt}, nil
	}

	if !c.demoFallback || ctx.Err() != nil || !serverSide(err) {
		return nil, err
	}

	c.log.Warn("API unusable, continuing with local login", zap.String("email", email), zap.Error(err))
	return &SignInResult{Email: email, Local: true}, nil
}

// serverSide reports failures that are not the caller's fault.
func serverSide(err error) bool {
	return errors.Is(err, apperror.ErrUnavailable) || errors.Is(err, apperror.ErrInternal)
}

// LoadIntern fetches the intern, serving the demo record when the API fails and
// fallback is enabled.
func (c *Client) LoadIntern(ctx context.Context) (*InternResult, error) {
	intern, err := c.FetchIntern(ctx)
	if err == nil {
		return &InternResult{Intern: *intern}, nil
	}
	if !c.demoFallback || ctx.Err() != nil {
		return nil, err
	}

	c.log.Warn("serving demo intern data", zap.Error(err))
	return &InternResult{Intern: DemoIntern(), Fallback: true}, nil
}

func (c *Client) LoadLeaderboard(ctx context.Context) (*LeaderboardResult, error) {
	entries, err := c.FetchLeaderboard(ctx)
	if err == nil {
		return &LeaderboardResult{Entries: entries}, nil
	}
	if !c.demoFallback || ctx.Err() != nil {
		return nil, err
	}

	c.log.Warn("serving demo leaderboard data", zap.Error(err))
	return &LeaderboardResult{Entries: leaderboardDto.NewLeaderboardEntries(bootstrap.DefaultLeaderboard())}, nil
}

// DemoIntern is the built-in intern with reward flags derived from its total.
func DemoIntern() internDto.InternResponse {
	intern := internDto.NewInternResponse(bootstrap.DefaultIntern(), bootstrap.DefaultRewards())
	if progress, err := internService.ComputeProgress(intern.DonationsRaised, intern.Rewards); err == nil {
		intern.Rewards = progress.Rewards
	}
	return intern
}

func (c *Client) do(ctx context.Context, method, path string, body, dest any) error {
	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
	}

	operation := func() error {
		return c.attempt(ctx, method, path, payload, dest)
	}

	policy := backoff.NewExponentialBackOff()
	if c.retryInterval > 0 {
		policy.InitialInterval = c.retryInterval
	}

	notify := func(err error, wait time.Duration) {
		c.log.Debug("retrying request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Duration("wait", wait),
			zap.Error(err),
		)
	}

	return backoff.RetryNotify(operation, backoff.WithContext(backoff.WithMaxRetries(policy, c.maxRetries), ctx), notify)
}

// attempt performs one round trip. Client errors and malformed bodies are permanent;
// transport failures and 5xx answers are retried.
func (c *Client) attempt(ctx context.Context, method, path string, payload []byte, dest any) error {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return backoff.Permanent(fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return backoff.Permanent(ctx.Err())
		}
		return fmt.Errorf("%w: %v", apperror.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	var envelope dto.RawResponse
	decodeErr := json.NewDecoder(resp.Body).Decode(&envelope)

	if resp.StatusCode >= http.StatusBadRequest {
		message := envelope.Message
		if message == "" {
			message = http.StatusText(resp.StatusCode)
		}
		appErr := apperror.FromStatus(resp.StatusCode, message)
		if resp.StatusCode < http.StatusInternalServerError {
			return backoff.Permanent(appErr)
		}
		return appErr
	}

	if decodeErr != nil {
		return backoff.Permanent(fmt.Errorf("decode response: %w", decodeErr))
	}
	if !envelope.Success {
		return backoff.Permanent(apperror.New(http.StatusBadGateway, envelope.Message, apperror.ErrInternal))
	}
	if dest == nil {
		return nil
	}
	if len(envelope.Data) == 0 {
		return backoff.Permanent(errors.New("response has no data"))
	}
	if err := json.Unmarshal(envelope.Data, dest); err != nil {
		return backoff.Permanent(fmt.Errorf("decode response data: %w", err))
	}
	return nil
}

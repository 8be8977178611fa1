// Package client is the startup permission check: a program asks the
// registry's public endpoint whether it may run before doing anything
// else.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// DefaultTimeout bounds the permission call; a registry that cannot be
// reached in time is treated as a denial by callers.
const DefaultTimeout = 5 * time.Second

type Software struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type Result struct {
	CanRun   bool
	Reason   string
	Software *Software
}

type Client struct {
	baseURL string
	http    *http.Client
}

// New builds a client for a registry at baseURL, e.g. "http://127.0.0.1:3000".
func New(baseURL string) *Client {
	return NewWithTimeout(baseURL, DefaultTimeout)
}

func NewWithTimeout(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type permissionEnvelope struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data *struct {
		CanRun   bool      `json:"canRun"`
		Reason   string    `json:"reason"`
		Software *Software `json:"software"`
	} `json:"data"`
}

// CheckPermission asks whether the software with the given id may run.
// A registered-but-disabled entry and an unknown id are both ordinary
// denials; only transport or decoding problems return an error.
func (c *Client) CheckPermission(ctx context.Context, id int64) (Result, error) {
	url := fmt.Sprintf("%s/api/software/%d/permission", c.baseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Result{}, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("permission server unreachable: %w", err)
	}
	defer resp.Body.Close()

	var env permissionEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return Result{}, fmt.Errorf("decode permission response: %w", err)
	}

	res := Result{}
	if env.Data != nil {
		res.CanRun = env.Data.CanRun
		res.Reason = env.Data.Reason
		res.Software = env.Data.Software
	}
	if res.Reason == "" {
		res.Reason = env.Msg
	}
	if res.Reason == "" {
		res.Reason = "unknown error"
	}
	return res, nil
}

// Package api is the storefront's REST client. Responses use the backend's
// {ok,data} / {ok:false,error} envelope; failed calls surface the server's
// message, with a generic fallback when it has none.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const genericErrMsg = "request failed"

type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// SetToken attaches a bearer token to subsequent requests. Empty clears it.
func (c *Client) SetToken(token string) {
	c.token = token
}

type envelope struct {
	OK    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error string          `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	var env envelope
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		return fmt.Errorf("%s: %s", genericErrMsg, res.Status)
	}
	if !env.OK {
		if env.Error == "" {
			return errors.New(genericErrMsg)
		}
		return errors.New(env.Error)
	}
	if out != nil {
		return json.Unmarshal(env.Data, out)
	}
	return nil
}

func (c *Client) Login(ctx context.Context, in Credentials) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", in, &out); err != nil {
		return nil, err
	}
	c.token = out.Token
	return &out, nil
}

func (c *Client) Register(ctx context.Context, in RegisterInput) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", in, &out); err != nil {
		return nil, err
	}
	c.token = out.Token
	return &out, nil
}

func (c *Client) GetRestaurants(ctx context.Context) ([]Restaurant, error) {
	var out []Restaurant
	if err := c.do(ctx, http.MethodGet, "/restaurants", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetRestaurantByID(ctx context.Context, id string) (*RestaurantDetail, error) {
	var out RestaurantDetail
	if err := c.do(ctx, http.MethodGet, "/restaurants/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateOrder(ctx context.Context, in CreateOrderInput) (*Order, error) {
	var out Order
	if err := c.do(ctx, http.MethodPost, "/orders", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetOrderByID(ctx context.Context, id string) (*OrderDetail, error) {
	var out OrderDetail
	if err := c.do(ctx, http.MethodGet, "/orders/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

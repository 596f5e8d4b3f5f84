package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"time"

	"pedidos/internal/core/domain/model/item"
	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/core/domain/model/registry"
	"pedidos/internal/core/domain/model/user"
	"pedidos/internal/core/ports"
	"pedidos/internal/pkg/errs"
)

// fallbackMessage stands in when the server rejects a request without a
// readable error envelope.
const fallbackMessage = "Falha ao processar a requisicao"

// Client talks to the order server's JSON API. Safe for concurrent use;
// the session cookie from Login is shared by all calls.
type Client struct {
	http    *http.Client
	baseURL string
}

// NewClient creates a client for the server at baseURL.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}

	return &Client{
		http: &http.Client{
			Jar:     jar,
			Timeout: timeout,
		},
		baseURL: baseURL,
	}, nil
}

// Login authenticates and stores the session cookie for later calls.
func (c *Client) Login(ctx context.Context, username, password string) (user.User, error) {
	body := map[string]string{"username": username, "password": password}

	var resp struct {
		User userDTO `json:"user"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/login", nil, body, &resp); err != nil {
		return user.User{}, err
	}

	return toDomainUser(resp.User), nil
}

// Logout drops the session on the server.
func (c *Client) Logout(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodPost, "/logout", nil, nil, nil)
}

// LoadContext fetches the bootstrap payload for the current session.
func (c *Client) LoadContext(ctx context.Context) (ports.ContextInfo, error) {
	var resp struct {
		User             userDTO   `json:"user"`
		Suppliers        []string  `json:"suppliers"`
		Statuses         []string  `json:"statuses"`
		Users            []userDTO `json:"users"`
		PurgedOnStart    int64     `json:"purged_on_start"`
		ModeloDisponivel bool      `json:"modelo_disponivel"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/api/context", nil, nil, &resp); err != nil {
		return ports.ContextInfo{}, err
	}

	statuses := make([]order.Status, len(resp.Statuses))
	for i, s := range resp.Statuses {
		statuses[i] = order.Status(s)
	}

	users := make([]user.User, len(resp.Users))
	for i, u := range resp.Users {
		users[i] = toDomainUser(u)
	}

	return ports.ContextInfo{
		User:              toDomainUser(resp.User),
		Suppliers:         resp.Suppliers,
		Statuses:          statuses,
		Users:             users,
		PurgedOnStart:     resp.PurgedOnStart,
		ArtifactAvailable: resp.ModeloDisponivel,
	}, nil
}

// ListOrders fetches order summaries matching the filter, newest first.
func (c *Client) ListOrders(ctx context.Context, filter registry.Filter) ([]order.Order, error) {
	query := url.Values{}
	if filter.Fornecedor != "" {
		query.Set("fornecedor", filter.Fornecedor)
	}
	if filter.Status != "" {
		query.Set("status", filter.Status.String())
	}

	var resp struct {
		Pedidos []pedidoDTO `json:"pedidos"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/api/pedidos", query, nil, &resp); err != nil {
		return nil, err
	}

	orders := make([]order.Order, len(resp.Pedidos))
	for i, dto := range resp.Pedidos {
		orders[i] = toDomainOrder(dto)
	}
	return orders, nil
}

// GetOrder fetches one order with its full item set.
func (c *Client) GetOrder(ctx context.Context, id int) (order.Order, error) {
	var resp struct {
		Pedido pedidoDTO `json:"pedido"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/api/pedidos/"+strconv.Itoa(id), nil, nil, &resp); err != nil {
		return order.Order{}, err
	}
	return toDomainOrder(resp.Pedido), nil
}

// CreateOrder submits a new order and returns the server's snapshot.
func (c *Client) CreateOrder(ctx context.Context, fornecedor string, items []item.Item) (order.Order, error) {
	body := map[string]any{
		"fornecedor": fornecedor,
		"itens":      fromDomainItems(items),
	}

	var resp struct {
		Pedido pedidoDTO `json:"pedido"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/api/pedidos", nil, body, &resp); err != nil {
		return order.Order{}, err
	}
	return toDomainOrder(resp.Pedido), nil
}

// UpdateOrderItems replaces a pending order's items in one request.
func (c *Client) UpdateOrderItems(ctx context.Context, id int, items []item.Item) (order.Order, error) {
	body := map[string]any{"itens": fromDomainItems(items)}

	var resp struct {
		Pedido pedidoDTO `json:"pedido"`
	}
	if err := c.doJSON(ctx, http.MethodPut, "/api/pedidos/"+strconv.Itoa(id), nil, body, &resp); err != nil {
		return order.Order{}, err
	}
	return toDomainOrder(resp.Pedido), nil
}

// ApproveOrder approves a pending order. A non-empty warning means the
// order was approved but the automatic artifact generation failed.
func (c *Client) ApproveOrder(ctx context.Context, id int) (order.Order, string, error) {
	var resp struct {
		Pedido  pedidoDTO `json:"pedido"`
		Warning string    `json:"warning"`
	}
	path := "/api/pedidos/" + strconv.Itoa(id) + "/approve"
	if err := c.doJSON(ctx, http.MethodPost, path, nil, nil, &resp); err != nil {
		return order.Order{}, "", err
	}
	return toDomainOrder(resp.Pedido), resp.Warning, nil
}

// GenerateOrder produces (or re-produces) the export artifact.
func (c *Client) GenerateOrder(ctx context.Context, id int) (order.Order, error) {
	var resp struct {
		Pedido pedidoDTO `json:"pedido"`
	}
	path := "/api/pedidos/" + strconv.Itoa(id) + "/generate"
	if err := c.doJSON(ctx, http.MethodPost, path, nil, nil, &resp); err != nil {
		return order.Order{}, err
	}
	return toDomainOrder(resp.Pedido), nil
}

// DownloadArtifact fetches the export artifact bytes and its filename.
func (c *Client) DownloadArtifact(ctx context.Context, id int) (string, []byte, error) {
	path := "/api/pedidos/" + strconv.Itoa(id) + "/download"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return "", nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", nil, errs.NewNetworkError("GET "+path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", nil, decodeError(resp)
	}

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", nil, errs.NewNetworkError("GET "+path, err)
	}

	filename := ""
	if cd := resp.Header.Get("Content-Disposition"); cd != "" {
		if _, params, parseErr := mime.ParseMediaType(cd); parseErr == nil {
			filename = params["filename"]
		}
	}

	return filename, content, nil
}

// CreateSupplier registers a new supplier name.
func (c *Client) CreateSupplier(ctx context.Context, name string) error {
	return c.doJSON(ctx, http.MethodPost, "/api/fornecedores", nil, map[string]string{"nome": name}, nil)
}

// CreateUser registers an account. Admin only.
func (c *Client) CreateUser(ctx context.Context, username, password string, role user.Role) error {
	body := map[string]string{
		"username": username,
		"password": password,
		"role":     role.String(),
	}
	return c.doJSON(ctx, http.MethodPost, "/api/users", nil, body, nil)
}

// DeleteUser removes an account. Admin only.
func (c *Client) DeleteUser(ctx context.Context, username string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/users/"+url.PathEscape(username), nil, nil, nil)
}

// ChangePassword replaces the current session's password.
func (c *Client) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	body := map[string]string{
		"current_password": currentPassword,
		"new_password":     newPassword,
	}
	return c.doJSON(ctx, http.MethodPost, "/api/me/password", nil, body, nil)
}

// doJSON performs one JSON round-trip. Transport failures map to
// NetworkError, non-2xx responses to RemoteRejectionError; out may be nil
// when the response body does not matter.
func (c *Client) doJSON(
	ctx context.Context,
	method, path string,
	query url.Values,
	body any,
	out any,
) error {
	op := method + " " + path

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(encoded)
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errs.NewNetworkError(op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errs.NewNetworkError(op, err)
	}

	return nil
}

// decodeError turns a non-2xx response into a RemoteRejectionError carrying
// the server's message verbatim, falling back to a generic message when the
// envelope is unreadable.
func decodeError(resp *http.Response) error {
	var envelope errorDTO
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil || envelope.Error == "" {
		return errs.NewRemoteRejectionError(resp.StatusCode, fallbackMessage)
	}
	return errs.NewRemoteRejectionError(resp.StatusCode, envelope.Error)
}

// Package orderworks integra el taller con la API de administración de
// OrderWorks: login con cookie de sesión y listado de trabajos para generar
// movimientos de salida contra trabajos reales.
package orderworks

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync"
	"time"
)

// La sesión se renueva cada 6 horas aunque el servidor no la haya expirado.
const sessionRefreshInterval = 6 * time.Hour

const sessionCookieName = "orderworks_admin_session"

var (
	// ErrNotConfigured indica que faltan credenciales o URL base.
	ErrNotConfigured = errors.New("integración OrderWorks no configurada")
	// ErrAuthentication indica credenciales rechazadas por OrderWorks.
	ErrAuthentication = errors.New("credenciales OrderWorks rechazadas")
)

// Client cliente HTTP de la API admin de OrderWorks. Seguro para uso
// concurrente; la sesión se comparte y renueva bajo mutex.
type Client struct {
	baseURL  string
	username string
	password string

	httpClient *http.Client

	mu               sync.Mutex
	sessionExpiresAt time.Time
}

// NewClient construye el cliente. Con credenciales vacías las llamadas
// devuelven ErrNotConfigured en lugar de panic.
func NewClient(baseURL, username, password string) *Client {
	jar, _ := cookiejar.New(nil)
	return &Client{
		baseURL:  strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		username: strings.TrimSpace(username),
		password: strings.TrimSpace(password),
		httpClient: &http.Client{
			Timeout: 20 * time.Second,
			Jar:     jar,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// IsConfigured indica si hay URL base y credenciales completas.
func (c *Client) IsConfigured() bool {
	return c.baseURL != "" && c.username != "" && c.password != ""
}

func (c *Client) sessionValid() bool {
	return time.Now().Before(c.sessionExpiresAt)
}

// login abre sesión contra /api/auth/login. Con force descarta la sesión
// vigente; sin force reutiliza la que no haya expirado.
func (c *Client) login(ctx context.Context, force bool) error {
	if !c.IsConfigured() {
		return ErrNotConfigured
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sessionValid() && !force {
		return nil
	}

	// Descartar cookies de la sesión anterior.
	jar, _ := cookiejar.New(nil)
	c.httpClient.Jar = jar

	payload, err := json.Marshal(map[string]string{
		"username": c.username,
		"password": c.password,
	})
	if err != nil {
		return fmt.Errorf("serializar credenciales: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/auth/login", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("construir login: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("contactar OrderWorks en login: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrAuthentication
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("login OrderWorks falló con estado %d", resp.StatusCode)
	}
	if !c.hasSessionCookie() {
		return errors.New("el login de OrderWorks no devolvió cookie de sesión")
	}
	c.sessionExpiresAt = time.Now().Add(sessionRefreshInterval)
	return nil
}

func (c *Client) hasSessionCookie() bool {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return false
	}
	for _, cookie := range c.httpClient.Jar.Cookies(u) {
		if cookie.Name == sessionCookieName {
			return true
		}
	}
	return false
}

// request ejecuta una petición autenticada. Ante un 401 fuerza un re-login y
// reintenta una sola vez.
func (c *Client) request(ctx context.Context, method, path string) (*http.Response, error) {
	if !c.IsConfigured() {
		return nil, ErrNotConfigured
	}
	if err := c.login(ctx, false); err != nil {
		return nil, err
	}

	resp, err := c.do(ctx, method, path)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusUnauthorized {
		resp.Body.Close()
		if err := c.login(ctx, true); err != nil {
			return nil, err
		}
		resp, err = c.do(ctx, method, path)
		if err != nil {
			return nil, fmt.Errorf("contactar OrderWorks tras renovar sesión: %w", err)
		}
	}
	return resp, nil
}

func (c *Client) do(ctx context.Context, method, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("construir petición: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("contactar OrderWorks: %w", err)
	}
	return resp, nil
}

// ListJobs devuelve los trabajos publicados por OrderWorks tal cual los
// entrega la API (claves dinámicas según la versión del servidor).
func (c *Client) ListJobs(ctx context.Context) ([]map[string]any, error) {
	resp, err := c.request(ctx, http.MethodGet, "/api/jobs")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("OrderWorks respondió estado %d", resp.StatusCode)
	}

	var payload struct {
		Jobs []map[string]any `json:"jobs"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("OrderWorks devolvió JSON inválido: %w", err)
	}
	if payload.Jobs == nil {
		return nil, errors.New("la respuesta de OrderWorks no incluye trabajos")
	}
	return payload.Jobs, nil
}

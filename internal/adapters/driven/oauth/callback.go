// Package oauth runs the browser consent flow that yields an access token.
package oauth

import (
	"context"
	"errors"
	"fmt"
	"html"
	"net"
	"net/http"
	"sync"
	"time"
)

// ProviderError is an error reported by the provider on the redirect.
type ProviderError struct {
	Code        string
	Description string
}

func (e *ProviderError) Error() string {
	if e.Description == "" {
		return "oauth error: " + e.Code
	}
	return fmt.Sprintf("oauth error: %s - %s", e.Code, e.Description)
}

// Denied reports whether the user declined consent.
func (e *ProviderError) Denied() bool {
	return e.Code == "access_denied"
}

// CallbackServer receives the authorization redirect on the loopback interface.
type CallbackServer struct {
	mu            sync.Mutex
	port          int
	expectedState string
	codeChan      chan string
	errChan       chan error
	server        *http.Server
}

// NewCallbackServer creates a callback server that accepts only expectedState.
func NewCallbackServer(port int, expectedState string) *CallbackServer {
	return &CallbackServer{
		port:          port,
		expectedState: expectedState,
		codeChan:      make(chan string, 1),
		errChan:       make(chan error, 1),
	}
}

// Start listens on 127.0.0.1. A zero port picks a free one.
func (s *CallbackServer) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	mux := http.NewServeMux()
	mux.HandleFunc("/callback", s.handleCallback)

	s.server = &http.Server{
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	addr := fmt.Sprintf("127.0.0.1:%d", s.port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	if tcpAddr, ok := listener.Addr().(*net.TCPAddr); ok {
		s.port = tcpAddr.Port
	}

	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.fail(err)
		}
	}()

	return nil
}

func (s *CallbackServer) handleCallback(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	w.Header().Set("Content-Type", "text/html")

	if code := query.Get("error"); code != "" {
		perr := &ProviderError{Code: code, Description: query.Get("error_description")}
		s.fail(perr)
		_, _ = fmt.Fprint(w, callbackHTML("Authorization failed", html.EscapeString(perr.Error())))
		return
	}

	if state := query.Get("state"); state != s.expectedState {
		s.fail(errors.New("state mismatch"))
		_, _ = fmt.Fprint(w, callbackHTML("Authorization failed", "Invalid state parameter."))
		return
	}

	code := query.Get("code")
	if code == "" {
		s.fail(errors.New("no authorization code received"))
		_, _ = fmt.Fprint(w, callbackHTML("Authorization failed", "No code received."))
		return
	}

	select {
	case s.codeChan <- code:
	default:
	}
	_, _ = fmt.Fprint(w, callbackHTML("Signed in", "You can close this window and return to tubedash."))
}

func (s *CallbackServer) fail(err error) {
	select {
	case s.errChan <- err:
	default:
	}
}

// WaitForCode blocks until a code or callback error arrives, or ctx is done.
func (s *CallbackServer) WaitForCode(ctx context.Context) (string, error) {
	select {
	case code := <-s.codeChan:
		return code, nil
	case err := <-s.errChan:
		return "", err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Stop shuts down the callback server.
func (s *CallbackServer) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Port returns the port the server is listening on.
func (s *CallbackServer) Port() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.port
}

// RedirectURI returns the redirect URI registered with the provider.
func (s *CallbackServer) RedirectURI() string {
	return fmt.Sprintf("http://127.0.0.1:%d/callback", s.Port())
}

func callbackHTML(title, message string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <title>tubedash</title>
    <style>
        body { font-family: -apple-system, 'Segoe UI', Roboto, sans-serif; display: flex;
               justify-content: center; align-items: center; height: 100vh; margin: 0;
               background: #FAFAFA; }
        .card { text-align: center; background: white; padding: 48px 64px;
                border-radius: 16px; border: 1px solid #DDD; }
        h1 { color: #282828; margin: 0 0 8px 0; font-size: 24px; }
        p { color: #606060; margin: 0; }
    </style>
</head>
<body>
    <div class="card">
        <h1>%s</h1>
        <p>%s</p>
    </div>
</body>
</html>`, title, message)
}

package gateway

import (
	"context"
	"net/http"
	"sync"

	"pos-terminal/internal/domain/auth"
	"pos-terminal/internal/pkg/errs"

	"golang.org/x/sync/singleflight"
)

const refreshKey = "refresh"

// refreshGate lets exactly one refresh run at a time. Callers that discover an expired
// credential while a refresh is running join it instead of starting their own, and
// new requests hold off dispatching until it has finished.
type refreshGate struct {
	group singleflight.Group

	mu   sync.Mutex
	done chan struct{} // non-nil while a refresh is running
}

// wait blocks until no refresh is running.
func (g *refreshGate) wait(ctx context.Context) error {
	g.mu.Lock()
	done := g.done
	g.mu.Unlock()
	if done == nil {
		return nil
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// run executes fn unless a refresh is already running, in which case it waits for that
// one. leader reports whether this caller's fn was the one executed.
func (g *refreshGate) run(fn func() error) (leader bool, err error) {
	_, err, _ = g.group.Do(refreshKey, func() (any, error) {
		leader = true
		g.mu.Lock()
		g.done = make(chan struct{})
		g.mu.Unlock()
		defer func() {
			g.mu.Lock()
			close(g.done)
			g.done = nil
			g.mu.Unlock()
		}()
		return nil, fn()
	})
	return leader, err
}

// refresh mints a new access token from the stored refresh token. staleToken is the
// access token the failed request carried; if the store already holds a different one,
// another caller has refreshed in the meantime and nothing is sent.
func (c *HTTPClient) refresh(ctx context.Context, staleToken string) error {
	current, err := c.creds.accessToken(ctx)
	if err != nil {
		return err
	}
	if current != "" && current != staleToken {
		c.logger.Debug("access token already rotated, skipping refresh")
		return nil
	}

	refreshToken, err := c.creds.refreshToken(ctx)
	if err != nil {
		return err
	}
	if refreshToken == "" {
		c.forceLogout(ctx, "no refresh token stored")
		return ErrNoRefreshToken
	}

	c.logger.Debug("refreshing access token")
	req := Request{
		Method: http.MethodPost,
		Path:   PathTokenRefresh,
		Body:   map[string]string{"refresh": refreshToken},
	}
	resp, _, err := c.dispatch(ctx, c.refresher, req)
	if err != nil {
		c.forceLogout(ctx, "refresh request failed")
		return errs.Mark(err, ErrRefreshFailed)
	}
	if !resp.OK() {
		c.forceLogout(ctx, "refresh rejected")
		return errs.Mark(newStatusError(req, resp), ErrRefreshFailed)
	}

	var payload tokenPayload
	if err := resp.Decode(&payload); err != nil || payload.Access == "" {
		c.forceLogout(ctx, "refresh response carried no access token")
		return errs.Mark(errs.Wrap(err, "decode refresh response"), ErrRefreshFailed)
	}
	if err := c.creds.save(ctx, auth.TokenSet{Access: payload.Access}); err != nil {
		return err
	}

	c.logger.Info("access token refreshed")
	c.observer.Authenticated()
	return nil
}

func (c *HTTPClient) forceLogout(ctx context.Context, reason string) {
	c.logger.Warn("forcing logout", "reason", reason)
	if err := c.creds.clear(ctx); err != nil {
		c.logger.Error("failed to delete credentials", "error", err)
	}
	c.observer.LoggedOut()
}

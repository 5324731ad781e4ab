package identity

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/GBA-BI/drs-manifest/pkg/consts"
	apperror "github.com/GBA-BI/drs-manifest/pkg/error"
	"github.com/GBA-BI/drs-manifest/pkg/log"
)

// Source provides the caller's identity token.
type Source interface {
	Token(ctx context.Context) (string, error)
}

type Config struct {
	Command string `env:"IDENTITY_COMMAND"`
}

func NewConfig() *Config {
	return &Config{
		Command: consts.DefaultIdentityCommand,
	}
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.Command) == "" {
		return apperror.NewInvalidArgumentError("identity.Config.Command", c.Command)
	}
	return nil
}

// NewCommandSource runs a shell command, e.g. the gcloud credential helper,
// and uses its trimmed stdout as the token.
func NewCommandSource(cfg *Config, logger log.Logger) (Source, error) {
	if cfg == nil {
		return nil, fmt.Errorf("nil config of identity source")
	}
	return &commandSource{
		command: cfg.Command,
		logger:  logger,
	}, nil
}

type commandSource struct {
	command string
	logger  log.Logger
}

func (c *commandSource) Token(ctx context.Context) (string, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, "sh", "-c", c.command)
	cmd.Env = os.Environ()
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	c.logger.Debugf("acquiring identity token with %q", c.command)
	if err := cmd.Run(); err != nil {
		return "", apperror.NewIdentityTokenError(fmt.Errorf("unable to call command: %s: %w\n\n%s\n\n%s",
			c.command, err, strings.TrimSpace(stdout.String()), strings.TrimSpace(stderr.String())))
	}

	token := strings.TrimSpace(stdout.String())
	if token == "" {
		return "", apperror.NewIdentityTokenError(fmt.Errorf("command %s printed an empty token", c.command))
	}
	return token, nil
}

// CachedSource acquires the token from its delegate at most once per process,
// even when many resolutions ask for it concurrently. The first outcome,
// token or error, is kept for the lifetime of the CachedSource, unless the
// caller's context was done by then.
type CachedSource struct {
	delegate Source
	group    singleflight.Group

	mu    sync.RWMutex
	done  bool
	token string
	err   error
}

func NewCachedSource(delegate Source) *CachedSource {
	return &CachedSource{delegate: delegate}
}

func (c *CachedSource) Token(ctx context.Context) (string, error) {
	if token, ok, err := c.cached(); ok {
		return token, err
	}

	result, err, _ := c.group.Do("identity", func() (interface{}, error) {
		if token, ok, err := c.cached(); ok {
			return token, err
		}
		token, err := c.delegate.Token(ctx)
		if err != nil && ctx.Err() != nil {
			return "", err
		}

		c.mu.Lock()
		c.done, c.token, c.err = true, token, err
		c.mu.Unlock()
		return token, err
	})
	if err != nil {
		return "", err
	}
	return result.(string), nil
}

func (c *CachedSource) cached() (string, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token, c.done, c.err
}

var _ Source = (*CachedSource)(nil)

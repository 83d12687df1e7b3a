package bootstrap

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bluemoon-pm/bluemoon-ui/config"
	domainauth "github.com/bluemoon-pm/bluemoon-ui/internal/domain/auth"
	"github.com/bluemoon-pm/bluemoon-ui/internal/testutil"
)

func testConfig() *config.AppConfig {
	cfg := &config.AppConfig{}
	cfg.Sanitize()
	return cfg
}

func TestBuildServices(t *testing.T) {
	_, client := testutil.SetupTestRedis(t)

	container := BuildServices(ServiceDeps{
		Config:      testConfig(),
		RedisClient: client,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	require.NotNil(t, container.Backend)
	require.NotNil(t, container.Auth)
	require.NotNil(t, container.Summaries)

	// The auth service runs against the real Redis-backed session store.
	sess, err := container.Auth.GetSession(context.Background(), "missing")
	assert.Nil(t, sess)
	assert.ErrorIs(t, err, domainauth.ErrSessionExpired)
}

func TestConnectRedis_Direct(t *testing.T) {
	mr, _ := testutil.SetupTestRedis(t)

	client, err := ConnectRedis(config.RedisConfig{URI: mr.Addr()}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, client.Ping(ctx).Err())
}

func TestConnectRedis_DirectRequiresURI(t *testing.T) {
	_, err := ConnectRedis(config.RedisConfig{URI: "  "}, nil)
	assert.Error(t, err)
}

func TestConnectRedis_SentinelRequiresNodes(t *testing.T) {
	_, err := ConnectRedis(config.RedisConfig{UseSentinel: true}, nil)
	assert.Error(t, err)
}

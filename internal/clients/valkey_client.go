package clients

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"time"

	"github.com/spacesedan/researchflow/config"
	"github.com/valkey-io/valkey-go"
)

const VALKEY_KEY_PREFIX = "researchflow:"

// ValkeyClient is a small string cache with per-key expiry.
type ValkeyClient struct {
	Client valkey.Client
}

func NewValkeyClient(cfg *config.Config) (*ValkeyClient, error) {
	opts := valkey.ClientOption{
		InitAddress:      []string{cfg.ValkeyAddress},
		Password:         cfg.ValkeyPassword,
		ConnWriteTimeout: 5 * time.Second,
		SelectDB:         0,
	}
	if cfg.ValkeyTLS {
		opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	client, err := valkey.NewClient(opts)
	if err != nil {
		return nil, fmt.Errorf("[ValkeyClient] failed to create Valkey: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()

	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		client.Close()
		return nil, fmt.Errorf("[ValkeyClient] failed to ping Valkey: %w", err)
	}

	slog.Info("[ValkeyClient] Successfully connected to valkey",
		slog.String("address", cfg.ValkeyAddress))
	return &ValkeyClient{Client: client}, nil
}

// Get returns the cached value for key. A miss is ("", false, nil).
func (vc *ValkeyClient) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := vc.Client.Do(ctx, vc.Client.B().Get().Key(VALKEY_KEY_PREFIX+key).Build()).ToString()
	if valkey.IsValkeyNil(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("[ValkeyClient] get %s: %w", key, err)
	}
	return value, true, nil
}

// Set stores value under key for ttl in a single SET ... EX. Sub-second ttls
// round up to one second.
func (vc *ValkeyClient) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	seconds := int64(ttl / time.Second)
	if seconds < 1 {
		seconds = 1
	}

	cmd := vc.Client.B().Set().Key(VALKEY_KEY_PREFIX + key).Value(value).ExSeconds(seconds).Build()
	if err := vc.Client.Do(ctx, cmd).Error(); err != nil {
		return fmt.Errorf("[ValkeyClient] set %s: %w", key, err)
	}
	return nil
}

func (vc *ValkeyClient) Close() {
	vc.Client.Close()
}

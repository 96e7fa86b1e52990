package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"itradebook/src/config"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sethvargo/go-retry"
)

// ErrConnectionExhausted marks a connection acquisition that failed even
// after the bounded retry policy ran out of attempts. Callers treat it as
// fatal; every other database error is scoped to the unit of work that
// produced it.
var ErrConnectionExhausted = errors.New("database: connection attempts exhausted")

const (
	defaultRetryAttempts = 5
	defaultRetryBase     = 250 * time.Millisecond
)

func DSNFromConfig(cfg *config.Config) string {
	dsn := cfg.Databases.SQL.ConnectionString
	if dsn == "" {
		dsn = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			cfg.Databases.SQL.Host,
			cfg.Databases.SQL.Username,
			cfg.Databases.SQL.Password,
			cfg.Databases.SQL.Database,
			cfg.Databases.SQL.Port)
	}
	return dsn
}

func SetupDB(cfg *config.Config) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(DSNFromConfig(cfg))
	if err != nil {
		return nil, err
	}

	poolConfig.MaxConns = 5
	poolConfig.MinConns = 1

	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %v", err)
	}

	// The first ping goes through the same bounded retry policy used for
	// transaction acquisition, so a database that is still starting up does
	// not fail the whole service.
	err = WithRetries(context.Background(), RetryPolicyFromConfig(cfg), func(ctx context.Context) error {
		return pool.Ping(ctx)
	})
	if err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

// TxStarter is the slice of pgxpool.Pool the services need to open a
// transaction. It keeps the pool injectable in tests.
type TxStarter interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// RetryPolicy bounds how often and how patiently a caller retries a
// connection-level operation before declaring it exhausted.
type RetryPolicy struct {
	Attempts uint64
	Base     time.Duration
}

func RetryPolicyFromConfig(cfg *config.Config) RetryPolicy {
	policy := RetryPolicy{
		Attempts: defaultRetryAttempts,
		Base:     defaultRetryBase,
	}
	if cfg.Databases.SQL.RetryAttempts > 0 {
		policy.Attempts = cfg.Databases.SQL.RetryAttempts
	}
	if cfg.Databases.SQL.RetryBaseMs > 0 {
		policy.Base = time.Duration(cfg.Databases.SQL.RetryBaseMs) * time.Millisecond
	}
	return policy
}

// WithRetries runs fn under the policy's exponential backoff. Every error
// returned by fn is considered retryable; once attempts run out the last
// error is wrapped with ErrConnectionExhausted.
func WithRetries(ctx context.Context, policy RetryPolicy, fn func(ctx context.Context) error) error {
	backoff := retry.WithMaxRetries(policy.Attempts, retry.NewExponential(policy.Base))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := fn(ctx); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConnectionExhausted, err)
	}
	return nil
}

// BeginTx opens a transaction with bounded retries. A nil return error
// guarantees a usable transaction; an ErrConnectionExhausted return means
// the database is unreachable and the caller should abort.
func BeginTx(ctx context.Context, starter TxStarter, policy RetryPolicy) (pgx.Tx, error) {
	var tx pgx.Tx
	err := WithRetries(ctx, policy, func(ctx context.Context) error {
		var beginErr error
		tx, beginErr = starter.Begin(ctx)
		return beginErr
	})
	if err != nil {
		return nil, err
	}
	return tx, nil
}

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open(context.Background(), "mysql", "root@/commons", time.Second)
	require.ErrorContains(t, err, "unsupported database driver")
}

func TestOpen_PingFails(t *testing.T) {
	for _, driver := range []string{DriverPQ, DriverPGX} {
		t.Run(driver, func(t *testing.T) {
			_, err := Open(context.Background(), driver, "postgres://nobody@127.0.0.1:1/none?sslmode=disable&connect_timeout=1", 2*time.Second)
			require.ErrorContains(t, err, "ping database")
		})
	}
}

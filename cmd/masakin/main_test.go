package main

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nkiryanov/masakin/internal/testutil"
)

func Test_run(t *testing.T) {
	pg := testutil.StartPostgresContainer(t)
	t.Cleanup(pg.Terminate)

	port, err := testutil.RandomPort()
	require.NoError(t, err, "failed to get random port to start server")
	listenAddr := fmt.Sprintf("localhost:%d", port)

	noenv := func(string) string { return "" }
	tmpwd := func() (string, error) { return t.TempDir(), nil }

	t.Run("stop with signal", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		t.Cleanup(cancel)

		err := run(ctx, noenv, tmpwd, []string{
			"--address", listenAddr,
			"--log-level", "debug",
			"--database", pg.DSN,
			"--jwt-secret", "access-secret",
			"--jwt-refresh-secret", "refresh-secret",
		})

		require.NoError(t, err, "on correct stop should not return error")
	})

	t.Run("fail without secrets", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		t.Cleanup(cancel)

		err := run(ctx, noenv, tmpwd, []string{
			"--address", listenAddr,
			"--log-level", "debug",
			"--database", pg.DSN,
		})

		require.Error(t, err, "on incorrect config should return error")
	})

	t.Run("fail on address in use", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		t.Cleanup(cancel)

		args := []string{
			"--address", listenAddr,
			"--database", pg.DSN,
			"--jwt-secret", "access-secret",
			"--jwt-refresh-secret", "refresh-secret",
		}

		started := make(chan error, 1)
		go func() { started <- run(ctx, noenv, tmpwd, args) }()
		require.Eventually(t, func() bool {
			conn, err := net.Dial("tcp", listenAddr)
			if err != nil {
				return false
			}
			_ = conn.Close()
			return true
		}, 5*time.Second, 50*time.Millisecond, "first server has to start listening")

		err := run(ctx, noenv, tmpwd, args)
		require.Error(t, err, "second server must not bind the same address")

		cancel()
		require.NoError(t, <-started)
	})
}

package probe

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/pranshuparmar/shut/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listenerPort(t *testing.T, l net.Listener) model.Port {
	t.Helper()
	return model.Port(l.Addr().(*net.TCPAddr).Port)
}

func TestIsOpenWithListener(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	go func() {
		for {
			c, err := l.Accept()
			if err != nil {
				return
			}
			c.Close()
		}
	}()

	assert.True(t, New(time.Second).IsOpen(context.Background(), listenerPort(t, l)))
}

func TestIsOpenWithoutListener(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listenerPort(t, l)
	require.NoError(t, l.Close())

	assert.False(t, New(time.Second).IsOpen(context.Background(), port))
}

func TestIsOpenTriesEachLoopbackHost(t *testing.T) {
	var dialed []string
	p := New(0)
	p.dial = func(ctx context.Context, network, address string) (net.Conn, error) {
		dialed = append(dialed, address)
		_, ok := ctx.Deadline()
		assert.True(t, ok, "dial must be bounded")
		return nil, errors.New("connection refused")
	}

	assert.False(t, p.IsOpen(context.Background(), 8080))
	assert.Equal(t, []string{"127.0.0.1:8080", "[::1]:8080"}, dialed)
	assert.Equal(t, DefaultTimeout, p.Timeout)
}

func TestIsOpenStopsAtFirstSuccess(t *testing.T) {
	client, server := net.Pipe()
	defer server.Close()

	calls := 0
	p := New(time.Second)
	p.dial = func(ctx context.Context, network, address string) (net.Conn, error) {
		calls++
		return client, nil
	}

	assert.True(t, p.IsOpen(context.Background(), 22))
	assert.Equal(t, 1, calls)
}

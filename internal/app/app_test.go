package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomicstack/ghost-esp-control/internal/uart"
)

func stubPorts(t *testing.T, ports []string, err error) {
	t.Helper()
	orig := listPorts
	listPorts = func() ([]string, error) { return ports, err }
	t.Cleanup(func() { listPorts = orig })
}

func TestResolveEndpointUsesConfiguredPort(t *testing.T) {
	stubPorts(t, nil, errors.New("should not enumerate"))
	ep, err := ResolveEndpoint("tcp://127.0.0.1:4000", 0)
	require.NoError(t, err)
	assert.Equal(t, uart.KindTCP, ep.Kind)
	assert.Equal(t, "127.0.0.1:4000", ep.Address)
}

func TestResolveEndpointFallsBackToFirstSerialPort(t *testing.T) {
	stubPorts(t, []string{"/dev/ttyUSB0", "/dev/ttyUSB1"}, nil)
	ep, err := ResolveEndpoint("", 9600)
	require.NoError(t, err)
	assert.Equal(t, uart.KindSerial, ep.Kind)
	assert.Equal(t, "/dev/ttyUSB0", ep.Address)
	assert.Equal(t, 9600, ep.Baud)
}

func TestResolveEndpointWithoutPorts(t *testing.T) {
	stubPorts(t, nil, nil)
	_, err := ResolveEndpoint("", 0)
	require.ErrorIs(t, err, uart.ErrNoPort)
}

func TestDialReportsResolveFailure(t *testing.T) {
	stubPorts(t, nil, nil)
	client, err := Dial(context.Background(), Config{})
	require.Error(t, err)
	assert.Nil(t, client)
	assert.ErrorIs(t, err, uart.ErrNoPort)
}

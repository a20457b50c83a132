package uart

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEndpoint(t *testing.T) {
	cases := []struct {
		raw  string
		want Endpoint
	}{
		{"/dev/ttyUSB0", Endpoint{Kind: KindSerial, Address: "/dev/ttyUSB0", Baud: DefaultBaud}},
		{"COM3", Endpoint{Kind: KindSerial, Address: "COM3", Baud: DefaultBaud}},
		{"tcp://10.0.0.2:4000", Endpoint{Kind: KindTCP, Address: "10.0.0.2:4000"}},
		{"ws://ghost.local/ws", Endpoint{Kind: KindWebSocket, Address: "ws://ghost.local/ws"}},
	}
	for _, tc := range cases {
		got, err := ParseEndpoint(tc.raw, 0)
		require.NoError(t, err, tc.raw)
		assert.Equal(t, tc.want, got, tc.raw)
	}
}

func TestParseEndpointErrors(t *testing.T) {
	_, err := ParseEndpoint("  ", 0)
	assert.True(t, errors.Is(err, ErrNoPort))

	for _, raw := range []string{"tcp://nohost", "ws://", "udp://1.2.3.4:5"} {
		_, err := ParseEndpoint(raw, 0)
		assert.Error(t, err, raw)
	}
}

func TestParseEndpointKeepsBaud(t *testing.T) {
	ep, err := ParseEndpoint("/dev/ttyACM0", 921600)
	require.NoError(t, err)
	assert.Equal(t, 921600, ep.Baud)
	assert.Equal(t, "/dev/ttyACM0@921600", ep.String())
}

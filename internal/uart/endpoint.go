package uart

import (
	"fmt"
	"net"
	"net/url"
	"strings"
)

// Kind selects the port implementation behind an endpoint.
type Kind int

const (
	KindSerial Kind = iota
	KindTCP
	KindWebSocket
)

func (k Kind) String() string {
	switch k {
	case KindTCP:
		return "tcp"
	case KindWebSocket:
		return "websocket"
	default:
		return "serial"
	}
}

// DefaultBaud matches the ESP firmware console.
const DefaultBaud = 115200

// Endpoint names where the ESP is reachable: a serial device path, a
// tcp://host:port bridge or a ws:// web terminal.
type Endpoint struct {
	Kind    Kind
	Address string
	Baud    int
}

func (e Endpoint) String() string {
	switch e.Kind {
	case KindTCP:
		return "tcp://" + e.Address
	case KindWebSocket:
		return e.Address
	default:
		return fmt.Sprintf("%s@%d", e.Address, e.Baud)
	}
}

// ParseEndpoint interprets raw as an endpoint. Anything without a tcp or ws
// scheme is treated as a serial device path.
func ParseEndpoint(raw string, baud int) (Endpoint, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Endpoint{}, ErrNoPort
	}
	if baud <= 0 {
		baud = DefaultBaud
	}
	lower := strings.ToLower(raw)
	switch {
	case strings.HasPrefix(lower, "tcp://"):
		addr := raw[len("tcp://"):]
		if _, _, err := net.SplitHostPort(addr); err != nil {
			return Endpoint{}, fmt.Errorf("parse tcp endpoint %q: %w", raw, err)
		}
		return Endpoint{Kind: KindTCP, Address: addr}, nil
	case strings.HasPrefix(lower, "ws://"), strings.HasPrefix(lower, "wss://"):
		u, err := url.Parse(raw)
		if err != nil {
			return Endpoint{}, fmt.Errorf("parse websocket endpoint %q: %w", raw, err)
		}
		if u.Host == "" {
			return Endpoint{}, fmt.Errorf("parse websocket endpoint %q: missing host", raw)
		}
		return Endpoint{Kind: KindWebSocket, Address: u.String()}, nil
	case strings.Contains(lower, "://"):
		return Endpoint{}, fmt.Errorf("unsupported endpoint scheme in %q", raw)
	default:
		return Endpoint{Kind: KindSerial, Address: raw, Baud: baud}, nil
	}
}

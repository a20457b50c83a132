package uart

import (
	"context"
	"fmt"
	"io"
)

// Port is an open byte stream to the ESP console.
type Port interface {
	io.ReadWriteCloser
}

// Opener opens a port for an endpoint.
type Opener func(ctx context.Context, ep Endpoint) (Port, error)

// OpenPort dispatches on the endpoint kind.
func OpenPort(ctx context.Context, ep Endpoint) (Port, error) {
	switch ep.Kind {
	case KindSerial:
		return openSerial(ep)
	case KindTCP:
		return openTCP(ctx, ep)
	case KindWebSocket:
		return openWebSocket(ctx, ep)
	default:
		return nil, fmt.Errorf("unknown endpoint kind %d", ep.Kind)
	}
}

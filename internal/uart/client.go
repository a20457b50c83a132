package uart

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/atomicstack/ghost-esp-control/internal/logging"
	"github.com/atomicstack/ghost-esp-control/internal/logging/events"
	"go.uber.org/zap"
)

var (
	// ErrNoPort is returned when no endpoint was configured or detected.
	ErrNoPort = errors.New("no port configured")
	// ErrNotConnected is returned by sends while no session is open.
	ErrNotConnected = errors.New("esp not connected")
	// ErrCaptureOpen wraps failures to create a capture sink.
	ErrCaptureOpen = errors.New("capture sink open failed")
	// ErrClosed is returned once the client has been closed.
	ErrClosed = errors.New("client closed")
)

// Event carries one chunk of console output or the error that ended the
// session.
type Event struct {
	When time.Time
	Data []byte
	Err  error
}

// Option customises a Client.
type Option func(*Client)

// WithOpener replaces the port opener. Tests use it to supply in-memory ports.
func WithOpener(o Opener) Option {
	return func(c *Client) {
		if o != nil {
			c.open = o
		}
	}
}

// Client owns a single session with the ESP. Received bytes are published on
// Events and teed into the capture sink while one is open.
type Client struct {
	endpoint Endpoint
	dataDir  string
	open     Opener

	mu        sync.RWMutex
	port      Port
	connected bool
	closed    bool
	sink      *captureSink

	wmu sync.Mutex

	events    chan Event
	done      chan struct{}
	loopDone  chan struct{}
	closeOnce sync.Once
}

// NewClient prepares a client for ep. Capture files are created under dataDir.
func NewClient(ep Endpoint, dataDir string, opts ...Option) *Client {
	c := &Client{
		endpoint: ep,
		dataDir:  dataDir,
		open:     OpenPort,
		events:   make(chan Event, 64),
		done:     make(chan struct{}),
		loopDone: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Endpoint returns the configured endpoint.
func (c *Client) Endpoint() Endpoint {
	return c.endpoint
}

// Open starts the session and the receive loop.
func (c *Client) Open(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	if c.port != nil {
		c.mu.Unlock()
		return fmt.Errorf("already connected to %s", c.endpoint)
	}
	c.mu.Unlock()

	port, err := c.open(ctx, c.endpoint)
	if err != nil {
		return err
	}

	c.mu.Lock()
	if c.closed || c.port != nil {
		c.mu.Unlock()
		_ = port.Close()
		return ErrClosed
	}
	c.port = port
	c.connected = true
	c.mu.Unlock()

	events.Transport.Open(c.endpoint.Kind.String(), c.endpoint.String())
	logging.Info("transport open", zap.Stringer("endpoint", c.endpoint))
	go c.readLoop(port)
	return nil
}

func (c *Client) readLoop(port Port) {
	defer func() {
		close(c.events)
		close(c.loopDone)
	}()
	buf := make([]byte, 4096)
	for {
		n, err := port.Read(buf)
		if n > 0 {
			data := make([]byte, n)
			copy(data, buf[:n])
			c.tee(data)
			if !c.publish(Event{When: time.Now(), Data: data}) {
				return
			}
		}
		if err != nil {
			c.mu.Lock()
			c.connected = false
			closed := c.closed
			c.mu.Unlock()
			if !closed {
				events.Transport.ReadError(err)
				logging.Error(fmt.Errorf("transport read: %w", err))
				c.publish(Event{When: time.Now(), Err: err})
			}
			return
		}
	}
}

func (c *Client) publish(evt Event) bool {
	select {
	case c.events <- evt:
		return true
	case <-c.done:
		return false
	}
}

func (c *Client) tee(data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sink == nil {
		return
	}
	if _, err := c.sink.Write(data); err != nil {
		logging.Error(fmt.Errorf("write capture %s: %w", c.sink.path, err))
	}
}

// Events returns the receive channel. It is closed once the receive loop
// exits, or by Close when the client never opened.
func (c *Client) Events() <-chan Event {
	return c.events
}

// IsConnected reports whether the session is open and the receiver has not
// failed.
func (c *Client) IsConnected() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.connected
}

// Send writes command verbatim.
func (c *Client) Send(command string) error {
	return c.write([]byte(command))
}

// SendBytes writes command followed by raw payload bytes.
func (c *Client) SendBytes(command string, payload []byte) error {
	if err := c.write([]byte(command)); err != nil {
		return err
	}
	if len(payload) == 0 {
		return nil
	}
	return c.write(payload)
}

func (c *Client) write(b []byte) error {
	c.mu.RLock()
	port, connected, closed := c.port, c.connected, c.closed
	c.mu.RUnlock()
	if closed {
		return ErrClosed
	}
	if port == nil || !connected {
		return ErrNotConnected
	}
	c.wmu.Lock()
	defer c.wmu.Unlock()
	n, err := port.Write(b)
	if err != nil {
		return fmt.Errorf("write %s: %w", c.endpoint, err)
	}
	events.Transport.Write(n)
	return nil
}

// OpenCaptureSink starts teeing received bytes into a new capture file. Any
// previously open sink is closed first.
func (c *Client) OpenCaptureSink(prefix, ext, folder string) error {
	sink, err := openCaptureSink(c.dataDir, prefix, ext, folder)
	if err != nil {
		events.Capture.OpenFailed(prefix, folder, err)
		return fmt.Errorf("%w: %w", ErrCaptureOpen, err)
	}
	c.mu.Lock()
	prev := c.sink
	c.sink = sink
	c.mu.Unlock()
	if prev != nil {
		_ = closeSink(prev)
	}
	events.Capture.Open(sink.path)
	return nil
}

// CloseCaptureSink stops teeing. It is a no-op without an open sink.
func (c *Client) CloseCaptureSink() error {
	c.mu.Lock()
	sink := c.sink
	c.sink = nil
	c.mu.Unlock()
	if sink == nil {
		return nil
	}
	return closeSink(sink)
}

func closeSink(s *captureSink) error {
	err := s.Close()
	events.Capture.Close(s.path, s.written)
	if err != nil {
		return fmt.Errorf("close capture %s: %w", s.path, err)
	}
	return nil
}

// CapturePath returns the file of the open capture sink, or "".
func (c *Client) CapturePath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.sink == nil {
		return ""
	}
	return c.sink.path
}

// Close ends the session, closes any capture sink and the events channel.
func (c *Client) Close() error {
	var err error
	c.closeOnce.Do(func() {
		c.mu.Lock()
		c.closed = true
		c.connected = false
		port := c.port
		c.mu.Unlock()

		close(c.done)
		if port != nil {
			err = port.Close()
			select {
			case <-c.loopDone:
			case <-time.After(1200 * time.Millisecond):
			}
		} else {
			close(c.events)
		}
		if serr := c.CloseCaptureSink(); serr != nil && err == nil {
			err = serr
		}
		events.Transport.Close(c.endpoint.String())
	})
	return err
}

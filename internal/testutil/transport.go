package testutil

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"
)

// ErrCaptureRefused is returned by FakeTransport when capture opens are set
// to fail.
var ErrCaptureRefused = errors.New("capture refused")

// CaptureRequest records one OpenCaptureSink call.
type CaptureRequest struct {
	Prefix    string
	Extension string
	Folder    string
}

// FakeTransport records sends and capture requests in memory.
type FakeTransport struct {
	mu          sync.Mutex
	connected   bool
	failCapture bool
	sendErr     error
	sent        []string
	captures    []CaptureRequest
	capturePath string
	closed      int
}

// NewFakeTransport returns a connected fake.
func NewFakeTransport() *FakeTransport {
	return &FakeTransport{connected: true}
}

func (f *FakeTransport) SetConnected(connected bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.connected = connected
}

// FailCapture makes every following OpenCaptureSink call fail.
func (f *FakeTransport) FailCapture(fail bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failCapture = fail
}

// FailSend makes every following Send return err.
func (f *FakeTransport) FailSend(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sendErr = err
}

func (f *FakeTransport) IsConnected() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.connected
}

func (f *FakeTransport) Send(command string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, command)
	return nil
}

func (f *FakeTransport) OpenCaptureSink(prefix, ext, folder string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.captures = append(f.captures, CaptureRequest{Prefix: prefix, Extension: ext, Folder: folder})
	if f.failCapture {
		return ErrCaptureRefused
	}
	f.capturePath = filepath.Join(folder, fmt.Sprintf("%s_0.%s", prefix, ext))
	return nil
}

func (f *FakeTransport) CloseCaptureSink() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.capturePath != "" {
		f.closed++
	}
	f.capturePath = ""
	return nil
}

func (f *FakeTransport) CapturePath() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.capturePath
}

// Sent returns every line written so far.
func (f *FakeTransport) Sent() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	dup := make([]string, len(f.sent))
	copy(dup, f.sent)
	return dup
}

// Captures returns every capture open attempt, failed ones included.
func (f *FakeTransport) Captures() []CaptureRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	dup := make([]CaptureRequest, len(f.captures))
	copy(dup, f.captures)
	return dup
}

// ClosedCaptures counts sinks closed while open.
func (f *FakeTransport) ClosedCaptures() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

// Reset forgets recorded sends and captures.
func (f *FakeTransport) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = nil
	f.captures = nil
}

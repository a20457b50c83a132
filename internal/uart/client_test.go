package uart

import (
	"bufio"
	"context"
	"errors"
	"net"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pipeClient(t *testing.T, dataDir string) (*Client, net.Conn) {
	t.Helper()
	local, remote := net.Pipe()
	opener := func(context.Context, Endpoint) (Port, error) { return local, nil }
	c := NewClient(Endpoint{Kind: KindSerial, Address: "pipe", Baud: DefaultBaud}, dataDir, WithOpener(opener))
	require.NoError(t, c.Open(context.Background()))
	t.Cleanup(func() {
		_ = c.Close()
		_ = remote.Close()
	})
	return c, remote
}

func TestClientSendWritesVerbatim(t *testing.T) {
	c, remote := pipeClient(t, t.TempDir())
	got := make(chan string, 1)
	go func() {
		line, _ := bufio.NewReader(remote).ReadString('\n')
		got <- line
	}()
	require.NoError(t, c.Send("scanap\n"))
	select {
	case line := <-got:
		assert.Equal(t, "scanap\n", line)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for write")
	}
}

func TestClientSendBytesAppendsPayload(t *testing.T) {
	c, remote := pipeClient(t, t.TempDir())
	want := "webauth on\n\x00\x01\xff"
	got := make(chan []byte, 1)
	go func() {
		buf := make([]byte, 0, len(want))
		chunk := make([]byte, 64)
		for len(buf) < len(want) {
			n, err := remote.Read(chunk)
			if err != nil {
				break
			}
			buf = append(buf, chunk[:n]...)
		}
		got <- buf
	}()
	require.NoError(t, c.SendBytes("webauth on\n", []byte{0x00, 0x01, 0xff}))
	select {
	case b := <-got:
		assert.Equal(t, []byte(want), b)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for write")
	}
}

func TestClientSendBytesWithoutPayload(t *testing.T) {
	c, remote := pipeClient(t, t.TempDir())
	got := make(chan string, 1)
	go func() {
		line, _ := bufio.NewReader(remote).ReadString('\n')
		got <- line
	}()
	require.NoError(t, c.SendBytes("stop\n", nil))
	select {
	case line := <-got:
		assert.Equal(t, "stop\n", line)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for write")
	}
}

func TestClientPublishesAndTeesOutput(t *testing.T) {
	dir := t.TempDir()
	c, remote := pipeClient(t, dir)
	require.NoError(t, c.OpenCaptureSink("raw_capture", "pcap", "pcaps"))
	path := c.CapturePath()
	require.NotEmpty(t, path)

	go func() { _, _ = remote.Write([]byte("hello")) }()
	select {
	case evt := <-c.Events():
		require.NoError(t, evt.Err)
		assert.Equal(t, "hello", string(evt.Data))
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
	}

	require.NoError(t, c.CloseCaptureSink())
	assert.Empty(t, c.CapturePath())
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestClientReadErrorDisconnects(t *testing.T) {
	c, remote := pipeClient(t, t.TempDir())
	assert.True(t, c.IsConnected())
	require.NoError(t, remote.Close())

	select {
	case evt := <-c.Events():
		assert.Error(t, evt.Err)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for error event")
	}
	assert.False(t, c.IsConnected())
	assert.True(t, errors.Is(c.Send("stop\n"), ErrNotConnected))
}

func TestClientCaptureOpenFailure(t *testing.T) {
	root := t.TempDir() + "/blocked"
	require.NoError(t, os.WriteFile(root, nil, 0o644))
	c, _ := pipeClient(t, root)
	err := c.OpenCaptureSink("wps_capture", "pcap", "pcaps")
	assert.True(t, errors.Is(err, ErrCaptureOpen))
	assert.Empty(t, c.CapturePath())
}

func TestClientSendBeforeOpen(t *testing.T) {
	c := NewClient(Endpoint{Kind: KindSerial, Address: "none"}, t.TempDir())
	assert.True(t, errors.Is(c.Send("x\n"), ErrNotConnected))
	require.NoError(t, c.Close())
	assert.True(t, errors.Is(c.Send("x\n"), ErrClosed))
	_, open := <-c.Events()
	assert.False(t, open)
}

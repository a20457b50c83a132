package uart

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaptureSinkPicksFirstUnusedIndex(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "pcaps")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "wps_capture_0.pcap"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "wps_capture_2.pcap"), nil, 0o644))

	sink, err := openCaptureSink(root, "wps_capture", "pcap", "pcaps")
	require.NoError(t, err)
	defer sink.Close()
	assert.Equal(t, filepath.Join(dir, "wps_capture_1.pcap"), sink.path)
}

func TestCaptureSinkRequiresAllFields(t *testing.T) {
	_, err := openCaptureSink(t.TempDir(), "", "pcap", "pcaps")
	assert.Error(t, err)
}

func TestCaptureSinkFailsOnUnwritableRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(root, []byte("x"), 0o644))
	_, err := openCaptureSink(root, "raw_capture", "pcap", "pcaps")
	assert.Error(t, err)
}

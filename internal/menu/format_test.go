package menu

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCommand(t *testing.T) {
	assert.Equal(t, "select -a 3\n", FormatCommand("select -a", "3"))
	assert.Equal(t, "beaconspam My SSID\n", FormatCommand("beaconspam", "My SSID"))
}

func TestFormatConnectPassesQuotesThrough(t *testing.T) {
	assert.Equal(t, "connect \"MyNet\" \"secret\"\n", FormatConnect("MyNet", "secret"))
	assert.Equal(t, "connect \"a\"b\" \"\"\n", FormatConnect(`a"b`, ""))
}

func TestFormatBoundsLineLength(t *testing.T) {
	line := FormatCommand("timezone", strings.Repeat("x", 400))
	assert.Len(t, line, MaxLineLength)
	assert.True(t, strings.HasSuffix(line, "\n"))
	assert.True(t, strings.HasPrefix(line, "timezone xxx"))
}

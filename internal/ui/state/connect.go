package state

import "github.com/atomicstack/ghost-esp-control/internal/menu"

// ConnectStage is the step of the two-stage WiFi connect input.
type ConnectStage int

const (
	ConnectIdle ConnectStage = iota
	ConnectAwaitingSSID
	ConnectAwaitingPassword
)

// MaxSSIDLength is the longest SSID kept from the first stage.
const MaxSSIDLength = 63

func (s ConnectStage) String() string {
	switch s {
	case ConnectAwaitingSSID:
		return "awaiting-ssid"
	case ConnectAwaitingPassword:
		return "awaiting-password"
	default:
		return "idle"
	}
}

// ConnectFlow collects an SSID and then a password before producing the
// connect line.
type ConnectFlow struct {
	stage ConnectStage
	ssid  string
}

// Begin starts a new flow, discarding any partial one.
func (c *ConnectFlow) Begin() {
	c.stage = ConnectAwaitingSSID
	c.ssid = ""
}

// Stage returns the current step.
func (c *ConnectFlow) Stage() ConnectStage {
	return c.stage
}

// Active reports whether input is being collected for the flow.
func (c *ConnectFlow) Active() bool {
	return c.stage != ConnectIdle
}

// SSID returns the captured first field.
func (c *ConnectFlow) SSID() string {
	return c.ssid
}

// Prompt returns the header for the pending stage.
func (c *ConnectFlow) Prompt() string {
	if c.stage == ConnectAwaitingPassword {
		return menu.ConnectPasswordPrompt
	}
	return menu.ConnectSSIDPrompt
}

// Submit feeds one input result into the flow. After the SSID it returns
// done=false and waits for the password. After the password it returns the
// formatted line and resets to idle.
func (c *ConnectFlow) Submit(text string) (line string, done bool) {
	switch c.stage {
	case ConnectAwaitingSSID:
		if len(text) > MaxSSIDLength {
			text = text[:MaxSSIDLength]
		}
		c.ssid = text
		c.stage = ConnectAwaitingPassword
		return "", false
	case ConnectAwaitingPassword:
		line = menu.FormatConnect(c.ssid, text)
		c.Reset()
		return line, true
	default:
		return "", false
	}
}

// Reset returns the flow to idle.
func (c *ConnectFlow) Reset() {
	c.stage = ConnectIdle
	c.ssid = ""
}

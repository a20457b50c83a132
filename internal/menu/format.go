package menu

import (
	"fmt"
	"strings"
)

// MaxLineLength bounds every formatted outbound line, newline included.
const MaxLineLength = 255

// FormatCommand joins a verb with user text into one newline-terminated line.
func FormatCommand(verb, text string) string {
	return boundLine(fmt.Sprintf("%s %s", verb, text))
}

// FormatConnect builds the WiFi connect line. Quotes inside either field are
// passed through unescaped.
func FormatConnect(ssid, password string) string {
	return boundLine(fmt.Sprintf(`%s "%s" "%s"`, ConnectCommand, ssid, password))
}

func boundLine(body string) string {
	body = strings.TrimSuffix(body, "\n")
	if len(body) > MaxLineLength-1 {
		body = body[:MaxLineLength-1]
	}
	return body + "\n"
}

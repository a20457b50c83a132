package menu

import "fmt"

// Modal texts that are not attached to a descriptor.
const (
	ConnectionErrorHeader = "Connection Error"
	ConnectionErrorBody   = "No response from ESP!\n" +
		"Is a command running?\n" +
		"Restart the app.\n" +
		"Restart ESP.\n" +
		"Check UART Pins.\n" +
		"Reflash if issues persist.\n" +
		"You can disable this check in the settings menu.\n\n"

	QuickHelpHeader = "Quick Help"
	AppInfoHeader   = "App Info"

	// ConnectSSIDPrompt and ConnectPasswordPrompt head the two stages of the
	// WiFi connect input.
	ConnectSSIDPrompt     = "SSID"
	ConnectPasswordPrompt = "PASSWORD"
)

// QuickHelpBody is shown on long-press from the main menu.
var QuickHelpBody = "=== Controls ===\n" +
	"Hold [Ok]\n" +
	"    Show command details\n" +
	"Back button returns to\n" +
	"previous menu\n" +
	"\n" +
	"=== File Locations ===\n" +
	fmt.Sprintf("PCAP files: /%s\n", FolderPcaps) +
	fmt.Sprintf("GPS data: /%s\n", FolderWardrive) +
	"\n" +
	"=== Tips ===\n" +
	"- One capture at a time\n" +
	"  for best performance\n" +
	"- Hold OK on any command\n" +
	"  to see range & details\n" +
	"\n" +
	"=== Settings ===\n" +
	"Configure options in\n" +
	"SET menu including:\n" +
	"- Auto-stop behavior\n" +
	"- LED settings\n"

// AppInfoBody renders the App Info modal for the given build version.
func AppInfoBody(version string) string {
	return fmt.Sprintf("Ghost ESP Control\n"+
		"Version %s\n"+
		"\n"+
		"Menu front end for the\n"+
		"Ghost ESP firmware.\n"+
		"Captures land under\n"+
		"/%s and /%s.\n", version, FolderPcaps, FolderWardrive)
}

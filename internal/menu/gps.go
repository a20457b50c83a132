package menu

var gpsCommands = []Descriptor{
	{
		Label:         "GPS Info",
		Command:       "gpsinfo\n",
		DetailsHeader: "GPS Information",
		DetailsBody: "Shows GPS details:\n" +
			"- Position (Lat/Long)\n" +
			"- Altitude & Speed\n" +
			"- Direction & Quality\n" +
			"- Satellite Status\n",
	},
	{
		Label:         "Start Wardriving",
		Command:       "startwd\n",
		DetailsHeader: "Wardrive Mode",
		DetailsBody: "Maps WiFi networks:\n" +
			"- Network info\n" +
			"- GPS location\n" +
			"- Signal levels\n" +
			"Saves as CSV\n",
	},
	{
		Label:         "BLE Wardriving",
		Command:       "blewardriving\n",
		DetailsHeader: "BLE Wardriving",
		DetailsBody: "Maps BLE devices:\n" +
			"- Device info\n" +
			"- GPS location\n" +
			"- Signal levels\n" +
			"Saves as CSV\n",
	},
	{
		Label:         "Stop All GPS",
		Command:       StopCommand,
		DetailsHeader: "Stop GPS Operations",
		DetailsBody: "Stops all active GPS\n" +
			"operations including:\n" +
			"- GPS Info Updates\n" +
			"- WiFi Wardriving\n" +
			"- BLE Wardriving\n",
	},
}

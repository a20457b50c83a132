package uart

import (
	"fmt"
	"sort"

	"go.bug.st/serial"
)

func openSerial(ep Endpoint) (Port, error) {
	mode := &serial.Mode{
		BaudRate: ep.Baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
	p, err := serial.Open(ep.Address, mode)
	if err != nil {
		return nil, fmt.Errorf("open serial %s: %w", ep.Address, err)
	}
	// drop whatever the ESP printed before we attached
	if err := p.ResetInputBuffer(); err != nil {
		_ = p.Close()
		return nil, fmt.Errorf("reset serial %s: %w", ep.Address, err)
	}
	return p, nil
}

// ListPorts returns the serial devices present on the host, sorted.
func ListPorts() ([]string, error) {
	ports, err := serial.GetPortsList()
	if err != nil {
		return nil, fmt.Errorf("list serial ports: %w", err)
	}
	sort.Strings(ports)
	return ports, nil
}

package midiout

import (
	"fmt"
	"io"

	"github.com/gomidi/connect"
)

func PrintPort(w io.Writer, port connect.Port) {
	fmt.Fprintf(w, "[%v] %s\n", port.Number(), port.String())
}

func PrintInPorts(w io.Writer, ports []connect.In) {
	fmt.Fprintf(w, "MIDI IN Ports\n")
	for _, port := range ports {
		PrintPort(w, port)
	}
	fmt.Fprintf(w, "\n\n")
}

func PrintOutPorts(w io.Writer, ports []connect.Out) {
	fmt.Fprintf(w, "MIDI OUT Ports\n")
	for _, port := range ports {
		PrintPort(w, port)
	}
	fmt.Fprintf(w, "\n\n")
}

// SelectOut returns the output port with the given number.
func SelectOut(ports []connect.Out, number int) (connect.Out, error) {
	for _, port := range ports {
		if port.Number() == number {
			return port, nil
		}
	}
	return nil, fmt.Errorf("no MIDI out port %d (%d available)", number, len(ports))
}

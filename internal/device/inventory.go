package device

import (
	"fmt"
	"io"
	"strings"

	"github.com/gocarina/gocsv"
)

// describes entry in csv inventory file, one simulated device per row
type Entry struct {
	Hostname   string `csv:"hostname"`
	CmdFile    string `csv:"cmdFile"`
	Interfaces string `csv:"interfaces"`
	State      string `csv:"-"`
}

const (
	Ok                   = "Success"
	Unknown              = "Unknown"
	Canceled             = "Canceled"
	CmdPartiallyAccepted = "Commands accepted with errors"
)

// type describes cli error
type DevError struct {
	Device string
	Cmd    string
	Msg    string
}

// ReadInventory decodes the csv inventory
func ReadInventory(r io.Reader) ([]*Entry, error) {
	var entries []*Entry
	if err := gocsv.Unmarshal(r, &entries); err != nil {
		return nil, fmt.Errorf("cannot unmarshal inventory csv: %w", err)
	}
	for i, e := range entries {
		if !validHostname(e.Hostname) {
			return nil, fmt.Errorf("inventory row %d: bad hostname %q", i+1, e.Hostname)
		}
		if e.CmdFile == "" {
			return nil, fmt.Errorf("inventory row %d: no command file for %q", i+1, e.Hostname)
		}
	}
	return entries, nil
}

// Options returns the constructor options for the simulated device. The
// interfaces column is a space separated port list, empty means defaults.
func (e *Entry) Options() []Option {
	opts := []Option{WithHostname(e.Hostname)}
	if names := strings.Fields(e.Interfaces); len(names) > 0 {
		opts = append(opts, WithInterfaces(names...))
	}
	return opts
}

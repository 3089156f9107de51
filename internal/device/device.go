package device

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Mode is the privilege/context level of the simulated switch
type Mode int

const (
	ModeUser Mode = iota + 1
	ModePriv
	ModeConfig
)

// ErrInvalidMode means the device holds a mode outside of USER/PRIV/CONFIG.
// No command can produce it, so seeing it is a bug in the engine.
var ErrInvalidMode = errors.New("invalid device mode")

func (m Mode) String() string {
	switch m {
	case ModeUser:
		return "USER"
	case ModePriv:
		return "PRIV"
	case ModeConfig:
		return "CONFIG"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// PromptSuffix returns the string appended to hostname in the prompt
func (m Mode) PromptSuffix() (string, error) {
	switch m {
	case ModeUser:
		return ">", nil
	case ModePriv:
		return "#", nil
	case ModeConfig:
		return "(config)#", nil
	}
	return "", fmt.Errorf("%w: %d", ErrInvalidMode, int(m))
}

const (
	DefaultHostname = "Switch"
	DefaultVlanID   = 1
	DefaultVlanName = "default"
	MaxVlanID       = 4094
)

// DefaultInterfaces is the port inventory of a device built without WithInterfaces
var DefaultInterfaces = []string{"Gi0/1", "Gi0/2", "Gi0/3", "Gi0/4", "Gi0/5", "Vlan1"}

type Status string

const (
	StatusUp   Status = "up"
	StatusDown Status = "down"
)

// Address is an IPv4 address with its prefix length
type Address struct {
	IPv4   string `json:"ipv4"`
	Prefix int    `json:"prefix"`
}

func (a Address) String() string {
	return fmt.Sprintf("%s/%d", a.IPv4, a.Prefix)
}

type Interface struct {
	Name    string   `json:"name"`
	Address *Address `json:"address,omitempty"`
	Status  Status   `json:"status"`
}

type Vlan struct {
	ID         int      `json:"id"`
	Name       string   `json:"name"`
	Interfaces []string `json:"interfaces"`
}

// Device is a single simulated switch. It is not safe for concurrent use,
// callers serialize Execute (see terminal.Session).
type Device struct {
	hostname   string
	mode       Mode
	interfaces map[string]*Interface
	order      []string
	vlans      map[int]*Vlan
}

type Option func(*Device)

// WithHostname sets the initial hostname. Empty names or names with
// whitespace are ignored.
func WithHostname(name string) Option {
	return func(d *Device) {
		if validHostname(name) {
			d.hostname = name
		}
	}
}

// WithInterfaces replaces the default port inventory. The list is fixed for
// the life of the device.
func WithInterfaces(names ...string) Option {
	return func(d *Device) {
		if len(names) == 0 {
			return
		}
		d.interfaces = make(map[string]*Interface, len(names))
		d.order = d.order[:0]
		for _, n := range names {
			n = strings.TrimSpace(n)
			if n == "" {
				continue
			}
			if _, ok := d.interfaces[n]; ok {
				continue
			}
			d.interfaces[n] = &Interface{Name: n, Status: StatusDown}
			d.order = append(d.order, n)
		}
	}
}

// New creates a device in USER mode with VLAN 1 present
func New(opts ...Option) *Device {
	d := &Device{
		hostname: DefaultHostname,
		mode:     ModeUser,
		vlans: map[int]*Vlan{
			DefaultVlanID: {ID: DefaultVlanID, Name: DefaultVlanName, Interfaces: []string{}},
		},
	}
	WithInterfaces(DefaultInterfaces...)(d)
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Device) Hostname() string { return d.hostname }

func (d *Device) Mode() Mode { return d.mode }

// Prompt is derived from mode and hostname only
func (d *Device) Prompt() string {
	suffix, err := d.mode.PromptSuffix()
	if err != nil {
		panic(err)
	}
	return d.hostname + suffix
}

// Interfaces returns copies of all interfaces in inventory order
func (d *Device) Interfaces() []Interface {
	res := make([]Interface, 0, len(d.order))
	for _, name := range d.order {
		intf := *d.interfaces[name]
		if intf.Address != nil {
			addr := *intf.Address
			intf.Address = &addr
		}
		res = append(res, intf)
	}
	return res
}

// Vlans returns copies of all VLANs ordered by id
func (d *Device) Vlans() []Vlan {
	res := make([]Vlan, 0, len(d.vlans))
	for _, v := range d.vlans {
		res = append(res, Vlan{ID: v.ID, Name: v.Name, Interfaces: append([]string{}, v.Interfaces...)})
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res
}

// lookupInterface finds an interface by case-insensitive name
func (d *Device) lookupInterface(name string) (*Interface, bool) {
	if intf, ok := d.interfaces[name]; ok {
		return intf, true
	}
	for _, n := range d.order {
		if strings.EqualFold(n, name) {
			return d.interfaces[n], true
		}
	}
	return nil, false
}

// vlanOf returns the VLAN an interface is a member of, 0 if none
func (d *Device) vlanOf(name string) int {
	for id, v := range d.vlans {
		for _, member := range v.Interfaces {
			if member == name {
				return id
			}
		}
	}
	return 0
}

func (d *Device) detach(name string) {
	for _, v := range d.vlans {
		for i, member := range v.Interfaces {
			if member == name {
				v.Interfaces = append(v.Interfaces[:i], v.Interfaces[i+1:]...)
				break
			}
		}
	}
}

func validHostname(name string) bool {
	return name != "" && len(strings.Fields(name)) == 1 && strings.TrimSpace(name) == name
}

package device

import (
	"fmt"
	"math/bits"
	"net/netip"
	"strconv"
	"strings"
)

// configureVlan handles "vlan <id> [name <name>]"
func configureVlan(d *Device, c *command) Result {
	args := c.args(1)
	if len(args) == 0 {
		return d.reply(IncompleteCommand)
	}
	id, ok := parseVlanID(args[0])
	if !ok {
		return unknownCommand(d, c)
	}
	var name string
	switch {
	case len(args) == 1:
	case strings.EqualFold(args[1], "name") && len(args) == 2:
		return d.reply(IncompleteCommand)
	case strings.EqualFold(args[1], "name"):
		name = args[2]
	default:
		return unknownCommand(d, c)
	}

	v, exists := d.vlans[id]
	if !exists {
		v = &Vlan{ID: id, Name: fmt.Sprintf("VLAN%04d", id), Interfaces: []string{}}
		d.vlans[id] = v
	}
	if name != "" {
		if id == DefaultVlanID {
			return unknownCommand(d, c)
		}
		v.Name = name
	}
	return d.reply()
}

// negate handles "no vlan <id>"
func negate(d *Device, c *command) Result {
	args := c.args(1)
	if len(args) == 0 {
		return d.reply(IncompleteCommand)
	}
	if !strings.EqualFold(args[0], "vlan") {
		return unknownCommand(d, c)
	}
	if len(args) == 1 {
		return d.reply(IncompleteCommand)
	}
	id, ok := parseVlanID(args[1])
	if !ok || id == DefaultVlanID {
		return unknownCommand(d, c)
	}
	if _, exists := d.vlans[id]; !exists {
		return unknownCommand(d, c)
	}
	delete(d.vlans, id)
	return d.reply()
}

// configureInterface handles the single-line interface settings:
//
//	interface <name> ip address <addr> <mask|/len>
//	interface <name> no ip address
//	interface <name> [no] shutdown
//	interface <name> switchport access vlan <id>
func configureInterface(d *Device, c *command) Result {
	args := c.args(1)
	if len(args) < 2 {
		return d.reply(IncompleteCommand)
	}
	intf, ok := d.lookupInterface(args[0])
	if !ok {
		return unknownCommand(d, c)
	}
	setting := strings.ToLower(strings.Join(args[1:], " "))
	params := args[1:]

	switch {
	case setting == "shutdown":
		intf.Status = StatusDown
	case setting == "no shutdown":
		intf.Status = StatusUp
	case setting == "no ip address":
		intf.Address = nil
	case hasWords(params, "ip", "address"):
		if len(params) < 4 {
			return d.reply(IncompleteCommand)
		}
		addr, err := parseAddress(params[2], params[3])
		if err != nil {
			return unknownCommand(d, c)
		}
		intf.Address = addr
	case hasWords(params, "switchport", "access", "vlan"):
		if len(params) < 4 {
			return d.reply(IncompleteCommand)
		}
		id, ok := parseVlanID(params[3])
		if !ok {
			return unknownCommand(d, c)
		}
		v, exists := d.vlans[id]
		if !exists {
			return unknownCommand(d, c)
		}
		if d.vlanOf(intf.Name) != id {
			d.detach(intf.Name)
			v.Interfaces = append(v.Interfaces, intf.Name)
		}
	case setting == "ip" || setting == "switchport" || setting == "switchport access":
		return d.reply(IncompleteCommand)
	default:
		return unknownCommand(d, c)
	}
	return d.reply()
}

// hasWords reports whether args start with the given keywords, ignoring case
func hasWords(args []string, words ...string) bool {
	if len(args) < len(words) {
		return false
	}
	for i, w := range words {
		if !strings.EqualFold(args[i], w) {
			return false
		}
	}
	return true
}

func parseVlanID(s string) (int, bool) {
	id, err := strconv.Atoi(s)
	if err != nil || id < DefaultVlanID || id > MaxVlanID {
		return 0, false
	}
	return id, true
}

// parseAddress accepts a dotted mask ("255.255.255.0") or a prefix length ("/24")
func parseAddress(ip, mask string) (*Address, error) {
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return nil, err
	}
	if !addr.Is4() {
		return nil, fmt.Errorf("%s is not an IPv4 address", ip)
	}

	var prefix int
	if strings.HasPrefix(mask, "/") {
		prefix, err = strconv.Atoi(mask[1:])
		if err != nil || prefix < 0 || prefix > 32 {
			return nil, fmt.Errorf("bad prefix length %q", mask)
		}
	} else {
		m, err := netip.ParseAddr(mask)
		if err != nil || !m.Is4() {
			return nil, fmt.Errorf("bad mask %q", mask)
		}
		b := m.As4()
		v := uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
		prefix = bits.OnesCount32(v)
		if v != ^uint32(0)<<(32-prefix) {
			return nil, fmt.Errorf("non-contiguous mask %q", mask)
		}
	}
	return &Address{IPv4: addr.String(), Prefix: prefix}, nil
}

// dottedMask renders a prefix length as a dotted mask
func dottedMask(prefix int) string {
	v := ^uint32(0) << (32 - prefix)
	return fmt.Sprintf("%d.%d.%d.%d", byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}

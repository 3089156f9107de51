package device

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
)

var (
	ipInterfaceBriefHeader = []string{"Interface", "IP-Address", "OK?", "Method", "Status", "Protocol"}
	vlanBriefHeader        = []string{"VLAN", "Name", "Status", "Ports"}
)

func showIPInterfaceBrief(d *Device, _ *command) Result {
	rows := make([][]string, 0, len(d.order))
	for _, name := range d.order {
		intf := d.interfaces[name]
		address, method := "unassigned", "unset"
		if intf.Address != nil {
			address, method = intf.Address.IPv4, "manual"
		}
		rows = append(rows, []string{name, address, "YES", method, string(intf.Status), string(intf.Status)})
	}
	return d.reply(renderTable(ipInterfaceBriefHeader, rows)...)
}

func showVlanBrief(d *Device, _ *command) Result {
	vlans := d.Vlans()
	rows := make([][]string, 0, len(vlans))
	for _, v := range vlans {
		rows = append(rows, []string{strconv.Itoa(v.ID), v.Name, "active", strings.Join(v.Interfaces, ", ")})
	}
	return d.reply(renderTable(vlanBriefHeader, rows)...)
}

func showRunningConfig(d *Device, _ *command) Result {
	lines := []string{
		"Building configuration...",
		"",
		"Current configuration:",
		"!",
		"hostname " + d.hostname,
		"!",
	}
	for _, name := range d.order {
		intf := d.interfaces[name]
		lines = append(lines, "interface "+name)
		if id := d.vlanOf(name); id != 0 {
			lines = append(lines, fmt.Sprintf(" switchport access vlan %d", id))
		}
		if intf.Address != nil {
			lines = append(lines, fmt.Sprintf(" ip address %s %s", intf.Address.IPv4, dottedMask(intf.Address.Prefix)))
		} else {
			lines = append(lines, " no ip address")
		}
		if intf.Status == StatusDown {
			lines = append(lines, " shutdown")
		}
		lines = append(lines, "!")
	}
	for _, v := range d.Vlans() {
		if v.ID == DefaultVlanID {
			continue
		}
		lines = append(lines, fmt.Sprintf("vlan %d", v.ID), " name "+v.Name, "!")
	}
	lines = append(lines, "end")
	return d.reply(lines...)
}

// renderTable draws a borderless, left aligned table in the IOS show style
// and returns it line by line
func renderTable(header []string, rows [][]string) []string {
	var sb strings.Builder
	table := tablewriter.NewWriter(&sb)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	table.SetHeaderLine(false)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.AppendBulk(rows)
	table.Render()

	var lines []string
	for _, l := range strings.Split(sb.String(), "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

package device

import (
	"fmt"
	"strings"
)

const (
	ConfigBanner      = "Enter configuration commands, one per line. End with CNTL/Z."
	IncompleteCommand = "% Incomplete command."
)

// command is one trimmed input line. key is only used for recognition,
// arguments are always taken from fields, which keep the original case.
type command struct {
	raw    string
	fields []string
	key    string
}

func parseCommand(raw string) *command {
	fields := strings.Fields(raw)
	return &command{
		raw:    raw,
		fields: fields,
		key:    strings.ToLower(strings.Join(fields, " ")),
	}
}

// args returns the fields after the first n words
func (c *command) args(n int) []string {
	if len(c.fields) <= n {
		return nil
	}
	return c.fields[n:]
}

type handler func(d *Device, c *command) Result

// commandDef describes one entry of a mode table. When verb is set the
// single form is matched against the first word only and the handler
// parses the arguments itself.
type commandDef struct {
	forms []string
	verb  bool
	usage string
	desc  string
	run   handler
}

type commandTable struct {
	lines    map[string]handler
	verbs    map[string]handler
	defs     []commandDef
	fallback handler
}

func newCommandTable(fallback handler, defs ...commandDef) *commandTable {
	t := &commandTable{
		lines:    make(map[string]handler),
		verbs:    make(map[string]handler),
		fallback: fallback,
	}
	defs = append(defs, commandDef{
		forms: []string{"?", "help"},
		usage: "?",
		desc:  "Show the commands available in this mode",
	})
	for i := range defs {
		if defs[i].run == nil {
			defs[i].run = t.help
		}
		for _, form := range defs[i].forms {
			if defs[i].verb {
				t.verbs[form] = defs[i].run
			} else {
				t.lines[form] = defs[i].run
			}
		}
	}
	t.defs = defs
	return t
}

func (t *commandTable) lookup(c *command) handler {
	if h, ok := t.lines[c.key]; ok {
		return h
	}
	if len(c.fields) > 0 {
		if h, ok := t.verbs[strings.ToLower(c.fields[0])]; ok {
			return h
		}
	}
	return t.fallback
}

func (t *commandTable) help(d *Device, _ *command) Result {
	lines := make([]string, 0, len(t.defs))
	width := 0
	for _, s := range t.defs {
		if len(s.usage) > width {
			width = len(s.usage)
		}
	}
	for _, s := range t.defs {
		lines = append(lines, fmt.Sprintf("  %-*s  %s", width, s.usage, s.desc))
	}
	return d.reply(lines...)
}

var commandTables = map[Mode]*commandTable{
	ModeUser:   userCommands(),
	ModePriv:   privCommands(),
	ModeConfig: configCommands(),
}

func userCommands() *commandTable {
	return newCommandTable(unknownInUser,
		commandDef{forms: []string{"enable", "en"}, usage: "enable", desc: "Turn on privileged commands", run: setMode(ModePriv)},
	)
}

func privCommands() *commandTable {
	return newCommandTable(unknownCommand,
		commandDef{forms: []string{"exit"}, usage: "exit", desc: "Exit from privileged mode", run: setMode(ModeUser)},
		commandDef{forms: []string{"disable"}, usage: "disable", desc: "Turn off privileged commands", run: setMode(ModeUser)},
		commandDef{forms: []string{"configure terminal", "conf t"}, usage: "configure terminal", desc: "Enter configuration mode", run: configure},
		commandDef{forms: []string{"show ip interface brief", "show ip int brief"}, usage: "show ip interface brief", desc: "Brief summary of IP status and configuration", run: showIPInterfaceBrief},
		commandDef{forms: []string{"show vlan", "show vlan brief"}, usage: "show vlan brief", desc: "VLAN summary", run: showVlanBrief},
		commandDef{forms: []string{"show running-config", "show run"}, usage: "show running-config", desc: "Current operating configuration", run: showRunningConfig},
		commandDef{forms: []string{"clear", "clear screen"}, usage: "clear", desc: "Clear the terminal screen", run: clearScreen},
	)
}

func configCommands() *commandTable {
	return newCommandTable(unknownCommand,
		commandDef{forms: []string{"hostname"}, verb: true, usage: "hostname <name>", desc: "Set system's network name", run: setHostname},
		commandDef{forms: []string{"vlan"}, verb: true, usage: "vlan <id> [name <name>]", desc: "Create a VLAN or rename it", run: configureVlan},
		commandDef{forms: []string{"interface"}, verb: true, usage: "interface <name> <setting>", desc: "Configure an interface", run: configureInterface},
		commandDef{forms: []string{"no"}, verb: true, usage: "no vlan <id>", desc: "Delete a VLAN", run: negate},
		commandDef{forms: []string{"exit"}, usage: "exit", desc: "Exit from configuration mode", run: setMode(ModePriv)},
		commandDef{forms: []string{"end"}, usage: "end", desc: "Exit to privileged mode", run: setMode(ModePriv)},
	)
}

// Execute interprets one command line against the current mode. It never
// fails: every input yields a well-formed result.
func (d *Device) Execute(raw string) Result {
	cmd := strings.TrimSpace(raw)
	if cmd == "" {
		return d.reply()
	}
	c := parseCommand(cmd)
	return commandTables[d.mode].lookup(c)(d, c)
}

func unknownInUser(d *Device, c *command) Result {
	return d.reply("% Unknown command in USER mode: " + c.raw)
}

func unknownCommand(d *Device, c *command) Result {
	return d.reply("% Unknown command: " + c.raw)
}

func setMode(m Mode) handler {
	return func(d *Device, _ *command) Result {
		d.mode = m
		return d.reply()
	}
}

func configure(d *Device, _ *command) Result {
	d.mode = ModeConfig
	return d.reply(ConfigBanner)
}

func clearScreen(d *Device, _ *command) Result {
	res := d.reply()
	res.Effects = []Effect{{Type: EffectClearScreen}}
	return res
}

func setHostname(d *Device, c *command) Result {
	args := c.args(1)
	if len(args) == 0 {
		return d.reply(IncompleteCommand)
	}
	d.hostname = args[0]
	return d.reply()
}

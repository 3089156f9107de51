// Package console runs a terminal session interactively on a tty.
package console

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"go.uber.org/zap"

	"github.com/bondar-aleksandr/netdesk/internal/device"
	"github.com/bondar-aleksandr/netdesk/internal/terminal"
)

const clearScreen = "\033[H\033[2J"

type Console struct {
	session *terminal.Session
	logger  *zap.SugaredLogger
	rl      *readline.Instance
}

func New(s *terminal.Session, l *zap.SugaredLogger) *Console {
	return &Console{session: s, logger: l}
}

// Run reads lines until EOF. Ctrl-C drops the current line.
func (c *Console) Run() error {
	var err error
	c.rl, err = readline.NewEx(&readline.Config{
		Prompt:          c.session.Prompt() + " ",
		HistoryLimit:    -1,
		InterruptPrompt: "^C",
		EOFPrompt:       "",
	})
	if err != nil {
		return fmt.Errorf("readline init: %w", err)
	}
	defer c.rl.Close()

	for _, l := range c.session.Lines() {
		fmt.Fprintln(c.rl.Stdout(), l.Text)
	}

	for {
		line, err := c.rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			if errors.Is(err, io.EOF) {
				c.logger.Debug("Console got EOF, leaving")
				return nil
			}
			return err
		}
		c.handle(c.rl.Stdout(), line)
		c.rl.SetPrompt(c.session.Prompt() + " ")
	}
}

func (c *Console) handle(out io.Writer, line string) {
	res := c.session.Submit(strings.TrimSpace(line))
	if res.HasEffect(device.EffectClearScreen) {
		fmt.Fprint(out, clearScreen)
	}
	for _, l := range res.OutputLines {
		fmt.Fprintln(out, l)
	}
}

package terminal

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bondar-aleksandr/netdesk/internal/device"
)

func TestSubmitEchoesWithPreviousPrompt(t *testing.T) {
	s := NewSession(device.New(), "Welcome to NetDeskOS v0.1")
	assert.Equal(t, "Switch>", s.Prompt())

	s.Submit("enable")
	s.Submit("conf t")
	s.Submit("hostname Core1")
	s.Submit("hostname")
	s.Submit("exit")

	want := []Line{
		{Type: LineOut, Text: "Welcome to NetDeskOS v0.1"},
		{Type: LineIn, Text: "Switch> enable"},
		{Type: LineIn, Text: "Switch# conf t"},
		{Type: LineOut, Text: "Enter configuration commands, one per line. End with CNTL/Z."},
		{Type: LineIn, Text: "Switch(config)# hostname Core1"},
		{Type: LineIn, Text: "Core1(config)# hostname"},
		{Type: LineOut, Text: "% Incomplete command."},
		{Type: LineIn, Text: "Core1(config)# exit"},
	}
	assert.Equal(t, want, s.Lines())
	assert.Equal(t, "Core1#", s.Prompt())
	assert.Equal(t, "Core1", s.Hostname())
}

func TestSubmitReturnsEngineResult(t *testing.T) {
	s := NewSession(device.New())
	res := s.Submit("foo")
	assert.Equal(t, []string{"% Unknown command in USER mode: foo"}, res.OutputLines)
	assert.Equal(t, "Switch>", res.Prompt)

	res = s.Submit("   ")
	assert.Empty(t, res.OutputLines)
	assert.Equal(t, []Line{
		{Type: LineIn, Text: "Switch> foo"},
		{Type: LineOut, Text: "% Unknown command in USER mode: foo"},
		{Type: LineIn, Text: "Switch>    "},
	}, s.Lines())
}

func TestClearScreenEmptiesTranscript(t *testing.T) {
	s := NewSession(device.New(), "banner")
	s.Submit("enable")
	s.Submit("show ip int brief")
	require.NotEmpty(t, s.Lines())

	res := s.Submit("clear")
	assert.True(t, res.HasEffect(device.EffectClearScreen))
	assert.Empty(t, s.Lines())
	assert.Equal(t, "Switch#", s.Prompt())

	s.Submit("exit")
	assert.Equal(t, []Line{{Type: LineIn, Text: "Switch# exit"}}, s.Lines())
}

func TestLinesReturnsCopy(t *testing.T) {
	s := NewSession(device.New(), "banner")
	lines := s.Lines()
	lines[0].Text = "changed"
	assert.Equal(t, "banner", s.Lines()[0].Text)
}

func TestSubmitSerializesCallers(t *testing.T) {
	s := NewSession(device.New())
	s.Submit("enable")
	s.Submit("conf t")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Submit("vlan 10")
		}()
	}
	wg.Wait()
	assert.Len(t, s.Lines(), 3+50)
	assert.Equal(t, "Switch(config)#", s.Prompt())
}

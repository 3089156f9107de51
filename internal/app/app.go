package app

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/bondar-aleksandr/netdesk/internal/device"
	"github.com/bondar-aleksandr/netdesk/internal/logger"
	"github.com/bondar-aleksandr/netdesk/internal/terminal"
)

type App struct {
	Logger     *zap.SugaredLogger
	CmdCache   map[string]*Commands
	ConfigPath string
	Config     *Config
}

func NewApp(cfgPath string) (*App, error) {
	cfg, err := ReadConfig(cfgPath)
	if err != nil {
		return nil, err
	}
	l, err := logger.New(cfg.Logger)
	if err != nil {
		return nil, err
	}
	app := &App{
		Logger:     l,
		CmdCache:   make(map[string]*Commands),
		ConfigPath: cfgPath,
		Config:     cfg,
	}
	app.Logger.Infof("Read config %q", cfgPath)
	return app, nil
}

// type used for storing all commands from single command file
type Commands struct {
	Commands []string
}

func (c *Commands) Add(cmd string) {
	c.Commands = append(c.Commands, cmd)
}

// NewDevice builds a device from the device section of config
func (a *App) NewDevice() *device.Device {
	return device.New(a.Config.DeviceOptions()...)
}

// NewSession builds a terminal session for one device with the configured banner
func (a *App) NewSession(dev *device.Device) *terminal.Session {
	return terminal.NewSession(dev, a.Config.Terminal.Banner...)
}

// func receives list of inventory entries, walk through it, finds unique filenames, and populates
// CmdCache with mapping filename:Commands
func (a *App) BuildCmdCache(entries []*device.Entry) error {
	a.Logger.Info("Building cmd cache...")

	for _, entry := range entries {
		// check whether info about entry.CmdFile is already in CmdCache map
		if _, ok := a.CmdCache[entry.CmdFile]; ok {
			continue
		}
		commands, err := readCommands(filepath.Join(a.Config.Data.InputFolder, entry.CmdFile))
		if err != nil {
			return err
		}
		a.CmdCache[entry.CmdFile] = commands
	}
	a.Logger.Info("Building cmd cache done")
	return nil
}

func readCommands(path string) (*Commands, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open commands file: %w", err)
	}
	defer f.Close()

	commands := &Commands{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		commands.Add(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("unable to read commands file %q: %w", path, err)
	}
	return commands, nil
}

// ReadInventory decodes the devices csv from the input folder
func (a *App) ReadInventory() ([]*device.Entry, error) {
	a.Logger.Info("Decoding devices data...")
	f, err := os.Open(filepath.Join(a.Config.Data.InputFolder, a.Config.Data.DevicesData))
	if err != nil {
		return nil, fmt.Errorf("unable to open devices data: %w", err)
	}
	defer f.Close()

	entries, err := device.ReadInventory(f)
	if err != nil {
		return nil, err
	}
	a.Logger.Info("Decoding devices data done")
	return entries, nil
}

// this func creates directory for storing outputs if it doesn't exists before
func (a *App) PrepareDirectory() error {
	a.Logger.Info("Creating output directory if not exists...")
	outDir := filepath.Clean(a.Config.Data.OutputFolder)
	_, err := os.Stat(outDir)

	if os.IsNotExist(err) {
		if err := os.MkdirAll(outDir, os.ModePerm); err != nil {
			return fmt.Errorf("cannot create directory for outputs: %w", err)
		}
		a.Logger.Infof("Created output directory %q successfully", outDir)
	} else {
		a.Logger.Info("Output directory already there")
	}
	return nil
}

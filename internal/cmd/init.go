package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"

	"github.com/m913tools/m913ctl/internal/configpaths"
	"github.com/m913tools/m913ctl/internal/log"
	"github.com/m913tools/m913ctl/internal/profile"
)

// Init scaffolds a profile file with every section filled in.
type Init struct {
	Format string `help:"Output format" enum:"toml,yaml,json" default:"toml"`
	Output string `help:"Destination file path (defaults to profile.<format> in the current directory)"`
	Force  bool   `help:"Overwrite if the file already exists"`
}

func (c *Init) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	format := normalizeFormat(c.Format)
	if format == "" {
		return fmt.Errorf("unsupported format: %s", c.Format)
	}

	dest := c.Output
	if dest == "" {
		dest = "profile." + format
	}
	if !c.Force {
		if _, err := os.Stat(dest); err == nil {
			return errors.New("destination exists; use --force to overwrite")
		}
	}
	if err := configpaths.EnsureDir(dest); err != nil {
		return err
	}

	var (
		data []byte
		err  error
	)
	tmpl := templateProfile()
	switch format {
	case "toml":
		data, err = toml.Marshal(tmpl)
	case "yaml":
		data, err = yaml.Marshal(tmpl)
	case "json":
		data, err = json.MarshalIndent(tmpl, "", "  ")
	}
	if err != nil {
		return err
	}
	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return err
	}

	logger.Info("profile template written", "path", dest)
	return nil
}

func normalizeFormat(f string) string {
	switch strings.ToLower(f) {
	case "toml":
		return "toml"
	case "yaml", "yml":
		return "yaml"
	case "json":
		return "json"
	default:
		return ""
	}
}

// templateProfile returns a fully-populated example profile.
func templateProfile() profile.Profile {
	enabled := true
	brightness := 255
	speed := 3
	return profile.Profile{
		Buttons: map[string]string{
			"side1": "f1",
			"side2": "ctrl_l+c",
			"fire":  "fire:50:2",
		},
		Dpi: []profile.DpiSlot{
			{Value: 800, Enabled: &enabled},
			{Value: 1600, Enabled: &enabled},
			{Value: 3200, Enabled: &enabled},
			{Value: 6400, Enabled: &enabled},
			{Value: 16000, Enabled: &enabled},
		},
		Led: &profile.Led{
			Mode:       "steady",
			Color:      "#00ff00",
			Brightness: &brightness,
			Speed:      &speed,
		},
		PollingRate: 1000,
	}
}

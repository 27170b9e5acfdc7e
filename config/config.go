package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/go-ini/ini"
	"github.com/jsphweid/scalechords/constants"
)

type Config struct {
	Match struct {
		Key   string
		Scale string
		Mode  int
	}

	Server struct {
		Address  string
		Formulas string
	}

	Log struct {
		Level string
	}
}

func Default() Config {
	var c Config
	c.Match.Key = "C"
	c.Match.Scale = "major"
	c.Match.Mode = 1
	c.Server.Address = constants.DefaultListenAddress
	c.Log.Level = "info"
	return c
}

// Load reads the INI file at path on top of Default. A missing file is not
// an error. FORMULAS_PATH and LISTEN_ADDRESS override the file.
func Load(path string) (Config, error) {
	c := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return Config{}, fmt.Errorf("reading config failed: %w", err)
	default:
		if err := parse(data, &c); err != nil {
			return Config{}, fmt.Errorf("%s: %w", path, err)
		}
	}

	if v := constants.GetFormulasPath(); v != "" {
		c.Server.Formulas = v
	}
	if v := constants.GetListenAddress(); v != "" {
		c.Server.Address = v
	}
	return c, nil
}

func parse(data []byte, c *Config) error {
	cfg, err := ini.Load(data)
	if err != nil {
		return err
	}

	// [match]
	match := cfg.Section("match")
	c.Match.Key = match.Key("key").MustString(c.Match.Key)
	c.Match.Scale = match.Key("scale").MustString(c.Match.Scale)
	if match.HasKey("mode") {
		mode, err := match.Key("mode").Int()
		if err != nil {
			return fmt.Errorf("[match] mode: %w", err)
		}
		c.Match.Mode = mode
	}

	// [server]
	server := cfg.Section("server")
	c.Server.Address = server.Key("address").MustString(c.Server.Address)
	c.Server.Formulas = server.Key("formulas").MustString(c.Server.Formulas)

	// [log]
	c.Log.Level = cfg.Section("log").Key("level").MustString(c.Log.Level)
	return nil
}

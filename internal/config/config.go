package config

import (
	"fmt"
	"log"
	"os"
	"os/user"

	yaml "gopkg.in/yaml.v3"
)

// Values holds the active configuration. It is populated with defaults
// at init time; a conf.yaml under ~/.ircd/ overrides them.
var Values *Config

type Config struct {
	Server struct {
		Name  string `yaml:"name"`
		Debug bool   `yaml:"debug"`
	}
	Limits struct {
		// SendQueue caps the bytes queued for a single slow client
		// before it gets disconnected.
		SendQueue int `yaml:"sendqueue"`
	}
}

// Default returns the built-in configuration.
func Default() *Config {
	c := &Config{}
	c.Server.Name = "ircserver"
	c.Limits.SendQueue = 1 << 20
	return c
}

func getConf() *Config {
	c := Default()

	osUser, err := user.Current()
	if err != nil {
		return c
	}
	confPath := fmt.Sprintf("%s%s.ircd%sconf.yaml", osUser.HomeDir, string(os.PathSeparator), string(os.PathSeparator))

	yamlFile, err := os.ReadFile(confPath)
	if err != nil {
		// no config file, defaults apply
		return c
	}
	if err := yaml.Unmarshal(yamlFile, c); err != nil {
		log.Fatalf("Unmarshal: %v", err)
	}
	if c.Limits.SendQueue <= 0 {
		c.Limits.SendQueue = Default().Limits.SendQueue
	}
	return c
}

func init() {
	Values = getConf()
}

package config

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"strings"

	"github.com/bytearena/visgraph/utils"
	"github.com/pkg/errors"
)

const (
	EnvConfigPath   = "VISGRAPH_CONFIG"
	DefaultFileName = "visgraph.json"
)

type Config struct {
	Addr        string
	Workers     int
	MaxVertices int
	PNGSize     int
}

func Default() Config {
	return Config{
		Addr:        ":8080",
		Workers:     4,
		MaxVertices: 2000,
		PNGSize:     512,
	}
}

func (conf Config) GetAddr() string {
	return conf.Addr
}

func (conf Config) GetWorkers() int {
	return conf.Workers
}

func (conf Config) GetMaxVertices() int {
	return conf.MaxVertices
}

func (conf Config) GetPNGSize() int {
	return conf.PNGSize
}

func (conf Config) Validate() error {
	if strings.TrimSpace(conf.Addr) == "" {
		return errors.New("Addr is missing")
	}

	if conf.Workers < 0 {
		return errors.Errorf("Workers must not be negative, got %d", conf.Workers)
	}

	if conf.MaxVertices <= 0 {
		return errors.Errorf("MaxVertices must be positive, got %d", conf.MaxVertices)
	}

	if conf.PNGSize <= 0 {
		return errors.Errorf("PNGSize must be positive, got %d", conf.PNGSize)
	}

	return nil
}

// Load reads configpath over the defaults. A missing file leaves the
// defaults untouched.
func Load(configpath string) (Config, error) {
	config := Default()

	if _, err := os.Stat(configpath); os.IsNotExist(err) {
		return config, nil
	}

	buf, err := ioutil.ReadFile(configpath)
	if err != nil {
		return config, errors.Wrapf(err, "cannot read config file %s", configpath)
	}

	if err = json.Unmarshal(buf, &config); err != nil {
		return config, errors.Wrapf(err, "invalid JSON in config file %s", configpath)
	}

	if err := config.Validate(); err != nil {
		return config, errors.Wrapf(err, "in config file %s", configpath)
	}

	return config, nil
}

// Path returns $VISGRAPH_CONFIG, or visgraph.json next to the executable.
func Path() (string, error) {
	if configpath, exists := os.LookupEnv(EnvConfigPath); exists {
		return configpath, nil
	}

	return utils.GetAbsoluteDir(DefaultFileName)
}

func Get() (Config, error) {
	configpath, err := Path()
	if err != nil {
		return Default(), err
	}

	return Load(configpath)
}

package utils

import (
	"errors"
	"io/ioutil"

	"github.com/Luismorlan/ledger_in_go/config"
	"gopkg.in/yaml.v2"
)

// ParseAppConfig reads a YAML config file. Keys missing from the file keep their
// default value.
func ParseAppConfig(fPath string) (config.AppConfig, error) {
	c := config.DefaultAppConfig()
	if fPath == "" {
		return c, errors.New("file path is missing")
	}
	yamlFile, err := ioutil.ReadFile(fPath)
	if err != nil {
		return c, err
	}
	err = yaml.Unmarshal(yamlFile, &c)
	if err != nil {
		return c, err
	}
	return c, nil
}

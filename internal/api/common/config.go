package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

const DefaultPort = 4000

const portEnv = "PORT"

type Config struct {
	Port int
}

// unit test indirections
var lookupEnv = os.LookupEnv

// NewConfig reads the environment once. A PORT that doesn't parse as an
// integer falls back to DefaultPort; range checks happen at bind time.
func NewConfig() Config {
	config := Config{Port: DefaultPort}
	value, ok := lookupEnv(portEnv)
	if !ok || value == "" {
		return config
	}

	port, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		logrus.Debug(fmt.Sprintf("Ignoring %s=%q, using default port %d", portEnv, value, DefaultPort))
		return config
	}
	config.Port = port
	return config
}

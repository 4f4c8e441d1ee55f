package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
)

const DefaultPath = "./config/application.yaml"

type Application struct {
	Server   Server   `koanf:"server"`
	Clock    Clock    `koanf:"clock"`
	Schedule Schedule `koanf:"schedule"`
	Defaults Defaults `koanf:"defaults"`
}

type Server struct {
	Port int `koanf:"port"`
}

type Clock struct {
	// Style is "literal" or "conventional".
	Style string `koanf:"style"`
}

type Schedule struct {
	// Seed, when non-zero, makes generating from the same subjects and
	// preferences give the same timetable on every call.
	Seed uint64 `koanf:"seed"`
}

// Defaults are the preferences used when a generate request leaves them out.
type Defaults struct {
	DailyHours     int `koanf:"dailyhours"`
	SessionMinutes int `koanf:"sessionminutes"`
	BreakMinutes   int `koanf:"breakminutes"`
}

func defaults() Application {
	return Application{
		Server: Server{Port: 8181},
		Clock:  Clock{Style: "literal"},
		Defaults: Defaults{
			DailyHours:     4,
			SessionMinutes: 45,
			BreakMinutes:   10,
		},
	}
}

// Load merges, in order of precedence, STUDYMATE_ environment variables, the YAML
// file at path and the built-in defaults. A missing file is not an error.
func Load(path string) (Application, error) {
	var k = koanf.New(".")

	if err := k.Load(structs.Provider(defaults(), "koanf"), nil); err != nil {
		log.Errorf("error loading config from structs: %v", err)
		return Application{}, err
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if os.IsNotExist(err) {
			log.Infof("Config file not found at %s, using defaults and environment variables", path)
		} else {
			log.Errorf("error loading config from YAML: %v", err)
			return Application{}, err
		}
	} else {
		log.Infof("Loaded configuration from file: %s", path)
	}

	err := k.Load(env.Provider(".", env.Opt{
		Prefix: "STUDYMATE_",
		TransformFunc: func(k, v string) (string, any) {
			// STUDYMATE_SERVER_PORT -> server.port
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, "STUDYMATE_")), "_", ".")
			return k, v
		},
	}), nil)
	if err != nil {
		log.Errorf("error loading config from envs: %v", err)
		return Application{}, err
	}

	var app Application
	if err := k.Unmarshal("", &app); err != nil {
		return Application{}, err
	}
	return app, nil
}

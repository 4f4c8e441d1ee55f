package config

import (
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// PlanFile is the input of the plan command:
//
//	preferences:
//	  dailyhours: 4
//	  sessionminutes: 60
//	  breakminutes: 10
//	subjects:
//	  - name: Math
//	    hours: 5
//	    difficulty: easy
type PlanFile struct {
	Preferences Defaults      `koanf:"preferences"`
	Subjects    []PlanSubject `koanf:"subjects"`
}

type PlanSubject struct {
	Name       string `koanf:"name"`
	Hours      int    `koanf:"hours"`
	Difficulty string `koanf:"difficulty"`
}

// LoadPlanFile reads a plan file. Preferences it leaves out take the values of
// fallback.
func LoadPlanFile(path string, fallback Defaults) (PlanFile, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return PlanFile{}, fmt.Errorf("failed to read plan file %s: %w", path, err)
	}
	plan := PlanFile{Preferences: fallback}
	if err := k.Unmarshal("", &plan); err != nil {
		return PlanFile{}, fmt.Errorf("failed to parse plan file %s: %w", path, err)
	}
	return plan, nil
}

// Package config loads the simulation's tunable parameters: the §3
// constants table and the initial dynamic-challenge scheduler scalars. A
// zero Params is never valid; use DefaultParams or Load.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Params mirrors spec.md §3's constants table plus the §6 scheduler's
// initial scalar values, all YAML-overridable.
type Params struct {
	WX     int `yaml:"wx,omitempty"`
	WY     int `yaml:"wy,omitempty"`
	Season int `yaml:"season,omitempty"`

	FoodCap        int `yaml:"food_cap,omitempty"`
	FoodGrow       int `yaml:"food_grow,omitempty"`
	FoodSpread     int `yaml:"food_spread,omitempty"`
	FoodStart      int `yaml:"food_start,omitempty"`
	FoodDecay      int `yaml:"food_decay,omitempty"`
	FoodHardCapMul int `yaml:"food_hard_cap_mul,omitempty"`

	Sleep       int `yaml:"sleep,omitempty"`
	Eat         int `yaml:"eat,omitempty"`
	Turn        int `yaml:"turn,omitempty"`
	Move        int `yaml:"move,omitempty"`
	Fight       int `yaml:"fight,omitempty"`
	MateInitial int `yaml:"mate_initial,omitempty"`
	DivideCost  int `yaml:"divide_cost,omitempty"`

	Diethin  int `yaml:"diethin,omitempty"`
	Masscap  int `yaml:"masscap,omitempty"`
	EatLimit int `yaml:"eat_limit_x1024,omitempty"` // ratio numerator over 1024

	GeneCost int `yaml:"gene_cost,omitempty"`
	GeneKnee int `yaml:"gene_knee,omitempty"`

	EthnicDur    int `yaml:"ethnic_dur,omitempty"`
	PopHardLimit int `yaml:"pop_hard_limit,omitempty"`
	TargetPop    int `yaml:"target_pop,omitempty"`

	// Initial dynamic-challenge scalars (§6); the scheduler mutates its own
	// copy as thresholds fire.
	InitLeak     int     `yaml:"init_leak,omitempty"`
	InitSafety   bool    `yaml:"init_safety,omitempty"`
	InitForceMate uint8  `yaml:"init_forcemate,omitempty"`
	InitCostMate int     `yaml:"init_costmate,omitempty"`
	InitFoodHump float64 `yaml:"init_foodhump,omitempty"`
}

// DefaultParams returns the literal §3 reference values.
func DefaultParams() Params {
	return Params{
		WX:     192,
		WY:     160,
		Season: 32768,

		FoodCap:        1_024_000,
		FoodGrow:       1044,
		FoodSpread:     10,
		FoodStart:      128_000,
		FoodDecay:      115,
		FoodHardCapMul: 10,

		Sleep:       12,
		Eat:         48,
		Turn:        16,
		Move:        96,
		Fight:       36,
		MateInitial: 12,
		DivideCost:  25_600,

		Diethin:  102_400,
		Masscap:  10_240_000,
		EatLimit: 205,

		GeneCost: 128,
		GeneKnee: 96,

		EthnicDur:    120,
		PopHardLimit: 20_000,
		TargetPop:    2_000,

		InitLeak:      3,
		InitSafety:    true,
		InitForceMate: 0,
		InitCostMate:  12,
		InitFoodHump:  1.0,
	}
}

// Load reads a YAML file at path and overlays it onto DefaultParams. Only
// fields present in the file are overridden (omitempty round-trips zero
// values as "absent", matching the teacher-style "defaults unless
// overridden" config loaders in the pack).
func Load(path string) (Params, error) {
	p := DefaultParams()
	if path == "" {
		return p, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return p, errors.Wrapf(err, "reading config %q", path)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, errors.Wrapf(err, "parsing config %q", path)
	}
	return p, nil
}

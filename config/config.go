// Package config loads the robot description: how big the body is, how
// long each leg link is, and where the feet rest when standing.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/asdlei99/spot-micro-kinematics/body"
	"github.com/asdlei99/spot-micro-kinematics/legs"
)

// LegConfig holds the three link lengths. Units are whatever the rest of
// the system uses; meters here.
type LegConfig struct {
	HipLength   float64 `yaml:"hip_length"`
	UpperLength float64 `yaml:"upper_length"`
	LowerLength float64 `yaml:"lower_length"`
}

// StanceConfig describes the neutral stand: how far the body sits above
// the feet, and how far outboard of the mounts the feet rest.
type StanceConfig struct {
	Height float64 `yaml:"height"`
	Spread float64 `yaml:"spread"`
}

// Robot aggregates the whole robot description.
type Robot struct {
	Length float64      `yaml:"length"`
	Width  float64      `yaml:"width"`
	Leg    LegConfig    `yaml:"leg"`
	Stance StanceConfig `yaml:"stance"`
}

// Default returns the SpotMicro dimensions, in meters.
func Default() *Robot {
	return &Robot{
		Length: 0.186,
		Width:  0.078,
		Leg: LegConfig{
			HipLength:   0.055,
			UpperLength: 0.1075,
			LowerLength: 0.130,
		},
		Stance: StanceConfig{
			Height: 0.14,
			Spread: 0.055,
		},
	}
}

// Load reads and validates a YAML robot description.
func Load(path string) (*Robot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read robot config")
	}

	var r Robot
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, errors.Wrap(err, "unmarshal robot config")
	}

	if err := r.Validate(); err != nil {
		return nil, err
	}

	return &r, nil
}

// Validate rejects dimensions the solver can't work with.
func (r *Robot) Validate() error {
	if r.Length <= 0 || r.Width <= 0 {
		return errors.Errorf("body %gx%g must have positive dimensions", r.Length, r.Width)
	}
	if r.Leg.HipLength <= 0 || r.Leg.UpperLength <= 0 || r.Leg.LowerLength <= 0 {
		return errors.New("leg link lengths must be positive")
	}
	if r.Stance.Height <= 0 {
		return errors.New("stance height must be positive")
	}
	if r.Stance.Spread < 0 {
		return errors.New("stance spread must not be negative")
	}
	return nil
}

// Footprint returns the mount rectangle.
func (r *Robot) Footprint() body.Footprint {
	return body.Footprint{Length: r.Length, Width: r.Width}
}

// Links returns the per-leg link lengths.
func (r *Robot) Links() legs.Links {
	return legs.Links{Hip: r.Leg.HipLength, Upper: r.Leg.UpperLength, Lower: r.Leg.LowerLength}
}

// NeutralFeet returns the world-frame foot points of the neutral stand.
func (r *Robot) NeutralFeet() body.FootPoints {
	return body.NeutralStance(r.Footprint(), r.Stance.Height, r.Stance.Spread)
}

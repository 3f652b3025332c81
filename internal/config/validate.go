package config

import (
	"errors"
	"fmt"
	"math"
)

var validTrackKinds = map[string]struct{}{
	"video":   {},
	"audio":   {},
	"caption": {},
	"overlay": {},
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateEditor(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if c.Paths.DataDir == "" {
		return errors.New("paths.data_dir must be set")
	}
	if c.Paths.LogDir == "" {
		return errors.New("paths.log_dir must be set")
	}
	return nil
}

func (c *Config) validateEditor() error {
	if _, ok := validTrackKinds[c.Editor.DefaultTrackKind]; !ok {
		return fmt.Errorf("editor.default_track_kind must be one of video, audio, caption, overlay; got %q", c.Editor.DefaultTrackKind)
	}
	if math.IsNaN(c.Editor.PositionEpsilon) || math.IsInf(c.Editor.PositionEpsilon, 0) {
		return errors.New("editor.position_epsilon must be a finite number")
	}
	if c.Editor.PositionEpsilon <= 0 || c.Editor.PositionEpsilon > 0.001 {
		return errors.New("editor.position_epsilon must be within (0, 0.001]")
	}
	return nil
}

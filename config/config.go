// Package config loads strip/matrix descriptors from YAML and assembles
// controllers from them. The library proper never reads files; this is
// the glue the bring-up binary and host applications use.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"

	"github.com/coreman2200/microstrip/chip"
	"github.com/coreman2200/microstrip/pixel"
	"github.com/coreman2200/microstrip/strip"
	"github.com/coreman2200/microstrip/tx"
)

type SPI struct {
	Dev     string `yaml:"dev"`      // e.g. /dev/spidev0.0, empty = first port
	SpeedHz int    `yaml:"speed_hz"` // clocked family only; 0 = default
}

type Matrix struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Serpentine bool   `yaml:"serpentine"`
	Corner     string `yaml:"corner"` // top-left, top-right, bottom-left, bottom-right
	Axis       string `yaml:"axis"`   // rows, cols
}

type Power struct {
	LimitMA int `yaml:"limit_ma"` // 0 = unlimited
}

type Config struct {
	Chip       string  `yaml:"chip"`        // ws2811..ws2818, sk6812, apa102
	Pixels     int     `yaml:"pixels"`      // ignored when matrix is set
	ColorOrder string  `yaml:"color_order"` // e.g. GRB; empty = chip default
	Brightness uint8   `yaml:"brightness"`
	SPI        SPI     `yaml:"spi"`
	Matrix     *Matrix `yaml:"matrix,omitempty"`
	Power      Power   `yaml:"power"`
}

func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return &c, nil
}

func Save(path string, c *Config) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}

// Validate fails loudly on construction-time misconfiguration; there is
// no console on the final target to report to later.
func (c *Config) Validate() error {
	if _, err := chip.ParseFamily(c.Chip); err != nil {
		return err
	}
	if c.ColorOrder != "" {
		if _, err := chip.ParseOrder(c.ColorOrder); err != nil {
			return err
		}
	}
	if c.Matrix != nil {
		l, err := c.Layout()
		if err != nil {
			return err
		}
		if c.Pixels != 0 && c.Pixels != l.Count() {
			return fmt.Errorf("config: pixels %d != matrix %dx%d", c.Pixels, l.Width, l.Height)
		}
		return nil
	}
	if c.Pixels <= 0 {
		return fmt.Errorf("config: invalid pixel count %d", c.Pixels)
	}
	return nil
}

// Layout translates the matrix section. Callers must have a matrix block.
func (c *Config) Layout() (strip.Layout, error) {
	m := c.Matrix
	if m == nil {
		return strip.Layout{}, fmt.Errorf("config: no matrix section")
	}
	l := strip.Layout{
		Width:      m.Width,
		Height:     m.Height,
		Serpentine: m.Serpentine,
	}
	switch m.Corner {
	case "", "top-left":
		l.Corner = strip.TopLeft
	case "top-right":
		l.Corner = strip.TopRight
	case "bottom-left":
		l.Corner = strip.BottomLeft
	case "bottom-right":
		l.Corner = strip.BottomRight
	default:
		return l, fmt.Errorf("config: invalid corner %q", m.Corner)
	}
	switch m.Axis {
	case "", "rows":
		l.Axis = strip.Rows
	case "cols":
		l.Axis = strip.Cols
	default:
		return l, fmt.Errorf("config: invalid axis %q", m.Axis)
	}
	return l, l.Validate()
}

func (c *Config) count() int {
	if c.Matrix != nil {
		return c.Matrix.Width * c.Matrix.Height
	}
	return c.Pixels
}

// Transmitter opens the backend matching the configured chip on the
// given SPI port.
func (c *Config) Transmitter(p spi.Port) (tx.Transmitter, error) {
	f, err := chip.ParseFamily(c.Chip)
	if err != nil {
		return nil, err
	}
	if f.Clocked() {
		return tx.NewAPA102(p, physic.Frequency(c.SPI.SpeedHz)*physic.Hertz)
	}
	return tx.NewNRZ(p, f)
}

// NewStrip assembles a 24-bit strip controller from the config.
func (c *Config) NewStrip(p spi.Port) (*strip.Strip[pixel.RGB888], error) {
	f, err := chip.ParseFamily(c.Chip)
	if err != nil {
		return nil, err
	}
	t, err := c.Transmitter(p)
	if err != nil {
		return nil, err
	}
	s, err := strip.New[pixel.RGB888](f, c.count(), t)
	if err != nil {
		return nil, err
	}
	if c.ColorOrder != "" {
		o, err := chip.ParseOrder(c.ColorOrder)
		if err != nil {
			return nil, err
		}
		s.SetOrder(o)
	}
	if c.Brightness != 0 {
		s.SetBrightness(c.Brightness)
	}
	s.SetMaxCurrent(c.Power.LimitMA)
	return s, nil
}

// NewMatrix assembles a 24-bit matrix controller from the config.
func (c *Config) NewMatrix(p spi.Port) (*strip.Matrix[pixel.RGB888], error) {
	l, err := c.Layout()
	if err != nil {
		return nil, err
	}
	s, err := c.NewStrip(p)
	if err != nil {
		return nil, err
	}
	return strip.Wrap(s, l)
}

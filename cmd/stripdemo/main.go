// stripdemo brings up a strip or matrix from a YAML descriptor and runs a
// small comet animation over a gradient fill. Without an SPI port it
// falls back to an ANSI terminal preview, so animations can be tried on a
// workstation before the hardware arrives.
package main

import (
	"context"
	"flag"
	"image"
	"image/color"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/devices/v3/screen1d"
	"periph.io/x/host/v3"

	"github.com/coreman2200/microstrip/chip"
	"github.com/coreman2200/microstrip/config"
	"github.com/coreman2200/microstrip/pixel"
	"github.com/coreman2200/microstrip/strip"
	"github.com/coreman2200/microstrip/tx"
)

// previewTx renders frames to the terminal instead of a bus. The strip
// is forced to RGB order so the channel bytes map straight to the image.
type previewTx struct {
	d    *screen1d.Dev
	img  *image.NRGBA
	n    int
	i    int
	open bool
}

func newPreview(n int) *previewTx {
	return &previewTx{
		d:   screen1d.New(&screen1d.Opts{X: n}),
		img: image.NewNRGBA(image.Rect(0, 0, n, 1)),
		n:   n,
	}
}

func (p *previewTx) Begin() error {
	if p.open {
		return tx.ErrBusy
	}
	p.open = true
	p.i = 0
	return nil
}

func (p *previewTx) Send(ch []byte) error {
	if !p.open {
		return tx.ErrIdle
	}
	if p.i < p.n {
		p.img.SetNRGBA(p.i, 0, color.NRGBA{R: ch[0], G: ch[1], B: ch[2], A: 255})
		p.i++
	}
	return nil
}

func (p *previewTx) SendRaw(byte) error {
	if !p.open {
		return tx.ErrIdle
	}
	return nil
}

func (p *previewTx) End() error {
	if !p.open {
		return tx.ErrIdle
	}
	p.open = false
	return p.d.Draw(p.d.Bounds(), p.img, image.Point{})
}

func main() {
	cfgPath := flag.String("c", "strip.yaml", "strip descriptor")
	fps := flag.Int("fps", 30, "frames per second")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	fam, err := chip.ParseFamily(cfg.Chip)
	if err != nil {
		log.Fatal().Err(err).Msg("chip")
	}

	if _, err := host.Init(); err != nil {
		log.Fatal().Err(err).Msg("host init")
	}

	var s *strip.Strip[pixel.RGB888]
	if port, err := spireg.Open(cfg.SPI.Dev); err != nil {
		log.Warn().Err(err).Msg("no SPI port, using terminal preview")
		n := cfg.Pixels
		if cfg.Matrix != nil {
			n = cfg.Matrix.Width * cfg.Matrix.Height
		}
		if s, err = strip.New[pixel.RGB888](fam, n, newPreview(n)); err != nil {
			log.Fatal().Err(err).Msg("strip")
		}
		s.SetOrder(chip.OrderRGB)
		if cfg.Brightness != 0 {
			s.SetBrightness(cfg.Brightness)
		}
		s.SetMaxCurrent(cfg.Power.LimitMA)
	} else {
		defer port.Close()
		if s, err = cfg.NewStrip(port); err != nil {
			log.Fatal().Err(err).Msg("strip")
		}
	}
	log.Info().
		Str("chip", cfg.Chip).
		Int("pixels", s.Len()).
		Int("limit_ma", cfg.Power.LimitMA).
		Msg("strip up")

	n := s.Len()
	q := n / 4
	s.FillGradient(0, q, pixel.Black, pixel.Blue)
	s.FillGradient(q, 2*q, pixel.Lime, pixel.Gray)
	s.FillGradient(2*q, 3*q, pixel.Yellow, pixel.Orange)
	s.FillGradient(3*q, n, pixel.Red, pixel.Silver)
	if err := s.Show(); err != nil {
		log.Fatal().Err(err).Msg("show")
	}
	time.Sleep(time.Second)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	s.Clear()
	const tail = 8
	pos := 0
	ticker := time.NewTicker(time.Second / time.Duration(*fps))
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("shutting down")
			s.Clear()
			if err := s.Show(); err != nil {
				log.Error().Err(err).Msg("final show")
			}
			return
		case <-ticker.C:
			s.Set(pos, pixel.Black)
			pos = (pos + 1) % n
			s.FillGradient(pos, pos+tail/2, pixel.Black, pixel.Red)
			s.FillGradient(pos+tail/2, pos+tail, pixel.Red, pixel.Black)
			if err := s.Show(); err != nil {
				log.Error().Err(err).Msg("show")
				return
			}
		}
	}
}

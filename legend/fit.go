// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package legend

import (
	"math"

	"github.com/gogpu/bivariate"
)

// Fit defaults.
const (
	DefaultTolerance     = 0.1
	DefaultMaxIterations = 50
)

// FitOption configures Fit.
type FitOption func(*fitConfig)

type fitConfig struct {
	tolerance     float64
	maxIterations int
	uniform       bool
}

func defaultFitConfig() fitConfig {
	return fitConfig{
		tolerance:     DefaultTolerance,
		maxIterations: DefaultMaxIterations,
	}
}

// FitTolerance sets the accepted difference between the content area and
// the target, in pixels, on each axis.
func FitTolerance(px float64) FitOption {
	return func(c *fitConfig) {
		c.tolerance = px
	}
}

// FitMaxIterations bounds the number of resize steps.
func FitMaxIterations(n int) FitOption {
	return func(c *fitConfig) {
		c.maxIterations = n
	}
}

// WithUniformScale scales both canvas dimensions by target/min(w, h)
// instead of scaling each axis by its own ratio. Axes whose margins do not
// scale with the canvas still fall back to additive steps.
func WithUniformScale() FitOption {
	return func(c *fitConfig) {
		c.uniform = true
	}
}

// Fit resizes c until its content area is target x target pixels within
// the tolerance on both axes.
//
// Each step scales a dimension by target/measured. Fixed margins make that
// step contract by margin/content per iteration, so an axis whose residual
// stops shrinking switches to an additive step of (target-measured)/DPI
// inches, which is exact while the layout does not change.
//
// Fit returns c for chaining. When the iteration cap is reached it fails
// with *LayoutDidNotConvergeError and leaves c in its last state.
func Fit(c *Canvas, target float64, opts ...FitOption) (*Canvas, error) {
	cfg := defaultFitConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if c == nil {
		return nil, invalidParam("canvas", nil, "must not be nil")
	}
	if !(target > 0) || math.IsInf(target, 1) {
		return c, invalidParam("target size", target, "must be a positive finite number of pixels")
	}
	if !(cfg.tolerance > 0) {
		return c, invalidParam("tolerance", cfg.tolerance, "must be positive")
	}
	if cfg.maxIterations < 1 {
		return c, invalidParam("max iterations", cfg.maxIterations, "must be at least 1")
	}

	log := bivariate.Logger()
	content := c.Content()
	prevW, prevH := math.Inf(1), math.Inf(1)
	var additiveW, additiveH bool

	for i := 0; ; i++ {
		resW := target - content.W
		resH := target - content.H
		if math.Abs(resW) <= cfg.tolerance && math.Abs(resH) <= cfg.tolerance {
			c.iterations = i
			log.Debug("legend fit converged", "iterations", i, "width", content.W, "height", content.H)
			return c, nil
		}
		if i >= cfg.maxIterations {
			c.iterations = i
			w, h := c.Size()
			log.Warn("legend fit did not converge", "iterations", i, "target", target,
				"width", content.W, "height", content.H)
			return c, &LayoutDidNotConvergeError{
				Target:       target,
				Content:      content,
				Iterations:   i,
				WidthInches:  w,
				HeightInches: h,
			}
		}

		if !additiveW && math.Abs(resW) >= math.Abs(prevW) {
			additiveW = true
			log.Debug("legend fit switched to additive steps", "axis", "width", "iteration", i)
		}
		if !additiveH && math.Abs(resH) >= math.Abs(prevH) {
			additiveH = true
			log.Debug("legend fit switched to additive steps", "axis", "height", "iteration", i)
		}

		w, h := c.Size()
		scaleW, scaleH := target/content.W, target/content.H
		if cfg.uniform {
			s := target / math.Min(content.W, content.H)
			scaleW, scaleH = s, s
		}
		w = step(w, scaleW, resW, additiveW || content.W <= 0, c.DPI())
		h = step(h, scaleH, resH, additiveH || content.H <= 0, c.DPI())

		if err := c.Resize(w, h); err != nil {
			return c, err
		}
		content = c.Content()
		prevW, prevH = resW, resH
		log.Debug("legend fit iteration", "iteration", i+1, "width", content.W, "height", content.H)
	}
}

func step(size, scale, residual float64, additive bool, dpi float64) float64 {
	if additive || !(scale > 0) || math.IsInf(scale, 1) {
		next := size + residual/dpi
		if next <= 0 {
			// Never step through zero.
			return size / 2
		}
		return next
	}
	return size * scale
}

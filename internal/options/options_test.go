package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

var errNegative = errors.New("width cannot be negative")

type padConfig struct {
	Width int
	Fill  rune
	Calls []string
}

func (c *padConfig) setWidth(w int) error {
	if w < 0 {
		return errNegative
	}
	c.Width = w
	c.Calls = append(c.Calls, "width")

	return nil
}

func (c *padConfig) setFill(r rune) {
	c.Fill = r
	c.Calls = append(c.Calls, "fill")
}

func withWidth(w int) Option[*padConfig] {
	return New(func(c *padConfig) error { return c.setWidth(w) })
}

func withFill(r rune) Option[*padConfig] {
	return NoError(func(c *padConfig) { c.setFill(r) })
}

func TestApply(t *testing.T) {
	t.Run("applies options in order", func(t *testing.T) {
		cfg := &padConfig{}
		err := Apply(cfg, withWidth(10), withFill('·'))

		require.NoError(t, err)
		require.Equal(t, 10, cfg.Width)
		require.Equal(t, '·', cfg.Fill)
		require.Equal(t, []string{"width", "fill"}, cfg.Calls)
	})

	t.Run("stops at first error and wraps it", func(t *testing.T) {
		cfg := &padConfig{}
		err := Apply(cfg, withFill('x'), withWidth(-1), withWidth(3))

		require.ErrorIs(t, err, errNegative)
		require.Contains(t, err.Error(), "option 1")
		require.Equal(t, 0, cfg.Width)
		require.Equal(t, []string{"fill"}, cfg.Calls)
	})

	t.Run("empty and nil options", func(t *testing.T) {
		cfg := &padConfig{}
		require.NoError(t, Apply(cfg))
		require.NoError(t, Apply[*padConfig](cfg, nil, withFill('-')))
		require.Equal(t, '-', cfg.Fill)
	})
}

func TestFunc_Generics(t *testing.T) {
	var n int
	opt := NoError(func(p *int) { *p = 42 })

	require.NoError(t, opt.apply(&n))
	require.Equal(t, 42, n)
}

package ui

import (
	"bytes"
	"strings"
	"testing"
)

func headlessUI(t *testing.T) (*Theme, *HeadlessManager) {
	t.Helper()
	theme := NewTheme(ThemeConfig{NoColor: true})
	hm := NewHeadlessManager()
	hm.ForceHeadless(true)
	return theme, hm
}

func TestHeadlessProgressBar(t *testing.T) {
	theme, hm := headlessUI(t)
	var buf bytes.Buffer
	p := newProgressImpl(theme, hm, &buf)

	bar := p.Start("writing files", 3)
	bar.Increment(1)
	bar.Increment(1)
	bar.SetTitle("finishing")
	bar.Done()

	out := buf.String()
	for _, want := range []string{"[1/3] writing files", "[2/3] writing files", "[3/3] finishing"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q; got %q", want, out)
		}
	}
}

func TestHeadlessProgressBarClampsAtTotal(t *testing.T) {
	theme, hm := headlessUI(t)
	var buf bytes.Buffer
	p := newProgressImpl(theme, hm, &buf)

	bar := p.Start("step", 2)
	bar.Increment(5)

	if !strings.Contains(buf.String(), "[2/2] step") {
		t.Errorf("overflow not clamped; got %q", buf.String())
	}
}

func TestHeadlessSpinner(t *testing.T) {
	theme, hm := headlessUI(t)
	var buf bytes.Buffer
	p := newProgressImpl(theme, hm, &buf)

	s := p.Spinner("generating")
	s.SetTitle("still generating")
	s.Stop()

	out := buf.String()
	if !strings.Contains(out, "generating\n") || !strings.Contains(out, "still generating\n") {
		t.Errorf("spinner log lines missing; got %q", out)
	}
}

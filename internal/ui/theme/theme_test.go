package theme

import "testing"

func TestApplySwitchesPalette(t *testing.T) {
	t.Cleanup(func() { Apply("dark") })

	Apply("light")
	if Primary != Light.Primary {
		t.Errorf("Primary: got %v, want %v", Primary, Light.Primary)
	}
	if Bg != Light.Bg {
		t.Errorf("Bg: got %v, want %v", Bg, Light.Bg)
	}

	Apply("dark")
	if Primary != Dark.Primary {
		t.Errorf("Primary: got %v, want %v", Primary, Dark.Primary)
	}
}

func TestApplyUnknownFallsBackToDark(t *testing.T) {
	t.Cleanup(func() { Apply("dark") })

	Apply("light")
	Apply("solarized")
	if Primary != Dark.Primary {
		t.Errorf("unknown theme must fall back to dark, got %v", Primary)
	}
}

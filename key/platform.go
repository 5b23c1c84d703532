package key

import (
	"runtime"
	"strings"
)

// Platform classifies a host environment for combination resolution.
// The only distinction that matters is Mac-family vs everything else:
// it decides what the portable "mod" token means and how combinations
// are rendered for display.
type Platform int

const (
	// PlatformOther is any non-Mac host. "mod" resolves to Ctrl.
	PlatformOther Platform = iota

	// PlatformMac is a Mac-family host. "mod" resolves to Meta.
	PlatformMac
)

// String returns a human-readable platform name.
func (p Platform) String() string {
	if p == PlatformMac {
		return "mac"
	}
	return "other"
}

// ModResolved returns the modifier the portable "mod" token stands for
// on this platform.
func (p Platform) ModResolved() Modifier {
	if p == PlatformMac {
		return ModMeta
	}
	return ModCtrl
}

// macTokens are identification-string fragments that classify a host as
// Mac-family.
var macTokens = []string{"mac", "darwin", "iphone", "ipad", "ipod"}

// DetectPlatform classifies a host identification string. The string can
// be anything descriptive the host provides (a user-agent, an OS name,
// runtime.GOOS); classification is a case-insensitive substring check.
func DetectPlatform(ident string) Platform {
	ident = strings.ToLower(ident)
	for _, tok := range macTokens {
		if strings.Contains(ident, tok) {
			return PlatformMac
		}
	}
	return PlatformOther
}

// CurrentPlatform classifies the platform the process is running on.
func CurrentPlatform() Platform {
	return DetectPlatform(runtime.GOOS)
}

package setup

import (
	"fmt"
	"io/fs"

	"github.com/wagnert/meta/internal/config"
	"github.com/wagnert/meta/internal/platform"
)

// Kind is the kind of a plan action.
type Kind string

const (
	KindRender Kind = "render"
	KindCopy   Kind = "copy"
)

// Action is one write performed by a run.
type Action struct {
	Kind Kind

	// Target is relative to the installation directory. For copies it is
	// also the resource name below the source family directory.
	Target string

	Mode fs.FileMode

	// Source is the resource family of a copy action.
	Source platform.Family
}

func (a Action) String() string {
	if a.Kind == KindCopy {
		return fmt.Sprintf("copy %s/%s -> %s (%#o)", a.Source, a.Target, a.Target, a.Mode)
	}
	return fmt.Sprintf("render %s (%#o)", a.Target, a.Mode)
}

func render(target string, mode fs.FileMode) Action {
	return Action{Kind: KindRender, Target: target, Mode: mode}
}

func copyFrom(source platform.Family, resource string, mode fs.FileMode) Action {
	return Action{Kind: KindCopy, Target: resource, Mode: mode, Source: source}
}

// Shared templates rendered on every platform, last.
var sharedActions = []Action{
	render("var/tmp/opcache-blacklist.txt", config.DefaultFileMode),
	render("etc/appserver/appserver.xml", config.DefaultFileMode),
}

// Plan returns the ordered actions for a family. distro is only consulted
// for linux and should already have the debian fallback applied.
func Plan(family platform.Family, distro platform.Distribution) []Action {
	var actions []Action

	switch family {
	case platform.FamilyLinux:
		if distro == platform.DistroFedora || distro == platform.DistroRedHat {
			actions = append(actions,
				render("bin/appserver", config.ExecutableMode),
				render("bin/appserver-watcher", config.ExecutableMode),
			)
		}
	case platform.FamilyDarwin:
		actions = append(actions,
			copyFrom(platform.FamilyDarwin, "sbin/appserverctl", config.ExecutableMode),
			copyFrom(platform.FamilyDarwin, "sbin/appserver-watcherctl", config.ExecutableMode),
			copyFrom(platform.FamilyDarwin, "sbin/appserver-php5-fpmctl", config.ExecutableMode),
			render("bin/appserver", config.ExecutableMode),
			render("bin/appserver-watcher", config.ExecutableMode),
		)
	case platform.FamilyWindows:
		actions = append(actions,
			copyFrom(platform.FamilyWindows, "appserver.bat", config.DefaultFileMode),
			copyFrom(platform.FamilyWindows, "appserver-php5-fpm.bat", config.DefaultFileMode),
		)
	}

	return append(actions, sharedActions...)
}

// PlatformID returns the override set merged for a family and distribution.
// ok is false for the other family, which is rendered without a merge.
func PlatformID(family platform.Family, distro platform.Distribution) (id string, ok bool) {
	switch family {
	case platform.FamilyLinux:
		return string(distro), true
	case platform.FamilyDarwin, platform.FamilyWindows:
		return string(family), true
	default:
		return "", false
	}
}

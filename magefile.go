//go:build mage

package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

var platforms = map[string]map[string]string{
	"linux-amd64":  {"GOOS": "linux", "GOARCH": "amd64"},
	"linux-arm64":  {"GOOS": "linux", "GOARCH": "arm64"},
	"rpi32":        {"GOOS": "linux", "GOARCH": "arm", "GOARM": "7"},
	"darwin-arm64": {"GOOS": "darwin", "GOARCH": "arm64"},
}

// Runs the test suite.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Installs the application.
func Install() error {
	mg.Deps(Test)
	return sh.Run("go", "install", "-ldflags", ldflags())
}

// Creates an executable named lineup for the given platform. Run "mage platforms" to list them.
func Build(platform string) error {
	envMap, ok := platforms[platform]
	if !ok {
		return fmt.Errorf("Platform '%s' not supported", platform)
	}
	envMap["CGO_ENABLED"] = "0"
	return sh.RunWith(envMap, "go", "build", "-o", "lineup-"+platform, "-ldflags", ldflags())
}

// Lists the platforms accepted by build.
func Platforms() {
	names := make([]string, 0, len(platforms))
	for name := range platforms {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Println(strings.Join(names, "\n"))
}

func ldflags() string {
	version, err := sh.Output("git", "describe", "--always", "--long", "--dirty")
	if err != nil {
		version = "unknown"
	}
	return "-X main.version=" + version
}

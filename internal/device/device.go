// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package device classifies the host the client runs on. Mobile hosts are
// restricted to the mobile-only layout.
package device

import (
	"context"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/host"
)

// EnvOverride forces a device class, e.g. SWAPWATCH_DEVICE=ios.
const EnvOverride = "SWAPWATCH_DEVICE"

// Class is a coarse device category.
type Class int

const (
	Desktop Class = iota
	IOS
	Android
)

func (c Class) String() string {
	switch c {
	case IOS:
		return "ios"
	case Android:
		return "android"
	default:
		return "desktop"
	}
}

// Restricted reports whether the class only gets the mobile layout.
func (c Class) Restricted() bool {
	return c == IOS || c == Android
}

// Parse maps a name to a Class. Unknown names are Desktop.
func Parse(name string) (Class, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "ios", "iphone", "ipad":
		return IOS, true
	case "android":
		return Android, true
	case "desktop":
		return Desktop, true
	}
	return Desktop, false
}

// Classify derives a class from host facts.
func Classify(goos, platform, kernel string) Class {
	goos = strings.ToLower(goos)
	switch goos {
	case "ios":
		return IOS
	case "android":
		return Android
	}
	if strings.Contains(strings.ToLower(platform), "android") ||
		strings.Contains(strings.ToLower(kernel), "android") {
		return Android
	}
	return Desktop
}

// Detector reports the device class.
type Detector interface {
	Detect() Class
}

// DetectorFunc adapts a func to Detector.
type DetectorFunc func() Class

// Detect calls f.
func (f DetectorFunc) Detect() Class { return f() }

// HostDetector inspects the running host.
type HostDetector struct {
	// Getenv defaults to os.Getenv.
	Getenv func(string) string
	// Info defaults to gopsutil host.InfoWithContext.
	Info func(ctx context.Context) (*host.InfoStat, error)
}

// Detect implements Detector. Lookup failures classify as Desktop.
func (d HostDetector) Detect() Class {
	getenv := d.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	if c, ok := Parse(getenv(EnvOverride)); ok {
		return c
	}

	info := d.Info
	if info == nil {
		info = host.InfoWithContext
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	st, err := info(ctx)
	if err != nil || st == nil {
		return Classify(runtime.GOOS, "", "")
	}
	goos := st.OS
	if goos == "" {
		goos = runtime.GOOS
	}
	return Classify(goos, st.Platform, st.KernelVersion)
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package device

import (
	"context"
	"errors"
	"testing"

	"github.com/shirou/gopsutil/v3/host"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		goos, platform, kernel string
		want                   Class
	}{
		{"linux", "ubuntu", "6.8.0", Desktop},
		{"darwin", "darwin", "23.1.0", Desktop},
		{"ios", "", "", IOS},
		{"android", "", "", Android},
		{"linux", "android", "", Android},
		{"linux", "", "4.19.157-perf-android", Android},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.goos, tt.platform, tt.kernel), "%+v", tt)
	}
}

func TestClass_Restricted(t *testing.T) {
	assert.False(t, Desktop.Restricted())
	assert.True(t, IOS.Restricted())
	assert.True(t, Android.Restricted())
	assert.Equal(t, "android", Android.String())
}

func TestHostDetector_Override(t *testing.T) {
	d := HostDetector{
		Getenv: func(string) string { return "iOS" },
		Info: func(context.Context) (*host.InfoStat, error) {
			t.Fatal("host info must not be read when overridden")
			return nil, nil
		},
	}
	assert.Equal(t, IOS, d.Detect())
}

func TestHostDetector_HostInfo(t *testing.T) {
	d := HostDetector{
		Getenv: func(string) string { return "" },
		Info: func(context.Context) (*host.InfoStat, error) {
			return &host.InfoStat{OS: "linux", Platform: "android"}, nil
		},
	}
	assert.Equal(t, Android, d.Detect())
}

func TestHostDetector_InfoError(t *testing.T) {
	d := HostDetector{
		Getenv: func(string) string { return "bogus" },
		Info: func(context.Context) (*host.InfoStat, error) {
			return nil, errors.New("no procfs")
		},
	}
	// The test binary never runs on a mobile GOOS.
	assert.Equal(t, Desktop, d.Detect())
}

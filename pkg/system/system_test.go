// pkg/system/system_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: None (facts are plain values, runner is faked)
// PURPOSE: Test precondition validation and sudo credential caching

package system_test

import (
	"fmt"
	"runtime"
	"testing"

	"github.com/arthur-debert/dostrap/pkg/errors"
	"github.com/arthur-debert/dostrap/pkg/system"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckPreconditions(t *testing.T) {
	tests := []struct {
		name           string
		facts          system.Facts
		supportedOS    []string
		requireNetwork bool
		expectedCode   errors.ErrorCode
	}{
		{
			name:        "all_good",
			facts:       system.Facts{OS: "darwin", AdminGroup: true},
			supportedOS: []string{"darwin"},
		},
		{
			name:         "unsupported_os",
			facts:        system.Facts{OS: "linux", AdminGroup: true},
			supportedOS:  []string{"darwin"},
			expectedCode: errors.ErrUnsupportedOS,
		},
		{
			name:         "not_admin",
			facts:        system.Facts{OS: "darwin", AdminGroup: false},
			supportedOS:  []string{"darwin"},
			expectedCode: errors.ErrNotAdmin,
		},
		{
			name:           "offline_when_network_required",
			facts:          system.Facts{OS: "darwin", AdminGroup: true, Online: false},
			supportedOS:    []string{"darwin"},
			requireNetwork: true,
			expectedCode:   errors.ErrOffline,
		},
		{
			name:           "online_when_network_required",
			facts:          system.Facts{OS: "darwin", AdminGroup: true, Online: true},
			supportedOS:    []string{"darwin"},
			requireNetwork: true,
		},
		{
			name:        "offline_ignored_without_requirement",
			facts:       system.Facts{OS: "darwin", AdminGroup: true, Online: false},
			supportedOS: []string{"darwin"},
		},
		{
			name:        "multiple_supported_os",
			facts:       system.Facts{OS: "linux", AdminGroup: true},
			supportedOS: []string{"darwin", "linux"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := system.CheckPreconditions(tt.facts, tt.supportedOS, tt.requireNetwork)

			if tt.expectedCode == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.expectedCode))
		})
	}
}

func TestGatherReportsPlatform(t *testing.T) {
	facts := system.Gather(false)

	assert.Equal(t, runtime.GOOS, facts.OS)
	assert.Equal(t, runtime.GOARCH, facts.Arch)
	// Network probe did not run.
	assert.False(t, facts.Online)
}

type fakeRunner struct {
	ran [][]string
	err error
}

func (r *fakeRunner) Run(argv []string) error {
	r.ran = append(r.ran, argv)
	return r.err
}

func TestCacheSudoCredentials(t *testing.T) {
	runner := &fakeRunner{}

	require.NoError(t, system.CacheSudoCredentials(runner))
	assert.Equal(t, [][]string{{"sudo", "-v"}}, runner.ran)
}

func TestCacheSudoCredentialsFailure(t *testing.T) {
	runner := &fakeRunner{err: fmt.Errorf("sudo: a password is required")}

	err := system.CacheSudoCredentials(runner)

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrSudoCache))
}

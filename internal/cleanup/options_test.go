package cleanup

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, ".", opts.RootDir)
	assert.Equal(t, "node_modules", opts.TargetPattern)
	assert.Equal(t, `^\.`, opts.ExcludePattern)
	assert.Equal(t, []string{"package.json"}, opts.IndicatorFiles)
	assert.Equal(t, 30, opts.ThresholdDays)
	assert.Empty(t, opts.IgnorePaths)
	assert.False(t, opts.SeparateNested)
	assert.False(t, opts.DryRun)
	assert.False(t, opts.AutoConfirm)
}

func TestOptions_Threshold(t *testing.T) {
	opts := DefaultOptions()
	opts.ThresholdDays = 10
	assert.Equal(t, 240*time.Hour, opts.Threshold())
}

func TestCompile_Defaults(t *testing.T) {
	root := t.TempDir()
	opts := DefaultOptions()
	opts.RootDir = root
	opts.IgnorePaths = []string{"", "vendor"}

	cfg, err := opts.Compile()
	require.NoError(t, err)
	assert.Equal(t, root, opts.RootDir)
	assert.True(t, cfg.TargetPattern.MatchString("node_modules"))
	assert.True(t, cfg.ExcludePattern.MatchString(".git"))
	assert.False(t, cfg.ExcludePattern.MatchString("src"))
	assert.Equal(t, []string{"vendor"}, cfg.IgnorePaths)
	assert.Equal(t, []string{"package.json"}, cfg.IndicatorFiles)
}

func TestCompile_RelativeRootBecomesAbsolute(t *testing.T) {
	root := t.TempDir()
	wd, wdErr := os.Getwd()
	require.NoError(t, wdErr)
	require.NoError(t, os.Chdir(root))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	opts := DefaultOptions()
	opts.RootDir = "sub"
	require.NoError(t, os.Mkdir(filepath.Join(root, "sub"), 0750))

	_, err := opts.Compile()
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(opts.RootDir))
	assert.Equal(t, "sub", filepath.Base(opts.RootDir))
}

func TestCompile_EmptyExcludeDisablesExclusion(t *testing.T) {
	opts := DefaultOptions()
	opts.RootDir = t.TempDir()
	opts.ExcludePattern = ""

	cfg, err := opts.Compile()
	require.NoError(t, err)
	assert.Nil(t, cfg.ExcludePattern)
}

func TestCompile_TimeOutOfRangeIsUsageError(t *testing.T) {
	tests := []struct {
		name string
		days int
		want string
	}{
		{"negative", -1, "must not be negative"},
		{"overflows duration", MaxThresholdDays + 1, "must be at most"},
		{"far past max", 110000, "must be at most"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			opts.RootDir = t.TempDir()
			opts.ThresholdDays = tt.days

			_, err := opts.Compile()
			require.Error(t, err)

			var usageErr *UsageError
			assert.ErrorAs(t, err, &usageErr)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestCompile_MaxTimeAccepted(t *testing.T) {
	opts := DefaultOptions()
	opts.RootDir = t.TempDir()
	opts.ThresholdDays = MaxThresholdDays

	_, err := opts.Compile()
	require.NoError(t, err)
	assert.Positive(t, opts.Threshold())
}

func TestOptions_ThresholdNeverWraps(t *testing.T) {
	now := time.Now()
	project := &Project{Path: "/p", ModTime: now.Add(-24 * time.Hour), Targets: []string{"/p/node_modules"}}

	for _, days := range []int{MaxThresholdDays, MaxThresholdDays + 1, 110000} {
		opts := DefaultOptions()
		opts.ThresholdDays = days

		threshold := opts.Threshold()
		assert.Positive(t, threshold, "days=%d", days)

		res := Resolve([]*Project{project}, threshold, now)
		assert.Empty(t, res.Stale, "days=%d", days)
		assert.Empty(t, res.Targets, "days=%d", days)
	}
}

func TestCompile_ConfigErrors(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0600))

	tests := []struct {
		name    string
		mutate  func(*Options)
		wantErr error
		wantMsg string
	}{
		{"empty target", func(o *Options) { o.TargetPattern = "" }, nil, "target name pattern must not be empty"},
		{"bad target", func(o *Options) { o.TargetPattern = "node_modules(" }, nil, "invalid target name pattern"},
		{"bad exclude", func(o *Options) { o.ExcludePattern = "[" }, nil, "invalid exclude pattern"},
		{"no indicators", func(o *Options) { o.IndicatorFiles = []string{""} }, ErrNoIndicators, ""},
		{"missing root", func(o *Options) { o.RootDir = filepath.Join(file, "..", "missing") }, ErrRootNotFound, ""},
		{"root is file", func(o *Options) { o.RootDir = file }, ErrRootNotDir, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			opts.RootDir = t.TempDir()
			tt.mutate(&opts)

			_, err := opts.Compile()
			require.Error(t, err)

			var cfgErr *ConfigError
			assert.ErrorAs(t, err, &cfgErr)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

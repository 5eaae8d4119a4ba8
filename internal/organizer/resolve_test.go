package organizer

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want string
	}{
		{"photo.jpg", "jpg"},
		{"REPORT.PDF", "pdf"},
		{"archive.tar.gz", "gz"},
		{"README", ""},
		{".bashrc", ""},
		{"trailing.", ""},
		{"data.xyz", "xyz"},
	}

	for _, tt := range tests {
		if got := Ext(tt.name); got != tt.want {
			t.Errorf("Ext(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestSplitExt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		wantStem string
		wantExt  string
	}{
		{"photo.jpg", "photo", ".jpg"},
		{"archive.tar.gz", "archive.tar", ".gz"},
		{"README", "README", ""},
		{".bashrc", ".bashrc", ""},
	}

	for _, tt := range tests {
		stem, ext := splitExt(tt.name)
		if stem != tt.wantStem || ext != tt.wantExt {
			t.Errorf("splitExt(%q) = (%q, %q), want (%q, %q)",
				tt.name, stem, ext, tt.wantStem, tt.wantExt)
		}
	}
}

func existsIn(taken ...string) func(string) (bool, error) {
	set := make(map[string]bool, len(taken))
	for _, path := range taken {
		set[path] = true
	}
	return func(path string) (bool, error) { return set[path], nil }
}

func TestResolveDestinationNoCollision(t *testing.T) {
	t.Parallel()

	dest, err := ResolveDestination("/dst", "photo.jpg", existsIn())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/dst", "photo.jpg"), dest)
}

func TestResolveDestinationSingleCollision(t *testing.T) {
	t.Parallel()

	dest, err := ResolveDestination("/dst", "photo.jpg", existsIn(
		filepath.Join("/dst", "photo.jpg"),
	))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/dst", "photo (1).jpg"), dest)
}

func TestResolveDestinationSuffixesIncrease(t *testing.T) {
	t.Parallel()

	dest, err := ResolveDestination("/dst", "photo.jpg", existsIn(
		filepath.Join("/dst", "photo.jpg"),
		filepath.Join("/dst", "photo (1).jpg"),
		filepath.Join("/dst", "photo (2).jpg"),
	))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/dst", "photo (3).jpg"), dest)
}

func TestResolveDestinationProbesEachCandidateOnce(t *testing.T) {
	t.Parallel()

	var probed []string
	taken := existsIn(
		filepath.Join("/dst", "report.pdf"),
		filepath.Join("/dst", "report (1).pdf"),
	)

	dest, err := ResolveDestination("/dst", "report.pdf", func(path string) (bool, error) {
		probed = append(probed, path)
		return taken(path)
	})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join("/dst", "report (2).pdf"), dest)
	assert.Equal(t, []string{
		filepath.Join("/dst", "report.pdf"),
		filepath.Join("/dst", "report (1).pdf"),
		filepath.Join("/dst", "report (2).pdf"),
	}, probed)
}

func TestResolveDestinationNoExtension(t *testing.T) {
	t.Parallel()

	dest, err := ResolveDestination("/dst", "README", existsIn(
		filepath.Join("/dst", "README"),
	))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/dst", "README (1)"), dest)
}

func TestResolveDestinationMultiDotName(t *testing.T) {
	t.Parallel()

	dest, err := ResolveDestination("/dst", "archive.tar.gz", existsIn(
		filepath.Join("/dst", "archive.tar.gz"),
	))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/dst", "archive.tar (1).gz"), dest)
}

func TestResolveDestinationProbeErrorAbortsImmediately(t *testing.T) {
	t.Parallel()

	probeErr := errors.New("permission denied")
	probes := 0

	_, err := ResolveDestination("/dst", "photo.jpg", func(string) (bool, error) {
		probes++
		return false, probeErr
	})

	require.ErrorIs(t, err, probeErr)
	assert.Equal(t, 1, probes, "resolution must not retry a failing probe")
}

func TestResolveDestinationProbeErrorOnCandidateAborts(t *testing.T) {
	t.Parallel()

	probeErr := errors.New("permission denied")
	first := filepath.Join("/dst", "photo.jpg")

	_, err := ResolveDestination("/dst", "photo.jpg", func(path string) (bool, error) {
		if path == first {
			return true, nil
		}
		return false, probeErr
	})

	require.ErrorIs(t, err, probeErr)
}

package store

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ttpr0/landmark-routing/graph"
)

func TestSecureFilename(t *testing.T) {
	cases := map[string]string{
		"campus.geojson":      "campus.geojson",
		"my campus.geojson":   "my_campus.geojson",
		"../../etc/passwd":    "passwd",
		`C:\data\campus.json`: "campus.json",
		".hidden.geojson":     "hidden.geojson",
		"weird$name!.osm":     "weirdname.osm",
		"campus.geojson.":     "campus.geojson",
		"_campus.osm_":        "campus.osm",
		"..":                  "",
		"":                    "",
	}
	for input, want := range cases {
		assert.Equal(t, want, SecureFilename(input), input)
	}
}

func TestSecureFilenameTransliterates(t *testing.T) {
	assert.Equal(t, "cafe.geojson", SecureFilename("café.geojson"))
	assert.Equal(t, "Zurich_Map.osm", SecureFilename("Zürich Map.osm"))
	assert.Equal(t, "campus.json", SecureFilename("ｃａｍｐｕｓ.json"))
	assert.Equal(t, "geojson", SecureFilename("地図.geojson"))
}

func TestAllowedFile(t *testing.T) {
	assert.True(t, AllowedFile("campus.geojson"))
	assert.True(t, AllowedFile("campus.JSON"))
	assert.True(t, AllowedFile("campus.osm"))
	assert.True(t, AllowedFile("campus.osm.pbf"))
	assert.False(t, AllowedFile("campus.csv"))
	assert.False(t, AllowedFile("geojson"))
}

func TestDirStoreRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	s, err := NewDirStore(dir)
	require.NoError(t, err)

	require.NoError(t, s.Save("campus.geojson", strings.NewReader(`{"features": []}`)))

	dataset, err := s.Load("campus.geojson")
	require.NoError(t, err)
	assert.Equal(t, "campus.geojson", dataset.Name)
	assert.Equal(t, `{"features": []}`, string(dataset.Data))

	mod, err := s.Stat("campus.geojson")
	require.NoError(t, err)
	assert.True(t, mod.Equal(dataset.ModTime))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestDirStoreMissingAndInvalid(t *testing.T) {
	s, err := NewDirStore(t.TempDir())
	require.NoError(t, err)

	_, err = s.Load("missing.geojson")
	assert.ErrorIs(t, err, ErrDatasetNotFound)
	_, err = s.Stat("missing.geojson")
	assert.ErrorIs(t, err, ErrDatasetNotFound)

	_, err = s.Load("../secret.geojson")
	assert.ErrorIs(t, err, ErrInvalidName)
	err = s.Save("a/b.geojson", strings.NewReader("{}"))
	assert.ErrorIs(t, err, ErrInvalidName)
}

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()
	_, err := s.Load("campus.geojson")
	assert.True(t, errors.Is(err, ErrDatasetNotFound))

	require.NoError(t, s.Save("campus.geojson", strings.NewReader("{}")))
	dataset, err := s.Load("campus.geojson")
	require.NoError(t, err)
	assert.Equal(t, "{}", string(dataset.Data))

	mod, err := s.Stat("campus.geojson")
	require.NoError(t, err)
	assert.Equal(t, dataset.ModTime, mod)
}

func TestGraphCacheKeyedByModTime(t *testing.T) {
	cache := NewGraphCache()
	entry := GraphEntry{Graph: graph.NewGraph(), Nodes: graph.NewNodeRegistry()}
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	_, ok := cache.Get("campus.geojson", t0)
	assert.False(t, ok)

	cache.Put("campus.geojson", t0, entry)
	got, ok := cache.Get("campus.geojson", t0)
	require.True(t, ok)
	assert.Same(t, entry.Graph, got.Graph)

	_, ok = cache.Get("campus.geojson", t0.Add(time.Second))
	assert.False(t, ok)

	cache.Evict("campus.geojson")
	assert.Equal(t, 0, cache.Length())
}

func TestGraphCacheWatchEvictsChangedDataset(t *testing.T) {
	dir := t.TempDir()
	s, err := NewDirStore(dir)
	require.NoError(t, err)
	require.NoError(t, s.Save("campus.geojson", strings.NewReader("{}")))

	cache := NewGraphCache()
	require.NoError(t, cache.Watch(dir))
	defer cache.Close()

	mod, err := s.Stat("campus.geojson")
	require.NoError(t, err)
	cache.Put("campus.geojson", mod, GraphEntry{Graph: graph.NewGraph(), Nodes: graph.NewNodeRegistry()})

	require.NoError(t, os.Remove(filepath.Join(dir, "campus.geojson")))
	assert.Eventually(t, func() bool {
		return cache.Length() == 0
	}, 2*time.Second, 10*time.Millisecond)
}

func TestGraphCacheWatchOnlyOnce(t *testing.T) {
	cache := NewGraphCache()
	require.NoError(t, cache.Watch(t.TempDir()))

	err := cache.Watch(t.TempDir())
	assert.ErrorIs(t, err, ErrAlreadyWatching)

	require.NoError(t, cache.Close())
	require.NoError(t, cache.Watch(t.TempDir()))
	require.NoError(t, cache.Close())
}

func TestGraphCacheCloseWithoutWatch(t *testing.T) {
	assert.NoError(t, NewGraphCache().Close())
}

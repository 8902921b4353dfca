package discdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupByContentHash_EveryHashIsKey(t *testing.T) {
	results := groupByContentHash([]string{"a", "b"}, nil)

	require.Len(t, results, 2)
	for _, h := range []string{"a", "b"} {
		assert.NotNil(t, results[h], "hash %s should map to an empty slice", h)
		assert.Empty(t, results[h])
	}
}

func TestGroupByContentHash_NoDedup(t *testing.T) {
	// Data anomaly: two discs of one release share a hash.
	node := testNode("dup", testRelease("r1", "h1", "h1"))

	results := groupByContentHash([]string{"h1"}, []MediaItem{node})

	assert.Len(t, results["h1"], 2)
}

func TestGroupByContentHash_SkipsDiscsWithoutHash(t *testing.T) {
	release := testRelease("r1", "h1")
	release.Discs = append(release.Discs, Disc{Index: 2, Name: "Bonus"})
	node := testNode("item", release)

	results := groupByContentHash([]string{"h1", ""}, []MediaItem{node})

	assert.Len(t, results["h1"], 1)
	assert.Empty(t, results[""])
}

func TestFirstNode(t *testing.T) {
	nodes := []MediaItem{testNode("first"), testNode("second")}

	got, err := firstNode(nodes, "disc", "h")
	require.NoError(t, err)
	assert.Equal(t, "first", got.Slug)

	_, err = firstNode(nil, "disc", "h")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReleaseFromNode_DoesNotMutateNode(t *testing.T) {
	node := testNode("movie-x", testRelease("release-y", "h1"), testRelease("release-z", "h2"))

	release, err := releaseFromNode(node, "movie-x", "release-y")
	require.NoError(t, err)

	require.Len(t, node.Releases, 2, "source node keeps all releases")
	assert.Nil(t, node.Releases[0].MediaItem)
	assert.Equal(t, []string{"release-z"}, slugs(release.MediaItem.Releases))
}

func TestReleaseFromNode_ExcludesBySlug(t *testing.T) {
	// A second entry with the same slug is excluded too: slugs identify releases.
	node := testNode("movie-x",
		testRelease("release-y", "h1"),
		testRelease("release-z", "h2"),
		testRelease("release-y", "h3"),
	)

	release, err := releaseFromNode(node, "movie-x", "release-y")
	require.NoError(t, err)

	assert.Equal(t, "h1", *release.Discs[0].ContentHash, "first match wins")
	assert.Equal(t, []string{"release-z"}, slugs(release.MediaItem.Releases))
}

func TestReleaseFromNode_OnlyRelease(t *testing.T) {
	node := testNode("movie-x", testRelease("release-y", "h1"))

	release, err := releaseFromNode(node, "movie-x", "release-y")
	require.NoError(t, err)

	assert.NotNil(t, release.MediaItem.Releases)
	assert.Empty(t, release.MediaItem.Releases)
}

func TestReleaseFromNode_Missing(t *testing.T) {
	_, err := releaseFromNode(testNode("movie-x"), "movie-x", "release-y")

	var inconsistent *InconsistentResultError
	require.ErrorAs(t, err, &inconsistent)
	assert.Equal(t, "movie-x", inconsistent.MediaItemSlug)
	assert.Equal(t, "release-y", inconsistent.Slug)
}

func slugs(releases []Release) []string {
	out := make([]string, 0, len(releases))
	for _, r := range releases {
		out = append(out, r.Slug)
	}
	return out
}

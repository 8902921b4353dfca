package discdb

// firstNode returns the first node. Later nodes are ignored: the server's
// order decides between ambiguous matches.
func firstNode(nodes []MediaItem, lookup string, keys ...string) (*MediaItem, error) {
	if len(nodes) == 0 {
		return nil, &NotFoundError{Lookup: lookup, Keys: keys}
	}
	node := nodes[0]
	return &node, nil
}

// groupByContentHash maps every input hash to the nodes owning a disc with
// that hash. A node is appended once per matching disc, so a node with two
// discs sharing one hash appears twice under that hash.
func groupByContentHash(hashes []string, nodes []MediaItem) map[string][]MediaItem {
	results := make(map[string][]MediaItem, len(hashes))
	for _, h := range hashes {
		results[h] = []MediaItem{}
	}

	for _, node := range nodes {
		for _, release := range node.Releases {
			for _, disc := range release.Discs {
				if disc.ContentHash == nil {
					continue
				}
				if matches, ok := results[*disc.ContentHash]; ok {
					results[*disc.ContentHash] = append(matches, node)
				}
			}
		}
	}
	return results
}

// releaseFromNode picks the release with the given slug out of node and
// links it to a copy of node that lists only the other releases.
func releaseFromNode(node MediaItem, mediaItemSlug, slug string) (*Release, error) {
	idx := -1
	for i := range node.Releases {
		if node.Releases[i].Slug == slug {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, &InconsistentResultError{MediaItemSlug: mediaItemSlug, Slug: slug}
	}

	release := node.Releases[idx]

	parent := node
	parent.Releases = make([]Release, 0, len(node.Releases)-1)
	for _, r := range node.Releases {
		if r.Slug != release.Slug {
			parent.Releases = append(parent.Releases, r)
		}
	}
	release.MediaItem = &parent

	return &release, nil
}

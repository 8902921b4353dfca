package discdb

// operation is a GraphQL operation known to the client. The set is closed:
// values are only created by the constants below.
type operation int

const (
	opDiscDetailByContentHashes operation = iota + 1
	opReleasesBySlugs
	opMediaItemsByExternalIDs
)

var operationNames = map[operation]string{
	opDiscDetailByContentHashes: "GetDiscDetailByContentHashes",
	opReleasesBySlugs:           "GetReleasesBySlugs",
	opMediaItemsByExternalIDs:   "GetMediaItemsByExternalIds",
}

var operationDocuments = map[operation]string{
	opDiscDetailByContentHashes: discDetailByContentHashesQuery,
	opReleasesBySlugs:           releasesBySlugsQuery,
	opMediaItemsByExternalIDs:   mediaItemsByExternalIDsQuery,
}

func (o operation) String() string {
	if name, ok := operationNames[o]; ok {
		return name
	}
	return "unknown"
}

func (o operation) document() (string, bool) {
	doc, ok := operationDocuments[o]
	return doc, ok
}

// fullNodeFields selects the media item tree shared by all lookups.
// Discs, titles and chapters are ordered by index ascending on the server;
// callers rely on that order.
const fullNodeFields = `
  nodes {
    title
    year
    slug
    imageUrl
    type
    externalids {
      tmdb
      imdb
      tvdb
    }
    releases {
      slug
      locale
      regionCode
      year
      title
      imageUrl
      discs(order: { index: ASC }) {
        contentHash
        index
        name
        format
        slug
        titles(order: { index: ASC }) {
          index
          duration
          displaySize
          sourceFile
          size
          segmentMap
          item {
            title
            season
            episode
            type
            chapters(order: { index: ASC }) {
              index
              title
            }
          }
        }
      }
    }
  }
`

const discDetailByContentHashesQuery = `
    query GetDiscDetailByContentHashes($hashes: [String]) {
      mediaItems(
        where: {
          releases: { some: { discs: { some: { contentHash: { in: $hashes } } } } }
        }
      ) {
        ` + fullNodeFields + `
      }
    }`

const releasesBySlugsQuery = `
    query GetReleasesBySlugs($mediaItemSlug: String, $slug: String) {
      mediaItems(
        where: {
          slug: { eq: $mediaItemSlug },
          releases: { some: { slug: { eq: $slug } } }
        }
      ) {
        ` + fullNodeFields + `
      }
    }`

const mediaItemsByExternalIDsQuery = `
    query GetMediaItemsByExternalIds($imdbId: String, $tmdbId: String, $tvdbId: String) {
      mediaItems(
        where: {
          externalids: {
            or: [
              { imdb: { eq: $imdbId } },
              { tmdb: { eq: $tmdbId } },
              { tvdb: { eq: $tvdbId } }
            ]
          }
        }
      ) {
        ` + fullNodeFields + `
      }
    }`

package pipeline

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rssThreeItems = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Wire</title>
    <item><title>First headline</title><link>https://example.com/1</link></item>
    <item><title>Second headline</title><link>https://example.com/2</link></item>
    <item><title>Third headline</title><link>https://example.com/3</link></item>
  </channel>
</rss>`

const atomMixedTitles = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>Wire</title>
  <entry><title>Opening day recap</title><id>a</id></entry>
  <entry><title></title><id>b</id></entry>
  <entry><title>Trade deadline moves</title><id>c</id></entry>
</feed>`

func TestExtractFeedTitles_RSS(t *testing.T) {
	titles, err := ExtractFeedTitles([]byte(rssThreeItems))
	require.NoError(t, err)
	assert.Equal(t, []string{"First headline", "Second headline", "Third headline"}, titles)
}

func TestExtractFeedTitles_AtomSkipsEmptyTitles(t *testing.T) {
	titles, err := ExtractFeedTitles([]byte(atomMixedTitles))
	require.NoError(t, err)
	assert.Equal(t, []string{"Opening day recap", "Trade deadline moves"}, titles)
}

func TestExtractFeedTitles_Malformed(t *testing.T) {
	_, err := ExtractFeedTitles([]byte("this is not a feed"))
	assert.Error(t, err)
}

func TestCollectFeedTitles(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(rssThreeItems))
	}))
	defer srv.Close()

	f := newTestFetcher(2 * time.Second)
	titles, err := CollectFeedTitles(f, FeedSource{Name: "wire", URL: srv.URL})
	require.NoError(t, err)
	assert.Len(t, titles, 3)
}

func TestCollectFeedTitles_FetchError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusGone)
	}))
	defer srv.Close()

	f := newTestFetcher(2 * time.Second)
	_, err := CollectFeedTitles(f, FeedSource{Name: "wire", URL: srv.URL})
	assert.Error(t, err)
}

package search

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const arxivFixture = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <entry>
    <title>Attention Is All You Need</title>
    <summary>  We propose the Transformer architecture. </summary>
    <published>2017-06-12T17:57:34Z</published>
    <author><name>Ashish Vaswani</name></author>
    <author><name>Noam Shazeer</name></author>
    <link href="http://arxiv.org/abs/1706.03762" rel="alternate" type="text/html"/>
    <link title="pdf" href="http://arxiv.org/pdf/1706.03762" rel="related" type="application/pdf"/>
  </entry>
</feed>`

func TestParseArxivFeed(t *testing.T) {
	results, err := parseArxivFeed([]byte(arxivFixture))
	require.NoError(t, err)
	require.Len(t, results, 1)

	r := results[0]
	require.Equal(t, "Attention Is All You Need", r.Title)
	require.Equal(t, []string{"Ashish Vaswani", "Noam Shazeer"}, r.Authors)
	require.Equal(t, "We propose the Transformer architecture....", r.Abstract)
	require.Equal(t, "arXiv", r.Source)
	require.Equal(t, "http://arxiv.org/abs/1706.03762", r.URL)
	require.Equal(t, "http://arxiv.org/pdf/1706.03762", r.PDFURL)
	require.Equal(t, "2017-06-12", r.Date)
	require.Equal(t, []string{"arXiv"}, r.Tags)
}

const crossrefFixture = `{
  "message": {
    "items": [
      {
        "title": ["Deep Residual Learning"],
        "author": [
          {"given": "Kaiming", "family": "He"},
          {"family": "Zhang"}
        ],
        "published": {"date-parts": [[2016, 6]]},
        "DOI": "10.1109/cvpr.2016.90",
        "container-title": ["CVPR"],
        "is-referenced-by-count": 180000
      }
    ]
  }
}`

func TestParseCrossrefResponse(t *testing.T) {
	results, err := parseCrossrefResponse([]byte(crossrefFixture))
	require.NoError(t, err)
	require.Len(t, results, 1)

	r := results[0]
	require.Equal(t, "Deep Residual Learning", r.Title)
	require.Equal(t, []string{"Kaiming He", "Zhang"}, r.Authors)
	require.Equal(t, "No abstract available....", r.Abstract)
	require.Equal(t, "CVPR", r.Source)
	require.Equal(t, "https://doi.org/10.1109/cvpr.2016.90", r.URL)
	require.Equal(t, "10.1109/cvpr.2016.90", r.DOI)
	require.Equal(t, "2016-06-01", r.Date)
	require.Equal(t, 180000, r.Citations)
}

func TestParseCrossrefResponseEmptyDateFallsBack(t *testing.T) {
	results, err := parseCrossrefResponse([]byte(`{"message":{"items":[{"title":[]}]}}`))
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, "Untitled", results[0].Title)
	require.Equal(t, "2025-01-01", results[0].Date)
}

package scrape

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func TestParsePrice(t *testing.T) {
	cases := []struct {
		text string
		want float64
		nil_ bool
	}{
		{text: "$19.99", want: 19.99},
		{text: "From $34.99 USD", want: 34.99},
		{text: "€29,99", want: 29.99},
		{text: "45", want: 45},
		{text: "Sold out", nil_: true},
		{text: "", nil_: true},
	}
	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			got := parsePrice(tc.text)
			if tc.nil_ {
				require.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			require.Equal(t, tc.want, *got)
		})
	}
}

func TestParsePriceValue(t *testing.T) {
	v := parsePriceValue("$24.99")
	require.NotNil(t, v)
	require.Equal(t, 24.99, *v)

	v = parsePriceValue("19,99")
	require.NotNil(t, v)
	require.Equal(t, 19.99, *v)

	require.Nil(t, parsePriceValue("free"))
	require.Nil(t, parsePriceValue(""))
}

func TestNormalizeImageURL(t *testing.T) {
	require.Equal(t, "https://cdn.example.com/a.jpg", normalizeImageURL("//cdn.example.com/a.jpg"))
	require.Equal(t, "https://cdn.example.com/a.jpg", normalizeImageURL("https://cdn.example.com/a.jpg"))
	require.Equal(t, "", normalizeImageURL(""))
}

func TestResolveURL(t *testing.T) {
	base := "https://example.com/collections/resins"
	require.Equal(t, "https://example.com/products/x", resolveURL(base, "/products/x"))
	require.Equal(t, "https://other.com/y", resolveURL(base, "https://other.com/y"))
	require.Equal(t, "", resolveURL(base, ""))
}

func TestBaseOrigin(t *testing.T) {
	require.Equal(t, "https://example.com", baseOrigin("https://example.com/a/b?c=d"))
	require.Equal(t, "", baseOrigin("not a url"))
}

func TestCleanDescription(t *testing.T) {
	html := "<p>Great   resin.</p><script>alert(1)</script><style>p{}</style><p>Buy now.</p>"
	require.Equal(t, "Great resin. Buy now.", cleanDescription(html, 200))

	long := strings.Repeat("a", 300)
	require.Len(t, cleanDescription(long, 200), 200)

	require.Equal(t, "", cleanDescription("", 200))
}

func TestImageAttr(t *testing.T) {
	sel := func(html string) *goquery.Selection {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
		require.NoError(t, err)
		return doc.Find("img").First()
	}

	require.Equal(t, "https://a/x.jpg", imageAttr(sel(`<img src="https://a/x.jpg">`)))
	require.Equal(t, "https://a/lazy.jpg", imageAttr(sel(`<img data-src="https://a/lazy.jpg">`)))
	require.Equal(t, "https://a/1.jpg",
		imageAttr(sel(`<img srcset="https://a/1.jpg 1x, https://a/2.jpg 2x">`)))
	require.Equal(t, "https://a/p.jpg", imageAttr(sel(`<img src="//a/p.jpg">`)))
	require.Equal(t, "", imageAttr(sel(`<img alt="no source">`)))
}

func TestTruncateRunes(t *testing.T) {
	require.Equal(t, "héllo", truncateRunes("héllo", 10))
	require.Equal(t, "hél", truncateRunes("héllo", 3))
}

package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureHTML = `<!DOCTYPE html>
<html>
<head>
	<title>Acme Widgets | Home</title>
	<title>Second Title Ignored</title>
	<meta name="description" content="Best widgets since 1990.">
</head>
<body>
	<h2>Early subheading</h2>
	<h1>Welcome to Acme</h1>
	<h3>Fine print</h3>
	<h2>Customer reviews</h2>
	<nav>
		<a href="/about">About</a>
		<a href="https://example.com/pricing">Pricing</a>
		<a>No href anchor</a>
	</nav>
	<img src="/logo.png" alt="Acme logo">
	<img src="/hero.jpg" alt="">
	<img src="/banner.jpg">
	<img src="/team.jpg" alt="Our team">
	<form action="/signup"><input type="email"><input type="submit" value="Join"></form>
	<form action="/contact"></form>
	<button>Buy now</button>
	<button>Learn more</button>
</body>
</html>`

func TestParseContent(t *testing.T) {
	summary, err := ParseContent(fixtureHTML, 200)
	require.NoError(t, err)

	assert.Equal(t, "Acme Widgets | Home", summary.Title, "first title wins")
	assert.Equal(t, "Best widgets since 1990.", summary.Description)

	// h1 entries come first regardless of document position.
	assert.Equal(t, []string{"Welcome to Acme", "Early subheading", "Customer reviews", "Fine print"}, summary.Headings)

	assert.Equal(t, []string{"/about", "https://example.com/pricing"}, summary.Links)

	// Only non-empty alt texts are collected; every img is counted.
	assert.Equal(t, []string{"Acme logo", "Our team"}, summary.Images)
	assert.Equal(t, 4, summary.TotalImages)

	assert.Equal(t, 2, summary.Forms)
	assert.Equal(t, 3, summary.Buttons, "2 buttons + 1 submit input")

	assert.Equal(t, 200, summary.StatusCode)
	assert.Equal(t, fixtureHTML, summary.RawHTML)
}

func TestParseContent_EmptyPage(t *testing.T) {
	summary, err := ParseContent("", 200)
	require.NoError(t, err)

	assert.Empty(t, summary.Title)
	assert.Empty(t, summary.Description)
	assert.Empty(t, summary.Headings)
	assert.Empty(t, summary.Links)
	assert.Empty(t, summary.Images)
	assert.Zero(t, summary.TotalImages)
	assert.Zero(t, summary.Forms)
	assert.Zero(t, summary.Buttons)
}

func TestParseContent_MalformedHTML(t *testing.T) {
	// Unclosed tags still parse; the tokenizer repairs what it can.
	summary, err := ParseContent("<html><h1>Broken<h2>Page<form>", 200)
	require.NoError(t, err)

	assert.Contains(t, summary.Headings, "Broken")
	assert.Equal(t, 1, summary.Forms)
}

func TestParseContent_MissingDescription(t *testing.T) {
	summary, err := ParseContent(`<html><head><meta name="keywords" content="a,b"></head></html>`, 200)
	require.NoError(t, err)
	assert.Empty(t, summary.Description)
}

package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/siteaudit/siteaudit/internal/domain"
)

// ParseContent reduces raw HTML to the ContentSummary the evaluators work
// from. Headings are collected per level, h1 first, preserving the order
// each level appears in the document. Images holds alt texts only; img tags
// without alt text are counted but contribute nothing to the list.
func ParseContent(rawHTML string, statusCode int) (*domain.ContentSummary, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	summary := &domain.ContentSummary{
		RawHTML:    rawHTML,
		StatusCode: statusCode,
		Headings:   []string{},
		Links:      []string{},
		Images:     []string{},
	}

	summary.Title = strings.TrimSpace(doc.Find("title").First().Text())

	if desc, ok := doc.Find(`meta[name="description"]`).First().Attr("content"); ok {
		summary.Description = strings.TrimSpace(desc)
	}

	for _, tag := range []string{"h1", "h2", "h3"} {
		doc.Find(tag).Each(func(_ int, s *goquery.Selection) {
			if text := strings.TrimSpace(s.Text()); text != "" {
				summary.Headings = append(summary.Headings, text)
			}
		})
	}

	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href := strings.TrimSpace(s.AttrOr("href", ""))
		if href != "" {
			summary.Links = append(summary.Links, href)
		}
	})

	doc.Find("img").Each(func(_ int, s *goquery.Selection) {
		summary.TotalImages++
		if alt := strings.TrimSpace(s.AttrOr("alt", "")); alt != "" {
			summary.Images = append(summary.Images, alt)
		}
	})

	summary.Forms = doc.Find("form").Length()
	summary.Buttons = doc.Find("button").Length() + doc.Find(`input[type="submit"]`).Length()

	return summary, nil
}

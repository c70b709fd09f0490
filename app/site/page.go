package site

import (
	"bytes"
	"fmt"

	"pagecomb/app/catalog"
)

// PageGenerator renders one self-contained answer page per keyword.
// Interpolated fields are emitted verbatim, preserving the legacy output
// byte for byte.
type PageGenerator struct {
	baseUrl string
}

func NewPageGenerator(baseUrl string) *PageGenerator {
	return &PageGenerator{baseUrl: baseUrl}
}

func (g *PageGenerator) Run(keyword catalog.Keyword) string {
	canonical := fmt.Sprintf("%s/%s/", g.baseUrl, keyword.Slug)

	var buf bytes.Buffer

	buf.WriteString("<!doctype html>\n")
	buf.WriteString("<html lang=\"en\">\n")
	buf.WriteString("<head>\n")
	buf.WriteString("  <meta charset=\"utf-8\" />\n")
	buf.WriteString("  <meta name=\"viewport\" content=\"width=device-width, initial-scale=1\" />\n")
	buf.WriteString(fmt.Sprintf("  <title>%s</title>\n", keyword.Question))
	buf.WriteString(fmt.Sprintf("  <meta name=\"description\" content=\"%s\" />\n", keyword.ShortAnswer))
	buf.WriteString(fmt.Sprintf("  <link rel=\"canonical\" href=\"%s\" />\n", canonical))
	buf.WriteString("  <style>\n")
	buf.WriteString("    body { font-family: system-ui, -apple-system, sans-serif; max-width: 720px; margin: 40px auto; padding: 0 16px; line-height: 1.5; }\n")
	buf.WriteString("    .disclosure { background: #fff4d1; border: 1px solid #f2d68a; padding: 12px; border-radius: 6px; }\n")
	buf.WriteString("    .cta { display: inline-block; background: #1a56db; color: #fff; padding: 12px 18px; border-radius: 6px; text-decoration: none; font-weight: 600; }\n")
	buf.WriteString("  </style>\n")
	buf.WriteString("</head>\n")
	buf.WriteString("<body>\n")
	buf.WriteString("  <p class=\"disclosure\"><strong>Disclosure:</strong> This page may contain affiliate links. If you choose to purchase, we may earn a commission at no extra cost to you.</p>\n")
	buf.WriteString(fmt.Sprintf("  <h1>%s</h1>\n", keyword.Question))
	buf.WriteString(fmt.Sprintf("  <p>%s</p>\n", keyword.ShortAnswer))
	buf.WriteString("  <p>\n")
	buf.WriteString(fmt.Sprintf("    <a class=\"cta\" href=\"%s\" rel=\"sponsored nofollow\">%s</a>\n", keyword.OfferURL, keyword.CTAText))
	buf.WriteString("  </p>\n")
	buf.WriteString("</body>\n")
	buf.WriteString("</html>\n")

	return buf.String()
}

package site

import (
	"bytes"
	"fmt"
	"strings"

	"pagecomb/app/catalog"
)

// IndexGenerator renders the root listing page with a client-side
// substring filter over the listed questions.
type IndexGenerator struct {
	baseUrl     string
	title       string
	description string
}

func NewIndexGenerator(baseUrl string, title string, description string) *IndexGenerator {
	return &IndexGenerator{baseUrl: baseUrl, title: title, description: description}
}

func (g *IndexGenerator) Run(keywords []catalog.Keyword) string {
	items := make([]string, 0, len(keywords))
	for _, keyword := range keywords {
		items = append(items, fmt.Sprintf("<li><a href=\"%s/\">%s</a></li>", keyword.Slug, keyword.Question))
	}

	var buf bytes.Buffer

	buf.WriteString("<!doctype html>\n")
	buf.WriteString("<html lang=\"en\">\n")
	buf.WriteString("<head>\n")
	buf.WriteString("  <meta charset=\"utf-8\" />\n")
	buf.WriteString("  <meta name=\"viewport\" content=\"width=device-width, initial-scale=1\" />\n")
	buf.WriteString(fmt.Sprintf("  <title>%s</title>\n", g.title))
	buf.WriteString(fmt.Sprintf("  <meta name=\"description\" content=\"%s\" />\n", g.description))
	buf.WriteString(fmt.Sprintf("  <link rel=\"canonical\" href=\"%s/\" />\n", g.baseUrl))
	buf.WriteString("  <style>\n")
	buf.WriteString("    body { font-family: system-ui, -apple-system, sans-serif; max-width: 720px; margin: 40px auto; padding: 0 16px; line-height: 1.5; }\n")
	buf.WriteString("    input { width: 100%; padding: 10px; font-size: 16px; margin-bottom: 16px; }\n")
	buf.WriteString("  </style>\n")
	buf.WriteString("</head>\n")
	buf.WriteString("<body>\n")
	buf.WriteString(fmt.Sprintf("  <h1>%s</h1>\n", g.title))
	buf.WriteString("  <p>Search our collection of quick answers.</p>\n")
	buf.WriteString("  <input id=\"search\" type=\"search\" placeholder=\"Search questions...\" />\n")
	buf.WriteString("  <ul id=\"results\">\n")
	buf.WriteString(fmt.Sprintf("    %s\n", strings.Join(items, "\n")))
	buf.WriteString("  </ul>\n")

	// The filter is re-evaluated on every input event over the full item
	// list: query lower-cased and trimmed, matched case-insensitively as a
	// substring of each item's visible text.
	buf.WriteString("  <script>\n")
	buf.WriteString("    const searchInput = document.getElementById('search');\n")
	buf.WriteString("    const results = document.getElementById('results');\n")
	buf.WriteString("    const items = Array.from(results.querySelectorAll('li'));\n")
	buf.WriteString("\n")
	buf.WriteString("    searchInput.addEventListener('input', () => {\n")
	buf.WriteString("      const query = searchInput.value.toLowerCase().trim();\n")
	buf.WriteString("      items.forEach((item) => {\n")
	buf.WriteString("        const text = item.textContent.toLowerCase();\n")
	buf.WriteString("        item.style.display = text.includes(query) ? '' : 'none';\n")
	buf.WriteString("      });\n")
	buf.WriteString("    });\n")
	buf.WriteString("  </script>\n")
	buf.WriteString("</body>\n")
	buf.WriteString("</html>\n")

	return buf.String()
}

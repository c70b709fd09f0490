package site

import (
	"strings"
	"testing"

	"pagecomb/app/catalog"
)

func TestPageGenerator_Run(t *testing.T) {
	generator := NewPageGenerator("https://answers.example.com")

	keyword := catalog.Keyword{
		Slug:        "best-vpn",
		Question:    "What is the best VPN?",
		ShortAnswer: "A fast audited VPN.",
		OfferURL:    "https://example.com/vpn?ref=42",
		CTAText:     "Get the deal",
	}

	page := generator.Run(keyword)

	if !strings.Contains(page, "<title>What is the best VPN?</title>") {
		t.Error("Page should contain the question as title")
	}
	if !strings.Contains(page, "<h1>What is the best VPN?</h1>") {
		t.Error("Page should contain the question as heading")
	}
	if !strings.Contains(page, "<p>A fast audited VPN.</p>") {
		t.Error("Page should contain the short answer as paragraph")
	}
	if !strings.Contains(page, `<meta name="description" content="A fast audited VPN." />`) {
		t.Error("Page should contain the short answer as meta description")
	}
	if !strings.Contains(page, `<link rel="canonical" href="https://answers.example.com/best-vpn/" />`) {
		t.Error("Page should contain the canonical URL")
	}
	if !strings.Contains(page, `<a class="cta" href="https://example.com/vpn?ref=42" rel="sponsored nofollow">Get the deal</a>`) {
		t.Error("Page should contain the CTA link with sponsored nofollow relation")
	}
	if !strings.Contains(page, "<strong>Disclosure:</strong>") {
		t.Error("Page should contain the affiliate disclosure banner")
	}
}

func TestPageGenerator_NoEscaping(t *testing.T) {
	generator := NewPageGenerator("https://answers.example.com")

	keyword := catalog.Keyword{
		Slug:        "cheap-hosting",
		Question:    "Shared & dedicated hosting?",
		ShortAnswer: "Plans under $3 <monthly>.",
		OfferURL:    "https://example.com/host?a=1&b=2",
		CTAText:     "See plans",
	}

	page := generator.Run(keyword)

	// Interpolated fields are emitted verbatim, matching the legacy output
	if !strings.Contains(page, "<h1>Shared & dedicated hosting?</h1>") {
		t.Error("Question should be interpolated without escaping")
	}
	if !strings.Contains(page, "<p>Plans under $3 <monthly>.</p>") {
		t.Error("Short answer should be interpolated without escaping")
	}
	if !strings.Contains(page, `href="https://example.com/host?a=1&b=2"`) {
		t.Error("Offer URL should be interpolated without escaping")
	}
}

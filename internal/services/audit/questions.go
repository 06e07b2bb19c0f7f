package audit

import "github.com/siteaudit/siteaudit/internal/domain"

// The two question banks. Question IDs are stable and number each bank
// independently; the order of categories and of questions within a
// category is the order results are reported in.

var croCategories = []domain.Category{
	{
		Name: "Offers & Messaging",
		Kind: domain.AuditKindCRO,
		Questions: []domain.Question{
			{ID: 1, Text: "Does the above-the-fold headline clearly state what, for whom, and the benefit in 12 words or fewer?"},
			{ID: 2, Text: "Is the primary call-to-action (CTA) visible without scrolling on mobile and desktop?"},
			{ID: 3, Text: "Is that primary CTA visually dominant (unique colour, ≥ 44 px tall) with an action verb?"},
			{ID: 4, Text: "Are there zero competing CTAs or distracting links in the hero section?"},
		},
	},
	{
		Name: "Social Proof & Trust",
		Kind: domain.AuditKindCRO,
		Questions: []domain.Question{
			{ID: 5, Text: "Is at least one high-credibility testimonial, star rating, or client logo band visible in the first viewport?"},
			{ID: 6, Text: "Are security badges, refund/guarantee copy, or trust seals placed next to forms or checkout areas?"},
		},
	},
	{
		Name: "Analytics & Tracking",
		Kind: domain.AuditKindCRO,
		Questions: []domain.Question{
			{ID: 7, Text: "Are GA4 (or another analytics suite) and all key events—page view, 75% scroll, CTA click, form submit—firing correctly?"},
			{ID: 8, Text: "Are critical funnel steps (Add to Cart, Begin Checkout, Add Payment Info, Purchase) tagged and reporting?"},
		},
	},
	{
		Name: "Lead Capture & Forms",
		Kind: domain.AuditKindCRO,
		Questions: []domain.Question{
			{ID: 9, Text: "Does every lead-gen form require five or fewer mandatory fields?"},
			{ID: 10, Text: "Do fields validate inline and show friendly, specific error messages?"},
		},
	},
	{
		Name: "Urgency & Scarcity",
		Kind: domain.AuditKindCRO,
		Questions: []domain.Question{
			{ID: 11, Text: "Is there a legitimate urgency or scarcity cue (e.g., limited stock counter, countdown timer) that isn't fake or overbearing?"},
		},
	},
	{
		Name: "Pricing & Friction",
		Kind: domain.AuditKindCRO,
		Questions: []domain.Question{
			{ID: 12, Text: "Is the total cost—including shipping/taxes—displayed before the user reaches checkout step 2?"},
			{ID: 13, Text: "Can visitors check out as guests (no forced account creation)?"},
		},
	},
	{
		Name: "Speed & Experimentation",
		Kind: domain.AuditKindCRO,
		Questions: []domain.Question{
			{ID: 14, Text: "Is mobile Largest Contentful Paint ≤ 2.5 seconds?"},
			{ID: 15, Text: "Is only one A/B test (or none) running on this page right now?"},
		},
	},
}

var uxCategories = []domain.Category{
	{
		Name: "Performance & Stability",
		Kind: domain.AuditKindUX,
		Questions: []domain.Question{
			{ID: 1, Text: "Does the page meet Core Web Vitals: mobile LCP ≤ 2.5 s and CLS ≤ 0.1?"},
			{ID: 2, Text: "Are there zero console errors, 404s, or mixed-content warnings in dev-tools?"},
		},
	},
	{
		Name: "Mobile-First Usability",
		Kind: domain.AuditKindUX,
		Questions: []domain.Question{
			{ID: 3, Text: "Are all tap targets at least 48 × 48 px with 8 px spacing?"},
			{ID: 4, Text: "Is body text legible on a 320 px-wide screen without pinch-zoom?"},
			{ID: 5, Text: "Do sticky headers/CTAs avoid covering content while scrolling?"},
		},
	},
	{
		Name: "Navigation & Information Architecture",
		Kind: domain.AuditKindUX,
		Questions: []domain.Question{
			{ID: 6, Text: "Do menu labels match common user intent ('Pricing', 'Services', 'About') rather than jargon?"},
			{ID: 7, Text: "Are breadcrumbs provided on pages more than two levels deep?"},
		},
	},
	{
		Name: "Accessibility (WCAG 2.1 AA)",
		Kind: domain.AuditKindUX,
		Questions: []domain.Question{
			{ID: 8, Text: "Does every foreground/background colour combo meet a 4.5 : 1 contrast ratio?"},
			{ID: 9, Text: "Do all functional or informative images have concise, descriptive alt text (not keyword stuffing)?"},
			{ID: 10, Text: "Can a keyboard-only user Tab to every interactive element and see a clear focus state?"},
		},
	},
	{
		Name: "Content & Microcopy",
		Kind: domain.AuditKindUX,
		Questions: []domain.Question{
			{ID: 11, Text: "Can a new visitor grasp the page's purpose in five seconds or less?"},
			{ID: 12, Text: "Does the main copy score Grade 8 or easier on a readability test (Flesch ≥ 60)?"},
		},
	},
	{
		Name: "Error States & Feedback",
		Kind: domain.AuditKindUX,
		Questions: []domain.Question{
			{ID: 13, Text: "Do form errors explain what's wrong and how to fix it in plain language?"},
			{ID: 14, Text: "Do empty states (e.g., empty cart, no search results) offer helpful next steps?"},
		},
	},
	{
		Name: "Visual Design & Consistency",
		Kind: domain.AuditKindUX,
		Questions: []domain.Question{
			{ID: 15, Text: "Are button styles, colours, and typography consistent across the site?"},
			{ID: 16, Text: "Is spacing based on a tidy rhythm (e.g., 8-pt grid) to aid scan-ability?"},
		},
	},
	{
		Name: "Delight & Engagement",
		Kind: domain.AuditKindUX,
		Questions: []domain.Question{
			{ID: 17, Text: "Do hover/focus micro-interactions signal that elements are clickable without being distracting?"},
			{ID: 18, Text: "Is there any meaningful personalisation or localisation (geo-specific copy, remembered cart, etc.) where appropriate?"},
		},
	},
}

// CROCategories returns a copy of the CRO question bank.
func CROCategories() []domain.Category {
	return copyCategories(croCategories)
}

// UXCategories returns a copy of the UX question bank.
func UXCategories() []domain.Category {
	return copyCategories(uxCategories)
}

func copyCategories(src []domain.Category) []domain.Category {
	out := make([]domain.Category, len(src))
	for i, c := range src {
		qs := make([]domain.Question, len(c.Questions))
		copy(qs, c.Questions)
		out[i] = domain.Category{Name: c.Name, Kind: c.Kind, Questions: qs}
	}
	return out
}

func countQuestions(cats []domain.Category) int {
	n := 0
	for _, c := range cats {
		n += len(c.Questions)
	}
	return n
}

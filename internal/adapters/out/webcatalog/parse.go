package webcatalog

import (
	"fmt"
	"slices"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/bnema/hoard/internal/domain"
	"github.com/bnema/hoard/pkg/checksum"
)

// Listing page selectors.
const (
	selEntry     = "div#repo > ul li a"
	selTitle     = "div [x-test-model-title]"
	selIntro     = "p"
	selPullCount = "span [x-test-pull-count]"
	selTagCount  = "span [x-test-tag-count]"
	selUpdated   = "span [x-test-updated]"
)

// Detail page selectors.
const (
	selSummary = "#summary-content"
	selReadme  = "#readme #display"
)

// Tags page selectors.
const (
	selTagRow   = "body section > div > div > div"
	selTagLink  = "div > span > a"
	selTagInfo  = "div > p"
	selTagInput = "div > div.col-span-2"
	selTagHash  = "div >div >span.font-mono"
)

func parse(raw string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML document: %w", err)
	}
	return doc, nil
}

// ParseListing extracts the catalog entries of a listing page. Each entry's
// RawContentDigest covers the entry's HTML fragment, so an unchanged fragment
// means an unchanged entry. Entries missing any field are skipped. The page
// lists newest first; entries are returned oldest first.
func ParseListing(raw string) ([]domain.CatalogEntry, error) {
	doc, err := parse(raw)
	if err != nil {
		return nil, err
	}

	var entries []domain.CatalogEntry
	doc.Find(selEntry).Each(func(_ int, a *goquery.Selection) {
		titleEl := a.Find(selTitle).First()
		title, ok := titleEl.Attr("title")
		if !ok {
			return
		}

		intro, ok1 := text(titleEl, selIntro)
		pulls, ok2 := text(a, selPullCount)
		tags, ok3 := text(a, selTagCount)
		updated, ok4 := text(a, selUpdated)
		if !ok1 || !ok2 || !ok3 || !ok4 {
			return
		}

		var digest string
		if fragment, err := goquery.OuterHtml(a); err == nil && fragment != "" {
			digest = checksum.Digest([]byte(fragment))
		}
		href, _ := a.Attr("href")

		entries = append(entries, domain.CatalogEntry{
			Title:            strings.TrimSpace(title),
			Href:             href,
			RawContentDigest: digest,
			Introduction:     intro,
			PullCount:        pulls,
			TagCount:         tags,
			UpdatedTime:      updated,
		})
	})

	slices.Reverse(entries)
	return entries, nil
}

// ParseDetail extracts the summary and readme text of a detail page. Missing
// sections read as empty.
func ParseDetail(raw string) (summary, readme string, err error) {
	doc, err := parse(raw)
	if err != nil {
		return "", "", err
	}
	summary, _ = text(doc.Selection, selSummary)
	readme, _ = text(doc.Selection, selReadme)
	return summary, readme, nil
}

// ParseTags extracts the variants listed on a model's tags page. Variant
// names are qualified with model when the page lists bare tags.
func ParseTags(model, raw string) ([]domain.VariantRecord, error) {
	doc, err := parse(raw)
	if err != nil {
		return nil, err
	}

	var variants []domain.VariantRecord
	seen := make(map[string]bool)
	doc.Find(selTagRow).Each(func(_ int, row *goquery.Selection) {
		link := row.Find(selTagLink).First()
		input := row.Find(selTagInput).First()
		info := row.Find(selTagInfo)
		hash := row.Find(selTagHash).First()
		if link.Length() == 0 || input.Length() == 0 || info.Length() < 2 || hash.Length() == 0 {
			return
		}

		name := strings.TrimSpace(link.Text())
		if name == "" {
			return
		}
		if !strings.Contains(name, ":") {
			name = model + ":" + name
		}
		if seen[name] {
			return
		}
		seen[name] = true

		href, _ := link.Attr("href")
		variants = append(variants, domain.VariantRecord{
			Name:    name,
			Href:    href,
			Size:    strings.TrimSpace(info.Eq(0).Text()),
			Context: strings.TrimSpace(info.Eq(1).Text()),
			Input:   strings.TrimSpace(input.Text()),
			Hash:    strings.TrimSpace(hash.Text()),
		})
	})
	return variants, nil
}

func text(s *goquery.Selection, selector string) (string, bool) {
	el := s.Find(selector).First()
	if el.Length() == 0 {
		return "", false
	}
	return strings.TrimSpace(el.Text()), true
}

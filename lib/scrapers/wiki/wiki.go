// Package wiki scrapes the community wiki's Blueprints table into the
// catalog consumed by lib/catalog. This runs offline via
// cmd/catalog-scraper, never inside a command handler.
package wiki

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"arctraders-backend/lib/catalog"
	"arctraders-backend/lib/htmlutil"
	"arctraders-backend/lib/telemetry"
	"arctraders-backend/lib/textutil"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("scrapers/wiki")

const DefaultUrl = "https://arcraiders.wiki/wiki/Blueprints"

var TableNotFound = fmt.Errorf("could not find the blueprints table on the page")

// messy/variant header -> clean snake_case key
var headerMap = map[string]string{
	"blueprint":       "blueprint_name",
	"blueprint name":  "blueprint_name",
	"name":            "blueprint_name",
	"workshop":        "workshop",
	"crafting recipe": "crafting_recipe",
	"loot":            "loot",
	"harvester event": "harvester_event",
	"quest reward":    "quest_reward",
	"trials reward":   "trials_reward",
}

func cleanKey(header string) string {
	h := strings.ToLower(textutil.CollapseWhitespace(header))
	if mapped, ok := headerMap[h]; ok {
		return mapped
	}
	return textutil.SnakeCase(h)
}

// Row is one scraped blueprint row. Name and SourceUrl come from the
// first column, Fields carries every cell keyed by cleaned header.
type Row struct {
	Name      string
	SourceUrl string
	Fields    map[string]string
}

type Client struct {
	BaseUrl *url.URL
	Http    *resty.Client
}

func NewClient(rawUrl string) (*Client, error) {
	baseUrl, err := url.Parse(rawUrl)
	if err != nil {
		return nil, err
	}

	client := resty.New()
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)
	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	client.SetTimeout(time.Second * 30)

	telemetry.InstrumentResty(client, "scrapers/wiki/http")

	return &Client{
		BaseUrl: baseUrl,
		Http:    client,
	}, nil
}

func (c *Client) FetchBlueprints(ctx context.Context) ([]Row, error) {
	ctx, span := tracer.Start(ctx, "FetchBlueprints")
	defer span.End()

	res, err := c.Http.R().SetContext(ctx).Get(c.BaseUrl.String())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "request failed")
		return nil, err
	}
	if res.StatusCode() >= 400 {
		err := fmt.Errorf("wiki responded with status %s", res.Status())
		span.RecordError(err)
		span.SetStatus(codes.Error, "bad status")
		return nil, err
	}

	rows, err := ParseTable(res.Body(), c.BaseUrl)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "parse failed")
		return nil, err
	}

	span.SetAttributes(attribute.Int("rows", len(rows)))
	return rows, nil
}

// findTable prefers a wikitable whose header mentions "Blueprint",
// falling back to the first wikitable on the page.
func findTable(doc *goquery.Document) *goquery.Selection {
	tables := doc.Find("table.wikitable")
	if tables.Length() == 0 {
		return nil
	}

	var found *goquery.Selection
	tables.EachWithBreak(func(_ int, table *goquery.Selection) bool {
		hasHeader := false
		table.Find("th").EachWithBreak(func(_ int, th *goquery.Selection) bool {
			if strings.Contains(htmlutil.CellText(th), "Blueprint") {
				hasHeader = true
				return false
			}
			return true
		})
		if hasHeader {
			found = table
			return false
		}
		return true
	})

	if found != nil {
		return found
	}
	return tables.First()
}

func ParseTable(page []byte, base *url.URL) ([]Row, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return nil, err
	}

	table := findTable(doc)
	if table == nil {
		return nil, TableNotFound
	}

	trs := table.Find("tr")
	if trs.Length() == 0 {
		return nil, fmt.Errorf("blueprints table has no rows")
	}

	var headers []string
	trs.First().Find("th").Each(func(_ int, th *goquery.Selection) {
		headers = append(headers, cleanKey(htmlutil.CellText(th)))
	})
	if len(headers) == 0 {
		return nil, fmt.Errorf("blueprints table has no header row")
	}

	var out []Row
	trs.Slice(1, trs.Length()).Each(func(_ int, tr *goquery.Selection) {
		tds := tr.Find("td")
		if tds.Length() == 0 {
			return
		}

		fields := make(map[string]string)
		for i, header := range headers {
			if i < tds.Length() {
				fields[header] = htmlutil.CellText(tds.Eq(i))
			} else {
				fields[header] = ""
			}
		}

		row := Row{
			Name:   fields[headers[0]],
			Fields: fields,
		}
		row.SourceUrl = htmlutil.FirstAnchorHref(tds.Eq(0), base)

		out = append(out, row)
	})

	return out, nil
}

// BuildCatalog turns scraped rows into catalog entries. The wiki names
// everything "<item> Blueprint"; the canonical name drops the suffix and
// the full row name survives as an alias so both spellings resolve.
func BuildCatalog(rows []Row) []catalog.Entry {
	var entries []catalog.Entry
	seen := make(map[string]struct{})

	for _, row := range rows {
		name := textutil.CollapseWhitespace(row.Name)
		if name == "" {
			continue
		}

		canonical := strings.TrimSuffix(name, " Blueprint")
		key := textutil.NormalizeName(canonical)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		entry := catalog.Entry{
			Name:      canonical,
			Workshop:  row.Fields["workshop"],
			SourceUrl: row.SourceUrl,
		}
		if canonical != name {
			entry.Aliases = append(entry.Aliases, name)
		}
		entries = append(entries, entry)
	}

	return entries
}

package htmlutil

import (
	"bytes"
	"net/url"
	"strings"
	"unicode"

	"arctraders-backend/lib/textutil"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

func GetText(node *html.Node) string {
	var buffer bytes.Buffer
	getTextRecursive(node, &buffer)
	return buffer.String()
}

func getTextRecursive(node *html.Node, buffer *bytes.Buffer) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(node.Data)
		return
	}
	child := node.FirstChild
	for child != nil {
		getTextRecursive(child, buffer)
		child = child.NextSibling
	}
}

func removeNonPrintable(s string) string {
	newStr := strings.Builder{}
	for _, c := range s {
		if unicode.IsPrint(c) {
			newStr.WriteRune(c)
		}
	}
	return newStr.String()
}

func getTextWithBreaks(node *html.Node, buffer *bytes.Buffer) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(node.Data)
		return
	}
	if node.Type == html.ElementNode && (node.Data == "br" || node.Data == "li") {
		buffer.WriteString(" ")
	}
	child := node.FirstChild
	for child != nil {
		getTextWithBreaks(child, buffer)
		child = child.NextSibling
	}
}

// CellText extracts the visible text of a table cell, with line breaks
// flattened into spaces.
func CellText(sel *goquery.Selection) string {
	parts := []string{}
	for _, n := range sel.Nodes {
		var buffer bytes.Buffer
		getTextWithBreaks(n, &buffer)
		text := strings.NewReplacer("\n", " ", "\t", " ", " ", " ").Replace(buffer.String())
		text = textutil.CollapseWhitespace(removeNonPrintable(text))
		if text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, " ")
}

// FirstAnchorHref returns the href of the first anchor inside the
// selection, resolved against base when relative. Empty string when the
// cell has no link.
func FirstAnchorHref(sel *goquery.Selection, base *url.URL) string {
	href, ok := sel.Find("a[href]").First().Attr("href")
	if !ok {
		return ""
	}
	link, err := url.Parse(href)
	if err != nil {
		return ""
	}
	if base != nil {
		link = base.ResolveReference(link)
	}
	return link.String()
}

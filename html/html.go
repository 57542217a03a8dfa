/*
Package html creates ropes from the textual content of HTML.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package html

import (
	"io"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/splayrope"
	"golang.org/x/net/html"
)

// tracer writes to trace with key 'splayrope'
func tracer() tracing.Trace {
	return tracing.Select("splayrope")
}

// InnerText creates a rope for the textual content of an HTML element and all
// its descendents. It resembles the text produced by
//
//	document.getElementById("myNode").innerText
//
// in JavaScript (except that html.InnerText cannot respect CSS styling suppressing
// the visibility of the node's descendents).
func InnerText(n *html.Node) (*splayrope.Rope[rune], error) {
	if n == nil {
		return nil, splayrope.ErrIllegalArguments
	}
	var sb strings.Builder
	collectText(n, &sb)
	return splayrope.FromString(sb.String()), nil
}

// TextFromHTML creates a rope from the textual content of an HTML fragment.
// It does no interpretation of layout and styling, but extracts the pure text.
func TextFromHTML(input io.Reader) (*splayrope.Rope[rune], error) {
	text, err := ExtractText(input)
	if err != nil {
		return nil, err
	}
	return splayrope.FromString(text), nil
}

// ExtractText returns the textual content of an HTML fragment as a string,
// for clients which want to decide themselves how to split it into symbols.
func ExtractText(input io.Reader) (string, error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for _, n := range nodes {
		collectText(n, &sb)
	}
	tracer().Debugf("html: extracted %d bytes of text from %d nodes", sb.Len(), len(nodes))
	return sb.String(), nil
}

func collectText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, sb)
	}
}

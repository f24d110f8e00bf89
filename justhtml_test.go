package html5

import (
	"testing"

	"github.com/tlindqvist/html5/dom"
)

func TestVersion(t *testing.T) {
	if Version == "" {
		t.Error("Version should not be empty")
	}
}

func TestParse_ReturnsDocument(t *testing.T) {
	doc, err := Parse("<html><body><p>Hello</p></body></html>")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if doc == nil || doc.DocumentElement() == nil || doc.DocumentElement().TagName != "html" {
		t.Fatalf("Parse returned invalid document: %#v", doc)
	}
}

func TestParseFragment_ReturnsNodes(t *testing.T) {
	nodes, err := ParseFragment("<td>Cell</td>", "tr")
	if err != nil {
		t.Fatalf("ParseFragment returned error: %v", err)
	}
	el, ok := nodes[0].(*dom.Element)
	if len(nodes) != 1 || !ok || el.TagName != "td" {
		t.Fatalf("ParseFragment nodes = %#v, want single <td>", nodes)
	}
}

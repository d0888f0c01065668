package records

import (
	"strings"
	"testing"
)

func testRequest(format string) *APIRequest {
	return &APIRequest{
		BaseURL: "http://localhost:8000",
		Format:  format,
		Formats: NewFormatRegistry(),
	}
}

func TestBuildURL(t *testing.T) {
	req := testRequest(MediaTypeJSON)

	url := req.BuildURL("ogc/records/conformance", map[string]string{"f": "application/json"})
	if url != "http://localhost:8000/ogc/records/conformance?f=application%2Fjson" {
		t.Fatalf("unexpected url %s", url)
	}

	url = req.BuildURL("wms/reflect", map[string]string{
		"LAYERS": "ne:countries",
		"FORMAT": "application/openlayers",
	})
	if url != "http://localhost:8000/wms/reflect?FORMAT=application%2Fopenlayers&LAYERS=ne%3Acountries" {
		t.Fatalf("expected query parameters in sorted key order, got %s", url)
	}
}

func TestAddSelfLinks(t *testing.T) {
	req := testRequest(MediaTypeJSON)
	doc := &AbstractDocument{}

	AddSelfLinks(doc, req, KindDocument, "ogc/records/conformance")

	links := doc.Links()
	if len(links) != 2 {
		t.Fatalf("expected 2 links got %d", len(links))
	}

	self := links[0]
	if self.Rel != RelSelf || self.Type != MediaTypeJSON {
		t.Fatalf("expected the first link to be the json self link, got %+v", self)
	}
	if self.Title != "This document" {
		t.Fatalf("unexpected self title %q", self.Title)
	}

	alternate := links[1]
	if alternate.Rel != RelAlternate || alternate.Type != MediaTypeYAML {
		t.Fatalf("expected a yaml alternate link, got %+v", alternate)
	}
	if alternate.Title != "This document as "+MediaTypeYAML {
		t.Fatalf("unexpected alternate title %q", alternate.Title)
	}

	// self and alternate share the path, differing only by format
	selfPath := strings.Split(self.Href, "?")[0]
	altPath := strings.Split(alternate.Href, "?")[0]
	if selfPath != altPath {
		t.Fatalf("self and alternate point at different paths: %s vs %s", selfPath, altPath)
	}
}

func TestAddSelfLinksNegotiatedYaml(t *testing.T) {
	req := testRequest(MediaTypeYAML)
	doc := &AbstractDocument{}

	AddSelfLinks(doc, req, KindDocument, "ogc/records/")

	var selfTypes, alternateTypes []string
	for _, l := range doc.Links() {
		switch l.Rel {
		case RelSelf:
			selfTypes = append(selfTypes, l.Type)
		case RelAlternate:
			alternateTypes = append(alternateTypes, l.Type)
		}
	}

	if len(selfTypes) != 1 || selfTypes[0] != MediaTypeYAML {
		t.Fatalf("expected a single yaml self link, got %v", selfTypes)
	}
	if len(alternateTypes) != 1 || alternateTypes[0] != MediaTypeJSON {
		t.Fatalf("expected the alternates to be producible minus self, got %v", alternateTypes)
	}
}

func TestLandingPageLinks(t *testing.T) {
	req := testRequest(MediaTypeJSON)
	lp := NewLandingPage(req, "", "", "ogc/records")

	if lp.Title != DefaultTitle {
		t.Fatalf("expected default title, got %q", lp.Title)
	}

	rels := map[string]int{}
	for _, l := range lp.Links() {
		rels[l.Rel]++
	}

	if rels[RelSelf] != 1 {
		t.Fatalf("expected exactly one self link, got %d", rels[RelSelf])
	}
	if rels[RelAlternate] != 1 {
		t.Fatalf("expected one alternate link, got %d", rels[RelAlternate])
	}
	if rels[RelServiceDesc] != 2 {
		t.Fatalf("expected two service-desc links, got %d", rels[RelServiceDesc])
	}
	if rels[RelConformance] != 2 {
		t.Fatalf("expected two conformance links, got %d", rels[RelConformance])
	}
	if rels[RelData] != 2 {
		t.Fatalf("expected two collections links, got %d", rels[RelData])
	}
}

func TestLandingPageConfiguredTitle(t *testing.T) {
	req := testRequest(MediaTypeJSON)
	lp := NewLandingPage(req, "My catalog", "All the records", "ogc/records")

	if lp.Title != "My catalog" || lp.Description != "All the records" {
		t.Fatalf("expected configured metadata, got %q / %q", lp.Title, lp.Description)
	}
}

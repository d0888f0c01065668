package records

// Document is implemented by every top-level API response. Links keep
// their insertion order; the self link conventionally comes first.
type Document interface {
	Links() []Link
	AddLink(Link)
}

// AbstractDocument carries the fields shared by the simpler top-level
// documents. Description stays on the wire even when empty.
type AbstractDocument struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description"`
	LinkList    []Link `json:"links"`
}

func (d *AbstractDocument) Links() []Link {
	return d.LinkList
}

func (d *AbstractDocument) AddLink(l Link) {
	d.LinkList = append(d.LinkList, l)
}

// AddSelfLinks appends one link per media type producible for the given
// kind: relation "self" for the type matching the negotiated format of the
// current request, "alternate" for the others. Every top-level document
// uses this for its own description path.
func AddSelfLinks(doc Document, req *APIRequest, kind DocumentKind, path string) {
	for _, mt := range req.Formats.Producible(kind) {
		rel := RelAlternate
		title := "This document as " + mt
		if mt == req.Format {
			rel = RelSelf
			title = "This document"
		}
		href := req.BuildURL(path, map[string]string{"f": mt})
		doc.AddLink(NewLink(href, rel, mt, title, ""))
	}
}

// AddLinksFor appends one link with the given relation per media type
// producible for the given kind, titled titleBase plus the media type.
func AddLinksFor(doc Document, req *APIRequest, kind DocumentKind, path, titleBase, rel string) {
	for _, mt := range req.Formats.Producible(kind) {
		href := req.BuildURL(path, map[string]string{"f": mt})
		doc.AddLink(NewLink(href, rel, mt, titleBase+mt, ""))
	}
}

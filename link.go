package records

// Link relation types used by the API documents.
const (
	RelSelf        = "self"
	RelAlternate   = "alternate"
	RelServiceDesc = "service-desc"
	RelServiceDoc  = "service-doc"
	RelConformance = "conformance"
	RelData        = "data"
	RelItems       = "items"
)

// Link is a hypermedia link attached to a document. The href is fully
// resolved by the time the link is built; links are never mutated after
// attachment.
type Link struct {
	Href  string `json:"href"`
	Rel   string `json:"rel"`
	Type  string `json:"type,omitempty"`
	Title string `json:"title,omitempty"`

	// Classifier distinguishes the link purpose (e.g. "items") without
	// showing up on the wire.
	Classifier string `json:"-"`
}

func NewLink(href, rel, mediaType, title, classifier string) Link {
	return Link{
		Href:       href,
		Rel:        rel,
		Type:       mediaType,
		Title:      title,
		Classifier: classifier,
	}
}

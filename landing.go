package records

// DefaultTitle is used when the service configuration does not set one.
const DefaultTitle = "Records 1.0 server"

// LandingPage is the service entry document, linking to the API
// description, the conformance declaration and the collections listing.
type LandingPage struct {
	AbstractDocument
}

func NewLandingPage(req *APIRequest, title, description, base string) *LandingPage {
	if title == "" {
		title = DefaultTitle
	}

	lp := &LandingPage{AbstractDocument{Title: title, Description: description}}
	AddSelfLinks(lp, req, KindDocument, base+"/")
	AddLinksFor(lp, req, KindAPI, base+"/api",
		"API definition for this endpoint as ", RelServiceDesc)
	AddLinksFor(lp, req, KindDocument, base+"/conformance",
		"Conformance declaration as ", RelConformance)
	AddLinksFor(lp, req, KindDocument, base+"/collections",
		"Collections Metadata as ", RelData)
	return lp
}

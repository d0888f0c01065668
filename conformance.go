package records

// Conformance class identifiers declared by this service. The order is
// part of the contract.
const (
	ConfCore        = "http://www.opengis.net/spec/ogcapi-common-1/1.0/conf/core"
	ConfCollections = "http://www.opengis.net/spec/ogcapi-common-2/1.0/conf/collections"
	ConfRecordsCore = "http://www.opengis.net/spec/ogcapi-records-1/1.0/conf/core"
)

// ConformanceDocument lists the conformance classes the service implements.
type ConformanceDocument struct {
	LinkList   []Link   `json:"links"`
	ConformsTo []string `json:"conformsTo"`
}

func NewConformanceDocument(req *APIRequest, base string) *ConformanceDocument {
	d := &ConformanceDocument{
		ConformsTo: []string{ConfCore, ConfCollections, ConfRecordsCore},
	}
	AddSelfLinks(d, req, KindDocument, base+"/conformance")
	return d
}

func (d *ConformanceDocument) Links() []Link {
	return d.LinkList
}

func (d *ConformanceDocument) AddLink(l Link) {
	d.LinkList = append(d.LinkList, l)
}

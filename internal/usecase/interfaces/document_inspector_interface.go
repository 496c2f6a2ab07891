package interfaces

// IDocumentInspector validates uploaded PDFs and reports their page count.
type IDocumentInspector interface {
	PageCount(data []byte) (int, error)
}

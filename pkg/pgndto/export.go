package pgndto

// ExportSummary describes a written PGN file.
type ExportSummary struct {
	Path   string
	Moves  int
	Result string
}

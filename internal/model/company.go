package model

// Companies is the fixed catalog of AI infrastructure operators (data centers & cloud providers).
// Order matters: records are emitted in this order within each date.
var Companies = []string{
	"Google Cloud Texas",
	"Microsoft Azure Houston",
	"Meta AI Infrastructure",
	"Tesla Gigafactory Texas",
	"NVIDIA DGX Centers",
	"Amazon AWS Dallas",
	"Stream Data Centers Houston",
	"Serverfarm Houston",
	"Apple Manufacturing Houston",
	"Oracle Cloud Austin",
}

// CompanyCatalog returns a copy of Companies so callers can't reorder the catalog.
func CompanyCatalog() []string {
	out := make([]string, len(Companies))
	copy(out, Companies)
	return out
}

package persistence

import "strings"

const (
	// InstanceSuffix names the input document of a circuit.
	InstanceSuffix = "_jabalize.json"
	// AnalysisSuffix names the output document of a circuit.
	AnalysisSuffix = "_analyzed.json"
)

// InstanceName returns the blob name of circuit's input document.
func InstanceName(circuit string, c Compression) string {
	return circuit + InstanceSuffix + c.Extension()
}

// AnalysisName returns the blob name of circuit's analysis document.
func AnalysisName(circuit string, c Compression) string {
	return circuit + AnalysisSuffix + c.Extension()
}

// ParseName splits a blob name into circuit and compression. ok is false for
// names that are neither instances nor analyses.
func ParseName(name string) (circuit string, analysis bool, c Compression, ok bool) {
	base := name
	for _, cand := range []Compression{CompressionLZ4, CompressionZSTD} {
		if ext := cand.Extension(); strings.HasSuffix(base, ext) {
			base, c = strings.TrimSuffix(base, ext), cand
			break
		}
	}
	switch {
	case strings.HasSuffix(base, AnalysisSuffix):
		return strings.TrimSuffix(base, AnalysisSuffix), true, c, true
	case strings.HasSuffix(base, InstanceSuffix):
		return strings.TrimSuffix(base, InstanceSuffix), false, c, true
	default:
		return "", false, CompressionNone, false
	}
}

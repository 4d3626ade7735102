package parser

import (
	"regexp"
	"strings"
)

// NEKey is the feature key that carries the named-entity label
const NEKey = "ne"

// FeatureSet maps feature keys to their values for one morph annotation
type FeatureSet map[string]string

// NE returns the named-entity label and whether one is present
func (f FeatureSet) NE() (string, bool) {
	v, ok := f[NEKey]
	return v, ok
}

var spaceAfterEquals = regexp.MustCompile(`=\s+`)

// FeatureParser turns a morph annotation such as `<fs ne='PERSON' af='x'>`
// into a FeatureSet.
type FeatureParser struct {
	// AppendOrphans glues tokens without '=' onto a directly preceding ne
	// value whose opening quote was split off, as in ne='NE PERSON'. Any
	// other token without '=' is dropped.
	AppendOrphans bool

	// OnOrphan, when set, is called for every token without '=' that was
	// not appended.
	OnOrphan func(token string)
}

// ParseFeatures parses an annotation with orphan appending enabled
func ParseFeatures(annotation string) FeatureSet {
	p := FeatureParser{AppendOrphans: true}
	return p.Parse(annotation)
}

// Parse strips the enclosing markers, splits the body into key=value
// tokens and builds the set. Malformed input yields an empty set.
func (p FeatureParser) Parse(annotation string) FeatureSet {
	features := make(FeatureSet)

	body := stripMarkers(annotation)
	body = spaceAfterEquals.ReplaceAllString(body, "=")

	// raw ne value while its opening quote is still unclosed
	var openNE string
	for _, token := range strings.Fields(body) {
		key, val, found := strings.Cut(token, "=")
		if !found {
			if openNE != "" && p.AppendOrphans {
				openNE += token
				features[NEKey] = trimQuotes(openNE)
				if !unclosedQuote(openNE) {
					openNE = ""
				}
				continue
			}
			openNE = ""
			if p.OnOrphan != nil {
				p.OnOrphan(token)
			}
			continue
		}

		openNE = ""
		key = strings.TrimSpace(key)
		if key == "" {
			if p.OnOrphan != nil {
				p.OnOrphan(token)
			}
			continue
		}
		val = strings.TrimSpace(val)
		features[key] = trimQuotes(val)
		if key == NEKey && unclosedQuote(val) {
			openNE = val
		}
	}

	return features
}

// stripMarkers removes the `<fs ` prefix and closing `>`, or a generic
// one-character bracket pair.
func stripMarkers(annotation string) string {
	if strings.HasPrefix(annotation, "<fs") {
		if len(annotation) < 5 {
			return ""
		}
		return annotation[4 : len(annotation)-1]
	}
	if len(annotation) < 2 {
		return ""
	}
	return annotation[1 : len(annotation)-1]
}

func trimQuotes(val string) string {
	if val == "" || val[0] != '\'' || val[len(val)-1] != '\'' {
		return val
	}
	if len(val) == 1 {
		return ""
	}
	return val[1 : len(val)-1]
}

// unclosedQuote reports whether val opens a single quote it never closes
func unclosedQuote(val string) bool {
	return len(val) > 1 && val[0] == '\'' && val[len(val)-1] != '\''
}

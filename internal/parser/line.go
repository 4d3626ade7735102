package parser

import (
	"regexp"
	"strings"
)

// LineKind classifies one trimmed line of a sentence body
type LineKind int

const (
	LineUnknown              LineKind = iota
	LineChunkClose                    // "))"
	LineRoot                          // "0\t((\tSSF" pseudo-line
	LineLeafPlain                     // top-level token, address "3"
	LineLeafNested                    // token inside a chunk, address "3.1"
	LineChunkOpenWithFeature          // four fields, the last one a morph annotation
)

var lineKindNames = [...]string{
	LineUnknown:              "unknown",
	LineChunkClose:           "chunk-close",
	LineRoot:                 "root",
	LineLeafPlain:            "leaf-plain",
	LineLeafNested:           "leaf-nested",
	LineChunkOpenWithFeature: "chunk-open",
}

func (k LineKind) String() string {
	if int(k) >= 0 && int(k) < len(lineKindNames) {
		return lineKindNames[k]
	}
	return "unknown"
}

const (
	chunkClose = "))"
	rootPrefix = "0\t((\tSSF"
)

var (
	plainAddrRegex  = regexp.MustCompile(`^\d+$`)
	nestedAddrRegex = regexp.MustCompile(`^\d+\.\d+$`)
)

// Line is a classified sentence line
type Line struct {
	Kind   LineKind
	Fields []string
	Text   string
}

// Token returns the token text of a leaf line
func (l Line) Token() string {
	if len(l.Fields) < 2 {
		return ""
	}
	return l.Fields[1]
}

// Feature returns the morph annotation of a chunk-open line
func (l Line) Feature() string {
	if len(l.Fields) < 4 {
		return ""
	}
	return l.Fields[3]
}

// ClassifyLine splits a trimmed, non-empty line on tabs and decides its kind.
// Four-field lines are chunk-open lines whatever their address looks like.
func ClassifyLine(line string) Line {
	fields := strings.Split(line, "\t")
	l := Line{Fields: fields, Text: line}

	switch {
	case line == chunkClose:
		l.Kind = LineChunkClose
	case strings.HasPrefix(line, rootPrefix):
		l.Kind = LineRoot
	case len(fields) == 2 || len(fields) == 3:
		switch addr := fields[0]; {
		case plainAddrRegex.MatchString(addr):
			l.Kind = LineLeafPlain
		case nestedAddrRegex.MatchString(addr):
			l.Kind = LineLeafNested
		}
	case len(fields) == 4:
		l.Kind = LineChunkOpenWithFeature
	}

	return l
}

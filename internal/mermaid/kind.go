package mermaid

import (
	"fmt"
	"strings"
)

// Kind identifies one of the supported Mermaid diagram grammars.
// The value is the canonical Mermaid declaration keyword for the family.
type Kind string

const (
	KindSequence  Kind = "sequenceDiagram"
	KindFlowchart Kind = "flowchart"
	KindState     Kind = "stateDiagram-v2"
	KindClass     Kind = "classDiagram"
	KindER        Kind = "erDiagram"
	KindGantt     Kind = "gantt"
)

// Kinds returns all supported kinds in a stable order.
func Kinds() []Kind {
	return []Kind{
		KindSequence,
		KindFlowchart,
		KindState,
		KindClass,
		KindER,
		KindGantt,
	}
}

// aliases maps every accepted external spelling to its internal kind.
// "component" diagrams are drawn with flowchart syntax.
var aliases = map[string]Kind{
	"sequential":      KindSequence,
	"sequence":        KindSequence,
	"sequencediagram": KindSequence,
	"component":       KindFlowchart,
	"flowchart":       KindFlowchart,
	"graph":           KindFlowchart,
	"state":           KindState,
	"statediagram-v2": KindState,
	"class":           KindClass,
	"classdiagram":    KindClass,
	"er":              KindER,
	"erdiagram":       KindER,
	"gantt":           KindGantt,
	"timeline":        KindGantt,
}

// AliasesFor returns every accepted external spelling for a kind.
func AliasesFor(kind Kind) []string {
	var names []string
	for name, k := range aliases {
		if k == kind {
			names = append(names, name)
		}
	}
	return names
}

// ParseKind normalizes an external diagram type name to its Kind.
// Matching is case-insensitive over the alias table.
func ParseKind(name string) (Kind, error) {
	if k, ok := aliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return k, nil
	}
	return "", fmt.Errorf("unsupported diagram type: %q (supported: sequential, component, flowchart, state, class, er, gantt)", name)
}

// MustKind is ParseKind for names already known to be valid, e.g. kind
// values read back from the store. Panics on unknown names: an unknown
// kind past the boundary is a defect, not a runtime condition.
func MustKind(name string) Kind {
	k, err := ParseKind(name)
	if err != nil {
		panic(err)
	}
	return k
}

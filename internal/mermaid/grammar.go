package mermaid

import "regexp"

// Statement is one accepted syntactic shape for a body line.
// Shapes are deliberately permissive: they catch gross malformation
// (wrong keyword, missing operator) without parsing the full language.
type Statement struct {
	Name string
	re   *regexp.Regexp
}

// Matches reports whether the line has this statement's shape.
func (s Statement) Matches(line string) bool {
	return s.re.MatchString(line)
}

// Grammar holds the structural rules for one diagram kind: a start-line
// matcher, the set of statement shapes, and optional block open/close
// markers (flowchart subgraphs). Grammars are pure data; adding a kind
// means adding a registry entry, not new control flow.
type Grammar struct {
	Start      *regexp.Regexp
	Statements []Statement

	// BlockOpen/BlockClose, when non-nil, mark lines that open and close
	// a nested block. Such lines are always structurally accepted; the
	// validator only tracks their depth.
	BlockOpen  *regexp.Regexp
	BlockClose *regexp.Regexp
}

func stmt(name, pattern string) Statement {
	return Statement{Name: name, re: regexp.MustCompile(pattern)}
}

// registry maps every kind to its grammar. Patterns follow the shapes
// Mermaid accepts for each family, anchored at the line start.
var registry = map[Kind]Grammar{
	KindSequence: {
		Start: regexp.MustCompile(`^sequenceDiagram\s*`),
		Statements: []Statement{
			stmt("participant", `^participant\s+\w+(\s+as\s+["']?[^"']*["']?)?\s*`),
			stmt("actor", `^actor\s+\w+(\s+as\s+["']?[^"']*["']?)?\s*`),
			stmt("arrow", `^\w+\s*-{1,2}[>x)]{1,2}\s*\w+\s*:\s*.+`),
			stmt("note", `^Note\s+(over|left of|right of)\s+\w+(\s*,\s*\w+)?\s*:\s*.+`),
			stmt("activate", `^activate\s+\w+`),
			stmt("deactivate", `^deactivate\s+\w+`),
			stmt("loop", `^(loop|alt|else|opt|par|and|end)\b.*`),
		},
	},
	KindFlowchart: {
		Start:      regexp.MustCompile(`^(flowchart|graph)\s+(TD|TB|BT|RL|LR)\s*`),
		BlockOpen:  regexp.MustCompile(`^subgraph\s+\S.*`),
		BlockClose: regexp.MustCompile(`^end\s*$`),
		Statements: []Statement{
			stmt("node", `^\w+(\[[^\]]+\]|\([^\)]+\)|\{[^\}]+\}|>[^\]]+\])?\s*$`),
			stmt("edge", `\w+.*\s*(-->|---|-\.->|-\.-|==>|--[>o x])\s*.*\w+`),
			stmt("labeled-edge", `\w+\s*--\s*[^-]+\s*--?>\s*\w+|\w+\s*-->\s*\|[^\|]+\|\s*\w+`),
			stmt("chain", `\w+.*(-->|->).*`),
			stmt("shaped", `\w+\s*(\[|\()`),
		},
	},
	KindState: {
		Start: regexp.MustCompile(`^stateDiagram-v2\s*`),
		Statements: []Statement{
			stmt("transition", `\w+\s*-->\s*\w+(\s*:\s*.+)?`),
			stmt("initial-final", `\[\*\]\s*-->\s*\w+|\w+\s*-->\s*\[\*\]`),
			stmt("description", `^\w+\s*:\s*.+`),
			stmt("state-decl", `^state\s+\w+`),
			stmt("note", `^note\s+.+`),
		},
	},
	KindClass: {
		Start: regexp.MustCompile(`^classDiagram\s*`),
		Statements: []Statement{
			stmt("class", `^class\s+\w+(\s*\{.*)?`),
			stmt("relationship", `\w+\s*(<\|--|--\|>|--\*|\*--|o--|--o|<\.\.|\.\.>|<\|\.\.|\.\.\|>|--|\.\.)\s*\w+`),
			stmt("member", `^[\+\-\#\~]?\w+.*`),
			stmt("brace-close", `^\}\s*$`),
		},
	},
	KindER: {
		Start: regexp.MustCompile(`^erDiagram\s*`),
		Statements: []Statement{
			stmt("relationship", `\w+\s*[\|\}o][\|o]?--[\|o][\|\{o]?\s*\w+`),
			stmt("entity", `^\w+\s*\{.*`),
			stmt("attribute", `^\w+\s+\w+`),
			stmt("brace-close", `^\}\s*$`),
		},
	},
	KindGantt: {
		Start: regexp.MustCompile(`^gantt\s*`),
		Statements: []Statement{
			stmt("title", `^title\s+.+`),
			stmt("section", `^section\s+.+`),
			stmt("directive", `^(dateFormat|axisFormat|excludes|todayMarker|tickInterval)\s+.+`),
			stmt("task", `.+\s*:\s*.+`),
		},
	},
}

// GrammarFor returns the grammar for a kind. Total over the closed Kind
// enumeration: every kind produced by ParseKind has an entry.
func GrammarFor(kind Kind) Grammar {
	g, ok := registry[kind]
	if !ok {
		// Unreachable for kinds produced by ParseKind.
		panic("mermaid: no grammar registered for kind " + string(kind))
	}
	return g
}

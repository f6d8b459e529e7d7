package mermaid

// Stub returns a small, syntactically valid placeholder diagram for a
// kind. Used when no LLM provider is configured so the rest of the
// pipeline (validation, persistence, TUI) still works offline.
func Stub(kind Kind) string {
	switch kind {
	case KindSequence:
		return "sequenceDiagram\n" +
			"actor U as User\n" +
			"participant CLI as diagen\n" +
			"participant M as Model\n" +
			"U->>CLI: prompt + diagram kinds\n" +
			"CLI->>M: generate mermaid\n" +
			"M-->>CLI: mermaid source\n" +
			"CLI-->>U: validated diagram"
	case KindFlowchart:
		return "flowchart TD\n" +
			"A[Prompt]-->B(Generate)\n" +
			"B-->C{Valid?}\n" +
			"C-->D[Done]\n" +
			"C-->E[Repair]\n" +
			"E-->C"
	case KindState:
		return "stateDiagram-v2\n" +
			"[*] --> Idle\n" +
			"Idle --> Generating: receive request\n" +
			"Generating --> Checking: draft ready\n" +
			"Checking --> Correcting: invalid\n" +
			"Correcting --> Checking: repaired\n" +
			"Checking --> [*]"
	case KindClass:
		return "classDiagram\n" +
			"class Request{\n" +
			"+string prompt\n" +
			"+string[] kinds\n" +
			"}\n" +
			"class Diagram\n" +
			"Request --o Diagram"
	case KindER:
		return "erDiagram\n" +
			"SESSION ||--o{ DIAGRAM : contains\n" +
			"SESSION {\n" +
			"string prompt\n" +
			"}\n" +
			"DIAGRAM {\n" +
			"string kind\n" +
			"}"
	case KindGantt:
		return "gantt\n" +
			"title Diagram Generation\n" +
			"dateFormat YYYY-MM-DD\n" +
			"section Pipeline\n" +
			"Draft :done, d1, 2025-09-20, 1d\n" +
			"Validate :active, d2, 2025-09-21, 1d"
	default:
		return "flowchart LR\nStart-->Unknown[Unsupported diagram kind]"
	}
}

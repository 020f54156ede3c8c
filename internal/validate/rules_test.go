package validate

import (
	"testing"

	"github.com/eykd/cardmark-go/internal/domain"
	"github.com/eykd/cardmark-go/internal/schema"
)

func rulesSchema(keywords ...string) *schema.Schema {
	return &schema.Schema{Rules: schema.Rules{
		RulesFile: schema.CategoryRules{RequiredKeywords: keywords},
	}}
}

func TestValidateRulesFile_KeywordsAnywhereInDocument(t *testing.T) {
	// Keywords match against the flattened text, so nesting and casing do
	// not matter.
	svc, _ := newTestService(map[string]string{
		"RULES/core.json": `{"sections":[{"title":"The Mulligan Phase"},{"body":"TURN order and Victory."}]}`,
	}, rulesSchema("mulligan", "turn", "victory"))

	result := run(t, svc)
	if len(result.Findings) != 0 {
		t.Errorf("findings = %v, want none", findingMessages(result))
	}
}

func TestValidateRulesFile_MissingKeywords(t *testing.T) {
	svc, _ := newTestService(map[string]string{
		"RULES/core.json": `{"body":"Shuffle and draw."}`,
	}, rulesSchema("mulligan", "victory"))

	result := run(t, svc)

	if got := countFindings(result, domain.FindingMissingKeywords); got != 1 {
		t.Fatalf("missing-keyword findings = %d, want 1; messages: %v", got, findingMessages(result))
	}
	if !hasMessage(result, "Missing indicative keywords in rules JSON: [mulligan victory]") {
		t.Errorf("unexpected message; got %v", findingMessages(result))
	}
	if !hasFinding(result, domain.FindingMissingKeywords, domain.SeverityWarning) {
		t.Error("missing-keyword severity != WARN")
	}
}

func TestValidateRulesFile_OpaqueDocumentPasses(t *testing.T) {
	svc, reader := newTestService(map[string]string{
		"RULES/rulebook.pdf": "%PDF-1.7 not json at all",
	}, rulesSchema("mulligan"))

	result := run(t, svc)

	if len(result.Findings) != 0 {
		t.Errorf("findings = %v, want none for opaque document", findingMessages(result))
	}
	if reader.reads["RULES/rulebook.pdf"] != 0 {
		t.Error("opaque document was read")
	}
}

func TestValidateRulesFile_NoKeywordsConfigured(t *testing.T) {
	svc, _ := newTestService(map[string]string{
		"RULES/core.json": `{"body":"anything"}`,
	}, rulesSchema())

	result := run(t, svc)
	if len(result.Findings) != 0 {
		t.Errorf("findings = %v, want none", findingMessages(result))
	}
}

func TestValidateRulesFile_UnparseableJSON(t *testing.T) {
	svc, _ := newTestService(map[string]string{
		"RULES/core.json": `not json`,
	}, rulesSchema("mulligan"))

	result := run(t, svc)
	if !hasFinding(result, domain.FindingUnparseable, domain.SeverityError) {
		t.Errorf("want unparseable error; got %v", findingMessages(result))
	}
}

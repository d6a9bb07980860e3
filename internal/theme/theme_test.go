package theme

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jmylchreest/evoke/internal/colour"
)

func TestDefaultSchemaIsValid(t *testing.T) {
	s := DefaultSchema()
	if err := s.Validate(); err != nil {
		t.Fatalf("DefaultSchema().Validate() = %v", err)
	}

	if got := s.fieldCount(); got != 111 {
		t.Errorf("workbench fields = %d, want 111", got)
	}
	if got := len(s.Tokens); got != 15 {
		t.Errorf("token rules = %d, want 15", got)
	}
	if got := len(s.Semantic); got != 28 {
		t.Errorf("semantic selectors = %d, want 28", got)
	}
}

func TestSchemaValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		schema Schema
	}{
		{
			name: "duplicate field",
			schema: Schema{Workbench: []Binding{
				{Role: colour.RoleRed, Fields: []string{"a"}},
				{Role: colour.RoleCyan, Fields: []string{"a"}},
			}},
		},
		{
			name:   "unknown workbench role",
			schema: Schema{Workbench: []Binding{{Role: "purple", Fields: []string{"a"}}}},
		},
		{
			name:   "empty token rule",
			schema: Schema{Tokens: []TokenRule{{Scopes: []string{"comment"}}}},
		},
		{
			name:   "token rule without scopes",
			schema: Schema{Tokens: []TokenRule{{Role: colour.RoleRed}}},
		},
		{
			name:   "empty semantic binding",
			schema: Schema{Semantic: []SemanticBinding{{Selector: "type"}}},
		},
		{
			name: "duplicate semantic selector",
			schema: Schema{Semantic: []SemanticBinding{
				{Selector: "type", Role: colour.RoleRed},
				{Selector: "type", Role: colour.RoleCyan},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.schema.Validate(); !errors.Is(err, ErrInvalidSchema) {
				t.Errorf("Validate() = %v, want ErrInvalidSchema", err)
			}
		})
	}
}

func TestSchemaRoles(t *testing.T) {
	roles := DefaultSchema().Roles()

	want := []colour.Role{colour.RoleRed, colour.RoleCyan, colour.RoleYellow}
	if diff := cmp.Diff(want, roles[Original]); diff != "" {
		t.Errorf("original roles mismatch (-want +got):\n%s", diff)
	}

	for _, r := range roles[Derived] {
		if !r.IsKnown() {
			t.Errorf("derived role %q is not a palette role", r)
		}
	}
}

// testPalettes returns a derived palette with every role set to one colour and
// the untouched default palette.
func testPalettes() (colour.Palette, colour.Palette) {
	original := colour.DefaultPalette()
	derived := make(colour.Palette, len(original))
	for r := range original {
		derived[r] = "#11223344"
	}
	return derived, original
}

func TestAssembleUsesBothPalettes(t *testing.T) {
	derived, original := testPalettes()

	doc, err := Assemble("Evoke OLED", derived, original)
	if err != nil {
		t.Fatalf("Assemble error: %v", err)
	}

	if doc.Name != "Evoke OLED" {
		t.Errorf("Name = %q", doc.Name)
	}
	if !doc.SemanticHighlighting {
		t.Error("SemanticHighlighting should be enabled")
	}
	if len(doc.Colors) != 111 {
		t.Errorf("Colors has %d fields, want 111", len(doc.Colors))
	}

	tests := []struct {
		field string
		want  string
	}{
		{field: "focusBorder", want: derived[colour.RoleGreen]},
		{field: "editor.background", want: derived[colour.RoleBackground]},
		{field: "editorError.foreground", want: original[colour.RoleRed]},
		{field: "notificationsInfoIcon.foreground", want: original[colour.RoleCyan]},
		{field: "editorOverviewRuler.warningForeground", want: original[colour.RoleYellow]},
		{field: "editor.selectionBackground", want: derived[colour.RoleSelection]},
	}
	for _, tt := range tests {
		got, ok := doc.Colors.Get(tt.field)
		if !ok {
			t.Errorf("field %s missing", tt.field)
			continue
		}
		if got != tt.want {
			t.Errorf("%s = %s, want %s", tt.field, got, tt.want)
		}
	}

	fn, ok := doc.SemanticTokenColors.Get("function")
	if !ok {
		t.Fatal("semantic selector function missing")
	}
	if diff := cmp.Diff(SemanticToken{Selector: "function", Foreground: "#11223344", Bold: true}, fn); diff != "" {
		t.Errorf("function token mismatch (-want +got):\n%s", diff)
	}

	last := doc.TokenColors[len(doc.TokenColors)-1]
	if diff := cmp.Diff(TokenColor{Scope: []string{"storage.modifier"}, Settings: TokenSettings{FontStyle: "bold"}}, last); diff != "" {
		t.Errorf("storage.modifier rule mismatch (-want +got):\n%s", diff)
	}
}

func TestAssembleMissingRole(t *testing.T) {
	derived, original := testPalettes()
	delete(original, colour.RoleYellow)

	_, err := Assemble("x", derived, original)
	if !errors.Is(err, ErrMissingRole) {
		t.Fatalf("Assemble error = %v, want ErrMissingRole", err)
	}
	if !strings.Contains(err.Error(), "original") {
		t.Errorf("error %q does not name the palette", err)
	}

	derived, original = testPalettes()
	delete(derived, colour.RoleCyanLight)
	if _, err := Assemble("x", derived, original); !errors.Is(err, ErrMissingRole) {
		t.Errorf("Assemble error = %v, want ErrMissingRole", err)
	}
}

func TestAssembleDoesNotAliasSchema(t *testing.T) {
	derived, original := testPalettes()
	doc, err := Assemble("x", derived, original)
	if err != nil {
		t.Fatalf("Assemble error: %v", err)
	}

	doc.TokenColors[0].Scope[0] = "changed"
	if DefaultSchema().Tokens[0].Scopes[0] != "punctuation" {
		t.Error("document scopes share storage with the schema")
	}
}

func TestMarshalIndent(t *testing.T) {
	derived, original := testPalettes()
	doc, err := Assemble("Evoke OLED", derived, original)
	if err != nil {
		t.Fatalf("Assemble error: %v", err)
	}

	data, err := doc.MarshalIndent()
	if err != nil {
		t.Fatalf("MarshalIndent error: %v", err)
	}

	if !bytes.HasPrefix(data, []byte("{\n  \"name\": \"Evoke OLED\",\n  \"colors\": {\n    \"focusBorder\"")) {
		t.Errorf("unexpected document prefix:\n%s", data[:min(len(data), 120)])
	}
	if !bytes.HasSuffix(data, []byte("}\n")) {
		t.Error("document should end with a newline")
	}

	var decoded struct {
		Colors              map[string]string          `json:"colors"`
		TokenColors         []map[string]any           `json:"tokenColors"`
		SemanticTokenColors map[string]json.RawMessage `json:"semanticTokenColors"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("document is not valid JSON: %v", err)
	}

	if len(decoded.Colors) != 111 {
		t.Errorf("decoded %d colours, want 111", len(decoded.Colors))
	}
	if len(decoded.TokenColors) != 15 {
		t.Errorf("decoded %d token rules, want 15", len(decoded.TokenColors))
	}

	semantic := map[string]string{
		"comment":                 `"#11223344"`,
		"function":                `{"foreground":"#11223344","bold":true}`,
		"variable.defaultLibrary": `{"underline":true}`,
		"*.readonly":              `{"bold":true}`,
	}
	for selector, want := range semantic {
		var compact bytes.Buffer
		if err := json.Compact(&compact, decoded.SemanticTokenColors[selector]); err != nil {
			t.Fatalf("compact %s: %v", selector, err)
		}
		if compact.String() != want {
			t.Errorf("semanticTokenColors[%s] = %s, want %s", selector, compact.String(), want)
		}
	}
}

func TestSemanticTokensOrder(t *testing.T) {
	tokens := SemanticTokens{
		{Selector: "z", Foreground: "#000000ff"},
		{Selector: "a", Foreground: "#ffffffff"},
	}

	data, err := json.Marshal(tokens)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if got, want := string(data), `{"z":"#000000ff","a":"#ffffffff"}`; got != want {
		t.Errorf("Marshal = %s, want %s", got, want)
	}
}

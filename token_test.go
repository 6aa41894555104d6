package wikitext

import "testing"

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{Text, "Text"},
		{TemplateOpen, "TemplateOpen"},
		{WikilinkSeparator, "WikilinkSeparator"},
		{HTMLEntityNumeric, "HTMLEntityNumeric"},
		{TagCloseSelfclose, "TagCloseSelfclose"},
		{Kind(9999), "Kind(9999)"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestTextToken(t *testing.T) {
	tok := textToken("hello", 3, 8)
	if tok.Kind != Text || tok.Text != "hello" || tok.start != 3 || tok.end != 8 {
		t.Errorf("textToken() = %+v", tok)
	}
}

func TestSimpleToken(t *testing.T) {
	tok := simpleToken(TemplateClose, 10, 12)
	if tok.Kind != TemplateClose || tok.Text != "" || tok.start != 10 || tok.end != 12 {
		t.Errorf("simpleToken() = %+v", tok)
	}
}

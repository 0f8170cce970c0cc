package errors

import (
	"strings"
	"testing"
)

func TestDiagnosticError(t *testing.T) {
	d := NewUnresolvedParent("x", "ghost")

	msg := d.Error()
	if !strings.Contains(msg, "COL301") {
		t.Errorf("expected code in message, got %q", msg)
	}
	if !strings.Contains(msg, "at x") {
		t.Errorf("expected path in message, got %q", msg)
	}
}

func TestWithSettersChain(t *testing.T) {
	d := NewSiblingConflict("users.avatars", "avatars").
		WithEntity("User").
		WithSuggestion("rename one of the nodes")

	if d.Entity != "User" {
		t.Errorf("expected entity User, got %q", d.Entity)
	}
	if d.Suggestion != "rename one of the nodes" {
		t.Errorf("unexpected suggestion %q", d.Suggestion)
	}
}

func TestListSeverityQueries(t *testing.T) {
	tests := []struct {
		name         string
		list         List
		hasErrors    bool
		hasWarnings  bool
		errCount     int
		warningCount int
	}{
		{
			name: "errors only",
			list: List{
				NewUnknownCollection("Admin", "administrator", "admins"),
				NewDuplicateAuthDomain("Admin", "administrator"),
			},
			hasErrors: true,
			errCount:  2,
		},
		{
			name:         "warning only",
			list:         List{NewIdentifierWriteConflict("User", "id")},
			hasWarnings:  true,
			warningCount: 1,
		},
		{
			name: "empty",
			list: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.list.HasErrors(); got != tt.hasErrors {
				t.Errorf("HasErrors: expected %v, got %v", tt.hasErrors, got)
			}
			if got := tt.list.HasWarnings(); got != tt.hasWarnings {
				t.Errorf("HasWarnings: expected %v, got %v", tt.hasWarnings, got)
			}
			errs, warns, _ := tt.list.Counts()
			if errs != tt.errCount || warns != tt.warningCount {
				t.Errorf("Counts: expected %d/%d, got %d/%d", tt.errCount, tt.warningCount, errs, warns)
			}
		})
	}
}

func TestListToJSON(t *testing.T) {
	list := List{NewInvalidLiteral("string")}

	out, err := list.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	for _, want := range []string{`"code": "LIT001"`, `"severity": "error"`, `"category": "literal"`} {
		if !strings.Contains(out, want) {
			t.Errorf("expected JSON to contain %s, got:\n%s", want, out)
		}
	}
}

func TestCategoryCodeRanges(t *testing.T) {
	tests := []struct {
		code   Code
		prefix string
	}{
		{ErrInvalidLiteral, "LIT"},
		{ErrIdentifierWriteConflict, "DIR"},
		{ErrSiblingConflict, "STG"},
		{ErrUnresolvedParent, "COL"},
		{ErrUnknownCollection, "AUT"},
	}
	for _, tt := range tests {
		if !strings.HasPrefix(string(tt.code), tt.prefix) {
			t.Errorf("expected %s to have prefix %s", tt.code, tt.prefix)
		}
	}
}

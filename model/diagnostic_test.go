package model

import (
	"testing"
)

func TestSeverity_IsValid(t *testing.T) {
	tests := []struct {
		severity Severity
		valid    bool
	}{
		{SeverityError, true},
		{SeverityWarning, true},
		{SeverityInfo, true},
		{Severity("fatal"), false},
		{Severity(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.severity), func(t *testing.T) {
			if got := tt.severity.IsValid(); got != tt.valid {
				t.Errorf("IsValid() = %v, want %v", got, tt.valid)
			}
		})
	}
}

func TestSortDiagnostics(t *testing.T) {
	diags := []Diagnostic{
		Infof("b.yaml", "advisory"),
		Errorf("b.yaml", "broken"),
		Warnf("a.yaml", "untidy"),
		Warnf("b.yaml", "untidy"),
		Errorf("a.yaml", "broken"),
	}

	SortDiagnostics(diags)

	want := []Diagnostic{
		{Path: "a.yaml", Message: "broken", Severity: SeverityError},
		{Path: "a.yaml", Message: "untidy", Severity: SeverityWarning},
		{Path: "b.yaml", Message: "broken", Severity: SeverityError},
		{Path: "b.yaml", Message: "untidy", Severity: SeverityWarning},
		{Path: "b.yaml", Message: "advisory", Severity: SeverityInfo},
	}

	if len(diags) != len(want) {
		t.Fatalf("len = %d, want %d", len(diags), len(want))
	}
	for i := range want {
		if diags[i] != want[i] {
			t.Errorf("diags[%d] = %+v, want %+v", i, diags[i], want[i])
		}
	}
}

func TestSortDiagnostics_SameMessageStable(t *testing.T) {
	diags := []Diagnostic{
		Warnf("a.yaml", "same"),
		Warnf("a.yaml", "same"),
	}
	SortDiagnostics(diags)
	if len(diags) != 2 {
		t.Fatalf("len = %d, want 2", len(diags))
	}
}

func TestResult_Counts(t *testing.T) {
	res := &Result{
		Diagnostics: []Diagnostic{
			Errorf("a.yaml", "broken"),
			Warnf("a.yaml", "untidy"),
			Warnf("b.yaml", "untidy"),
			Infof("c.yaml", "advisory"),
		},
	}

	if !res.HasErrors() {
		t.Error("HasErrors() = false, want true")
	}
	if got := res.Count(SeverityWarning); got != 2 {
		t.Errorf("Count(warning) = %d, want 2", got)
	}
	if got := res.Count(SeverityInfo); got != 1 {
		t.Errorf("Count(info) = %d, want 1", got)
	}
}

func TestFolderMetadata_LastReviewedTime(t *testing.T) {
	tests := []struct {
		name  string
		value string
		ok    bool
	}{
		{"valid date", "2024-01-01", true},
		{"empty", "", false},
		{"not a date", "last tuesday", false},
		{"wrong layout", "01/02/2024", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := &FolderMetadata{LastReviewed: tt.value}
			_, ok := meta.LastReviewedTime()
			if ok != tt.ok {
				t.Errorf("LastReviewedTime() ok = %v, want %v", ok, tt.ok)
			}
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Field: "name", Message: "name is required"}
	if got := err.Error(); got != "name: name is required" {
		t.Errorf("Error() = %q", got)
	}
}

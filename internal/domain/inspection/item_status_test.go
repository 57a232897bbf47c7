package inspection

import (
	"encoding/json"
	"testing"
)

func TestItemStatus_IsValid(t *testing.T) {
	tests := []struct {
		status ItemStatus
		valid  bool
	}{
		{StatusSatisfactory, true},
		{StatusMonitor, true},
		{StatusDefect, true},
		{ItemStatus("defective"), false},
		{ItemStatus(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if got := tt.status.IsValid(); got != tt.valid {
				t.Errorf("IsValid() = %v, want %v", got, tt.valid)
			}
		})
	}
}

func TestItemStatus_DisplayName(t *testing.T) {
	tests := []struct {
		status ItemStatus
		want   string
	}{
		{StatusSatisfactory, "Satisfactory"},
		{StatusMonitor, "Monitor"},
		{StatusDefect, "Defect - Action Required"},
	}

	for _, tt := range tests {
		if got := tt.status.DisplayName(); got != tt.want {
			t.Errorf("DisplayName(%s) = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestItemStatus_Next_Cycles(t *testing.T) {
	tests := []struct {
		from ItemStatus
		want ItemStatus
	}{
		{StatusSatisfactory, StatusMonitor},
		{StatusMonitor, StatusDefect},
		{StatusDefect, StatusSatisfactory},
	}

	for _, tt := range tests {
		if got := tt.from.Next(); got != tt.want {
			t.Errorf("Next(%s) = %s, want %s", tt.from, got, tt.want)
		}
	}

	// Three taps from any status must come back around.
	s := StatusSatisfactory
	for i := 0; i < 3; i++ {
		s = s.Next()
	}
	if s != StatusSatisfactory {
		t.Errorf("three Next() calls = %s, want satisfactory", s)
	}
}

func TestParseItemStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    ItemStatus
		wantErr bool
	}{
		{"satisfactory", StatusSatisfactory, false},
		{"Satisfactory", StatusSatisfactory, false},
		{"monitor", StatusMonitor, false},
		{"Monitor", StatusMonitor, false},
		{"defect_action_required", StatusDefect, false},
		{"Defect - Action Required", StatusDefect, false},
		{"Defect-Action-Required", StatusDefect, false},
		{"  monitor  ", StatusMonitor, false},
		{"ok", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseItemStatus(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseItemStatus(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseItemStatus(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestItemStatus_JSON(t *testing.T) {
	data, err := json.Marshal(StatusDefect)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"defect_action_required"` {
		t.Errorf("marshal = %s", data)
	}

	var s ItemStatus
	if err := json.Unmarshal([]byte(`"monitor"`), &s); err != nil {
		t.Fatal(err)
	}
	if s != StatusMonitor {
		t.Errorf("unmarshal = %s, want monitor", s)
	}

	// Empty string decodes to the default status.
	if err := json.Unmarshal([]byte(`""`), &s); err != nil {
		t.Fatal(err)
	}
	if s != StatusSatisfactory {
		t.Errorf("unmarshal empty = %s, want satisfactory", s)
	}

	// The display literal is accepted on input.
	if err := json.Unmarshal([]byte(`"Defect - Action Required"`), &s); err != nil {
		t.Fatal(err)
	}
	if s != StatusDefect {
		t.Errorf("unmarshal display form = %s, want defect_action_required", s)
	}

	if err := json.Unmarshal([]byte(`"fine"`), &s); err == nil {
		t.Error("expected error for invalid status")
	}
}

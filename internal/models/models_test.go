package models

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParseFilterMode(t *testing.T) {
	tests := []struct {
		input   string
		want    FilterMode
		wantErr bool
	}{
		{"", FilterAll, false},
		{"all", FilterAll, false},
		{"ALL", FilterAll, false},
		{"active", FilterActive, false},
		{" Active ", FilterActive, false},
		{"on", FilterActive, false},
		{"inactive", FilterInactive, false},
		{"disabled", FilterInactive, false},
		{"pending", FilterAll, true},
	}

	for _, tt := range tests {
		got, err := ParseFilterMode(tt.input)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownFilter) {
				t.Errorf("ParseFilterMode(%q) error = %v, want ErrUnknownFilter", tt.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseFilterMode(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFilterMode(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestFilterModeCycle(t *testing.T) {
	if FilterAll.Next() != FilterActive || FilterActive.Next() != FilterInactive || FilterInactive.Next() != FilterAll {
		t.Error("Next does not cycle all -> active -> inactive -> all")
	}
	for _, f := range FilterModes() {
		if f.Next().Prev() != f {
			t.Errorf("%v.Next().Prev() = %v", f, f.Next().Prev())
		}
	}
}

func TestFilterModeZeroValueIsAll(t *testing.T) {
	var f FilterMode
	if f != FilterAll {
		t.Errorf("zero FilterMode = %v, want all", f)
	}
}

func TestFilterModeLabel(t *testing.T) {
	want := map[FilterMode]string{
		FilterAll:      "All",
		FilterActive:   "Active",
		FilterInactive: "Inactive",
	}
	for f, label := range want {
		if got := f.Label(); got != label {
			t.Errorf("%d.Label() = %q, want %q", f, got, label)
		}
	}
}

func TestFilterModeMatches(t *testing.T) {
	on := Extension{ID: 1, Title: "on", Active: true}
	off := Extension{ID: 2, Title: "off"}

	tests := []struct {
		mode    FilterMode
		ext     Extension
		matches bool
	}{
		{FilterAll, on, true},
		{FilterAll, off, true},
		{FilterActive, on, true},
		{FilterActive, off, false},
		{FilterInactive, on, false},
		{FilterInactive, off, true},
	}
	for _, tt := range tests {
		if got := tt.mode.Matches(tt.ext); got != tt.matches {
			t.Errorf("%v.Matches(%s) = %v, want %v", tt.mode, tt.ext.Title, got, tt.matches)
		}
	}
}

func TestFilterModeJSON(t *testing.T) {
	var cfg struct {
		Filter FilterMode `json:"filter"`
	}
	if err := json.Unmarshal([]byte(`{"filter":"inactive"}`), &cfg); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if cfg.Filter != FilterInactive {
		t.Errorf("filter = %v, want inactive", cfg.Filter)
	}

	data, err := json.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"filter":"inactive"}` {
		t.Errorf("marshal = %s", data)
	}

	if err := json.Unmarshal([]byte(`{"filter":"bogus"}`), &cfg); err == nil {
		t.Error("expected error for unknown filter name")
	}
}

package models

import (
	"errors"
	"testing"
)

func TestNewItemValidate(t *testing.T) {
	marked := true

	tests := []struct {
		name    string
		input   NewItem
		wantErr bool
	}{
		{"text only", NewItem{Text: "buy milk"}, false},
		{"text and flag", NewItem{Text: "buy milk", IsMarked: &marked}, false},
		{"whitespace text is present", NewItem{Text: "  "}, false},
		{"missing text", NewItem{IsMarked: &marked}, true},
		{"empty text", NewItem{Text: ""}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil {
				return
			}

			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if ve.Field != "text" {
				t.Errorf("Field = %q, want %q", ve.Field, "text")
			}
			if !IsValidationError(err) {
				t.Error("IsValidationError returned false")
			}
		})
	}
}

func TestItemMarked(t *testing.T) {
	yes, no := true, false

	if (Item{}).Marked() {
		t.Error("absent flag should read as false")
	}
	if (Item{IsMarked: &no}).Marked() {
		t.Error("false flag should read as false")
	}
	if !(Item{IsMarked: &yes}).Marked() {
		t.Error("true flag should read as true")
	}
}

func TestNewItemConversion(t *testing.T) {
	marked := true
	item := NewItem{Text: "walk dog", IsMarked: &marked}.Item()

	if item.ID != "" {
		t.Errorf("expected empty ID, got %q", item.ID)
	}
	if item.Text != "walk dog" || !item.Marked() {
		t.Errorf("unexpected item: %+v", item)
	}
}

package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/teddybear-cooking/spend-tracker/internal/model"
)

func TestFieldValidators(t *testing.T) {
	tests := []struct {
		name    string
		fn      func(string) error
		in      string
		wantErr error
	}{
		{"date ok", ValidateDate, "2024-03-01", nil},
		{"date empty", ValidateDate, "", model.ErrEmptyDate},
		{"date malformed", ValidateDate, "1/3/2024", model.ErrInvalidDate},
		{"amount ok", ValidateAmount, "9.99", nil},
		{"amount zero", ValidateAmount, "0", model.ErrInvalidAmount},
		{"category blank", ValidateCategory, "  ", model.ErrEmptyCategory},
		{"category thai", ValidateCategory, strings.Repeat("อาหาร", 40), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.fn(tt.in)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestNewCategoryValidator(t *testing.T) {
	validate := NewCategoryValidator([]string{"Food", "Rent"})

	if err := validate("Coffee"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := validate("  Food "); err == nil {
		t.Fatal("expected duplicate to be rejected after trimming")
	}
	if err := validate("food"); err != nil {
		t.Fatalf("comparison is case sensitive, got %v", err)
	}
	if err := validate(""); !errors.Is(err, model.ErrEmptyCategory) {
		t.Fatalf("expected ErrEmptyCategory, got %v", err)
	}
}

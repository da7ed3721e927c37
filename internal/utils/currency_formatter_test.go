package utils

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/teddybear-cooking/spend-tracker/internal/model"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "150", want: "150"},
		{in: "150.5", want: "150.5"},
		{in: " 0.10 ", want: "0.1"},
		{in: "12,75", want: "12.75"},
		{in: "", wantErr: true},
		{in: "0", wantErr: true},
		{in: "-4", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "1.2.3", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAmount(tt.in)
			if tt.wantErr {
				if !errors.Is(err, model.ErrInvalidAmount) {
					t.Fatalf("expected ErrInvalidAmount, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestFormatAmount(t *testing.T) {
	if got := FormatAmount(decimal.RequireFromString("12.5"), model.THB); got != "12.50 THB" {
		t.Fatalf("unexpected %q", got)
	}
	if got := FormatAmount(decimal.NewFromInt(3), ""); got != "3.00 USD" {
		t.Fatalf("empty currency should render as USD, got %q", got)
	}
	if got := FormatNumber(decimal.RequireFromString("0.1")); got != "0.10" {
		t.Fatalf("unexpected %q", got)
	}
}

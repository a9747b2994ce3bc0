package classify

import (
	"context"
	"testing"

	"github.com/JDCAG/me-and-you/internal/oracle"
)

func TestByKeyword(t *testing.T) {
	tests := []struct {
		description string
		want        string
	}{
		{"Prepare slides for the team meeting", CategoryWork},
		{"Send weekly report", CategoryWork},
		{"EMAIL the landlord", CategoryWork},
		{"Pay electricity bill", CategoryAdmin},
		{"Book dentist appointment", CategoryAdmin},
		{"File IRS paperwork", CategoryAdmin},
		{"Morning meditation", CategoryEmotional},
		{"Write in journal", CategoryEmotional},
		{"Buy milk", CategoryPersonal},
		{"", CategoryPersonal},
	}
	for _, tt := range tests {
		if got := ByKeyword(tt.description); got != tt.want {
			t.Errorf("ByKeyword(%q) = %q; want %q", tt.description, got, tt.want)
		}
	}
}

func TestByKeywordOrderBreaksTies(t *testing.T) {
	// Matches both work ("meeting") and admin ("bank"); work is tested first.
	if got := ByKeyword("meeting at the bank"); got != CategoryWork {
		t.Errorf("ByKeyword tie = %q; want %q", got, CategoryWork)
	}
	// Matches admin ("bill") and emotional ("feelings"); admin wins.
	if got := ByKeyword("bill about my feelings"); got != CategoryAdmin {
		t.Errorf("ByKeyword tie = %q; want %q", got, CategoryAdmin)
	}
}

func TestOracleClassifier(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		err   error
		want  string
	}{
		{"valid category", "shopping", nil, "shopping"},
		{"quoted and cased", `"Health"`, nil, "health"},
		{"padded", "  finance\n", nil, "finance"},
		{"outside whitelist", "groceries", nil, CategoryGeneral},
		{"oracle failure", "", oracle.ErrUnavailable, CategoryGeneral},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Oracle{Client: oracle.ClientFunc(func(ctx context.Context, prompt string) (string, error) {
				return tt.reply, tt.err
			})}
			if got := c.Classify(context.Background(), "anything"); got != tt.want {
				t.Errorf("Classify = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestOracleClassifierNilClient(t *testing.T) {
	if got := (Oracle{}).Classify(context.Background(), "x"); got != CategoryGeneral {
		t.Errorf("nil client Classify = %q; want %q", got, CategoryGeneral)
	}
}

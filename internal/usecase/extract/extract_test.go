package extract

import (
	"strings"
	"testing"

	"github.com/aalvaropc/pizzadough/internal/domain"
)

const planDoc = `{
  "params": {"w": 260, "yeast": "dry", "start": "18:30"},
  "ingredients": {"flour_g": 320.5, "water_g": 240, "salt_g": 6.4},
  "timeline": {"bulk_h": 6.05, "proof_h": 4.95},
  "schedule": {"phases": [{"kind": "bulk"}, {"kind": "proof"}]},
  "empty": "",
  "nothing": null
}`

func TestField_Scalars(t *testing.T) {
	cases := []struct {
		expr string
		want string
	}{
		{"$.params.w", "260"},
		{"$.params.yeast", "dry"},
		{"$.ingredients.flour_g", "320.5"},
		{"  $.ingredients.water_g  ", "240"},
		{"$.schedule.phases[1].kind", "proof"},
	}

	for _, tc := range cases {
		got, err := Field([]byte(planDoc), tc.expr)
		if err != nil {
			t.Fatalf("Field(%q) error: %v", tc.expr, err)
		}
		if got != tc.want {
			t.Fatalf("Field(%q) = %q, want %q", tc.expr, got, tc.want)
		}
	}
}

func TestField_ObjectAndWildcard(t *testing.T) {
	got, err := Field([]byte(planDoc), "$.timeline")
	if err != nil {
		t.Fatalf("Field error: %v", err)
	}
	if !strings.Contains(got, `"bulk_h":6.05`) {
		t.Fatalf("expected compact JSON object, got %q", got)
	}

	got, err = Field([]byte(planDoc), "$.schedule.phases[*].kind")
	if err != nil {
		t.Fatalf("Field error: %v", err)
	}
	if got != `["bulk","proof"]` {
		t.Fatalf("expected JSON array, got %q", got)
	}
}

func TestField_Failures(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		expr string
	}{
		{"empty expression", planDoc, "   "},
		{"not json", "hello", "$.params.w"},
		{"bad expression", planDoc, "$.params["},
		{"missing key", planDoc, "$.params.nope"},
		{"empty string", planDoc, "$.empty"},
		{"null", planDoc, "$.nothing"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Field([]byte(tc.doc), tc.expr)
			if err == nil {
				t.Fatalf("expected error")
			}
			if !domain.IsKind(err, domain.KindInvalidParams) {
				t.Fatalf("expected KindInvalidParams, got %v", err)
			}
		})
	}
}

func TestFields_StopsAtFirstError(t *testing.T) {
	got, err := Fields([]byte(planDoc), []string{"$.params.w", "$.params.yeast"})
	if err != nil {
		t.Fatalf("Fields error: %v", err)
	}
	if len(got) != 2 || got[0] != "260" || got[1] != "dry" {
		t.Fatalf("unexpected values: %v", got)
	}

	if _, err := Fields([]byte(planDoc), []string{"$.params.w", "$.missing"}); err == nil {
		t.Fatalf("expected error")
	}
}

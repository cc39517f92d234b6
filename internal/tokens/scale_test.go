package tokens

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestScaleOrder(t *testing.T) {
	s := NewScale("b", "2", "a", "1", "c", "3")

	want := []string{"b", "a", "c"}
	if got := s.Keys(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Keys() = %v, want %v", got, want)
	}

	if value, ok := s.Get("a"); !ok || value != "1" {
		t.Fatalf("Get(a) = %q, %v", value, ok)
	}
	if _, ok := s.Get("missing"); ok {
		t.Fatal("Get(missing) should report absence")
	}
}

func TestScaleMarshalOrder(t *testing.T) {
	s := NewScale("DEFAULT", "x", "sm", "y", "md", "z")

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	want := `{"DEFAULT":"x","sm":"y","md":"z"}`
	if string(data) != want {
		t.Fatalf("Marshal = %s, want %s", data, want)
	}
}

func TestScaleUnmarshalPreservesOrder(t *testing.T) {
	input := `{"zeta":"1","alpha":"2","mid":"3"}`

	var s Scale
	if err := json.Unmarshal([]byte(input), &s); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	want := []string{"zeta", "alpha", "mid"}
	if got := s.Keys(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Keys() = %v, want %v", got, want)
	}

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != input {
		t.Fatalf("round trip = %s, want %s", data, input)
	}
}

func TestScaleUnmarshalRejectsNonObject(t *testing.T) {
	var s Scale
	if err := json.Unmarshal([]byte(`["a","b"]`), &s); err == nil {
		t.Fatal("expected error for JSON array")
	}
}

func TestNewScalePanicsOnOddPairs(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for odd pair count")
		}
	}()
	NewScale("a", "1", "b")
}

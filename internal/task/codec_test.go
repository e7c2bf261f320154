package task

import (
	"fmt"
	"strings"
	"testing"
)

func TestDecodeFailSoft(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty input", ""},
		{"whitespace", "  \n\t"},
		{"garbage", "not json at all"},
		{"json null", "null"},
		{"wrong shape object", `{"tasks": []}`},
		{"wrong item type", `[1, 2, 3]`},
		{"missing title", `[{"id": "a", "completed": false}]`},
		{"empty title", `[{"title": "", "completed": false}]`},
		{"title wrong type", `[{"title": 42}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decode([]byte(tt.data), nil)
			if got == nil {
				t.Fatal("Decode returned nil, want empty list")
			}
			if len(got) != 0 {
				t.Errorf("got %d tasks, want 0", len(got))
			}
		})
	}
}

func TestDecodeValid(t *testing.T) {
	data := `[
  {"id": "a", "title": "Buy milk", "completed": false},
  {"id": "b", "title": "Walk dog", "completed": true}
]`
	got := Decode([]byte(data), nil)
	if len(got) != 2 {
		t.Fatalf("got %d tasks, want 2", len(got))
	}
	if got[0] != (Task{ID: "a", Title: "Buy milk"}) {
		t.Errorf("first task: %+v", got[0])
	}
	if got[1] != (Task{ID: "b", Title: "Walk dog", Completed: true}) {
		t.Errorf("second task: %+v", got[1])
	}
}

func TestDecodeSynthesizesMissingIDs(t *testing.T) {
	data := `[
  {"title": "Legacy one"},
  {"id": "kept", "title": "Has id", "completed": true},
  {"title": "Legacy two"}
]`
	n := 0
	gen := func() string {
		n++
		return fmt.Sprintf("gen-%d", n)
	}

	got := Decode([]byte(data), gen)
	if len(got) != 3 {
		t.Fatalf("got %d tasks, want 3", len(got))
	}
	if got[0].ID != "gen-1" || got[2].ID != "gen-2" {
		t.Errorf("synthesized ids: %q, %q", got[0].ID, got[2].ID)
	}
	if got[1].ID != "kept" {
		t.Errorf("existing id replaced: %q", got[1].ID)
	}
}

func TestDecodeDefaultGen(t *testing.T) {
	got := Decode([]byte(`[{"title": "Legacy"}]`), nil)
	if len(got) != 1 || got[0].ID == "" {
		t.Fatalf("expected a default-generated id, got %+v", got)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	original := List{
		{ID: "a", Title: "Buy milk"},
		{ID: "b", Title: "Walk dog", Completed: true},
		{ID: "c", Title: "Write report"},
	}

	data, err := Encode(original)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if !strings.HasSuffix(string(data), "\n") {
		t.Error("encoded blob missing trailing newline")
	}

	got := Decode(data, func() string {
		t.Error("round trip must not synthesize ids")
		return "unexpected"
	})
	if !equal(got, original) {
		t.Errorf("round trip:\n got %+v\nwant %+v", got, original)
	}
}

func TestEncodeNilList(t *testing.T) {
	data, err := Encode(nil)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if strings.TrimSpace(string(data)) != "[]" {
		t.Errorf("nil list encodes to %q, want []", data)
	}
}

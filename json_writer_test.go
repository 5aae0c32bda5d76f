package cartera

import (
	"testing"
)

func TestJSONObjectWriterOrder(t *testing.T) {
	var w jsonObjectWriter
	w.Append("b", 2)
	w.Append("a", 1)

	data, err := w.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(data), `{"b":2,"a":1}`; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestJSONObjectWriterOptional(t *testing.T) {
	var w jsonObjectWriter
	w.Append("kept", "x")
	w.Optional("empty", "")
	w.Optional("zero", 0)
	w.Optional("set", "y")

	data, err := w.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(data), `{"kept":"x","set":"y"}`; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestJSONObjectWriterEmbed(t *testing.T) {
	var w jsonObjectWriter
	w.Append("a", 1)
	w.EmbedFrom(map[string]int{"b": 2})

	data, err := w.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(data), `{"a":1,"b":2}`; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestJSONObjectWriterEmpty(t *testing.T) {
	var w jsonObjectWriter
	data, err := w.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if got := string(data); got != `{}` {
		t.Errorf("got %s, want {}", got)
	}
}

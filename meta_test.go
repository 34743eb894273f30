package enummeta

import (
	"errors"
	"testing"

	"github.com/kylelemons/godebug/pretty"
)

func TestNew(t *testing.T) {
	g := MustGroup("Colour", Red, Orange, Green)

	tests := []struct {
		name     string
		bindings []Binding[Colour, string]
		wantErr  error
	}{
		{
			name: "Error: missing variant",
			bindings: []Binding[Colour, string]{
				{Red, "Red"},
				{Orange, "Orange"},
			},
			wantErr: ErrIncompleteBinding,
		},
		{
			name: "Error: variant bound twice",
			bindings: []Binding[Colour, string]{
				{Red, "x"},
				{Red, "y"},
				{Orange, "Orange"},
				{Green, "Green"},
			},
			wantErr: ErrDuplicateBinding,
		},
		{
			name: "Error: variant outside the group",
			bindings: []Binding[Colour, string]{
				{Red, "Red"},
				{Orange, "Orange"},
				{Green, "Green"},
				{Blue, "Blue"},
			},
			wantErr: ErrUnknownVariant,
		},
		{
			name: "Success",
			bindings: []Binding[Colour, string]{
				{Red, "Red"},
				{Orange, "Orange"},
				{Green, "Green"},
			},
		},
		{
			name: "Success: binding order does not matter",
			bindings: []Binding[Colour, string]{
				{Green, "Green"},
				{Red, "Red"},
				{Orange, "Orange"},
			},
		},
	}

	for _, test := range tests {
		r, err := New(g, test.bindings)
		switch {
		case err == nil && test.wantErr != nil:
			t.Errorf("TestNew(%s): got err == nil, want err == %v", test.name, test.wantErr)
			continue
		case err != nil && test.wantErr == nil:
			t.Errorf("TestNew(%s): got err == %v, want err == nil", test.name, err)
			continue
		case err != nil:
			if !errors.Is(err, test.wantErr) {
				t.Errorf("TestNew(%s): got err == %v, want errors.Is(err, %v)", test.name, err, test.wantErr)
			}
			continue
		}

		for _, want := range []struct {
			v    Colour
			meta string
		}{
			{Red, "Red"},
			{Orange, "Orange"},
			{Green, "Green"},
		} {
			if got := r.Lookup(want.v); got != want.meta {
				t.Errorf("TestNew(%s): Lookup(%v): got %q, want %q", test.name, want.v, got, want.meta)
			}
		}
	}
}

func TestNewUntyped(t *testing.T) {
	g := MustGroup("Colour", Red, Orange, Green)

	tests := []struct {
		name     string
		bindings []Untyped[Colour]
		wantErr  error
	}{
		{
			name: "Error: value is not the metadata type",
			bindings: []Untyped[Colour]{
				{Red, "Red"},
				{Orange, 11},
				{Green, "Green"},
			},
			wantErr: ErrTypeMismatch,
		},
		{
			name: "Error: still validates coverage",
			bindings: []Untyped[Colour]{
				{Red, "Red"},
			},
			wantErr: ErrIncompleteBinding,
		},
		{
			name: "Success",
			bindings: []Untyped[Colour]{
				{Red, "Red"},
				{Orange, "Orange"},
				{Green, "Green"},
			},
		},
	}

	for _, test := range tests {
		r, err := NewUntyped[Colour, string](g, test.bindings)
		switch {
		case err == nil && test.wantErr != nil:
			t.Errorf("TestNewUntyped(%s): got err == nil, want err == %v", test.name, test.wantErr)
			continue
		case err != nil && test.wantErr == nil:
			t.Errorf("TestNewUntyped(%s): got err == %v, want err == nil", test.name, err)
			continue
		case err != nil:
			if !errors.Is(err, test.wantErr) {
				t.Errorf("TestNewUntyped(%s): got err == %v, want errors.Is(err, %v)", test.name, err, test.wantErr)
			}
			continue
		}

		if got := r.Lookup(Orange); got != "Orange" {
			t.Errorf("TestNewUntyped(%s): Lookup(Orange): got %q, want %q", test.name, got, "Orange")
		}
	}
}

func TestRegistryAll(t *testing.T) {
	g := MustGroup("Colour", Red, Orange, Green)
	r := Must(g, []Binding[Colour, string]{
		{Red, "Red"},
		{Orange, "Orange"},
		{Green, "Green"},
	})

	if diff := pretty.Compare([]Colour{Red, Orange, Green}, r.All()); diff != "" {
		t.Errorf("TestRegistryAll: -want/+got:\n%s", diff)
	}
	if r.Len() != 3 {
		t.Errorf("TestRegistryAll: Len(): got %d, want 3", r.Len())
	}
	if r.GroupName() != "Colour" {
		t.Errorf("TestRegistryAll: GroupName(): got %q, want %q", r.GroupName(), "Colour")
	}
}

func TestRegistryFunc(t *testing.T) {
	g := MustGroup("Colour", Red, Orange, Green)
	r := Must(g, []Binding[Colour, int]{
		{Red, 10},
		{Orange, 11},
		{Green, 12},
	})

	meta := r.Func()
	if got := meta(Green); got != 12 {
		t.Errorf("TestRegistryFunc: meta(Green): got %d, want 12", got)
	}
}

func TestLookupPanicsOutsideGroup(t *testing.T) {
	g := MustGroup("Colour", Red, Orange, Green)
	r := Must(g, []Binding[Colour, string]{
		{Red, "Red"},
		{Orange, "Orange"},
		{Green, "Green"},
	})

	defer func() {
		if recover() == nil {
			t.Errorf("TestLookupPanicsOutsideGroup: got no panic, want panic")
		}
	}()
	r.Lookup(Blue)
}

func TestMustPanics(t *testing.T) {
	g := MustGroup("Colour", Red, Orange, Green)

	defer func() {
		if recover() == nil {
			t.Errorf("TestMustPanics: got no panic, want panic")
		}
	}()
	Must(g, []Binding[Colour, string]{{Red, "Red"}})
}

package xnum_test

import (
	"sync"
	"testing"

	"github.com/pdfclown/go-common/xnum"
)

func TestRegisterAndLookup(t *testing.T) {
	ns := xnum.NewNamespace[string]("codecs")

	pdf, err := ns.Register("pdf", "application/pdf")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	svg, err := ns.Register("svg", "image/svg+xml")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if pdf.Name() != "pdf" || pdf.Ordinal() != 0 || pdf.Value() != "application/pdf" {
		t.Errorf("unexpected member: %s/%d/%s", pdf.Name(), pdf.Ordinal(), pdf.Value())
	}
	if svg.Ordinal() != 1 {
		t.Errorf("svg ordinal = %d, want 1", svg.Ordinal())
	}

	got, ok := ns.Lookup("pdf")
	if !ok || got != pdf {
		t.Error("Lookup did not return the registered member")
	}
	if _, ok := ns.Lookup("png"); ok {
		t.Error("Lookup of an unregistered name succeeded")
	}

	byOrd, ok := ns.ByOrdinal(1)
	if !ok || byOrd != svg {
		t.Error("ByOrdinal did not return the registered member")
	}
	if _, ok := ns.ByOrdinal(2); ok {
		t.Error("ByOrdinal out of range succeeded")
	}
}

func TestRegisterDuplicate(t *testing.T) {
	ns := xnum.NewNamespace[int]("levels")

	if _, err := ns.Register("low", 1); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if _, err := ns.Register("low", 2); err == nil {
		t.Error("duplicate Register succeeded")
	}
	if ns.Len() != 1 {
		t.Errorf("Len() = %d after failed registration, want 1", ns.Len())
	}
}

func TestRegisterEmptyName(t *testing.T) {
	ns := xnum.NewNamespace[int]("levels")
	if _, err := ns.Register("", 1); err == nil {
		t.Error("Register with empty name succeeded")
	}
}

func TestMustRegisterPanics(t *testing.T) {
	ns := xnum.NewNamespace[int]("levels")
	xnum.MustRegister(ns, "low", 1)

	defer func() {
		if recover() == nil {
			t.Error("MustRegister of a duplicate did not panic")
		}
	}()
	xnum.MustRegister(ns, "low", 2)
}

func TestOrdering(t *testing.T) {
	ns := xnum.NewNamespace[int]("digits")
	names := []string{"one", "two", "three"}
	for i, name := range names {
		xnum.MustRegister(ns, name, i+1)
	}

	gotNames := ns.Names()
	for i, want := range names {
		if gotNames[i] != want {
			t.Errorf("Names()[%d] = %q, want %q", i, gotNames[i], want)
		}
	}

	for i, m := range ns.Members() {
		if m.Ordinal() != i {
			t.Errorf("Members()[%d].Ordinal() = %d", i, m.Ordinal())
		}
	}
}

func TestConcurrentRegistration(t *testing.T) {
	ns := xnum.NewNamespace[int]("concurrent")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := string(rune('a' + i%26))
			// Duplicates across goroutines are expected; only uniqueness
			// and consistency matter here.
			_, _ = ns.Register(name, i)
		}(i)
	}
	wg.Wait()

	if ns.Len() > 26 {
		t.Errorf("Len() = %d, want at most 26", ns.Len())
	}
	for i, m := range ns.Members() {
		if m.Ordinal() != i {
			t.Errorf("ordinal %d at position %d", m.Ordinal(), i)
		}
	}
}

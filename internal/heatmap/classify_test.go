package heatmap_test

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/KaramelBytes/gapmap-cli/internal/dataset"
	"github.com/KaramelBytes/gapmap-cli/internal/heatmap"
)

func TestSplitBaseSuffix(t *testing.T) {
	cases := []struct {
		col, base, suffix string
	}{
		{"h1_ds1", "h1", "ds1"},
		{"meta_description_site.csv", "meta_description", "site.csv"},
		{"Link", "Link", ""},
		{"_x", "", "x"},
		{"x_", "x", ""},
	}
	for _, c := range cases {
		base, suffix := heatmap.SplitBaseSuffix(c.col)
		if base != c.base || suffix != c.suffix {
			t.Fatalf("%q: got (%q,%q), want (%q,%q)", c.col, base, suffix, c.base, c.suffix)
		}
		// A name containing an underscore must reconstruct exactly.
		if strings.Contains(c.col, "_") {
			if got := base + "_" + suffix; got != c.col {
				t.Fatalf("%q: reconstruction gave %q", c.col, got)
			}
		}
	}
}

func flagsTable() *dataset.Table {
	return dataset.New(
		[]string{"Link", "Website_active", "FieldA_ds1", "FieldA_ds2", "FieldB_ds1"},
		[][]string{
			{"l1", "yes", "True", "False", "True"},
			{"l2", "no", "False", "False", "True"},
		},
	)
}

func TestClassifyAllColumns(t *testing.T) {
	c, err := heatmap.Classify(flagsTable(), heatmap.DefaultOptions())
	if err != nil {
		t.Fatalf("classify: %v", err)
	}
	if !reflect.DeepEqual(c.Bases, []string{"FieldA", "FieldA", "FieldB"}) {
		t.Fatalf("bases: %v", c.Bases)
	}
	if !reflect.DeepEqual(c.Suffixes, []string{"ds1", "ds2", "ds1"}) {
		t.Fatalf("suffixes: %v", c.Suffixes)
	}
	want := [][]bool{{true, false, true}, {false, false, true}}
	if !reflect.DeepEqual(c.Matrix, want) {
		t.Fatalf("matrix: %v", c.Matrix)
	}
}

func TestClassifyAllowlistReorders(t *testing.T) {
	tab := dataset.New(
		[]string{"Link", "Website_active", "b1_x", "b2_x", "b1_y"},
		[][]string{{"l", "yes", "1", "0", "1"}},
	)
	opts := heatmap.DefaultOptions()
	opts.SelectedBases = []string{"b2", "b1"}
	c, err := heatmap.Classify(tab, opts)
	if err != nil {
		t.Fatalf("classify: %v", err)
	}
	if !reflect.DeepEqual(c.Bases, []string{"b2", "b1", "b1"}) {
		t.Fatalf("allowlist order not applied: %v", c.Bases)
	}
	// Within-base order must stay source order.
	if !reflect.DeepEqual(c.Columns, []string{"b2_x", "b1_x", "b1_y"}) {
		t.Fatalf("within-base order lost: %v", c.Columns)
	}
}

func TestClassifyAllowlistMatchingNothing(t *testing.T) {
	opts := heatmap.DefaultOptions()
	opts.SelectedBases = []string{"absent"}
	c, err := heatmap.Classify(flagsTable(), opts)
	if err != nil {
		t.Fatalf("classify: %v", err)
	}
	if c.NumFields() != 0 {
		t.Fatalf("expected zero retained columns, got %d", c.NumFields())
	}
	if len(c.Matrix) != 2 {
		t.Fatalf("record count must survive: %d", len(c.Matrix))
	}
}

func TestClassifyRejectsNonBoolean(t *testing.T) {
	tab := dataset.New(
		[]string{"Link", "Website_active", "h1_ds1"},
		[][]string{{"l", "yes", "maybe"}},
	)
	_, err := heatmap.Classify(tab, heatmap.DefaultOptions())
	if err == nil {
		t.Fatalf("expected type conversion error")
	}
	var tc *dataset.TypeConversionError
	if !errors.As(err, &tc) {
		t.Fatalf("expected TypeConversionError, got %T", err)
	}
	if tc.Column != "h1_ds1" || tc.Row != 0 || tc.Value != "maybe" {
		t.Fatalf("wrong error detail: %+v", tc)
	}
}

func TestClassifyIgnoresUnretainedGarbage(t *testing.T) {
	// Unparseable values in a column the allowlist drops must not fail the run.
	tab := dataset.New(
		[]string{"Link", "Website_active", "good_ds1", "bad_ds1"},
		[][]string{{"l", "yes", "True", "garbage"}},
	)
	opts := heatmap.DefaultOptions()
	opts.SelectedBases = []string{"good"}
	if _, err := heatmap.Classify(tab, opts); err != nil {
		t.Fatalf("dropped column coerced anyway: %v", err)
	}
}

func TestClassifyDoesNotMutateInput(t *testing.T) {
	tab := dataset.New(
		[]string{"Link", "Website_active", "h1_ds1"},
		[][]string{{"l", "yes", " true "}},
	)
	if _, err := heatmap.Classify(tab, heatmap.DefaultOptions()); err != nil {
		t.Fatalf("classify: %v", err)
	}
	if tab.Rows[0][2] != " true " {
		t.Fatalf("input table was mutated: %q", tab.Rows[0][2])
	}
}

func TestNormalizeReturnsCanonicalCopy(t *testing.T) {
	tab := dataset.New(
		[]string{"Link", "Website_active", "h1_ds1", "p_ds1"},
		[][]string{{"l", "yes", "1", " false "}},
	)
	out, err := heatmap.Normalize(tab, heatmap.DefaultOptions())
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if out.Rows[0][2] != "True" || out.Rows[0][3] != "False" {
		t.Fatalf("not canonical: %v", out.Rows[0])
	}
	if tab.Rows[0][2] != "1" {
		t.Fatalf("normalize mutated its input")
	}
	// Ignored columns pass through untouched.
	if out.Rows[0][1] != "yes" {
		t.Fatalf("ignored column changed: %q", out.Rows[0][1])
	}
}

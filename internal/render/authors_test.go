// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"testing"

	"github.com/pdiddy/citepage/pkg/types"
)

func last(name string) types.Creator { return types.Creator{LastName: name} }

func TestFormatCreatorsEmpty(t *testing.T) {
	for _, mode := range []Mode{Condense, Complete} {
		if got := FormatCreators(nil, mode); got != "NA" {
			t.Errorf("FormatCreators(nil, %s) = %q, want %q", mode, got, "NA")
		}
	}
}

func TestFormatCreatorsSingle(t *testing.T) {
	tests := []struct {
		name    string
		creator types.Creator
		want    string
	}{
		{"last name preferred", types.Creator{LastName: "Doe", FirstName: "Jane"}, "Doe"},
		{"display name fallback", types.Creator{Name: "The ATLAS Collaboration"}, "The ATLAS Collaboration"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, mode := range []Mode{Condense, Complete} {
				if got := FormatCreators([]types.Creator{tt.creator}, mode); got != tt.want {
					t.Errorf("mode %s: got %q, want %q", mode, got, tt.want)
				}
			}
		})
	}
}

func TestFormatCreatorsPair(t *testing.T) {
	pair := []types.Creator{last("Smith"), last("Jones")}
	for _, mode := range []Mode{Condense, Complete} {
		if got := FormatCreators(pair, mode); got != "Smith and Jones" {
			t.Errorf("mode %s: got %q, want %q", mode, got, "Smith and Jones")
		}
	}
}

func TestFormatCreatorsThreeCondense(t *testing.T) {
	three := []types.Creator{last("A"), last("B"), last("C")}
	if got := FormatCreators(three, Condense); got != "A et al." {
		t.Errorf("got %q, want %q", got, "A et al.")
	}
}

func TestFormatCreatorsThreeComplete(t *testing.T) {
	three := []types.Creator{last("A"), last("B"), last("C")}
	if got := FormatCreators(three, Complete); got != "A, B, C" {
		t.Errorf("got %q, want %q", got, "A, B, C")
	}
}

func TestFormatCreatorsCompleteInitials(t *testing.T) {
	creators := []types.Creator{
		{LastName: "Smith", FirstName: "Jane"},
		{LastName: "Jones"},
		{FirstName: "Ringo"},
		{Name: "CERN"},
	}
	want := "Smith, J., Jones, Ringo, CERN"
	if got := FormatCreators(creators, Complete); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormatCreatorsUnicodeInitial(t *testing.T) {
	creators := []types.Creator{
		{LastName: "Čapek", FirstName: "Štěpán"},
		{LastName: "Nováková", FirstName: "Olga"},
		{LastName: "Dvořák", FirstName: "Pavel"},
	}
	want := "Čapek, Š., Nováková, O., Dvořák, P."
	if got := FormatCreators(creators, Complete); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

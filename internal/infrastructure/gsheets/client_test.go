package gsheets_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csm-sistemas/controlfin-api/internal/infrastructure/gsheets"
)

func TestSpreadsheetID_Formatos(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "url completa de edición",
			raw:  "https://docs.google.com/spreadsheets/d/1AbC-dEf_123/edit#gid=0",
			want: "1AbC-dEf_123",
		},
		{
			name: "url compartida con query",
			raw:  "https://docs.google.com/spreadsheets/d/1AbC-dEf_123/edit?usp=sharing",
			want: "1AbC-dEf_123",
		},
		{
			name: "url sin segmento final",
			raw:  "https://docs.google.com/spreadsheets/d/1AbC-dEf_123",
			want: "1AbC-dEf_123",
		},
		{
			name: "id pelado",
			raw:  "1AbC-dEf_123",
			want: "1AbC-dEf_123",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := gsheets.SpreadsheetID(tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSpreadsheetID_Invalidos(t *testing.T) {
	_, err := gsheets.SpreadsheetID("")
	assert.Error(t, err)

	_, err = gsheets.SpreadsheetID("https://docs.google.com/spreadsheets/")
	assert.Error(t, err)

	_, err = gsheets.SpreadsheetID("https://docs.google.com/spreadsheets/d/")
	assert.Error(t, err)
}

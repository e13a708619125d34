package provider

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWireText_Decoding(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"quoted string", `{"v": "농심(주)"}`, "농심(주)"},
		{"bare number", `{"v": 19680001}`, "19680001"},
		{"decimal number", `{"v": 12.5}`, "12.5"},
		{"null", `{"v": null}`, ""},
		{"empty string", `{"v": ""}`, ""},
		{"field missing", `{}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var row struct {
				V wireText `json:"v"`
			}
			require.NoError(t, json.Unmarshal([]byte(tt.in), &row))
			assert.Equal(t, tt.want, string(row.V))
		})
	}
}

func TestDecodeRows_Success(t *testing.T) {
	type row struct {
		Name wireText `json:"BSSH_NM"`
	}

	rows, err := decodeRows[row](payloadRows(`{"BSSH_NM":"농심(주)"}`, `{"BSSH_NM":"오뚜기(주)"}`))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "농심(주)", string(rows[0].Name))
	assert.Equal(t, "오뚜기(주)", string(rows[1].Name))
}

func TestDecodeRows_BadRowFailsCall(t *testing.T) {
	type row struct {
		Name wireText `json:"BSSH_NM"`
	}

	_, err := decodeRows[row](payloadRows(`{"BSSH_NM":"농심(주)"}`, `[not json`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode row")
}

func TestParseFloat(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want float64
		ok   bool
	}{
		{"plain number", "500", 500, true},
		{"decimal", "120.5", 120.5, true},
		{"unit suffix", "385kcal", 385, true},
		{"thousands separator", "1,234mg", 1234, true},
		{"empty", "", 0, false},
		{"no digits", "정보없음", 0, false},
		{"lone dot", ".", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseFloat(tt.in)
			if !tt.ok {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.InDelta(t, tt.want, *got, 0.001)
		})
	}
}

func TestFirstNonEmpty(t *testing.T) {
	assert.Equal(t, "a", firstNonEmpty("", "a", "b"))
	assert.Equal(t, "x", firstNonEmpty("x"))
	assert.Equal(t, "", firstNonEmpty("", ""))
	assert.Equal(t, "", firstNonEmpty())
}

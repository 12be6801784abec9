package cgen

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vast-data/sane-optgen/core"
)

func TestConstraintTable(t *testing.T) {
	tests := []struct {
		name       string
		typ        core.OptionType
		constraint *core.Constraint
		want       string
		wantErr    bool
	}{
		{
			name:       "none",
			typ:        core.TypeInt,
			constraint: nil,
			want:       "",
		},
		{
			name:       "int range",
			typ:        core.TypeInt,
			constraint: &core.Constraint{Range: &[3]string{"0", "255", "1"}},
			want:       "static const SANE_Range constraint_x =\n  { 0,255,1 };\n",
		},
		{
			name:       "fixed range",
			typ:        core.TypeFixed,
			constraint: &core.Constraint{Range: &[3]string{"0", "215.9", "0"}},
			want:       "static const SANE_Range constraint_x =\n  { SANE_FIX(0),SANE_FIX(215.9),SANE_FIX(0) };\n",
		},
		{
			name:       "int list",
			typ:        core.TypeInt,
			constraint: &core.Constraint{List: []string{"75", "150", "300"}},
			want: "static const SANE_Word constraint_x[4] = {\n" +
				"\t3,\n\t75,\n\t150,\n\t300 };\n",
		},
		{
			name:       "fixed list",
			typ:        core.TypeFixed,
			constraint: &core.Constraint{List: []string{"1.0"}},
			want:       "static const SANE_Word constraint_x[2] = {\n\t1,\n\tSANE_FIX(1.0) };\n",
		},
		{
			name:       "string list",
			typ:        core.TypeString,
			constraint: &core.Constraint{List: []string{"Color", "Gray"}},
			want: "static const SANE_String_Const constraint_x[3] = {\n" +
				"\tSANE_I18N(\"Color\"),\n\tSANE_I18N(\"Gray\"),\n\tNULL };\n",
		},
		{
			name:       "bool list",
			typ:        core.TypeBool,
			constraint: &core.Constraint{List: []string{"SANE_TRUE"}},
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := option(tt.typ, 1)
			o.Constraint = tt.constraint
			got, err := ConstraintTable(o)
			if tt.wantErr {
				assert.True(t, core.IsParseErr(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConstraintTable_VerbatimHasNoTable(t *testing.T) {
	o := option(core.TypeInt, 1)
	o.SetVerbatim(core.FieldConstraint, "@word_list = ss->dpi_list")
	got, err := ConstraintTable(o)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestWriteBody_FaultLeavesWriterUntouched(t *testing.T) {
	good := option(core.TypeInt, 1)
	bad := option(core.TypeButton, 1)
	bad.OptID = "opt_bad"
	bad.Default = "1"
	bad.HasDefault = true

	var out bytes.Buffer
	err := WriteBody(&out, DefaultSettings(), []*core.Option{good, bad})
	require.Error(t, err)
	assert.True(t, core.IsParseErr(err))
	assert.Zero(t, out.Len())
}

func TestWriteHeader_Enumeration(t *testing.T) {
	a := option(core.TypeInt, 1)
	a.OptID = "opt_a"
	b := option(core.TypeGroup, 0)
	b.OptID = "opt__group_1"

	var out bytes.Buffer
	require.NoError(t, WriteHeader(&out, DefaultSettings(), []*core.Option{a, b}))
	assert.Contains(t, out.String(), "  opt_a,\n  opt__group_1,\n  opt_last\n")
	assert.True(t, strings.Contains(out.String(), "struct pixma_sane_t *ss"))
}
